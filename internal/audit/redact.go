// Copyright (c) 2026 The cinelog authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package audit

import (
	"encoding/json"
	"strings"
)

// Redaction markers written in place of sensitive content.
const (
	// RedactedValue replaces an individual sensitive field value.
	RedactedValue = "[REDACTED]"
	// RedactedPayload replaces the entire body on a sensitive route.
	RedactedPayload = "[REDACTED - sensitive route]"
)

// DefaultSensitiveRoutes are path prefixes whose whole payload is credential
// material and is never inspected field by field.
var DefaultSensitiveRoutes = []string{
	"/api/users/login",
	"/api/users/register",
	"/api/auth",
}

// DefaultSensitiveFields is the deny-list of JSON field names, matched
// case-insensitively at the top level of a payload.
var DefaultSensitiveFields = []string{
	"password",
	"token",
	"accesstoken",
	"refreshtoken",
	"secret",
	"apikey",
	"authorization",
	"creditcard",
	"ssn",
}

// redactedValueRaw is RedactedValue as a pre-encoded JSON string.
var redactedValueRaw = json.RawMessage(`"` + RedactedValue + `"`)

// Redactor produces safe-to-persist versions of request and response
// payloads. It is stateless and safe for concurrent use.
type Redactor struct {
	sensitiveRoutes []string
	sensitiveFields map[string]struct{}
}

// NewRedactor creates a Redactor for the given route and field lists.
// Empty lists fall back to the package defaults.
func NewRedactor(
	sensitiveRoutes []string,
	sensitiveFields []string,
) *Redactor {
	if len(sensitiveRoutes) == 0 {
		sensitiveRoutes = DefaultSensitiveRoutes
	}
	if len(sensitiveFields) == 0 {
		sensitiveFields = DefaultSensitiveFields
	}

	fields := make(map[string]struct{}, len(sensitiveFields))
	for _, f := range sensitiveFields {
		fields[strings.ToLower(f)] = struct{}{}
	}

	return &Redactor{
		sensitiveRoutes: sensitiveRoutes,
		sensitiveFields: fields,
	}
}

// IsSensitiveRoute reports whether the path's payload is blanket-redacted.
func (r *Redactor) IsSensitiveRoute(
	path string,
) bool {
	lower := strings.ToLower(path)
	for _, route := range r.sensitiveRoutes {
		if strings.HasPrefix(lower, route) {
			return true
		}
	}

	return false
}

// Redact returns a safe version of body for the given request path.
//
// Sensitive routes are replaced wholesale. Elsewhere, the body is parsed as
// a JSON object and top-level fields on the deny-list have their values
// replaced; all other values are preserved byte for byte. Non-JSON bodies
// pass through unchanged. Only top-level fields are inspected; nested
// objects are not recursed into.
func (r *Redactor) Redact(
	body string,
	path string,
) string {
	if body == "" {
		return body
	}

	if r.IsSensitiveRoute(path) {
		return RedactedPayload
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return body
	}

	for key := range fields {
		if _, ok := r.sensitiveFields[strings.ToLower(key)]; ok {
			fields[key] = redactedValueRaw
		}
	}

	redacted, err := json.Marshal(fields)
	if err != nil {
		// Never fall back to the raw body once it parsed as JSON.
		return RedactedValue
	}

	return string(redacted)
}

// RedactPartial returns a safe version of a payload whose tail was cut
// off during capture. A partial JSON object no longer parses, so its
// fields cannot be inspected; it is replaced with the redaction marker
// rather than passed through. Non-object payloads keep the passthrough
// behavior of Redact.
func (r *Redactor) RedactPartial(
	body string,
	path string,
) string {
	if body == "" {
		return body
	}

	if r.IsSensitiveRoute(path) {
		return RedactedPayload
	}

	if strings.HasPrefix(strings.TrimSpace(body), "{") {
		return RedactedValue
	}

	return body
}
