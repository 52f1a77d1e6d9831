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
	"fmt"
	"time"

	"github.com/google/uuid"
)

// marshalJSON is the function used to serialize properties. Override in tests.
var marshalJSON = json.Marshal

// RequestInfo carries everything the pipeline gathered about one request.
type RequestInfo struct {
	Method       string
	Path         string
	Query        string
	Status       int
	Duration     time.Duration
	UserID       string
	UserName     string
	RequestBody  string
	ResponseBody string
}

// requestProperties is the structured bag serialized into Entry.Properties
// on the success path. The key set is fixed per outcome.
type requestProperties struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	QueryString  string `json:"query_string"`
	StatusCode   int    `json:"status_code"`
	DurationMs   int64  `json:"duration_ms"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	RequestBody  string `json:"request_body"`
	ResponseBody string `json:"response_body"`
}

// faultProperties is the structured bag serialized on the fault path.
type faultProperties struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	QueryString string `json:"query_string"`
	DurationMs  int64  `json:"duration_ms"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	RequestBody string `json:"request_body"`
	Exception   string `json:"exception"`
}

// NewEntry builds the audit entry for a request whose handler completed.
func NewEntry(
	info RequestInfo,
) Entry {
	message := fmt.Sprintf(
		"%s %s - %d (%dms)",
		info.Method,
		info.Path,
		info.Status,
		info.Duration.Milliseconds(),
	)
	if info.UserName != "" {
		message += " - User: " + info.UserName
	}

	return Entry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		Severity:    SeverityForStatus(info.Status),
		Category:    CategoryAPIRequest,
		Message:     message,
		UserID:      info.UserID,
		UserName:    info.UserName,
		RequestPath: info.Path,
		Properties: serializeProperties(requestProperties{
			Method:       info.Method,
			Path:         info.Path,
			QueryString:  info.Query,
			StatusCode:   info.Status,
			DurationMs:   info.Duration.Milliseconds(),
			UserID:       info.UserID,
			UserName:     info.UserName,
			RequestBody:  info.RequestBody,
			ResponseBody: info.ResponseBody,
		}),
	}
}

// NewFaultEntry builds the audit entry for a request whose handler failed.
func NewFaultEntry(
	info RequestInfo,
	handlerErr error,
) Entry {
	exception := handlerErr.Error()

	return Entry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		Severity:    SeverityError,
		Category:    CategoryAPIRequest,
		Message:     fmt.Sprintf("%s %s - Exception: %s", info.Method, info.Path, exception),
		Exception:   exception,
		UserID:      info.UserID,
		UserName:    info.UserName,
		RequestPath: info.Path,
		Properties: serializeProperties(faultProperties{
			Method:      info.Method,
			Path:        info.Path,
			QueryString: info.Query,
			DurationMs:  info.Duration.Milliseconds(),
			UserID:      info.UserID,
			UserName:    info.UserName,
			RequestBody: info.RequestBody,
			Exception:   exception,
		}),
	}
}

// serializeProperties marshals the property bag. Bodies reaching this point
// are already redacted, so on a marshal failure the bag degrades to an empty
// object rather than any partial content.
func serializeProperties(
	props any,
) string {
	data, err := marshalJSON(props)
	if err != nil {
		return "{}"
	}

	return string(data)
}
