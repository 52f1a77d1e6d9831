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

package api

import (
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"
)

const loginPathPrefix = "/api/users/login"

// identityFromContext returns the authenticated subject and display name
// set by the auth middleware. Either both are present or both are empty;
// a half-populated context yields neither.
func identityFromContext(c echo.Context) (string, string) {
	subject, _ := c.Get(ContextKeySubject).(string)
	name, _ := c.Get(ContextKeyUserName).(string)

	if subject == "" || name == "" {
		return "", ""
	}

	return subject, name
}

// loginEmailFromBody attributes anonymous login attempts by pulling the
// email field from the pre-redaction login payload. Any other path, or a
// non-JSON body, yields "".
func loginEmailFromBody(
	path string,
	body string,
) string {
	if body == "" || !strings.HasPrefix(strings.ToLower(path), loginPathPrefix) {
		return ""
	}

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}

	return payload.Email
}
