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

package audit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cinelog/cinelog/internal/audit"
)

type RedactPublicTestSuite struct {
	suite.Suite

	redactor *audit.Redactor
}

func (s *RedactPublicTestSuite) SetupTest() {
	s.redactor = audit.NewRedactor(nil, nil)
}

func (s *RedactPublicTestSuite) TestRedact() {
	tests := []struct {
		name string
		body string
		path string
		want string
	}{
		{
			name: "empty body passes through",
			body: "",
			path: "/api/movies",
			want: "",
		},
		{
			name: "login route is blanket redacted",
			body: `{"email":"a@b.com","password":"hunter2"}`,
			path: "/api/users/login",
			want: audit.RedactedPayload,
		},
		{
			name: "register route is blanket redacted",
			body: `{"email":"a@b.com","password":"hunter2"}`,
			path: "/api/users/register",
			want: audit.RedactedPayload,
		},
		{
			name: "auth route prefix is blanket redacted",
			body: `{"refresh":"abc"}`,
			path: "/api/auth/refresh",
			want: audit.RedactedPayload,
		},
		{
			name: "sensitive route match ignores path case",
			body: `{"email":"a@b.com"}`,
			path: "/API/Users/Login",
			want: audit.RedactedPayload,
		},
		{
			name: "non-JSON body passes through",
			body: "plain text payload",
			path: "/api/movies",
			want: "plain text payload",
		},
		{
			name: "JSON array passes through",
			body: `[{"password":"x"}]`,
			path: "/api/movies",
			want: `[{"password":"x"}]`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			got := s.redactor.Redact(tc.body, tc.path)
			s.Equal(tc.want, got)
		})
	}
}

func (s *RedactPublicTestSuite) TestRedactReplacesTopLevelFields() {
	body := `{"title":"Heat","token":"abc123","ApiKey":"k"}`

	got := s.redactor.Redact(body, "/api/movies")

	var fields map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal([]byte(got), &fields))
	s.JSONEq(`"`+audit.RedactedValue+`"`, string(fields["token"]))
	s.JSONEq(`"`+audit.RedactedValue+`"`, string(fields["ApiKey"]))
	s.JSONEq(`"Heat"`, string(fields["title"]))
}

func (s *RedactPublicTestSuite) TestRedactPreservesNestedContent() {
	body := `{"profile":{"password":"hunter2"},"name":"x"}`

	got := s.redactor.Redact(body, "/api/movies")

	var fields map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal([]byte(got), &fields))
	s.JSONEq(`{"password":"hunter2"}`, string(fields["profile"]))
}

func (s *RedactPublicTestSuite) TestCustomLists() {
	redactor := audit.NewRedactor(
		[]string{"/internal/secrets"},
		[]string{"pin"},
	)

	s.True(redactor.IsSensitiveRoute("/internal/secrets/rotate"))
	s.False(redactor.IsSensitiveRoute("/api/users/login"))

	got := redactor.Redact(`{"pin":"1234","password":"kept"}`, "/api/movies")

	var fields map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal([]byte(got), &fields))
	s.JSONEq(`"`+audit.RedactedValue+`"`, string(fields["pin"]))
	s.JSONEq(`"kept"`, string(fields["password"]))
}

func (s *RedactPublicTestSuite) TestRedactPartial() {
	tests := []struct {
		name string
		body string
		path string
		want string
	}{
		{
			name: "empty body passes through",
			body: "",
			path: "/api/movies",
			want: "",
		},
		{
			name: "sensitive route is blanket redacted",
			body: `{"email":"a@b.com","passw`,
			path: "/api/users/login",
			want: audit.RedactedPayload,
		},
		{
			name: "truncated json object collapses to the marker",
			body: `{"password":"hunter2","synopsis":"aaaa`,
			path: "/api/movies",
			want: audit.RedactedValue,
		},
		{
			name: "truncated object with leading whitespace",
			body: "  \n\t" + `{"token":"abc`,
			path: "/api/movies",
			want: audit.RedactedValue,
		},
		{
			name: "plain text passes through",
			body: "plain text payload",
			path: "/api/movies",
			want: "plain text payload",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := s.redactor.RedactPartial(tt.body, tt.path)

			s.Equal(tt.want, got)
		})
	}
}

func TestRedactPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RedactPublicTestSuite))
}
