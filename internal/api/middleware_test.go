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
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/cinelog/cinelog/internal/authtoken"
)

const testSigningKey = "test-signing-key"

type MiddlewareTestSuite struct {
	suite.Suite

	tokens *authtoken.Token
	echo   *echo.Echo
}

func (s *MiddlewareTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = authtoken.New(logger)

	s.echo = echo.New()
	s.echo.Use(AuthMiddleware(s.tokens, testSigningKey))
	s.echo.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"subject": c.Get(ContextKeySubject),
			"name":    c.Get(ContextKeyUserName),
		})
	})
}

func (s *MiddlewareTestSuite) TestValidTokenSetsIdentity() {
	token, err := s.tokens.Generate(testSigningKey, "u-1", "Ada", []string{"admin"})
	s.Require().NoError(err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "u-1")
	s.Contains(rec.Body.String(), "Ada")
}

func (s *MiddlewareTestSuite) TestRejectsUnauthenticatedRequests() {
	wrongKeyToken, err := s.tokens.Generate("other-key", "u-1", "Ada", nil)
	s.Require().NoError(err)

	tests := []struct {
		name          string
		authorization string
	}{
		{
			name: "missing header",
		},
		{
			name:          "missing bearer prefix",
			authorization: "some-token",
		},
		{
			name:          "malformed token",
			authorization: "Bearer not-a-jwt",
		},
		{
			name:          "wrong signing key",
			authorization: "Bearer " + wrongKeyToken,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.authorization)
			}
			s.echo.ServeHTTP(rec, req)

			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Contains(rec.Body.String(), "error")
		})
	}
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
