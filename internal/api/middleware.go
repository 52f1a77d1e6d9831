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
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/cinelog/internal/authtoken"
)

const (
	// ContextKeySubject is the echo context key for the authenticated
	// user's stable identifier.
	ContextKeySubject = "auth.subject"
	// ContextKeyUserName is the echo context key for the authenticated
	// user's display name.
	ContextKeyUserName = "auth.user_name"

	bearerPrefix = "Bearer "
)

// TokenValidator verifies a signed token and returns its claims.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns route-level middleware that requires a valid
// Bearer token and records the caller's identity on the request context.
func AuthMiddleware(
	validator TokenValidator,
	signingKey string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{
					Error: "bearer token required",
				})
			}

			claims, err := validator.Validate(
				strings.TrimPrefix(header, bearerPrefix),
				signingKey,
			)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{
					Error: "invalid token",
				})
			}

			c.Set(ContextKeySubject, claims.Subject)
			c.Set(ContextKeyUserName, claims.Name)

			return next(c)
		}
	}
}
