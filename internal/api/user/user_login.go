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

package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	userstore "github.com/cinelog/cinelog/internal/user"
	"github.com/cinelog/cinelog/internal/validation"
)

// Login verifies credentials and issues a signed token. Invalid email and
// invalid password are indistinguishable in the response.
func (u *User) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "invalid request body",
		})
	}

	if errMsg, ok := validation.Struct(req); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: errMsg})
	}

	found, err := u.Store.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Error: "invalid credentials",
			})
		}

		u.logger.Error(
			"failed to look up user",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to log in",
		})
	}

	if !userstore.VerifyPassword(found.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, errorResponse{
			Error: "invalid credentials",
		})
	}

	token, err := u.Tokens.Generate(u.signingKey, found.ID, found.Name, nil)
	if err != nil {
		u.logger.Error(
			"failed to generate token",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to log in",
		})
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: userResponse{
			ID:    found.ID,
			Email: found.Email,
			Name:  found.Name,
		},
	})
}
