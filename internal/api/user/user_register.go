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

// Register creates a new user account.
func (u *User) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "invalid request body",
		})
	}

	if errMsg, ok := validation.Struct(req); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: errMsg})
	}

	hash, err := userstore.HashPassword(req.Password)
	if err != nil {
		u.logger.Error(
			"failed to hash password",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to register user",
		})
	}

	created, err := u.Store.Create(c.Request().Context(), userstore.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errorResponse{
				Error: "email already registered",
			})
		}

		u.logger.Error(
			"failed to create user",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to register user",
		})
	}

	return c.JSON(http.StatusCreated, userResponse{
		ID:    created.ID,
		Email: created.Email,
		Name:  created.Name,
	})
}
