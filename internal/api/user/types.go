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

// Package user implements the account registration and login API.
package user

import (
	"context"
	"log/slog"

	userstore "github.com/cinelog/cinelog/internal/user"
)

// Store is the persistence surface the user API depends on.
type Store interface {
	Create(ctx context.Context, u userstore.User) (*userstore.User, error)
	GetByEmail(ctx context.Context, email string) (*userstore.User, error)
}

// TokenGenerator mints signed tokens for authenticated users.
type TokenGenerator interface {
	Generate(
		signingKey string,
		subject string,
		name string,
		roles []string,
	) (string, error)
}

// User handles account API requests.
type User struct {
	logger *slog.Logger

	// Store persists user accounts.
	Store Store
	// Tokens issues JWTs on successful login.
	Tokens TokenGenerator

	signingKey string
}

// New creates a User handler.
func New(
	logger *slog.Logger,
	store Store,
	tokens TokenGenerator,
	signingKey string,
) *User {
	return &User{
		logger:     logger,
		Store:      store,
		Tokens:     tokens,
		signingKey: signingKey,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
