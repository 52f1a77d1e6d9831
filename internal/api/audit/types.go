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

// Package audit implements the audit log read API.
package audit

import (
	"log/slog"

	auditstore "github.com/cinelog/cinelog/internal/audit"
)

// Audit handles audit log API requests.
type Audit struct {
	logger *slog.Logger

	// Store reads persisted audit entries.
	Store auditstore.Store
}

// New creates an Audit handler.
func New(
	logger *slog.Logger,
	store auditstore.Store,
) *Audit {
	return &Audit{
		logger: logger,
		Store:  store,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	TotalItems int               `json:"total_items"`
	Items      []auditstore.Entry `json:"items"`
}

type getResponse struct {
	Entry auditstore.Entry `json:"entry"`
}
