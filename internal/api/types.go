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

// Package api provides the HTTP server, its middleware stack, and the
// request audit pipeline.
package api

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/cinelog/internal/audit"
	"github.com/cinelog/cinelog/internal/config"
)

// Server wraps the Echo instance and its collaborators.
type Server struct {
	// Echo is the underlying HTTP server.
	Echo *echo.Echo

	logger          *slog.Logger
	appConfig       config.Config
	auditDispatcher *audit.Dispatcher
	auditRedactor   *audit.Redactor
}

// Option configures optional Server collaborators.
type Option func(*Server)

// WithAuditPipeline enables the request audit middleware with the given
// dispatcher and redactor.
func WithAuditPipeline(
	dispatcher *audit.Dispatcher,
	redactor *audit.Redactor,
) Option {
	return func(s *Server) {
		s.auditDispatcher = dispatcher
		s.auditRedactor = redactor
	}
}
