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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/cinelog/internal/audit"
	"github.com/cinelog/cinelog/internal/config"
)

// AuditPipelineConfig tunes the request audit middleware.
type AuditPipelineConfig struct {
	// SkipPaths lists path substrings exempt from auditing.
	SkipPaths []string
	// MaxBodyBytes caps captured request/response bodies.
	MaxBodyBytes int
}

// DefaultSkipPaths are path substrings never audited: infrastructure
// endpoints and the audit read API itself, which would otherwise audit
// its own reads.
var DefaultSkipPaths = []string{
	"/swagger",
	"/health",
	"/metrics",
	"/api/logs",
}

// staticAssetExtensions are file suffixes never audited.
var staticAssetExtensions = []string{
	".css",
	".js",
	".map",
	".ico",
	".png",
	".jpg",
	".svg",
	".woff",
	".woff2",
}

func auditPipelineConfigFrom(cfg config.Audit) AuditPipelineConfig {
	return AuditPipelineConfig{
		SkipPaths:    cfg.SkipPaths,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}
}

// shouldSkipAudit reports whether a request path is exempt from auditing.
func shouldSkipAudit(
	path string,
	skipPaths []string,
) bool {
	lower := strings.ToLower(path)

	for _, p := range skipPaths {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}

	for _, ext := range staticAssetExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	return false
}

// auditMiddleware records one audit entry per audited request: an outcome
// entry on normal completion, a fault entry when the handler returns an
// error or panics. The handler's result is never altered; errors pass
// through unchanged and panics resume after the fault entry is dispatched.
func auditMiddleware(
	cfg AuditPipelineConfig,
	redactor *audit.Redactor,
	dispatcher *audit.Dispatcher,
) echo.MiddlewareFunc {
	if redactor == nil {
		redactor = audit.NewRedactor(nil, nil)
	}

	skipPaths := cfg.SkipPaths
	if len(skipPaths) == 0 {
		skipPaths = DefaultSkipPaths
	}

	maxBytes := cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if shouldSkipAudit(path, skipPaths) {
				return next(c)
			}

			// Redact the complete body before capping its size: a
			// truncated JSON payload no longer parses, and the redactor
			// would pass it through with sensitive values intact.
			rawBody := captureRequestBody(c.Request())
			requestBody := truncateBody(redactor.Redact(rawBody, path), maxBytes)

			origWriter := c.Response().Writer
			capture := newResponseCapture(origWriter, maxBytes)
			c.Response().Writer = capture

			start := time.Now()

			buildInfo := func() audit.RequestInfo {
				userID, userName := identityFromContext(c)
				if userID == "" && userName == "" {
					userName = loginEmailFromBody(path, rawBody)
				}

				return audit.RequestInfo{
					Method:      c.Request().Method,
					Path:        path,
					Query:       c.Request().URL.RawQuery,
					Duration:    time.Since(start),
					UserID:      userID,
					UserName:    userName,
					RequestBody: requestBody,
				}
			}

			defer func() {
				if r := recover(); r != nil {
					c.Response().Writer = origWriter
					dispatcher.Dispatch(audit.NewFaultEntry(
						buildInfo(),
						fmt.Errorf("panic: %v", r),
					))
					panic(r)
				}
			}()

			err := next(c)
			c.Response().Writer = origWriter

			if err != nil {
				// HTTP-typed errors are ordinary outcomes: the client
				// receives their status code, so severity derives from
				// it. Fault entries are reserved for untyped failures.
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					info := buildInfo()
					info.Status = httpErr.Code
					dispatcher.Dispatch(audit.NewEntry(info))

					return err
				}

				dispatcher.Dispatch(audit.NewFaultEntry(buildInfo(), err))

				return err
			}

			info := buildInfo()
			info.Status = c.Response().Status
			if capture.truncated {
				info.ResponseBody = redactor.RedactPartial(capture.body(), path)
			} else {
				info.ResponseBody = truncateBody(
					redactor.Redact(capture.body(), path),
					maxBytes,
				)
			}
			dispatcher.Dispatch(audit.NewEntry(info))

			return nil
		}
	}
}
