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

// Package audit provides the request audit trail: entry construction,
// payload redaction, asynchronous dispatch, and storage.
package audit

import (
	"context"
	"net/http"
	"time"
)

// Severity classifies an audit entry by request outcome.
type Severity string

// Severity levels, derived from the HTTP status code.
const (
	SeverityInformation Severity = "Information"
	SeverityWarning     Severity = "Warning"
	SeverityError       Severity = "Error"
)

// CategoryAPIRequest tags entries produced by the request pipeline,
// distinguishing them from other log sources sharing the sink.
const CategoryAPIRequest = "api-request"

// Entry represents a single audit log record.
type Entry struct {
	// ID is the unique identifier for this audit entry.
	ID string `json:"id"`
	// Timestamp is when the request was observed, in UTC.
	Timestamp time.Time `json:"timestamp"`
	// Severity is derived from the response status code.
	Severity Severity `json:"severity"`
	// Category identifies the log source; always CategoryAPIRequest here.
	Category string `json:"category"`
	// Message is a one-line human-readable summary.
	Message string `json:"message"`
	// Exception is the handler error text; set only on the fault path.
	Exception string `json:"exception,omitempty"`
	// UserID is the authenticated subject, when known.
	UserID string `json:"user_id,omitempty"`
	// UserName is the display name, or the login-attempt email heuristic.
	UserName string `json:"user_name,omitempty"`
	// RequestPath is the path component, independent of the query string.
	RequestPath string `json:"request_path"`
	// Properties is a serialized JSON bag of structured request details.
	Properties string `json:"properties"`
}

// Store persists audit entries.
type Store interface {
	// Write appends one entry to the sink.
	Write(ctx context.Context, entry Entry) error
	// Get retrieves a single entry by ID.
	Get(ctx context.Context, id string) (*Entry, error)
	// List retrieves entries newest-first with pagination, returning the
	// page and the total count.
	List(ctx context.Context, limit int, offset int) ([]Entry, int, error)
}

// SeverityForStatus maps an HTTP status code to an entry severity.
func SeverityForStatus(
	status int,
) Severity {
	switch {
	case status >= http.StatusInternalServerError:
		return SeverityError
	case status >= http.StatusBadRequest:
		return SeverityWarning
	default:
		return SeverityInformation
	}
}
