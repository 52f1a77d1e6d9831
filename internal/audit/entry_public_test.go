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
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/cinelog/cinelog/internal/audit"
)

type EntryPublicTestSuite struct {
	suite.Suite
}

func (s *EntryPublicTestSuite) TestSeverityForStatus() {
	tests := []struct {
		name   string
		status int
		want   audit.Severity
	}{
		{name: "200 is information", status: http.StatusOK, want: audit.SeverityInformation},
		{name: "201 is information", status: http.StatusCreated, want: audit.SeverityInformation},
		{name: "399 is information", status: 399, want: audit.SeverityInformation},
		{name: "400 is warning", status: http.StatusBadRequest, want: audit.SeverityWarning},
		{name: "404 is warning", status: http.StatusNotFound, want: audit.SeverityWarning},
		{name: "499 is warning", status: 499, want: audit.SeverityWarning},
		{name: "500 is error", status: http.StatusInternalServerError, want: audit.SeverityError},
		{name: "503 is error", status: http.StatusServiceUnavailable, want: audit.SeverityError},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, audit.SeverityForStatus(tc.status))
		})
	}
}

func (s *EntryPublicTestSuite) TestNewEntry() {
	info := audit.RequestInfo{
		Method:       http.MethodGet,
		Path:         "/api/movies",
		Query:        "limit=5",
		Status:       http.StatusOK,
		Duration:     125 * time.Millisecond,
		UserID:       "u-1",
		UserName:     "Ada",
		RequestBody:  "",
		ResponseBody: `[]`,
	}

	entry := audit.NewEntry(info)

	_, err := uuid.Parse(entry.ID)
	s.NoError(err)
	s.WithinDuration(time.Now().UTC(), entry.Timestamp, 5*time.Second)
	s.Equal(audit.SeverityInformation, entry.Severity)
	s.Equal(audit.CategoryAPIRequest, entry.Category)
	s.Equal("GET /api/movies - 200 (125ms) - User: Ada", entry.Message)
	s.Empty(entry.Exception)
	s.Equal("u-1", entry.UserID)
	s.Equal("Ada", entry.UserName)
	s.Equal("/api/movies", entry.RequestPath)

	var props map[string]any
	s.Require().NoError(json.Unmarshal([]byte(entry.Properties), &props))
	s.Equal("GET", props["method"])
	s.Equal("limit=5", props["query_string"])
	s.Equal(float64(200), props["status_code"])
	s.Equal(float64(125), props["duration_ms"])
	s.Equal("[]", props["response_body"])
}

func (s *EntryPublicTestSuite) TestNewEntryAnonymous() {
	entry := audit.NewEntry(audit.RequestInfo{
		Method:   http.MethodGet,
		Path:     "/api/movies",
		Status:   http.StatusNotFound,
		Duration: 3 * time.Millisecond,
	})

	s.Equal("GET /api/movies - 404 (3ms)", entry.Message)
	s.Equal(audit.SeverityWarning, entry.Severity)
	s.Empty(entry.UserID)
	s.Empty(entry.UserName)
}

func (s *EntryPublicTestSuite) TestNewFaultEntry() {
	info := audit.RequestInfo{
		Method:      http.MethodPost,
		Path:        "/api/movies",
		Duration:    8 * time.Millisecond,
		UserID:      "u-1",
		UserName:    "Ada",
		RequestBody: `{"title":"Heat"}`,
	}

	entry := audit.NewFaultEntry(info, errors.New("database unavailable"))

	s.Equal(audit.SeverityError, entry.Severity)
	s.Equal("POST /api/movies - Exception: database unavailable", entry.Message)
	s.Equal("database unavailable", entry.Exception)

	var props map[string]any
	s.Require().NoError(json.Unmarshal([]byte(entry.Properties), &props))
	s.Equal("database unavailable", props["exception"])
	s.Equal(`{"title":"Heat"}`, props["request_body"])

	// Fault property bags never carry a response body or status.
	_, ok := props["response_body"]
	s.False(ok)
	_, ok = props["status_code"]
	s.False(ok)
}

func (s *EntryPublicTestSuite) TestEntryIDsAreUnique() {
	a := audit.NewEntry(audit.RequestInfo{Method: "GET", Path: "/x", Status: 200})
	b := audit.NewEntry(audit.RequestInfo{Method: "GET", Path: "/x", Status: 200})

	s.NotEqual(a.ID, b.ID)
}

func TestEntryPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EntryPublicTestSuite))
}
