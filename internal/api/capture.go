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
	"bytes"
	"io"
	"net/http"
)

const (
	defaultMaxBodyBytes = 4000
	truncationMarker    = "..."
)

// captureRequestBody reads the full request body and restores it so
// downstream handlers can read it again. The complete body is returned:
// redaction must see the payload intact, so any size cap is applied
// after it has been redacted.
func captureRequestBody(
	r *http.Request,
) string {
	if r == nil || r.Body == nil || r.ContentLength <= 0 {
		return ""
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		r.Body = io.NopCloser(bytes.NewReader(nil))
		return ""
	}

	r.Body = io.NopCloser(bytes.NewReader(data))

	return string(data)
}

// truncateBody caps s at max bytes, appending a marker when content was
// dropped.
func truncateBody(
	s string,
	max int,
) string {
	if max <= 0 {
		max = defaultMaxBodyBytes
	}

	if len(s) <= max {
		return s
	}

	return s[:max] + truncationMarker
}

// responseCapture tees response writes into a bounded buffer while passing
// every byte through to the client untouched.
type responseCapture struct {
	http.ResponseWriter

	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newResponseCapture(
	w http.ResponseWriter,
	limit int,
) *responseCapture {
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	return &responseCapture{
		ResponseWriter: w,
		limit:          limit,
	}
}

// Write forwards to the client first, then records up to the remaining
// buffer capacity.
func (w *responseCapture) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)

	if n > 0 {
		remain := w.limit - w.buf.Len()
		switch {
		case remain <= 0:
			w.truncated = true
		case n <= remain:
			w.buf.Write(b[:n])
		default:
			w.buf.Write(b[:remain])
			w.truncated = true
		}
	}

	return n, err
}

// Flush implements http.Flusher when the underlying writer supports it.
func (w *responseCapture) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// body returns the captured response body, with a marker when truncated.
func (w *responseCapture) body() string {
	if w.truncated {
		return w.buf.String() + truncationMarker
	}

	return w.buf.String()
}
