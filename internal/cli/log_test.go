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

package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite

	buf      bytes.Buffer
	logger   *slog.Logger
	exitCode int
	origExit func(int)
}

func (s *LogTestSuite) SetupTest() {
	s.buf.Reset()
	s.logger = slog.New(slog.NewTextHandler(&s.buf, nil))

	s.exitCode = -1
	s.origExit = osExit
	osExit = func(code int) {
		s.exitCode = code
	}
}

func (s *LogTestSuite) TearDownTest() {
	osExit = s.origExit
}

func (s *LogTestSuite) TestLogFatalWithError() {
	LogFatal(s.logger, "cannot start server", errors.New("port in use"))

	s.Equal(1, s.exitCode)
	s.Contains(s.buf.String(), "cannot start server")
	s.Contains(s.buf.String(), "port in use")
}

func (s *LogTestSuite) TestLogFatalWithoutError() {
	LogFatal(s.logger, "invalid configuration", nil)

	s.Equal(1, s.exitCode)
	s.Contains(s.buf.String(), "invalid configuration")
	s.NotContains(s.buf.String(), "error=")
}

func (s *LogTestSuite) TestLogFatalWithAttributes() {
	LogFatal(s.logger, "cannot open database", errors.New("locked"), "path", "/tmp/x.db")

	s.Equal(1, s.exitCode)
	s.Contains(s.buf.String(), "path=/tmp/x.db")
	s.Contains(s.buf.String(), "locked")
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}
