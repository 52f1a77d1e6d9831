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

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cinelog/cinelog/internal/validation"
)

type ValidationTestSuite struct {
	suite.Suite
}

type sample struct {
	Title string `validate:"required,min=1,max=10"`
	Year  int    `validate:"release_year"`
}

func (s *ValidationTestSuite) TestStruct() {
	tests := []struct {
		name    string
		input   sample
		ok      bool
		wantMsg string
	}{
		{
			name:  "valid",
			input: sample{Title: "Alien", Year: 1979},
			ok:    true,
		},
		{
			name:    "missing title",
			input:   sample{Year: 1979},
			ok:      false,
			wantMsg: "Title",
		},
		{
			name:    "year too early",
			input:   sample{Title: "Alien", Year: 1850},
			ok:      false,
			wantMsg: "outside the range of released films",
		},
		{
			name:    "year too late",
			input:   sample{Title: "Alien", Year: 2200},
			ok:      false,
			wantMsg: "outside the range of released films",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			msg, ok := validation.Struct(tc.input)
			s.Equal(tc.ok, ok)
			if tc.wantMsg != "" {
				s.Contains(msg, tc.wantMsg)
			}
		})
	}
}

func (s *ValidationTestSuite) TestStructJoinsMultipleErrors() {
	msg, ok := validation.Struct(sample{Year: 1850})
	s.False(ok)
	s.Contains(msg, "Title")
	s.Contains(msg, "Year")
	s.Contains(msg, "; ")
}

func (s *ValidationTestSuite) TestInstanceIsShared() {
	s.Same(validation.Instance(), validation.Instance())
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}
