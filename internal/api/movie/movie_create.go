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

package movie

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	moviestore "github.com/cinelog/cinelog/internal/movie"
	"github.com/cinelog/cinelog/internal/validation"
)

// CreateMovie adds a movie to the catalog.
func (m *Movie) CreateMovie(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "invalid request body",
		})
	}

	if errMsg, ok := validation.Struct(req); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: errMsg})
	}

	created, err := m.Store.CreateMovie(c.Request().Context(), moviestore.Movie{
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
		Genre:    req.Genre,
		Synopsis: req.Synopsis,
	})
	if err != nil {
		m.logger.Error(
			"failed to create movie",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to create movie",
		})
	}

	return c.JSON(http.StatusCreated, created)
}
