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
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	moviestore "github.com/cinelog/cinelog/internal/movie"
	"github.com/cinelog/cinelog/internal/validation"
)

// contextKeySubject matches the key the auth middleware sets.
const contextKeySubject = "auth.subject"

// CreateRating records an authenticated user's rating for a movie.
func (m *Movie) CreateRating(c echo.Context) error {
	movieID := c.Param("id")

	userID, _ := c.Get(contextKeySubject).(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, errorResponse{
			Error: "authentication required",
		})
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "invalid request body",
		})
	}

	if errMsg, ok := validation.Struct(req); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: errMsg})
	}

	created, err := m.Store.CreateRating(c.Request().Context(), moviestore.Rating{
		MovieID: movieID,
		UserID:  userID,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, moviestore.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Error: "movie not found",
			})
		}

		m.logger.Error(
			"failed to create rating",
			slog.String("error", err.Error()),
			slog.String("movie_id", movieID),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to create rating",
		})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListRatings returns all ratings for a movie, newest first.
func (m *Movie) ListRatings(c echo.Context) error {
	movieID := c.Param("id")

	ratings, err := m.Store.ListRatings(c.Request().Context(), movieID)
	if err != nil {
		if errors.Is(err, moviestore.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Error: "movie not found",
			})
		}

		m.logger.Error(
			"failed to list ratings",
			slog.String("error", err.Error()),
			slog.String("movie_id", movieID),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "failed to list ratings",
		})
	}

	if ratings == nil {
		ratings = []moviestore.Rating{}
	}

	return c.JSON(http.StatusOK, ratings)
}
