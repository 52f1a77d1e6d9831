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

// Package movie implements the movie catalog and ratings API.
package movie

import (
	"context"
	"log/slog"

	moviestore "github.com/cinelog/cinelog/internal/movie"
)

// Store is the persistence surface the movie API depends on.
type Store interface {
	ListMovies(ctx context.Context) ([]moviestore.Movie, error)
	GetMovie(ctx context.Context, id string) (*moviestore.Movie, error)
	CreateMovie(ctx context.Context, m moviestore.Movie) (*moviestore.Movie, error)
	UpdateMovie(ctx context.Context, m moviestore.Movie) (*moviestore.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	CreateRating(ctx context.Context, r moviestore.Rating) (*moviestore.Rating, error)
	ListRatings(ctx context.Context, movieID string) ([]moviestore.Rating, error)
}

// Movie handles movie catalog API requests.
type Movie struct {
	logger *slog.Logger

	// Store persists movies and ratings.
	Store Store
}

// New creates a Movie handler.
func New(
	logger *slog.Logger,
	store Store,
) *Movie {
	return &Movie{
		logger: logger,
		Store:  store,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// movieRequest is the create/update payload.
type movieRequest struct {
	Title    string `json:"title"    validate:"required,min=1,max=200"`
	Director string `json:"director" validate:"max=100"`
	Year     int    `json:"year"     validate:"release_year"`
	Genre    string `json:"genre"    validate:"max=50"`
	Synopsis string `json:"synopsis" validate:"max=2000"`
}

// ratingRequest is the rating creation payload.
type ratingRequest struct {
	Score   int    `json:"score"   validate:"gte=1,lte=10"`
	Comment string `json:"comment" validate:"max=1000"`
}
