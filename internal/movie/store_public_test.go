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

package movie_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cinelog/cinelog/internal/movie"
)

type StoreTestSuite struct {
	suite.Suite

	ctx   context.Context
	store *movie.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()

	store, err := movie.NewStore(filepath.Join(s.T().TempDir(), "cinelog.db"))
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreTestSuite) seed(
	title string,
) *movie.Movie {
	created, err := s.store.CreateMovie(s.ctx, movie.Movie{
		Title:    title,
		Director: "Ridley Scott",
		Year:     1979,
		Genre:    "Sci-Fi",
	})
	s.Require().NoError(err)

	return created
}

func (s *StoreTestSuite) TestCreateAndGetMovie() {
	created := s.seed("Alien")
	s.NotEmpty(created.ID)
	s.False(created.CreatedAt.IsZero())

	got, err := s.store.GetMovie(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Alien", got.Title)
	s.Equal(1979, got.Year)
}

func (s *StoreTestSuite) TestGetMovieNotFound() {
	_, err := s.store.GetMovie(s.ctx, "missing")
	s.ErrorIs(err, movie.ErrNotFound)
}

func (s *StoreTestSuite) TestListMoviesSortedByTitle() {
	s.seed("Stalker")
	s.seed("Alien")

	movies, err := s.store.ListMovies(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(movies, 2)
	s.Equal("Alien", movies[0].Title)
	s.Equal("Stalker", movies[1].Title)
}

func (s *StoreTestSuite) TestUpdateMovie() {
	created := s.seed("Alien")

	updated, err := s.store.UpdateMovie(s.ctx, movie.Movie{
		ID:       created.ID,
		Title:    "Aliens",
		Director: "James Cameron",
		Year:     1986,
		Genre:    "Sci-Fi",
	})
	s.Require().NoError(err)
	s.Equal("Aliens", updated.Title)

	got, err := s.store.GetMovie(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Aliens", got.Title)
	s.Equal(1986, got.Year)
}

func (s *StoreTestSuite) TestUpdateMovieNotFound() {
	_, err := s.store.UpdateMovie(s.ctx, movie.Movie{ID: "missing", Title: "x"})
	s.ErrorIs(err, movie.ErrNotFound)
}

func (s *StoreTestSuite) TestDeleteMovie() {
	created := s.seed("Alien")

	s.Require().NoError(s.store.DeleteMovie(s.ctx, created.ID))

	_, err := s.store.GetMovie(s.ctx, created.ID)
	s.ErrorIs(err, movie.ErrNotFound)
}

func (s *StoreTestSuite) TestDeleteMovieNotFound() {
	s.ErrorIs(s.store.DeleteMovie(s.ctx, "missing"), movie.ErrNotFound)
}

func (s *StoreTestSuite) TestCreateAndListRatings() {
	created := s.seed("Alien")

	first, err := s.store.CreateRating(s.ctx, movie.Rating{
		MovieID: created.ID,
		UserID:  "u-1",
		Score:   9,
		Comment: "a classic",
	})
	s.Require().NoError(err)
	s.NotEmpty(first.ID)

	_, err = s.store.CreateRating(s.ctx, movie.Rating{
		MovieID: created.ID,
		UserID:  "u-2",
		Score:   7,
	})
	s.Require().NoError(err)

	ratings, err := s.store.ListRatings(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Len(ratings, 2)
}

func (s *StoreTestSuite) TestCreateRatingMissingMovie() {
	_, err := s.store.CreateRating(s.ctx, movie.Rating{
		MovieID: "missing",
		UserID:  "u-1",
		Score:   5,
	})
	s.ErrorIs(err, movie.ErrNotFound)
}

func (s *StoreTestSuite) TestListRatingsMissingMovie() {
	_, err := s.store.ListRatings(s.ctx, "missing")
	s.ErrorIs(err, movie.ErrNotFound)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
