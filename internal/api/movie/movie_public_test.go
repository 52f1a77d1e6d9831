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
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	handler "github.com/cinelog/cinelog/internal/api/movie"
	moviestore "github.com/cinelog/cinelog/internal/movie"
)

type MovieHandlerTestSuite struct {
	suite.Suite

	store *moviestore.Store
	movie *handler.Movie
	echo  *echo.Echo
}

func (s *MovieHandlerTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := moviestore.NewStore(filepath.Join(s.T().TempDir(), "cinelog.db"))
	s.Require().NoError(err)
	s.store = store

	s.movie = handler.New(logger, store)
	s.echo = echo.New()
}

func (s *MovieHandlerTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *MovieHandlerTestSuite) newContext(
	method string,
	target string,
	body string,
) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()

	return s.echo.NewContext(req, rec), rec
}

func (s *MovieHandlerTestSuite) seed(
	title string,
) *moviestore.Movie {
	created, err := s.store.CreateMovie(context.Background(), moviestore.Movie{
		Title:    title,
		Director: "Ridley Scott",
		Year:     1979,
		Genre:    "Sci-Fi",
	})
	s.Require().NoError(err)

	return created
}

func (s *MovieHandlerTestSuite) TestListMovies() {
	s.seed("Alien")
	s.seed("Stalker")

	c, rec := s.newContext(http.MethodGet, "/api/movies", "")
	s.Require().NoError(s.movie.ListMovies(c))

	s.Equal(http.StatusOK, rec.Code)

	var movies []moviestore.Movie
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &movies))
	s.Len(movies, 2)
}

func (s *MovieHandlerTestSuite) TestGetMovie() {
	created := s.seed("Alien")

	c, rec := s.newContext(http.MethodGet, "/api/movies/"+created.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	s.Require().NoError(s.movie.GetMovie(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Alien")
}

func (s *MovieHandlerTestSuite) TestGetMovieNotFound() {
	c, rec := s.newContext(http.MethodGet, "/api/movies/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	s.Require().NoError(s.movie.GetMovie(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *MovieHandlerTestSuite) TestCreateMovie() {
	body := `{"title":"Alien","director":"Ridley Scott","year":1979,"genre":"Sci-Fi"}`

	c, rec := s.newContext(http.MethodPost, "/api/movies", body)
	s.Require().NoError(s.movie.CreateMovie(c))

	s.Equal(http.StatusCreated, rec.Code)

	var created moviestore.Movie
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.NotEmpty(created.ID)
	s.Equal("Alien", created.Title)
}

func (s *MovieHandlerTestSuite) TestCreateMovieInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing title",
			body: `{"director":"Ridley Scott","year":1979}`,
		},
		{
			name: "year before cinema",
			body: `{"title":"Alien","year":1850}`,
		},
		{
			name: "malformed JSON",
			body: `{"title":`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			c, rec := s.newContext(http.MethodPost, "/api/movies", tc.body)
			s.Require().NoError(s.movie.CreateMovie(c))

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Contains(rec.Body.String(), "error")
		})
	}
}

func (s *MovieHandlerTestSuite) TestUpdateMovie() {
	created := s.seed("Alien")
	body := `{"title":"Aliens","director":"James Cameron","year":1986,"genre":"Sci-Fi"}`

	c, rec := s.newContext(http.MethodPut, "/api/movies/"+created.ID, body)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	s.Require().NoError(s.movie.UpdateMovie(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Aliens")
}

func (s *MovieHandlerTestSuite) TestUpdateMovieNotFound() {
	body := `{"title":"Aliens","year":1986}`

	c, rec := s.newContext(http.MethodPut, "/api/movies/missing", body)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	s.Require().NoError(s.movie.UpdateMovie(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *MovieHandlerTestSuite) TestDeleteMovie() {
	created := s.seed("Alien")

	c, rec := s.newContext(http.MethodDelete, "/api/movies/"+created.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	s.Require().NoError(s.movie.DeleteMovie(c))

	s.Equal(http.StatusNoContent, rec.Code)

	_, err := s.store.GetMovie(context.Background(), created.ID)
	s.ErrorIs(err, moviestore.ErrNotFound)
}

func (s *MovieHandlerTestSuite) TestDeleteMovieNotFound() {
	c, rec := s.newContext(http.MethodDelete, "/api/movies/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	s.Require().NoError(s.movie.DeleteMovie(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *MovieHandlerTestSuite) TestCreateRating() {
	created := s.seed("Alien")
	body := `{"score":9,"comment":"a classic"}`

	c, rec := s.newContext(http.MethodPost, "/api/movies/"+created.ID+"/ratings", body)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	c.Set("auth.subject", "u-1")
	s.Require().NoError(s.movie.CreateRating(c))

	s.Equal(http.StatusCreated, rec.Code)

	var rating moviestore.Rating
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &rating))
	s.Equal("u-1", rating.UserID)
	s.Equal(9, rating.Score)
}

func (s *MovieHandlerTestSuite) TestCreateRatingUnauthenticated() {
	created := s.seed("Alien")
	body := `{"score":9}`

	c, rec := s.newContext(http.MethodPost, "/api/movies/"+created.ID+"/ratings", body)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	s.Require().NoError(s.movie.CreateRating(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *MovieHandlerTestSuite) TestCreateRatingInvalidScore() {
	created := s.seed("Alien")
	body := `{"score":11}`

	c, rec := s.newContext(http.MethodPost, "/api/movies/"+created.ID+"/ratings", body)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	c.Set("auth.subject", "u-1")
	s.Require().NoError(s.movie.CreateRating(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *MovieHandlerTestSuite) TestCreateRatingMissingMovie() {
	body := `{"score":5}`

	c, rec := s.newContext(http.MethodPost, "/api/movies/missing/ratings", body)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	c.Set("auth.subject", "u-1")
	s.Require().NoError(s.movie.CreateRating(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *MovieHandlerTestSuite) TestListRatings() {
	created := s.seed("Alien")

	_, err := s.store.CreateRating(context.Background(), moviestore.Rating{
		MovieID: created.ID,
		UserID:  "u-1",
		Score:   8,
	})
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodGet, "/api/movies/"+created.ID+"/ratings", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	s.Require().NoError(s.movie.ListRatings(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "u-1")
}

func (s *MovieHandlerTestSuite) TestListRatingsEmpty() {
	created := s.seed("Alien")

	c, rec := s.newContext(http.MethodGet, "/api/movies/"+created.ID+"/ratings", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	s.Require().NoError(s.movie.ListRatings(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("[]\n", rec.Body.String())
}

func (s *MovieHandlerTestSuite) TestListRatingsMissingMovie() {
	c, rec := s.newContext(http.MethodGet, "/api/movies/missing/ratings", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	s.Require().NoError(s.movie.ListRatings(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func TestMovieHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MovieHandlerTestSuite))
}
