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
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	// registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a movie or rating does not exist.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	director   TEXT NOT NULL,
	year       INTEGER NOT NULL,
	genre      TEXT NOT NULL,
	synopsis   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS ratings (
	id         TEXT PRIMARY KEY,
	movie_id   TEXT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
	user_id    TEXT NOT NULL,
	score      INTEGER NOT NULL,
	comment    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ratings_movie_id ON ratings(movie_id);
`

// Store provides sqlite-backed persistence for movies and ratings.
type Store struct {
	db *sql.DB
}

// NewStore opens the sqlite database at path and ensures the schema exists.
func NewStore(
	path string,
) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing database handle. The schema is still
// ensured, so multiple stores can share one handle.
func NewStoreWithDB(
	db *sql.DB,
) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle so other stores can share it.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ListMovies returns all movies ordered by title.
func (s *Store) ListMovies(
	ctx context.Context,
) ([]Movie, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, title, director, year, genre, synopsis, created_at, updated_at
		 FROM movies ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movies []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Director, &m.Year,
			&m.Genre, &m.Synopsis, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning movie: %w", err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movies: %w", err)
	}

	return movies, nil
}

// GetMovie retrieves a single movie by ID.
func (s *Store) GetMovie(
	ctx context.Context,
	id string,
) (*Movie, error) {
	var m Movie
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, title, director, year, genre, synopsis, created_at, updated_at
		 FROM movies WHERE id = ?`,
		id,
	).Scan(&m.ID, &m.Title, &m.Director, &m.Year, &m.Genre, &m.Synopsis, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting movie: %w", err)
	}

	return &m, nil
}

// CreateMovie inserts a new movie, assigning its ID and timestamps.
func (s *Store) CreateMovie(
	ctx context.Context,
	m Movie,
) (*Movie, error) {
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO movies (id, title, director, year, genre, synopsis, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.Director, m.Year, m.Genre, m.Synopsis, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating movie: %w", err)
	}

	return &m, nil
}

// UpdateMovie replaces the mutable fields of an existing movie.
func (s *Store) UpdateMovie(
	ctx context.Context,
	m Movie,
) (*Movie, error) {
	m.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE movies SET title = ?, director = ?, year = ?, genre = ?, synopsis = ?, updated_at = ?
		 WHERE id = ?`,
		m.Title, m.Director, m.Year, m.Genre, m.Synopsis, m.UpdatedAt, m.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating movie: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating movie: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetMovie(ctx, m.ID)
}

// DeleteMovie removes a movie and its ratings.
func (s *Store) DeleteMovie(
	ctx context.Context,
	id string,
) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting movie: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting movie: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// CreateRating inserts a rating for an existing movie.
func (s *Store) CreateRating(
	ctx context.Context,
	r Rating,
) (*Rating, error) {
	if _, err := s.GetMovie(ctx, r.MovieID); err != nil {
		return nil, err
	}

	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO ratings (id, movie_id, user_id, score, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.MovieID, r.UserID, r.Score, r.Comment, r.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating rating: %w", err)
	}

	return &r, nil
}

// ListRatings returns all ratings for a movie, newest first.
func (s *Store) ListRatings(
	ctx context.Context,
	movieID string,
) ([]Rating, error) {
	if _, err := s.GetMovie(ctx, movieID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, movie_id, user_id, score, comment, created_at
		 FROM ratings WHERE movie_id = ? ORDER BY created_at DESC`,
		movieID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing ratings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ratings []Rating
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.ID, &r.MovieID, &r.UserID, &r.Score, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning rating: %w", err)
		}
		ratings = append(ratings, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ratings: %w", err)
	}

	return ratings, nil
}
