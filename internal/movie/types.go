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

// Package movie provides the movie and rating domain types and storage.
package movie

import "time"

// Movie is a single catalog entry.
type Movie struct {
	// ID is the unique identifier for this movie.
	ID string `json:"id"`
	// Title of the film.
	Title string `json:"title"`
	// Director of the film.
	Director string `json:"director"`
	// Year of release.
	Year int `json:"year"`
	// Genre of the film.
	Genre string `json:"genre"`
	// Synopsis is a short plot summary.
	Synopsis string `json:"synopsis,omitempty"`
	// CreatedAt is when the entry was added.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the entry was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Rating is one user's score for a movie.
type Rating struct {
	// ID is the unique identifier for this rating.
	ID string `json:"id"`
	// MovieID references the rated movie.
	MovieID string `json:"movie_id"`
	// UserID is the authenticated rater.
	UserID string `json:"user_id"`
	// Score from 1 to 10.
	Score int `json:"score"`
	// Comment optionally accompanies the score.
	Comment string `json:"comment,omitempty"`
	// CreatedAt is when the rating was submitted.
	CreatedAt time.Time `json:"created_at"`
}
