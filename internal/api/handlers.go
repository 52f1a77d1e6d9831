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
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auditapi "github.com/cinelog/cinelog/internal/api/audit"
	healthapi "github.com/cinelog/cinelog/internal/api/health"
	movieapi "github.com/cinelog/cinelog/internal/api/movie"
	userapi "github.com/cinelog/cinelog/internal/api/user"
	auditstore "github.com/cinelog/cinelog/internal/audit"
	"github.com/cinelog/cinelog/internal/authtoken"
)

// GetAuditHandler returns the audit log read API for registration. All
// audit routes require authentication.
func (s *Server) GetAuditHandler(
	store auditstore.Store,
) []func(e *echo.Echo) {
	var tokenManager TokenValidator = authtoken.New(s.logger)

	handler := auditapi.New(s.logger, store)
	auth := AuthMiddleware(
		tokenManager,
		s.appConfig.API.Server.Security.SigningKey,
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			g := e.Group("/api/logs", auth)
			g.GET("", handler.GetAuditLogs)
			g.GET("/:id", handler.GetAuditLogByID)
		},
	}
}

// GetMovieHandler returns the movie catalog API for registration. Reads
// are public; writes require authentication.
func (s *Server) GetMovieHandler(
	store movieapi.Store,
) []func(e *echo.Echo) {
	var tokenManager TokenValidator = authtoken.New(s.logger)

	handler := movieapi.New(s.logger, store)
	auth := AuthMiddleware(
		tokenManager,
		s.appConfig.API.Server.Security.SigningKey,
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/api/movies", handler.ListMovies)
			e.GET("/api/movies/:id", handler.GetMovie)
			e.GET("/api/movies/:id/ratings", handler.ListRatings)

			e.POST("/api/movies", handler.CreateMovie, auth)
			e.PUT("/api/movies/:id", handler.UpdateMovie, auth)
			e.DELETE("/api/movies/:id", handler.DeleteMovie, auth)
			e.POST("/api/movies/:id/ratings", handler.CreateRating, auth)
		},
	}
}

// GetUserHandler returns the account API for registration.
func (s *Server) GetUserHandler(
	store userapi.Store,
) []func(e *echo.Echo) {
	handler := userapi.New(
		s.logger,
		store,
		authtoken.New(s.logger),
		s.appConfig.API.Server.Security.SigningKey,
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.POST("/api/users/register", handler.Register)
			e.POST("/api/users/login", handler.Login)
		},
	}
}

// GetHealthHandler returns the health endpoint for registration.
func (s *Server) GetHealthHandler(
	version string,
	startTime time.Time,
) []func(e *echo.Echo) {
	handler := healthapi.New(s.logger, version, startTime)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/health", handler.GetHealth)
		},
	}
}

// GetMetricsHandler returns the Prometheus scrape endpoint for
// registration.
func (s *Server) GetMetricsHandler(
	path string,
) []func(e *echo.Echo) {
	if path == "" {
		path = "/metrics"
	}

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET(path, echo.WrapHandler(promhttp.Handler()))
		},
	}
}
