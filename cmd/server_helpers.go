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

package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	natsclient "github.com/osapi-io/nats-client/pkg/client"

	"github.com/cinelog/cinelog/internal/api"
	movieapi "github.com/cinelog/cinelog/internal/api/movie"
	userapi "github.com/cinelog/cinelog/internal/api/user"
	"github.com/cinelog/cinelog/internal/audit"
	"github.com/cinelog/cinelog/internal/cli"
	"github.com/cinelog/cinelog/internal/messaging"
	"github.com/cinelog/cinelog/internal/movie"
	"github.com/cinelog/cinelog/internal/user"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetAuditHandler returns the audit log read API for registration.
	GetAuditHandler(store audit.Store) []func(e *echo.Echo)
	// GetMovieHandler returns the movie catalog API for registration.
	GetMovieHandler(store movieapi.Store) []func(e *echo.Echo)
	// GetUserHandler returns the account API for registration.
	GetUserHandler(store userapi.Store) []func(e *echo.Echo)
	// GetHealthHandler returns the health endpoint for registration.
	GetHealthHandler(version string, startTime time.Time) []func(e *echo.Echo)
	// GetMetricsHandler returns the Prometheus scrape endpoint for registration.
	GetMetricsHandler(path string) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers ...func(e *echo.Echo))
}

// connectNATS creates and connects the NATS client used by the audit
// sink.
func connectNATS(
	log *slog.Logger,
) messaging.NATSClient {
	var nc messaging.NATSClient = natsclient.New(log, &natsclient.Options{
		Host: appConfig.NATS.Client.Host,
		Port: appConfig.NATS.Client.Port,
		Auth: cli.BuildNATSAuthOptions(appConfig.NATS.Client.Auth),
		Name: appConfig.NATS.Client.ClientName,
	})

	if err := nc.Connect(); err != nil {
		cli.LogFatal(log, "failed to connect to NATS", err)
	}

	return nc
}

// createAuditPipeline provisions the audit KV bucket and builds the
// dispatcher and redactor for the request audit middleware. Auditing
// disabled returns nil options.
func createAuditPipeline(
	ctx context.Context,
	log *slog.Logger,
	nc messaging.NATSClient,
) (audit.Store, []api.Option) {
	if !appConfig.Audit.Enabled {
		return nil, nil
	}

	auditKVConfig := cli.BuildAuditKVConfig(appConfig.NATS.Audit)
	auditKV, err := nc.CreateOrUpdateKVBucketWithConfig(ctx, auditKVConfig)
	if err != nil {
		cli.LogFatal(log, "failed to create audit KV bucket", err)
	}

	store := audit.NewKVStore(log, auditKV)

	// The provider is invoked at dispatch time, not request time. The
	// KV handle is process-scoped, so every write shares this store.
	dispatcher := audit.NewDispatcher(log, func() (audit.Store, error) {
		return store, nil
	})

	redactor := audit.NewRedactor(
		appConfig.Audit.SensitiveRoutes,
		appConfig.Audit.SensitiveFields,
	)

	return store, []api.Option{
		api.WithAuditPipeline(dispatcher, redactor),
	}
}

// openDomainStores opens the sqlite-backed movie and user stores on a
// shared database file.
func openDomainStores(
	log *slog.Logger,
) (*movie.Store, *user.Store) {
	movieStore, err := movie.NewStore(appConfig.Database.Path)
	if err != nil {
		cli.LogFatal(log, "failed to open movie store", err,
			"path", appConfig.Database.Path)
	}

	userStore, err := user.NewStoreWithDB(movieStore.DB())
	if err != nil {
		cli.LogFatal(log, "failed to open user store", err,
			"path", appConfig.Database.Path)
	}

	return movieStore, userStore
}
