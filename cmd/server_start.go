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

	"github.com/spf13/cobra"

	"github.com/cinelog/cinelog/internal/api"
	"github.com/cinelog/cinelog/internal/cli"
	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/messaging"
	"github.com/cinelog/cinelog/internal/telemetry"
)

// serverStartCmd represents the serverStart command.
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the API server.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		startTime := time.Now()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			"cinelog-api",
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to init tracer", err)
		}

		_, metricsPath, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to init meter", err)
		}

		var nc messaging.NATSClient
		if appConfig.Audit.Enabled {
			nc = connectNATS(logger)
		}
		auditStore, serverOpts := createAuditPipeline(ctx, logger, nc)
		movieStore, userStore := openDomainStores(logger)

		if masked, err := config.Masked(&appConfig); err == nil {
			logger.Debug("loaded configuration", slog.Any("config", masked))
		}

		var sm ServerManager = api.New(appConfig, logger, serverOpts...)

		handlers := sm.GetMovieHandler(movieStore)
		handlers = append(handlers, sm.GetUserHandler(userStore)...)
		handlers = append(handlers, sm.GetHealthHandler(version(), startTime)...)
		handlers = append(handlers, sm.GetMetricsHandler(metricsPath)...)
		if auditStore != nil {
			handlers = append(handlers, sm.GetAuditHandler(auditStore)...)
		}
		sm.RegisterHandlers(handlers...)

		logger.Info(
			"starting server",
			slog.Int("port", appConfig.API.Port),
			slog.Bool("audit", appConfig.Audit.Enabled),
		)

		sm.Start()
		cli.RunServer(ctx, sm, func() {
			if nc != nil {
				cli.CloseNATSClient(nc)
			}
			_ = movieStore.Close()

			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				5*time.Second,
			)
			defer cancel()

			_ = shutdownTracer(shutdownCtx)
			_ = shutdownMeter(shutdownCtx)
		})
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
}
