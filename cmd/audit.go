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

	"github.com/spf13/cobra"

	"github.com/cinelog/cinelog/internal/audit"
	"github.com/cinelog/cinelog/internal/cli"
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "The audit command",
	Long: `The command group for audit trail operations.
`,
}

// openAuditStore connects to NATS and opens the audit KV bucket for
// direct reads, returning the store and a cleanup function.
func openAuditStore(
	ctx context.Context,
	log *slog.Logger,
) (audit.Store, func()) {
	nc := connectNATS(log)

	auditKVConfig := cli.BuildAuditKVConfig(appConfig.NATS.Audit)
	auditKV, err := nc.CreateOrUpdateKVBucketWithConfig(ctx, auditKVConfig)
	if err != nil {
		cli.LogFatal(log, "failed to open audit KV bucket", err)
	}

	return audit.NewKVStore(log, auditKV), func() {
		cli.CloseNATSClient(nc)
	}
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
