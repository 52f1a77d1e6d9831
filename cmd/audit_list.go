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
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cinelog/cinelog/internal/cli"
)

var (
	auditListLimit  int
	auditListOffset int
)

// auditListCmd represents the auditList command.
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit log entries",
	Long: `List audit log entries from the audit bucket, newest first.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		store, cleanup := openAuditStore(ctx, logger)
		defer cleanup()

		entries, total, err := store.List(ctx, auditListLimit, auditListOffset)
		if err != nil {
			cli.LogFatal(logger, "failed to list audit entries", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(entries)
			return
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			user := e.UserName
			if user == "" {
				user = "-"
			}
			rows = append(rows, []string{
				e.Timestamp.Local().Format(time.DateTime),
				string(e.Severity),
				e.Message,
				user,
				e.ID,
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   fmt.Sprintf("Audit Entries (%d total)", total),
				Headers: []string{"time", "severity", "message", "user", "id"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	auditCmd.AddCommand(auditListCmd)

	auditListCmd.Flags().
		IntVar(&auditListLimit, "limit", 20, "Maximum entries to show")
	auditListCmd.Flags().
		IntVar(&auditListOffset, "offset", 0, "Entries to skip")
}
