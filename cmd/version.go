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
	"fmt"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	buildVersion = ""
	buildCommit  = ""
	buildDate    = ""
)

func versionInfo() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(
			"cinelog",
			"A movie catalog API with a built-in request audit trail.",
			"https://github.com/cinelog/cinelog",
		),
		func(i *goversion.Info) {
			if buildVersion != "" {
				i.GitVersion = buildVersion
			}
			if buildCommit != "" {
				i.GitCommit = buildCommit
			}
			if buildDate != "" {
				i.BuildDate = buildDate
			}
		},
	)
}

// version returns the short version string reported by the API.
func version() string {
	return versionInfo().GitVersion
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print detailed version information.
`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(versionInfo().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
