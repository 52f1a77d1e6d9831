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

package cli_test

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	natsclient "github.com/osapi-io/nats-client/pkg/client"
	"github.com/stretchr/testify/suite"

	"github.com/cinelog/cinelog/internal/cli"
	"github.com/cinelog/cinelog/internal/config"
)

type NATSTestSuite struct {
	suite.Suite
}

func (s *NATSTestSuite) TestParseJetstreamStorageType() {
	s.Equal(jetstream.MemoryStorage, cli.ParseJetstreamStorageType("memory"))
	s.Equal(jetstream.FileStorage, cli.ParseJetstreamStorageType("file"))
	s.Equal(jetstream.FileStorage, cli.ParseJetstreamStorageType(""))
	s.Equal(jetstream.FileStorage, cli.ParseJetstreamStorageType("bogus"))
}

func (s *NATSTestSuite) TestBuildNATSAuthOptions() {
	tests := []struct {
		name string
		auth config.NATSAuth
		want natsclient.AuthOptions
	}{
		{
			name: "user_pass",
			auth: config.NATSAuth{
				Type:     "user_pass",
				Username: "cinelog",
				Password: "hunter2",
			},
			want: natsclient.AuthOptions{
				AuthType: natsclient.UserPassAuth,
				Username: "cinelog",
				Password: "hunter2",
			},
		},
		{
			name: "nkey",
			auth: config.NATSAuth{
				Type:     "nkey",
				NKeyFile: "/etc/cinelog/user.nk",
			},
			want: natsclient.AuthOptions{
				AuthType: natsclient.NKeyAuth,
				NKeyFile: "/etc/cinelog/user.nk",
			},
		},
		{
			name: "default is no auth",
			auth: config.NATSAuth{},
			want: natsclient.AuthOptions{
				AuthType: natsclient.NoAuth,
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, cli.BuildNATSAuthOptions(tc.auth))
		})
	}
}

func (s *NATSTestSuite) TestBuildAuditKVConfig() {
	cfg := cli.BuildAuditKVConfig(config.NATSAudit{
		Bucket:   "audit-logs",
		TTL:      "720h",
		MaxBytes: 1 << 20,
		Storage:  "memory",
		Replicas: 3,
	})

	s.Equal("audit-logs", cfg.Bucket)
	s.Equal(720*time.Hour, cfg.TTL)
	s.Equal(int64(1<<20), cfg.MaxBytes)
	s.Equal(jetstream.MemoryStorage, cfg.Storage)
	s.Equal(3, cfg.Replicas)
}

func (s *NATSTestSuite) TestBuildAuditKVConfigDefaults() {
	cfg := cli.BuildAuditKVConfig(config.NATSAudit{})

	s.Equal("cinelog-audit", cfg.Bucket)
	s.Zero(cfg.TTL)
	s.Equal(jetstream.FileStorage, cfg.Storage)
}

func TestNATSTestSuite(t *testing.T) {
	suite.Run(t, new(NATSTestSuite))
}
