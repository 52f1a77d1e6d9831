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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cinelog/cinelog/internal/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) validConfig() config.Config {
	cfg := config.Config{}
	cfg.API.Port = 8080
	cfg.API.Server.Security.SigningKey = "a-signing-key-of-adequate-length"
	cfg.Database.Path = "/var/lib/cinelog/cinelog.db"

	return cfg
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := s.validConfig()
	s.NoError(config.Validate(&cfg))
}

func (s *ConfigTestSuite) TestValidateRejectsBadConfig() {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{
			name: "port out of range",
			mutate: func(cfg *config.Config) {
				cfg.API.Port = 70000
			},
		},
		{
			name: "missing signing key",
			mutate: func(cfg *config.Config) {
				cfg.API.Server.Security.SigningKey = ""
			},
		},
		{
			name: "short signing key",
			mutate: func(cfg *config.Config) {
				cfg.API.Server.Security.SigningKey = "short"
			},
		},
		{
			name: "missing database path",
			mutate: func(cfg *config.Config) {
				cfg.Database.Path = ""
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			cfg := s.validConfig()
			tc.mutate(&cfg)
			s.Error(config.Validate(&cfg))
		})
	}
}

func (s *ConfigTestSuite) TestMaskedHidesSecrets() {
	cfg := s.validConfig()
	cfg.NATS.Client.Auth.Type = "user_pass"
	cfg.NATS.Client.Auth.Username = "cinelog"
	cfg.NATS.Client.Auth.Password = "hunter2-long"

	masked, err := config.Masked(&cfg)
	s.Require().NoError(err)

	s.NotEqual(cfg.API.Server.Security.SigningKey, masked.API.Server.Security.SigningKey)
	s.NotEqual("hunter2-long", masked.NATS.Client.Auth.Password)

	// non-secret fields survive untouched
	s.Equal(cfg.API.Port, masked.API.Port)
	s.Equal(cfg.Database.Path, masked.Database.Path)
	s.Equal("cinelog", masked.NATS.Client.Auth.Username)

	// the original is never mutated
	s.Equal("hunter2-long", cfg.NATS.Client.Auth.Password)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
