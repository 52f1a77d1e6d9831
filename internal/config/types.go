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

// Package config holds the YAML configuration schema and its validation.
package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	API       API       `mapstructure:"api"       mask:"struct"`
	Audit     Audit     `mapstructure:"audit"`
	NATS      NATS      `mapstructure:"nats"      mask:"struct"`
	Database  Database  `mapstructure:"database"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// API configuration settings.
type API struct {
	// Port the API server will bind to.
	Port   int       `mapstructure:"port"   validate:"gte=1,lte=65535"`
	Server APIServer `mapstructure:"server" mask:"struct"`
}

// APIServer configuration settings.
type APIServer struct {
	Security Security `mapstructure:"security" mask:"struct"`
}

// Security configuration settings for the API server.
type Security struct {
	// SigningKey is the HMAC key used to sign and verify JWTs.
	SigningKey string `mapstructure:"signing_key" mask:"password" validate:"required,min=16"`
	CORS       CORS   `mapstructure:"cors"`
}

// CORS configuration settings.
type CORS struct {
	// AllowOrigins lists origins permitted to call the API.
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Audit configuration for the request audit-trail pipeline.
type Audit struct {
	// Enabled turns request auditing on or off.
	Enabled bool `mapstructure:"enabled"`
	// MaxBodyBytes caps how much of a request/response body is retained
	// per audit entry. Defaults to 4000 when zero.
	MaxBodyBytes int `mapstructure:"max_body_bytes" validate:"gte=0"`
	// SkipPaths lists path prefixes exempt from auditing. Empty means the
	// built-in defaults.
	SkipPaths []string `mapstructure:"skip_paths"`
	// SensitiveRoutes lists path prefixes whose payloads are replaced
	// wholesale. Empty means the built-in defaults.
	SensitiveRoutes []string `mapstructure:"sensitive_routes"`
	// SensitiveFields lists JSON field names whose values are redacted.
	// Empty means the built-in defaults.
	SensitiveFields []string `mapstructure:"sensitive_fields"`
}

// NATS configuration settings.
type NATS struct {
	Client NATSClient `mapstructure:"client,omitempty" mask:"struct"`
	Audit  NATSAudit  `mapstructure:"audit,omitempty"`
}

// NATSClient holds connection settings for the NATS client.
type NATSClient struct {
	// Host of the NATS server.
	Host string `mapstructure:"host"`
	// Port of the NATS server.
	Port int `mapstructure:"port" validate:"gte=0,lte=65535"`
	// ClientName identifies this client to the server.
	ClientName string `mapstructure:"client_name"`
	// Auth holds client-side authentication configuration.
	Auth NATSAuth `mapstructure:"auth,omitempty" mask:"struct"`
}

// NATSAuth holds client-side authentication settings for connecting to NATS.
type NATSAuth struct {
	// Type is the auth method: "none", "user_pass", or "nkey".
	Type string `mapstructure:"type"`
	// Username for user_pass auth.
	Username string `mapstructure:"username"`
	// Password for user_pass auth.
	Password string `mapstructure:"password"  mask:"password"`
	// NKeyFile path to the NKey seed file for nkey auth.
	NKeyFile string `mapstructure:"nkey_file"`
}

// NATSAudit configuration for the audit log KV bucket.
type NATSAudit struct {
	// Bucket is the KV bucket name for audit log entries.
	Bucket   string `mapstructure:"bucket"`
	TTL      string `mapstructure:"ttl"` // e.g. "720h" (30 days)
	MaxBytes int64  `mapstructure:"max_bytes"`
	Storage  string `mapstructure:"storage"` // "file" or "memory"
	Replicas int    `mapstructure:"replicas"`
}

// Database configuration for the sqlite-backed domain stores.
type Database struct {
	// Path to the sqlite database file.
	Path string `mapstructure:"path" validate:"required"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}
