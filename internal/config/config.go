package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultDBPath      = "data/connector"
	defaultRoutePrefix = "/connector/v1"
	defaultServiceName = "contentconnector"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	Admin         AdminConfig
	Ingestion     IngestionConfig
	Observability ObservabilityConfig
	Log           LogConfig
}

type ServerConfig struct {
	Port        int
	RoutePrefix string
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

// AdminConfig guards the administrative API. An empty token disables it.
type AdminConfig struct {
	Token string
}

type IngestionConfig struct {
	DefaultAuthorID int64
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads server configuration. Outside local environments an admin
// token is mandatory.
func Load() (Config, error) {
	return load(true)
}

// LoadForTool loads config for CLI tools that talk to the database directly.
func LoadForTool() (Config, error) {
	return load(false)
}

func load(requireAdminToken bool) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("connector_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("connector_port", 8080)
	v.SetDefault("connector_db_path", defaultDBPath)
	v.SetDefault("connector_db_timing", false)
	v.SetDefault("connector_route_prefix", defaultRoutePrefix)
	v.SetDefault("connector_admin_token", "")
	v.SetDefault("connector_default_author_id", 1)
	v.SetDefault("connector_log_level", "info")
	v.SetDefault("connector_log_format", "text")
	v.SetDefault("connector_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "")
	v.SetDefault("connector_version", "")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("connector_otel_sampling_ratio", 1.0)
	v.SetDefault("connector_otel_metrics_console", false)

	port := v.GetInt("connector_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid CONNECTOR_PORT: %d", port)
	}

	authorID := v.GetInt64("connector_default_author_id")
	if authorID <= 0 {
		return Config{}, fmt.Errorf("invalid CONNECTOR_DEFAULT_AUTHOR_ID: %d", authorID)
	}

	cfg := Config{
		Environment: resolveEnvironment(v),
		Server: ServerConfig{
			Port:        port,
			RoutePrefix: normalizeRoutePrefix(v.GetString("connector_route_prefix")),
		},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("connector_db_path")),
			LogTiming: v.GetBool("connector_db_timing"),
		},
		Admin: AdminConfig{
			Token: strings.TrimSpace(v.GetString("connector_admin_token")),
		},
		Ingestion:     IngestionConfig{DefaultAuthorID: authorID},
		Observability: loadObservability(v),
		Log: LogConfig{
			Level:  strings.TrimSpace(v.GetString("connector_log_level")),
			Format: strings.TrimSpace(v.GetString("connector_log_format")),
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultDBPath
	}
	if requireAdminToken && !cfg.IsLocalDevelopment() && cfg.Admin.Token == "" {
		return Config{}, fmt.Errorf("CONNECTOR_ADMIN_TOKEN is required outside local/dev environments")
	}

	return cfg, nil
}

func loadObservability(v *viper.Viper) ObservabilityConfig {
	samplingRatio := v.GetFloat64("connector_otel_sampling_ratio")
	samplingRatio = min(max(samplingRatio, 0), 1)

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	serviceVersion := strings.TrimSpace(v.GetString("connector_version"))
	if serviceVersion == "" {
		serviceVersion = strings.TrimSpace(v.GetString("otel_service_version"))
	}
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	endpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	common := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	metricsConsole := v.GetBool("connector_otel_metrics_console")

	return ObservabilityConfig{
		Enabled:           v.GetBool("connector_otel_enabled") || endpoint != "" || metricsConsole,
		OTLPEndpoint:      endpoint,
		OTLPTraceHeaders:  mergeHeaderMaps(common, parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))),
		OTLPMetricHeaders: mergeHeaderMaps(common, parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))),
		ServiceName:       serviceName,
		ServiceVer:        serviceVersion,
		SamplingRatio:     samplingRatio,
		MetricsConsole:    metricsConsole,
	}
}

// normalizeRoutePrefix returns "/a/b" form; an empty value means the default.
func normalizeRoutePrefix(raw string) string {
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return defaultRoutePrefix
	}
	return "/" + trimmed
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// AdminEnabled reports whether the admin API should be mounted.
func (c Config) AdminEnabled() bool {
	return c.Admin.Token != ""
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"connector_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
