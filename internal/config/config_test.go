package config

import "testing"

func TestLoadDefaultsForLocalDevelopment(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "dev")
	t.Setenv("CONNECTOR_ADMIN_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.RoutePrefix != "/connector/v1" {
		t.Fatalf("unexpected route prefix %q", cfg.Server.RoutePrefix)
	}
	if cfg.Database.Path != "data/connector" {
		t.Fatalf("unexpected db path %q", cfg.Database.Path)
	}
	if cfg.Ingestion.DefaultAuthorID != 1 {
		t.Fatalf("expected default author 1, got %d", cfg.Ingestion.DefaultAuthorID)
	}
	if cfg.AdminEnabled() {
		t.Fatal("admin API should be disabled without a token")
	}
}

func TestLoadRequiresAdminTokenOutsideLocal(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "production")
	t.Setenv("CONNECTOR_ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing admin token in production")
	}
}

func TestLoadForToolAllowsMissingAdminTokenOutsideLocal(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "production")
	t.Setenv("CONNECTOR_ADMIN_TOKEN", "")

	cfg, err := LoadForTool()
	if err != nil {
		t.Fatalf("expected no error for tool config load, got %v", err)
	}
	if cfg.Environment != "production" {
		t.Fatalf("unexpected environment %q", cfg.Environment)
	}
}

func TestLoadFallsBackToAppEnv(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "")
	t.Setenv("APP_ENV", "Staging")
	t.Setenv("CONNECTOR_ADMIN_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Fatalf("expected staging, got %q", cfg.Environment)
	}
	if !cfg.AdminEnabled() {
		t.Fatal("expected admin API enabled")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "dev")
	t.Setenv("CONNECTOR_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected invalid port error")
	}
}

func TestLoadNormalizesRoutePrefix(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "dev")
	t.Setenv("CONNECTOR_ROUTE_PREFIX", " content-connector/v2/ ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.RoutePrefix != "/content-connector/v2" {
		t.Fatalf("unexpected route prefix %q", cfg.Server.RoutePrefix)
	}
}

func TestLoadParsesOTLPHeadersAndMetricsConsole(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "dev")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common,x-org=abc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-trace=trace-only")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_HEADERS", "x-metric=metric-only")
	t.Setenv("CONNECTOR_OTEL_METRICS_CONSOLE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Observability.Enabled {
		t.Fatal("expected observability enabled when console metrics is true")
	}
	if cfg.Observability.OTLPTraceHeaders["authorization"] != "Bearer common" {
		t.Fatalf("expected common header in trace headers, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPTraceHeaders["x-trace"] != "trace-only" {
		t.Fatalf("expected trace-specific header, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if _, ok := cfg.Observability.OTLPTraceHeaders["x-metric"]; ok {
		t.Fatalf("metric header leaked into trace headers: %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPMetricHeaders["x-metric"] != "metric-only" {
		t.Fatalf("expected metric-specific header, got %#v", cfg.Observability.OTLPMetricHeaders)
	}
	if cfg.Observability.ServiceName != "contentconnector" {
		t.Fatalf("unexpected service name %q", cfg.Observability.ServiceName)
	}
}

func TestLoadClampsSamplingRatio(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "dev")
	t.Setenv("CONNECTOR_OTEL_SAMPLING_RATIO", "3.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Observability.SamplingRatio != 1 {
		t.Fatalf("expected clamped ratio 1, got %v", cfg.Observability.SamplingRatio)
	}
}

func TestLoadServiceVersionFallbacks(t *testing.T) {
	t.Setenv("CONNECTOR_ENV", "dev")
	t.Setenv("CONNECTOR_VERSION", "")
	t.Setenv("OTEL_SERVICE_VERSION", "1.4.2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Observability.ServiceVer != "1.4.2" {
		t.Fatalf("expected OTEL_SERVICE_VERSION fallback, got %q", cfg.Observability.ServiceVer)
	}

	t.Setenv("CONNECTOR_VERSION", "2.0.0")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Observability.ServiceVer != "2.0.0" {
		t.Fatalf("expected CONNECTOR_VERSION to win, got %q", cfg.Observability.ServiceVer)
	}

	t.Setenv("CONNECTOR_VERSION", "")
	t.Setenv("OTEL_SERVICE_VERSION", "")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Observability.ServiceVer != "dev" {
		t.Fatalf("expected dev default, got %q", cfg.Observability.ServiceVer)
	}
}
