package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGenerateStopsRightAfterLastSend(t *testing.T) {
	calls := 0
	start := time.Now()
	sent := generate(context.Background(), time.Hour, 1, func(context.Context) error {
		calls++
		return nil
	})
	if sent != 1 || calls != 1 {
		t.Fatalf("expected one send, got sent=%d calls=%d", sent, calls)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("generate waited %s after the final send", elapsed)
	}
}

func TestGenerateSendsCountTimes(t *testing.T) {
	calls := 0
	sent := generate(context.Background(), time.Millisecond, 3, func(context.Context) error {
		calls++
		return nil
	})
	if sent != 3 || calls != 3 {
		t.Fatalf("expected three sends, got sent=%d calls=%d", sent, calls)
	}
}

func TestGenerateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sent := generate(ctx, time.Hour, 0, func(context.Context) error {
		cancel()
		return nil
	})
	if sent != 1 {
		t.Fatalf("expected one send before cancellation, got %d", sent)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generator.yaml")
	content := "base_url: http://localhost:8080\napi_key: k\ntags: [go, news]\ninterval: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Interval != 5*time.Second || len(cfg.Tags) != 2 || cfg.APIKey != "k" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigRejectsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generator.yaml")
	if err := os.WriteFile(path, []byte("base_url: http://localhost\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error without api_key")
	}
}
