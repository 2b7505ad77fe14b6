package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
)

// Option names holding connector settings.
const (
	OptionActive = "active"
	OptionAPIKey = "api_key"
)

const apiKeyBytes = 32

// Config is the per-request snapshot of connector settings.
type Config struct {
	Active bool
	APIKey string
}

// SettingsService reads and mutates connector settings.
type SettingsService struct {
	store ports.OptionStore
}

// NewSettingsService constructs settings service.
func NewSettingsService(store ports.OptionStore) *SettingsService {
	return &SettingsService{store: store}
}

// Load reads both settings, applying defaults for missing options.
func (s *SettingsService) Load(ctx context.Context) (Config, error) {
	active, found, err := s.store.GetOption(ctx, OptionActive)
	if err != nil {
		return Config{}, fmt.Errorf("load %s option: %w", OptionActive, err)
	}
	apiKey, _, err := s.store.GetOption(ctx, OptionAPIKey)
	if err != nil {
		return Config{}, fmt.Errorf("load %s option: %w", OptionAPIKey, err)
	}
	return Config{
		Active: !found || parseActive(active),
		APIKey: apiKey,
	}, nil
}

func (s *SettingsService) SetActive(ctx context.Context, active bool) error {
	value := "0"
	if active {
		value = "1"
	}
	if err := s.store.SetOption(ctx, OptionActive, value); err != nil {
		return fmt.Errorf("set %s option: %w", OptionActive, err)
	}
	return nil
}

// SetAPIKey stores a trimmed key. An empty key locks out all callers.
func (s *SettingsService) SetAPIKey(ctx context.Context, key string) error {
	if err := s.store.SetOption(ctx, OptionAPIKey, strings.TrimSpace(key)); err != nil {
		return fmt.Errorf("set %s option: %w", OptionAPIKey, err)
	}
	return nil
}

// RotateAPIKey replaces the API key with a random hex value and returns it.
func (s *SettingsService) RotateAPIKey(ctx context.Context) (string, error) {
	key, err := generateAPIKey()
	if err != nil {
		return "", err
	}
	if err := s.SetAPIKey(ctx, key); err != nil {
		return "", err
	}
	return key, nil
}

// EnsureDefaults seeds the active flag on first start. It reports whether
// anything was written.
func (s *SettingsService) EnsureDefaults(ctx context.Context) (bool, error) {
	added, err := s.store.AddOption(ctx, OptionActive, "1")
	if err != nil {
		return false, fmt.Errorf("seed %s option: %w", OptionActive, err)
	}
	return added, nil
}

func parseActive(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func generateAPIKey() (string, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
