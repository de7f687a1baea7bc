package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadFrom(newViper())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected base_url to be 'http://localhost:8080', got '%s'", cfg.BaseURL)
	}

	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected http_timeout to be 30s, got %s", cfg.HTTPTimeout)
	}

	if cfg.SeatCapacity != 300 {
		t.Errorf("Expected seat_capacity to be 300, got %d", cfg.SeatCapacity)
	}

	want := Scheme{Users: 3, Employees: 0, Planes: 2, Flights: 4, Passengers: 10}
	if cfg.Scheme != want {
		t.Errorf("Expected scheme %+v, got %+v", want, cfg.Scheme)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "https://ams.example.com/api/")
	t.Setenv("SCHEME_PASSENGERS", "25")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg, err := LoadFrom(newViper())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.BaseURL != "https://ams.example.com/api" {
		t.Errorf("Expected trailing slash to be trimmed, got '%s'", cfg.BaseURL)
	}

	if cfg.Scheme.Passengers != 25 {
		t.Errorf("Expected scheme.passengers to be 25, got %d", cfg.Scheme.Passengers)
	}

	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("Expected http_timeout to be 5s, got %s", cfg.HTTPTimeout)
	}
}

func TestConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "airgen.config.yaml")
	content := "base_url: http://ams.local:9000\nseed: 17\nscheme:\n  planes: 6\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.BaseURL != "http://ams.local:9000" {
		t.Errorf("Expected base_url from file, got '%s'", cfg.BaseURL)
	}
	if cfg.Seed != 17 {
		t.Errorf("Expected seed 17, got %d", cfg.Seed)
	}
	if cfg.Scheme.Planes != 6 || cfg.Scheme.Users != 3 {
		t.Errorf("Expected planes from file and users from defaults, got %+v", cfg.Scheme)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		BaseURL:      "ftp://example.com",
		HTTPTimeout:  -time.Second,
		LogLevel:     "chatty",
		SeatCapacity: -1,
		Scheme:       Scheme{Users: -1, Flights: -2},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation to fail")
	}

	msg := err.Error()
	for _, want := range []string{"base_url", "http_timeout", "log_level", "seat_capacity", "scheme.users", "scheme.flights"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error to mention %s, got: %s", want, msg)
		}
	}
	if strings.Contains(msg, "scheme.planes") {
		t.Errorf("Did not expect scheme.planes in error: %s", msg)
	}
}

func TestValidateRejectsZeroTimeoutAndCapacity(t *testing.T) {
	cfg := Default()
	cfg.HTTPTimeout = 0
	cfg.SeatCapacity = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation to fail")
	}

	msg := err.Error()
	for _, want := range []string{"http_timeout", "seat_capacity"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error to mention %s, got: %s", want, msg)
		}
	}
}

func TestYAMLReadsBack(t *testing.T) {
	want := Default()
	want.Seed = 99
	want.HTTPTimeout = 12 * time.Second
	want.Scheme.Passengers = 40

	data, err := want.YAML()
	if err != nil {
		t.Fatalf("Failed to render config: %v", err)
	}
	if !strings.Contains(string(data), "http_timeout: 12s") {
		t.Errorf("Expected duration to be written as text, got:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "airgen.config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	got, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if *got != *want {
		t.Errorf("Expected %+v, got %+v", *want, *got)
	}
}
