package config

import (
	"os"
	"sync"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()

	return tmpFile.Name()
}

func resetConfig() {
	instance = nil
	once = *new(sync.Once)
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `forecast:
  base_url: "https://opendata-download-metfcst.smhi.se"
  timeout: 2s
device:
  source: static
  permission: granted
  latitude: 59.334591
  longitude: 18.063240
  heading: 90
display:
  language: sv
  redraw_rate: 10
redis:
  addr: "localhost:6379"
  heading_stream: "compass"
server:
  addr: ":8080"
`)
	resetConfig()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Forecast.Timeout != 2*time.Second {
		t.Errorf("Expected timeout 2s, got %v", cfg.Forecast.Timeout)
	}

	if cfg.Device.Latitude != 59.334591 || cfg.Device.Longitude != 18.063240 {
		t.Errorf("Expected device at 59.334591,18.063240, got %v,%v", cfg.Device.Latitude, cfg.Device.Longitude)
	}

	if cfg.Device.Heading != 90 {
		t.Errorf("Expected heading 90, got %v", cfg.Device.Heading)
	}

	if cfg.Display.Language != "sv" {
		t.Errorf("Expected language 'sv', got '%s'", cfg.Display.Language)
	}

	if cfg.Redis.HeadingStream != "compass" {
		t.Errorf("Expected heading stream 'compass', got '%s'", cfg.Redis.HeadingStream)
	}

	if cfg.Redis.PositionStream != "device_position" {
		t.Errorf("Expected default position stream 'device_position', got '%s'", cfg.Redis.PositionStream)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected server addr ':8080', got '%s'", cfg.Server.Addr)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempConfig(t, `device:
  latitude: 59.0
  longitude: 18.0
`)
	resetConfig()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Forecast.BaseURL != DefaultForecastBaseURL {
		t.Errorf("Expected default base url, got '%s'", cfg.Forecast.BaseURL)
	}

	if cfg.Forecast.Timeout != DefaultFetchTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultFetchTimeout, cfg.Forecast.Timeout)
	}

	if cfg.Device.Source != "static" || cfg.Device.Permission != "granted" {
		t.Errorf("Expected static source with granted permission, got %s/%s", cfg.Device.Source, cfg.Device.Permission)
	}

	if cfg.Display.Language != "en" {
		t.Errorf("Expected default language 'en', got '%s'", cfg.Display.Language)
	}

	if cfg.Server.Addr != "" {
		t.Errorf("Expected server disabled by default, got '%s'", cfg.Server.Addr)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "invalid: [yaml: content")
	resetConfig()

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	resetConfig()

	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoad_InvalidLatitude(t *testing.T) {
	path := writeTempConfig(t, `device:
  latitude: 91.0
  longitude: 0.0
`)
	resetConfig()

	_, err := Load(path)
	if err == nil {
		t.Error("Expected validation error for latitude 91, got nil")
	}
}

func TestGet(t *testing.T) {
	path := writeTempConfig(t, `device:
  latitude: 1.0
  longitude: 2.0
`)
	resetConfig()

	_, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}

	if cfg.Device.Longitude != 2.0 {
		t.Errorf("Expected longitude 2.0, got %v", cfg.Device.Longitude)
	}
}

func TestGet_Panic(t *testing.T) {
	resetConfig()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected Get() to panic when config not loaded")
		}
	}()

	Get()
}

func validConfig() *Config {
	c := &Config{}
	c.setDefaults()
	c.Device.Latitude = 59.3
	c.Device.Longitude = 18.0
	return c
}

func TestValidate(t *testing.T) {
	os.Unsetenv("REDIS_ADDR")

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown device source",
			modify:  func(c *Config) { c.Device.Source = "gps" },
			wantErr: true,
		},
		{
			name:    "unknown permission",
			modify:  func(c *Config) { c.Device.Permission = "maybe" },
			wantErr: true,
		},
		{
			name:    "denied permission is valid",
			modify:  func(c *Config) { c.Device.Permission = "denied" },
			wantErr: false,
		},
		{
			name:    "longitude out of range",
			modify:  func(c *Config) { c.Device.Longitude = -181 },
			wantErr: true,
		},
		{
			name:    "heading out of range",
			modify:  func(c *Config) { c.Device.Heading = 360 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.Forecast.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "bad base url",
			modify:  func(c *Config) { c.Forecast.BaseURL = "not a url" },
			wantErr: true,
		},
		{
			name:    "unsupported language",
			modify:  func(c *Config) { c.Display.Language = "de" },
			wantErr: true,
		},
		{
			name:    "redis source without address",
			modify:  func(c *Config) { c.Device.Source = "redis" },
			wantErr: true,
		},
		{
			name: "redis source with address",
			modify: func(c *Config) {
				c.Device.Source = "redis"
				c.Redis.Addr = "localhost:6379"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.modify(c)
			err := c.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
