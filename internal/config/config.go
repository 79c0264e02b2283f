package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultForecastBaseURL = "https://opendata-download-metfcst.smhi.se"
	DefaultFetchTimeout    = 3 * time.Second
	DefaultRedrawRate      = 4.0
)

// Device describes where the location fix and compass heading come from
type Device struct {
	Source     string  `yaml:"source" validate:"oneof=static redis"`
	Permission string  `yaml:"permission" validate:"oneof=granted denied undetermined"`
	Latitude   float64 `yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64 `yaml:"longitude" validate:"gte=-180,lte=180"`
	Heading    float64 `yaml:"heading" validate:"gte=0,lt=360"`
}

var (
	instance *Config
	once     sync.Once
	validate = validator.New()
)

type Config struct {
	Forecast struct {
		BaseURL string        `yaml:"base_url" validate:"required,url"`
		Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	} `yaml:"forecast"`
	Device  Device `yaml:"device"`
	Display struct {
		Language   string  `yaml:"language" validate:"oneof=en sv"`
		RedrawRate float64 `yaml:"redraw_rate" validate:"gt=0"`
	} `yaml:"display"`
	Redis struct {
		Addr           string `yaml:"addr"`
		Password       string `yaml:"password"`
		DB             int    `yaml:"db"`
		HeadingStream  string `yaml:"heading_stream"`
		PositionStream string `yaml:"position_stream"`
	} `yaml:"redis"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// Load reads and validates the config file once; later calls return the same instance
func Load(configPath string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		instance.setDefaults()

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file %s: %w", configPath, readErr)
			return
		}

		if parseErr := yaml.Unmarshal(data, instance); parseErr != nil {
			err = fmt.Errorf("failed to parse config: %w", parseErr)
			return
		}

		if validateErr := instance.validate(); validateErr != nil {
			err = validateErr
			return
		}
	})

	return instance, err
}

func Get() *Config {
	if instance == nil {
		panic("config not loaded - call config.Load() first")
	}
	return instance
}

func (c *Config) setDefaults() {
	c.Forecast.BaseURL = DefaultForecastBaseURL
	c.Forecast.Timeout = DefaultFetchTimeout
	c.Device.Source = "static"
	c.Device.Permission = "granted"
	c.Display.Language = "en"
	c.Display.RedrawRate = DefaultRedrawRate
	c.Redis.HeadingStream = "compass_heading"
	c.Redis.PositionStream = "device_position"
}

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Device.Source == "redis" && c.Redis.Addr == "" && os.Getenv("REDIS_ADDR") == "" {
		return fmt.Errorf("redis.addr is required when device.source is redis")
	}
	return nil
}
