package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL      string        `json:"base_url" mapstructure:"base_url"`
	HTTPTimeout  time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
	LogLevel     string        `json:"log_level" mapstructure:"log_level"`
	Seed         int64         `json:"seed" mapstructure:"seed"`
	SeatCapacity int           `json:"seat_capacity" mapstructure:"seat_capacity"`
	Scheme       Scheme        `json:"scheme" mapstructure:"scheme"`
}

// Scheme holds the batch size of every step of the standard scheme.
type Scheme struct {
	Users      int `json:"users" mapstructure:"users"`
	Employees  int `json:"employees" mapstructure:"employees"`
	Planes     int `json:"planes" mapstructure:"planes"`
	Flights    int `json:"flights" mapstructure:"flights"`
	Passengers int `json:"passengers" mapstructure:"passengers"`
}

const (
	DefaultBaseURL      = "http://localhost:8080"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultSeatCapacity = 300
)

// SetDefaults registers every key so AutomaticEnv can override it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("http_timeout", d.HTTPTimeout)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("seat_capacity", d.SeatCapacity)
	v.SetDefault("scheme.users", d.Scheme.Users)
	v.SetDefault("scheme.employees", d.Scheme.Employees)
	v.SetDefault("scheme.planes", d.Scheme.Planes)
	v.SetDefault("scheme.flights", d.Scheme.Flights)
	v.SetDefault("scheme.passengers", d.Scheme.Passengers)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		BaseURL:      DefaultBaseURL,
		HTTPTimeout:  DefaultHTTPTimeout,
		LogLevel:     "info",
		SeatCapacity: DefaultSeatCapacity,
		Scheme: Scheme{
			Users:      3,
			Employees:  0,
			Planes:     2,
			Flights:    4,
			Passengers: 10,
		},
	}
}

// fileConfig is the on-disk layout; durations are written as "30s".
type fileConfig struct {
	BaseURL      string `yaml:"base_url"`
	HTTPTimeout  string `yaml:"http_timeout"`
	LogLevel     string `yaml:"log_level"`
	Seed         int64  `yaml:"seed"`
	SeatCapacity int    `yaml:"seat_capacity"`
	Scheme       struct {
		Users      int `yaml:"users"`
		Employees  int `yaml:"employees"`
		Planes     int `yaml:"planes"`
		Flights    int `yaml:"flights"`
		Passengers int `yaml:"passengers"`
	} `yaml:"scheme"`
}

// YAML renders c as an airgen.config.yaml document.
func (c *Config) YAML() ([]byte, error) {
	fc := fileConfig{
		BaseURL:      c.BaseURL,
		HTTPTimeout:  c.HTTPTimeout.String(),
		LogLevel:     c.LogLevel,
		Seed:         c.Seed,
		SeatCapacity: c.SeatCapacity,
	}
	fc.Scheme.Users = c.Scheme.Users
	fc.Scheme.Employees = c.Scheme.Employees
	fc.Scheme.Planes = c.Scheme.Planes
	fc.Scheme.Flights = c.Scheme.Flights
	fc.Scheme.Passengers = c.Scheme.Passengers

	return yaml.Marshal(fc)
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SeatCapacity == 0 {
		cfg.SeatCapacity = DefaultSeatCapacity
	}

	return &cfg, nil
}

// Validate reports every problem at once instead of stopping at the first.
func (c *Config) Validate() error {
	var result *multierror.Error

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		result = multierror.Append(result, fmt.Errorf("base_url must use http or https, got %q", c.BaseURL))
	} else if u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("base_url has no host: %q", c.BaseURL))
	}

	if c.HTTPTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout))
	}
	if c.SeatCapacity <= 0 {
		result = multierror.Append(result, fmt.Errorf("seat_capacity must be positive, got %d", c.SeatCapacity))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid log_level: %w", err))
	}

	counts := []struct {
		key   string
		value int
	}{
		{"scheme.users", c.Scheme.Users},
		{"scheme.employees", c.Scheme.Employees},
		{"scheme.planes", c.Scheme.Planes},
		{"scheme.flights", c.Scheme.Flights},
		{"scheme.passengers", c.Scheme.Passengers},
	}
	for _, count := range counts {
		if count.value < 0 {
			result = multierror.Append(result, fmt.Errorf("%s must not be negative, got %d", count.key, count.value))
		}
	}

	return result.ErrorOrNil()
}

// ApplyLogLevel configures the shared logrus logger.
func (c *Config) ApplyLogLevel() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}
