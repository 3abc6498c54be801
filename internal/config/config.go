package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/venuebook/booking-engine/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig      `toml:"server"`
	Logs         LogsConfig        `toml:"logs"`
	Metrics      MetricsConfig     `toml:"metrics"`
	BookingStore IntegrationConfig `toml:"booking_store"`
	HallCatalog  IntegrationConfig `toml:"hall_catalog"`
	Pricing      PricingConfig     `toml:"pricing"`
	Calendar     CalendarConfig    `toml:"calendar"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// TimeoutDuration возвращает таймаут клиента как time.Duration
func (c IntegrationConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// PricingConfig параметры расчёта цены
type PricingConfig struct {
	TaxRateBasisPoints int64 `toml:"tax_rate_basis_points"`
	ServiceFeeRupees   int64 `toml:"service_fee_rupees"`
}

// CalendarConfig настройки календаря
type CalendarConfig struct {
	DisplayTimezone string `toml:"display_timezone"`
}

// Load загружает конфигурацию из TOML-файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-engine"
	}
	if c.BookingStore.Timeout == 0 {
		c.BookingStore.Timeout = 10
	}
	if c.HallCatalog.Timeout == 0 {
		c.HallCatalog.Timeout = 10
	}
	if c.Pricing.TaxRateBasisPoints == 0 {
		c.Pricing.TaxRateBasisPoints = domain.DefaultTaxRateBasisPoints
	}
	if c.Pricing.ServiceFeeRupees == 0 {
		c.Pricing.ServiceFeeRupees = domain.DefaultServiceFeePaise / 100
	}
	if c.Calendar.DisplayTimezone == "" {
		c.Calendar.DisplayTimezone = domain.DefaultDisplayTimezone
	}
}

func (c *Config) validate() error {
	if c.BookingStore.URL == "" {
		return fmt.Errorf("config: booking_store.url is required")
	}
	if c.HallCatalog.URL == "" {
		return fmt.Errorf("config: hall_catalog.url is required")
	}
	if c.Pricing.TaxRateBasisPoints < 0 {
		return fmt.Errorf("config: pricing.tax_rate_basis_points must not be negative")
	}
	if c.Pricing.ServiceFeeRupees < 0 {
		return fmt.Errorf("config: pricing.service_fee_rupees must not be negative")
	}
	if _, err := time.LoadLocation(c.Calendar.DisplayTimezone); err != nil {
		return fmt.Errorf("config: invalid calendar.display_timezone %q: %w", c.Calendar.DisplayTimezone, err)
	}
	return nil
}
