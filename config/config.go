// Package config loads process configuration from the environment.
// Every field has a default so the binary runs with zero setup.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	CompanyName       string `env:"SOLAR_COMPANY_NAME" envDefault:"SunSpark Energy"`
	CompanyAddress    string `env:"SOLAR_COMPANY_ADDRESS" envDefault:"Plot 14, MIDC Industrial Area, Pune 411019"`
	CompanyEmail      string `env:"SOLAR_COMPANY_EMAIL" envDefault:"quotes@sunsparkenergy.in"`
	WhatsAppNumber    string `env:"SOLAR_WHATSAPP_NUMBER" envDefault:"919876543210"`
	QuoteValidityDays int    `env:"SOLAR_QUOTE_VALIDITY_DAYS" envDefault:"15"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
