package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Bank    BankConfig    `yaml:"bank"`
	Savings SavingsConfig `yaml:"savings"`
}

// BankConfig identifies the bank the session presents.
type BankConfig struct {
	Name           string `yaml:"name"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

// SavingsConfig holds the defaults applied to new savings accounts.
type SavingsConfig struct {
	WithdrawalLimit int     `yaml:"withdrawal_limit"`
	InterestRate    float64 `yaml:"interest_rate"` // fraction per cycle, e.g. 0.01
}

// Load reads a teller.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new session.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name:           bankName,
			CurrencySymbol: "£",
		},
		Savings: SavingsConfig{
			WithdrawalLimit: 3,
			InterestRate:    0.01,
		},
	}
}
