package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Bank")
	cfg.Savings.WithdrawalLimit = 6
	cfg.Savings.InterestRate = 0.015

	path := filepath.Join(t.TempDir(), "teller.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, cfg.Bank.CurrencySymbol, got.Bank.CurrencySymbol)
	assert.Equal(t, 6, got.Savings.WithdrawalLimit)
	assert.InDelta(t, 0.015, got.Savings.InterestRate, 0.0001)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Universal Banking")

	assert.Equal(t, "Universal Banking", cfg.Bank.Name)
	assert.Equal(t, "£", cfg.Bank.CurrencySymbol)
	assert.Equal(t, 3, cfg.Savings.WithdrawalLimit)
	assert.InDelta(t, 0.01, cfg.Savings.InterestRate, 0.0001)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Bank")
	path := filepath.Join(t.TempDir(), "teller.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Bank")
	assert.Contains(t, contents, "withdrawal_limit: 3")
	assert.Contains(t, contents, "interest_rate: 0.01")
}
