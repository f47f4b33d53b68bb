// Package prompts wraps the interactive inputs the session needs: menu
// selection, typed amounts, and account details. Every prompt validates
// before returning, so callers receive usable values or a cancel error.
package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// Select prompts for one choice out of options.
func Select(title string, options []string) (string, error) {
	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}

// AccountKind prompts for a checking/savings choice.
func AccountKind() (model.AccountKind, error) {
	selected, err := Select("Account kind:", []string{
		string(model.KindChecking),
		string(model.KindSavings),
	})
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return model.AccountKind(selected), nil
}

// OwnerName prompts for the account holder's name.
func OwnerName() (string, error) {
	var name string
	err := huh.NewInput().
		Title("Account holder's name:").
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		}).
		Value(&name).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(name), nil
}

// Amount prompts for a monetary amount. Zero is accepted only when
// allowZero is set (initial deposits); negative amounts never are.
func Amount(title string, allowZero bool) (decimal.Decimal, error) {
	var raw string
	err := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			d, err := decimal.NewFromString(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("enter a number like 25.00")
			}
			if d.IsNegative() || (!allowZero && d.IsZero()) {
				return fmt.Errorf("amount must be positive")
			}
			return nil
		}).
		Value(&raw).
		Run()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("input cancelled: %w", err)
	}
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// AccountNumber prompts for an account number.
func AccountNumber(title string) (string, error) {
	var number string
	err := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("account number is required")
			}
			return nil
		}).
		Value(&number).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(number), nil
}

// WithdrawalLimit prompts for a savings withdrawal allowance per cycle,
// defaulting to def when the user presses enter.
func WithdrawalLimit(def int) (int, error) {
	var raw string
	err := huh.NewInput().
		Title("Withdrawals allowed per cycle:").
		Placeholder(strconv.Itoa(def)).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 1 {
				return fmt.Errorf("enter a positive whole number")
			}
			return nil
		}).
		Value(&raw).
		Run()
	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

// InterestRate prompts for a per-cycle interest fraction, defaulting to
// def when the user presses enter.
func InterestRate(def decimal.Decimal) (decimal.Decimal, error) {
	var raw string
	err := huh.NewInput().
		Title("Interest rate per cycle (e.g. 0.01 for 1%):").
		Placeholder(def.String()).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			d, err := decimal.NewFromString(strings.TrimSpace(s))
			if err != nil || d.IsNegative() {
				return fmt.Errorf("enter a non-negative fraction like 0.015")
			}
			return nil
		}).
		Value(&raw).
		Run()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("input cancelled: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// Path prompts for a file path, defaulting to def when the user presses enter.
func Path(title, def string) (string, error) {
	var path string
	err := huh.NewInput().
		Title(title).
		Placeholder(def).
		Value(&path).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	if strings.TrimSpace(path) == "" {
		return def, nil
	}
	return strings.TrimSpace(path), nil
}

// Confirm prompts for a yes/no answer.
func Confirm(title string, def bool) (bool, error) {
	confirm := def
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()
	return confirm, err
}
