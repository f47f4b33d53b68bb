package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/ledger"
	"github.com/teller-dev/teller/internal/model"
	"github.com/teller-dev/teller/internal/statement"
	"github.com/teller-dev/teller/internal/ui/prompts"
	"github.com/teller-dev/teller/internal/ui/views"
)

const exitLabel = "Exit"

// session holds the state one interactive run operates on: a single
// in-memory ledger plus the loaded configuration.
type session struct {
	ledger *ledger.Ledger
	cfg    *config.Config
}

// action is one menu entry: its label and the handler behind it. Each
// handler gathers input, calls exactly one ledger operation, and renders
// the result.
type action struct {
	label string
	run   func(s *session) error
}

// menuActions is the dispatch table the session loop selects from, in
// menu order.
func menuActions() []action {
	return []action{
		{"Create account", (*session).createAccount},
		{"Deposit", (*session).deposit},
		{"Withdraw", (*session).withdraw},
		{"Transfer between accounts", (*session).transfer},
		{"Account summary", (*session).summary},
		{"Transaction history", (*session).history},
		{"List all accounts", (*session).listAccounts},
		{"Apply interest to savings accounts", (*session).accrueAll},
		{"Bank statistics", (*session).statistics},
		{"Export statement", (*session).exportStatement},
	}
}

// RunSession runs the interactive menu loop until the user exits. Ledger
// errors are rendered and the loop re-prompts; only input cancellation
// (ctrl-c) ends the session early.
func RunSession(cfg *config.Config) error {
	s := &session{ledger: ledger.New(), cfg: cfg}

	pterm.DefaultHeader.WithFullWidth().Println(cfg.Bank.Name)

	actions := menuActions()
	byLabel := make(map[string]func(*session) error, len(actions))
	labels := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		byLabel[a.label] = a.run
		labels = append(labels, a.label)
	}
	labels = append(labels, exitLabel)

	for {
		choice, err := prompts.Select("Main menu", labels)
		if err != nil {
			return nil // input cancelled, treat as exit
		}
		if choice == exitLabel {
			ok, err := prompts.Confirm("Exit the session? In-memory accounts will be lost.", true)
			if err != nil || ok {
				pterm.Info.Println("Goodbye")
				return nil
			}
			continue
		}
		if err := byLabel[choice](s); err != nil {
			views.RenderError(err)
		}
	}
}

func (s *session) createAccount() error {
	kind, err := prompts.AccountKind()
	if err != nil {
		return err
	}
	owner, err := prompts.OwnerName()
	if err != nil {
		return err
	}
	initial, err := prompts.Amount("Initial deposit:", true)
	if err != nil {
		return err
	}

	params := ledger.CreateParams{
		Kind:           kind,
		OwnerName:      owner,
		InitialDeposit: initial,
	}
	if kind == model.KindSavings {
		limit, err := prompts.WithdrawalLimit(s.cfg.Savings.WithdrawalLimit)
		if err != nil {
			return err
		}
		rate, err := prompts.InterestRate(decimal.NewFromFloat(s.cfg.Savings.InterestRate))
		if err != nil {
			return err
		}
		params.WithdrawalLimit = limit
		params.InterestRate = rate
	}

	number, err := s.ledger.Create(params)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Opened %s account %s for %s\n", kind, number, owner)
	return nil
}

func (s *session) deposit() error {
	number, err := prompts.AccountNumber("Account number:")
	if err != nil {
		return err
	}
	amount, err := prompts.Amount("Deposit amount:", false)
	if err != nil {
		return err
	}

	balance, err := s.ledger.Deposit(number, amount)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Deposited %s%s, new balance %s%s\n",
		s.cfg.Bank.CurrencySymbol, amount.StringFixed(2),
		s.cfg.Bank.CurrencySymbol, balance.StringFixed(2))
	return nil
}

func (s *session) withdraw() error {
	number, err := prompts.AccountNumber("Account number:")
	if err != nil {
		return err
	}
	amount, err := prompts.Amount("Withdrawal amount:", false)
	if err != nil {
		return err
	}

	balance, err := s.ledger.Withdraw(number, amount)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Withdrew %s%s, new balance %s%s\n",
		s.cfg.Bank.CurrencySymbol, amount.StringFixed(2),
		s.cfg.Bank.CurrencySymbol, balance.StringFixed(2))
	return nil
}

func (s *session) transfer() error {
	source, err := prompts.AccountNumber("Source account number:")
	if err != nil {
		return err
	}
	dest, err := prompts.AccountNumber("Destination account number:")
	if err != nil {
		return err
	}
	amount, err := prompts.Amount("Transfer amount:", false)
	if err != nil {
		return err
	}

	res, err := s.ledger.Transfer(source, dest, amount)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Transferred %s%s: %s now holds %s%s, %s now holds %s%s\n",
		s.cfg.Bank.CurrencySymbol, amount.StringFixed(2),
		source, s.cfg.Bank.CurrencySymbol, res.SourceBalance.StringFixed(2),
		dest, s.cfg.Bank.CurrencySymbol, res.DestBalance.StringFixed(2))
	return nil
}

func (s *session) summary() error {
	number, err := prompts.AccountNumber("Account number:")
	if err != nil {
		return err
	}

	sum, err := s.ledger.Summary(number)
	if err != nil {
		return err
	}
	return views.RenderSummary(sum, s.cfg.Bank.CurrencySymbol)
}

func (s *session) history() error {
	number, err := prompts.AccountNumber("Account number:")
	if err != nil {
		return err
	}

	seq, err := s.ledger.History(number)
	if err != nil {
		return err
	}
	return views.RenderHistory(number, seq, s.cfg.Bank.CurrencySymbol)
}

func (s *session) listAccounts() error {
	return views.RenderAccounts(s.ledger.Accounts(), s.cfg.Bank.CurrencySymbol)
}

func (s *session) accrueAll() error {
	total := s.ledger.AccrueAllInterest()
	pterm.Success.Printf("Applied %s%s interest across all savings accounts\n",
		s.cfg.Bank.CurrencySymbol, total.StringFixed(2))
	return nil
}

func (s *session) statistics() error {
	return views.RenderStatistics(s.ledger.Statistics(), s.cfg.Bank.CurrencySymbol)
}

func (s *session) exportStatement() error {
	number, err := prompts.AccountNumber("Account number:")
	if err != nil {
		return err
	}

	seq, err := s.ledger.History(number)
	if err != nil {
		return err
	}

	path, err := prompts.Path("Statement file path:", fmt.Sprintf("statement-%s.csv", number))
	if err != nil {
		return err
	}
	if err := statement.Export(path, seq); err != nil {
		return err
	}
	pterm.Success.Printf("Statement written to %s\n", path)
	return nil
}
