// Package views renders ledger read models to the terminal.
package views

import (
	"iter"
	"strconv"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// RenderError prints a recoverable operation failure. The session keeps
// running; nothing in the ledger changed.
func RenderError(err error) {
	pterm.Error.Println(capitalize(err.Error()))
}

// RenderAccounts prints the account list table.
func RenderAccounts(accounts []model.AccountSummary, symbol string) error {
	if len(accounts) == 0 {
		pterm.Info.Println("No accounts yet")
		return nil
	}

	tableData := pterm.TableData{{"Number", "Kind", "Owner", "Balance"}}
	for _, a := range accounts {
		tableData = append(tableData, []string{
			a.Number,
			string(a.Kind),
			a.OwnerName,
			money(a.Balance, symbol),
		})
	}

	pterm.DefaultSection.Println("Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}

// RenderSummary prints one account's snapshot. Savings accounts get the
// extra rate and allowance rows.
func RenderSummary(s model.AccountSummary, symbol string) error {
	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Number", s.Number},
		{"Kind", string(s.Kind)},
		{"Owner", s.OwnerName},
		{"Balance", money(s.Balance, symbol)},
		{"Created", s.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Transactions", strconv.Itoa(s.TransactionCount)},
	}
	if s.Kind == model.KindSavings {
		tableData = append(tableData,
			[]string{"Interest rate", percent(*s.InterestRate)},
			[]string{"Withdrawal limit", strconv.Itoa(*s.WithdrawalLimit)},
			[]string{"Withdrawals remaining", strconv.Itoa(*s.WithdrawalsRemaining)},
		)
	}

	pterm.DefaultSection.Println("Account Summary")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderHistory prints an account's transaction log in insertion order.
func RenderHistory(number string, history iter.Seq[model.Transaction], symbol string) error {
	tableData := pterm.TableData{{"Time", "Kind", "Amount", "Balance", "Counter", "Note"}}
	count := 0
	for tx := range history {
		count++
		tableData = append(tableData, []string{
			tx.Timestamp.Format("2006-01-02 15:04:05"),
			string(tx.Kind),
			money(tx.Amount, symbol),
			money(tx.ResultingBalance, symbol),
			tx.CounterAccount,
			tx.Note,
		})
	}
	if count == 0 {
		pterm.Info.Println("No transactions to display")
		return nil
	}

	pterm.DefaultSection.Printf("Transaction History for %s\n", number)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", count)
	return nil
}

// RenderStatistics prints the whole-ledger aggregate.
func RenderStatistics(stats model.Statistics, symbol string) error {
	tableData := pterm.TableData{
		{"Metric", "Value"},
		{"Total accounts", strconv.Itoa(stats.TotalAccounts)},
		{"Checking accounts", strconv.Itoa(stats.CheckingAccounts)},
		{"Savings accounts", strconv.Itoa(stats.SavingsAccounts)},
		{"Total balance", money(stats.TotalBalance, symbol)},
		{"Checking balance", money(stats.CheckingBalance, symbol)},
		{"Savings balance", money(stats.SavingsBalance, symbol)},
	}

	pterm.DefaultSection.Println("Bank Statistics")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func money(d decimal.Decimal, symbol string) string {
	return symbol + d.StringFixed(2)
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
