// Package statement exports an account's transaction history as a CSV
// report. An exported statement is never read back into the ledger; the
// reader exists for inspecting previously written files.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// Header is the CSV header for an exported statement.
const Header = "transaction_id,timestamp,kind,amount,resulting_balance,counter_account,note"

const (
	numFields  = 7
	colID      = 0
	colTime    = 1
	colKind    = 2
	colAmount  = 3
	colBalance = 4
	colCounter = 5
	colNote    = 6
)

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = tx.ID
	row[colTime] = tx.Timestamp.Format(time.RFC3339)
	row[colKind] = string(tx.Kind)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colBalance] = tx.ResultingBalance.StringFixed(2)
	row[colCounter] = tx.CounterAccount
	row[colNote] = tx.Note
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing resulting_balance %q: %w", record[colBalance], err)
	}

	return model.Transaction{
		ID:               record[colID],
		Kind:             model.TransactionKind(record[colKind]),
		Amount:           amount,
		Timestamp:        ts,
		ResultingBalance: balance,
		CounterAccount:   record[colCounter],
		Note:             record[colNote],
	}, nil
}

// Write writes a statement (header plus one row per transaction) to w.
func Write(w io.Writer, history iter.Seq[model.Transaction]) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 1
	for tx := range history {
		row++
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}
	return cw.Error()
}

// Read reads all transactions from a statement CSV.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Export writes a statement file at path, replacing any existing file.
func Export(path string, history iter.Seq[model.Transaction]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating statement file: %w", err)
	}
	defer f.Close()

	if err := Write(f, history); err != nil {
		return fmt.Errorf("writing statement %s: %w", path, err)
	}
	return nil
}
