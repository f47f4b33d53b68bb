package statement

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-dev/teller/internal/model"
)

func sampleHistory() []model.Transaction {
	return []model.Transaction{
		{
			ID:               "a3b1c5d7-0000-0000-0000-000000000001",
			Kind:             model.TxDeposit,
			Amount:           decimal.RequireFromString("1000"),
			Timestamp:        time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			ResultingBalance: decimal.RequireFromString("1000"),
			Note:             "opening deposit",
		},
		{
			ID:               "a3b1c5d7-0000-0000-0000-000000000002",
			Kind:             model.TxTransferOut,
			Amount:           decimal.RequireFromString("49.99"),
			Timestamp:        time.Date(2026, 8, 2, 12, 30, 0, 0, time.UTC),
			ResultingBalance: decimal.RequireFromString("950.01"),
			CounterAccount:   "9f8e7d6c",
		},
	}
}

func TestWriteRead(t *testing.T) {
	history := sampleHistory()

	var buf bytes.Buffer
	err := Write(&buf, slices.Values(history))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, history[0].ID, got[0].ID)
	assert.Equal(t, model.TxTransferOut, got[1].Kind)
	assert.Equal(t, "9f8e7d6c", got[1].CounterAccount)
	assert.True(t, got[1].Amount.Equal(decimal.RequireFromString("49.99")))
	assert.True(t, got[1].ResultingBalance.Equal(decimal.RequireFromString("950.01")))
	assert.True(t, got[0].Timestamp.Equal(history[0].Timestamp))
}

func TestRead_Empty(t *testing.T) {
	txs, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestRead_BadRow(t *testing.T) {
	in := Header + "\nnot-enough-fields,2026-08-01T09:00:00Z,deposit\n"
	_, err := Read(strings.NewReader(in))
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	err := Export(path, slices.Values(sampleHistory()))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header))
	assert.Contains(t, string(data), "opening deposit")
}
