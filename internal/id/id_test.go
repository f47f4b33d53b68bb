package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountNumber(t *testing.T) {
	n := NewAccountNumber()
	require.Len(t, n, 8)
	for _, c := range n {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'), "unexpected character %q in %q", c, n)
	}
}

func TestNewAccountNumber_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		n := NewAccountNumber()
		assert.False(t, seen[n], "duplicate account number %q", n)
		seen[n] = true
	}
}

func TestNewTransactionID(t *testing.T) {
	_, err := uuid.Parse(NewTransactionID())
	require.NoError(t, err)
}
