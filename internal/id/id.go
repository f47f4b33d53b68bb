package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewAccountNumber returns a short account number like "3f2a9c41"
// (the first group of a v4 UUID).
func NewAccountNumber() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// NewTransactionID returns a full UUID string for a transaction record.
func NewTransactionID() string {
	return uuid.NewString()
}
