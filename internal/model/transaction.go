package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "DEPOSIT"
	TransactionWithdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is an append-only ledger entry recording a single
// balance-affecting event. Entries are never updated or deleted.
type Transaction struct {
	ID           int64           `json:"id"`
	Reference    uuid.UUID       `json:"reference"`
	UserID       int64           `json:"-"`
	AccountID    int64           `json:"accountId"`
	Kind         TransactionKind `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`

	// Filled by the history query for display.
	AccountType   AccountType `json:"accountType,omitempty"`
	AccountNumber string      `json:"accountNumber,omitempty"`
}
