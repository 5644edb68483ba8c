package core

import (
	"context"
	"time"
)

// OperationType journaled operation kind
type OperationType string

const (
	// OperationDeposit collateral deposit
	OperationDeposit OperationType = "deposit"
	// OperationMint debt mint
	OperationMint OperationType = "mint"
	// OperationRedeem collateral redemption
	OperationRedeem OperationType = "redeem"
	// OperationBurn debt burn
	OperationBurn OperationType = "burn"
	// OperationLiquidate liquidation
	OperationLiquidate OperationType = "liquidate"
)

// JournalEntry one committed operation. Amounts are stored as decimal
// strings of the raw fixed-point quantity.
type JournalEntry struct {
	ID             int64         `db:"id" json:"id,omitempty"`
	TraceID        string        `db:"trace_id" json:"trace_id"`
	Type           OperationType `db:"type" json:"type"`
	UserID         string        `db:"user_id" json:"user_id"`
	AssetID        string        `db:"asset_id" json:"asset_id,omitempty"`
	Amount         string        `db:"amount" json:"amount"`
	CounterpartyID string        `db:"counterparty_id" json:"counterparty_id,omitempty"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
}

// IJournalStore append-only audit trail of committed operations
type IJournalStore interface {
	Record(ctx context.Context, entry *JournalEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*JournalEntry, error)
}
