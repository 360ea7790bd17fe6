package ledger

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors surfaced unmodified to the escrow core. The core maps them
// to its own failure taxonomy but never retries or reinterprets them.
var (
	ErrInsufficientBalance   = errors.New("ledger: insufficient balance")
	ErrInsufficientAllowance = errors.New("ledger: insufficient allowance")
	ErrInvalidAmount         = errors.New("ledger: amount must be positive")
)

// Client is the external fungible-token ledger consumed by the core.
// All amounts are int64 smallest token units; the 18-decimal fixed-point
// convention is a display concern of the token service, not of this backend.
//
// Transfer moves tokens out of the configured treasury account (the backend
// acts as the token holder for escrowed funds). TransferFrom spends the
// allowance a holder granted to the treasury. Mint exists for the faucet only.
type Client interface {
	BalanceOf(ctx context.Context, address string) (int64, error)
	Transfer(ctx context.Context, to string, amount int64) error
	TransferFrom(ctx context.Context, from, to string, amount int64) error
	Approve(ctx context.Context, owner, spender string, amount int64) error
	Allowance(ctx context.Context, owner, spender string) (int64, error)
	Mint(ctx context.Context, to string, amount int64) error
}

// Config holds ledger client configuration
type Config struct {
	Type            string // memory, http
	Endpoint        string // for http
	TreasuryAddress string // account the backend escrows under
}

// NewLedger creates a ledger client based on configuration
func NewLedger(cfg Config) (Client, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryLedger(cfg), nil
	case "http":
		return NewHTTPLedger(cfg)
	default:
		return nil, fmt.Errorf("unsupported ledger type: %s", cfg.Type)
	}
}
