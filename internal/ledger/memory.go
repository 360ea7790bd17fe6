package ledger

import (
	"context"
	"sync"
)

// MemoryLedger is an in-process token ledger with ERC20 allowance semantics.
// Used for development, demos and the test suite; the production deployment
// points at the real token service via the http client.
type MemoryLedger struct {
	mu         sync.Mutex
	treasury   string
	balances   map[string]int64
	allowances map[string]map[string]int64 // owner -> spender -> amount
}

// NewMemoryLedger creates an empty in-memory ledger
func NewMemoryLedger(cfg Config) *MemoryLedger {
	return &MemoryLedger{
		treasury:   cfg.TreasuryAddress,
		balances:   make(map[string]int64),
		allowances: make(map[string]map[string]int64),
	}
}

func (l *MemoryLedger) BalanceOf(_ context.Context, address string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[address], nil
}

// Transfer moves tokens from the treasury account to the recipient.
func (l *MemoryLedger) Transfer(_ context.Context, to string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[l.treasury] < amount {
		return ErrInsufficientBalance
	}
	l.balances[l.treasury] -= amount
	l.balances[to] += amount
	return nil
}

// TransferFrom spends the allowance the owner granted to the treasury.
// Allowance is checked before balance, matching ERC20 revert ordering.
func (l *MemoryLedger) TransferFrom(_ context.Context, from, to string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	allowed := l.allowances[from][l.treasury]
	if allowed < amount {
		return ErrInsufficientAllowance
	}
	if l.balances[from] < amount {
		return ErrInsufficientBalance
	}

	l.allowances[from][l.treasury] = allowed - amount
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

func (l *MemoryLedger) Approve(_ context.Context, owner, spender string, amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[string]int64)
	}
	l.allowances[owner][spender] = amount
	return nil
}

func (l *MemoryLedger) Allowance(_ context.Context, owner, spender string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[owner][spender], nil
}

// Mint issues new tokens to an address. Only the faucet service calls this.
func (l *MemoryLedger) Mint(_ context.Context, to string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[to] += amount
	return nil
}
