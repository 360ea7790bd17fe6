package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTreasury = "0x00000000000000000000000000000000f407d007"

func newTestLedger() *MemoryLedger {
	return NewMemoryLedger(Config{Type: "memory", TreasuryAddress: testTreasury})
}

func TestMemoryLedger_MintAndBalance(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	require.NoError(t, l.Mint(ctx, "0xaaaa000000000000000000000000000000000001", 500))

	balance, err := l.BalanceOf(ctx, "0xaaaa000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	// Неизвестный адрес - нулевой баланс, не ошибка
	balance, err = l.BalanceOf(ctx, "0xdead000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestMemoryLedger_TransferFromTreasury(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	require.NoError(t, l.Mint(ctx, testTreasury, 1000))
	require.NoError(t, l.Transfer(ctx, "0xaaaa000000000000000000000000000000000001", 300))

	treasuryBal, _ := l.BalanceOf(ctx, testTreasury)
	assert.Equal(t, int64(700), treasuryBal)

	recipientBal, _ := l.BalanceOf(ctx, "0xaaaa000000000000000000000000000000000001")
	assert.Equal(t, int64(300), recipientBal)

	err := l.Transfer(ctx, "0xaaaa000000000000000000000000000000000001", 10_000)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestMemoryLedger_TransferFromChecksAllowanceBeforeBalance(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()
	owner := "0xaaaa000000000000000000000000000000000001"

	// Без approve даже с балансом - отказ по allowance
	require.NoError(t, l.Mint(ctx, owner, 1000))
	err := l.TransferFrom(ctx, owner, testTreasury, 100)
	assert.ErrorIs(t, err, ErrInsufficientAllowance)

	// С approve, но без баланса - отказ по балансу
	broke := "0xbbbb000000000000000000000000000000000002"
	require.NoError(t, l.Approve(ctx, broke, testTreasury, 100))
	err = l.TransferFrom(ctx, broke, testTreasury, 100)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestMemoryLedger_TransferFromSpendsAllowance(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()
	owner := "0xaaaa000000000000000000000000000000000001"

	require.NoError(t, l.Mint(ctx, owner, 1000))
	require.NoError(t, l.Approve(ctx, owner, testTreasury, 600))

	require.NoError(t, l.TransferFrom(ctx, owner, testTreasury, 400))

	remaining, err := l.Allowance(ctx, owner, testTreasury)
	require.NoError(t, err)
	assert.Equal(t, int64(200), remaining)

	// Второе списание упирается в остаток allowance
	err = l.TransferFrom(ctx, owner, testTreasury, 400)
	assert.ErrorIs(t, err, ErrInsufficientAllowance)

	ownerBal, _ := l.BalanceOf(ctx, owner)
	treasuryBal, _ := l.BalanceOf(ctx, testTreasury)
	assert.Equal(t, int64(600), ownerBal)
	assert.Equal(t, int64(400), treasuryBal)
}

func TestMemoryLedger_InvalidAmounts(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	assert.ErrorIs(t, l.Mint(ctx, "0xaaaa000000000000000000000000000000000001", 0), ErrInvalidAmount)
	assert.ErrorIs(t, l.Transfer(ctx, "0xaaaa000000000000000000000000000000000001", -5), ErrInvalidAmount)
	assert.ErrorIs(t, l.TransferFrom(ctx, "0xa", "0xb", 0), ErrInvalidAmount)
	assert.ErrorIs(t, l.Approve(ctx, "0xa", "0xb", -1), ErrInvalidAmount)

	// Нулевой approve допустим: это отзыв разрешения
	assert.NoError(t, l.Approve(ctx, "0xa", "0xb", 0))
}
