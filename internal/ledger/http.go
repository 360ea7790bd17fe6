package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPLedger talks to the external token service over its JSON API.
// The service authenticates the backend as the treasury account, so the
// "sender" of Transfer/TransferFrom is implicit, mirroring how a contract
// is the msg.sender of its own token calls.
type HTTPLedger struct {
	endpoint string
	treasury string
	client   *http.Client
}

// NewHTTPLedger creates a client for the token service at cfg.Endpoint
func NewHTTPLedger(cfg Config) (*HTTPLedger, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("ledger: http endpoint is required")
	}
	return &HTTPLedger{
		endpoint: cfg.Endpoint,
		treasury: cfg.TreasuryAddress,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type ledgerRequest struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Owner   string `json:"owner,omitempty"`
	Spender string `json:"spender,omitempty"`
	Amount  int64  `json:"amount,omitempty"`
}

type ledgerResponse struct {
	Amount int64  `json:"amount"`
	Error  string `json:"error"`
}

func (l *HTTPLedger) call(ctx context.Context, path string, req ledgerRequest) (*ledgerResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := l.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ledger: token service unreachable: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var out ledgerResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("ledger: malformed token service response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		// Карта ошибок токен-сервиса на sentinel-ошибки клиента:
		// ядро должно видеть их unmodified.
		switch out.Error {
		case "insufficient balance":
			return nil, ErrInsufficientBalance
		case "insufficient allowance":
			return nil, ErrInsufficientAllowance
		default:
			return nil, fmt.Errorf("ledger: token service error: %s", out.Error)
		}
	}

	return &out, nil
}

func (l *HTTPLedger) BalanceOf(ctx context.Context, address string) (int64, error) {
	out, err := l.call(ctx, "/balance", ledgerRequest{Owner: address})
	if err != nil {
		return 0, err
	}
	return out.Amount, nil
}

func (l *HTTPLedger) Transfer(ctx context.Context, to string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	_, err := l.call(ctx, "/transfer", ledgerRequest{From: l.treasury, To: to, Amount: amount})
	return err
}

func (l *HTTPLedger) TransferFrom(ctx context.Context, from, to string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	_, err := l.call(ctx, "/transfer-from", ledgerRequest{From: from, To: to, Spender: l.treasury, Amount: amount})
	return err
}

func (l *HTTPLedger) Approve(ctx context.Context, owner, spender string, amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	_, err := l.call(ctx, "/approve", ledgerRequest{Owner: owner, Spender: spender, Amount: amount})
	return err
}

func (l *HTTPLedger) Allowance(ctx context.Context, owner, spender string) (int64, error) {
	out, err := l.call(ctx, "/allowance", ledgerRequest{Owner: owner, Spender: spender})
	if err != nil {
		return 0, err
	}
	return out.Amount, nil
}

func (l *HTTPLedger) Mint(ctx context.Context, to string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	_, err := l.call(ctx, "/mint", ledgerRequest{To: to, Amount: amount})
	return err
}
