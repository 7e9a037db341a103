package payswitch

import (
	"context"

	"github.com/payswitch-intl/payswitch-go/payment"
)

// MockClient is a hand rolled Client double, set the fn fields to control
// each call
type MockClient struct {
	FnGetTxnToken  func(ctx context.Context, params payment.TokenParams) (*TokenResult, error)
	FnGetTxnStatus func(ctx context.Context, q *StatusQuery) (*TxnStatus, error)
	FnCancelTxn    func(ctx context.Context, q *CancelQuery) (*CancelResult, error)
}

// GetTxnToken implements Client
func (c *MockClient) GetTxnToken(ctx context.Context, params payment.TokenParams) (*TokenResult, error) {
	if c.FnGetTxnToken == nil {
		return &TokenResult{}, nil
	}
	return c.FnGetTxnToken(ctx, params)
}

// GetTxnStatus implements Client
func (c *MockClient) GetTxnStatus(ctx context.Context, q *StatusQuery) (*TxnStatus, error) {
	if c.FnGetTxnStatus == nil {
		return &TxnStatus{}, nil
	}
	return c.FnGetTxnStatus(ctx, q)
}

// CancelTxn implements Client
func (c *MockClient) CancelTxn(ctx context.Context, q *CancelQuery) (*CancelResult, error) {
	if c.FnCancelTxn == nil {
		return &CancelResult{}, nil
	}
	return c.FnCancelTxn(ctx, q)
}
