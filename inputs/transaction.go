package inputs

import (
	"context"
	"fmt"

	"github.com/payswitch-intl/payswitch-go/validators"
	"github.com/shopspring/decimal"
)

// TxnID - a merchant transaction reference input
type TxnID struct {
	raw string
}

// String - get the string representation of the transaction id
func (t *TxnID) String() string {
	return t.raw
}

// Decode - implementation of decodable interface
func (t *TxnID) Decode(ctx context.Context, v []byte) error {
	if len(v) == 0 {
		return fmt.Errorf("transaction id must not be empty")
	}
	t.raw = string(v)
	return nil
}

// Validate - implementation of validatable interface
func (t *TxnID) Validate(ctx context.Context) error {
	if !validators.IsTxnID(t.raw) {
		return fmt.Errorf("transaction id %q does not match the documented format", t.raw)
	}
	return nil
}

// Amount - a positive decimal transaction amount input
type Amount struct {
	amount decimal.Decimal
}

// Decimal - get the decimal representation of the amount
func (a *Amount) Decimal() decimal.Decimal {
	return a.amount
}

// Decode - implementation of decodable interface
func (a *Amount) Decode(ctx context.Context, v []byte) error {
	amount, err := decimal.NewFromString(string(v))
	if err != nil {
		return fmt.Errorf("amount %q is not a decimal: %w", string(v), err)
	}
	a.amount = amount
	return nil
}

// Validate - implementation of validatable interface
func (a *Amount) Validate(ctx context.Context) error {
	if !a.amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", a.amount)
	}
	return nil
}
