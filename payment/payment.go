// Package payment holds the canonical transaction parameter set submitted to
// the gateway. A Request is an immutable value built via Builder, the digest
// is recomputed from the final field set on every serialization so it can
// never go stale.
package payment

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/payswitch-intl/payswitch-go/digest"
	_ "github.com/payswitch-intl/payswitch-go/validators" // registers the custom validator tags
	"github.com/shopspring/decimal"
)

// Request is the canonical parameter set for one transaction. Treat it as a
// value, it is safe to share across goroutines.
type Request struct {
	merchantID  string
	txnID       string
	amount      decimal.Decimal
	currency    string
	description string
	email       string

	// merchant passthrough values and processor preselection, optional
	param1 string
	param2 string
	procID string
}

// MerchantID - the gateway issued merchant id
func (r Request) MerchantID() string { return r.merchantID }

// TxnID - the merchant-unique transaction reference
func (r Request) TxnID() string { return r.txnID }

// Amount - the transaction amount
func (r Request) Amount() decimal.Decimal { return r.amount }

// Currency - the ISO-4217 alpha transaction currency
func (r Request) Currency() string { return r.currency }

// Description - the transaction description shown to the payer
func (r Request) Description() string { return r.description }

// Email - the payer contact email
func (r Request) Email() string { return r.email }

// ProcID - the pre-selected channel processor, empty unless set
func (r Request) ProcID() string { return r.procID }

// CanonicalString returns the signed fields joined in the exact order the
// gateway validates the digest over. The signer appends the secret key as the
// final field, reordering or omitting any field invalidates the signature
// server-side.
func (r Request) CanonicalString() string {
	return strings.Join([]string{
		r.merchantID,
		r.txnID,
		r.amount.StringFixed(2),
		r.currency,
		r.description,
		r.email,
	}, ":")
}

// field is one (key, value) pair of the documented query string order.
type field struct {
	key       string
	value     string
	omitEmpty bool
}

func (r Request) fields(dig string) []field {
	return []field{
		{"merchantid", r.merchantID, false},
		{"txnid", r.txnID, false},
		{"amount", r.amount.StringFixed(2), false},
		{"ccy", r.currency, false},
		{"description", r.description, false},
		{"email", r.email, false},
		{"digest", dig, false},
		{"param1", r.param1, true},
		{"param2", r.param2, true},
		{"procid", r.procID, true},
	}
}

// Values serializes the parameters plus the freshly computed digest into
// url.Values. Note that url.Values does not preserve the documented field
// order, use QueryString for the wire form.
func (r Request) Values(signer digest.Signer) (url.Values, error) {
	dig, err := signer.Sign(r.CanonicalString())
	if err != nil {
		return nil, fmt.Errorf("failed to sign canonical parameters: %w", err)
	}
	v := url.Values{}
	for _, f := range r.fields(dig) {
		if f.omitEmpty && f.value == "" {
			continue
		}
		v.Set(f.key, f.value)
	}
	return v, nil
}

// QueryString serializes the parameters, in the gateway's mandated field
// order, into a URL query string. The digest field is computed from the final
// parameter set at call time and is never omitted.
func (r Request) QueryString(signer digest.Signer) (string, error) {
	dig, err := signer.Sign(r.CanonicalString())
	if err != nil {
		return "", fmt.Errorf("failed to sign canonical parameters: %w", err)
	}
	var sb strings.Builder
	for _, f := range r.fields(dig) {
		if f.omitEmpty && f.value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(f.key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(f.value))
	}
	return sb.String(), nil
}

// TokenParams is the canonical parameter structure required by the token web
// service call, including the computed digest field.
type TokenParams struct {
	MerchantID  string `json:"merchantid"`
	TxnID       string `json:"txnid"`
	Amount      string `json:"amount"`
	Currency    string `json:"ccy"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Digest      string `json:"digest"`
	Param1      string `json:"param1,omitempty"`
	Param2      string `json:"param2,omitempty"`
	ProcID      string `json:"procid,omitempty"`
}

// TokenParams returns the token call parameter structure with a digest
// reflecting the current field set.
func (r Request) TokenParams(signer digest.Signer) (TokenParams, error) {
	dig, err := signer.Sign(r.CanonicalString())
	if err != nil {
		return TokenParams{}, fmt.Errorf("failed to sign canonical parameters: %w", err)
	}
	return TokenParams{
		MerchantID:  r.merchantID,
		TxnID:       r.txnID,
		Amount:      r.amount.StringFixed(2),
		Currency:    r.currency,
		Description: r.description,
		Email:       r.email,
		Digest:      dig,
		Param1:      r.param1,
		Param2:      r.param2,
		ProcID:      r.procID,
	}, nil
}

// shadow structure used for govalidator struct validation at Build time
type requestValidation struct {
	MerchantID  string `valid:"alphanum,required"`
	TxnID       string `valid:"txnid,required"`
	Currency    string `valid:"currency,required"`
	Description string `valid:"required"`
	Email       string `valid:"email,required"`
}

// Builder accumulates transaction parameters, merging by key with last write
// wins, and validates the complete set when Build is called.
type Builder struct {
	req  Request
	errs []error
}

// NewBuilder creates an empty parameter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// MerchantID sets the gateway issued merchant id
func (b *Builder) MerchantID(id string) *Builder {
	b.req.merchantID = id
	return b
}

// TxnID sets the merchant-unique transaction reference
func (b *Builder) TxnID(id string) *Builder {
	b.req.txnID = id
	return b
}

// Amount sets the transaction amount
func (b *Builder) Amount(amount decimal.Decimal) *Builder {
	b.req.amount = amount
	return b
}

// Currency sets the ISO-4217 alpha transaction currency
func (b *Builder) Currency(ccy string) *Builder {
	b.req.currency = strings.ToUpper(ccy)
	return b
}

// Description sets the transaction description
func (b *Builder) Description(desc string) *Builder {
	b.req.description = desc
	return b
}

// Email sets the payer contact email
func (b *Builder) Email(email string) *Builder {
	b.req.email = email
	return b
}

// Param1 sets the first merchant passthrough value
func (b *Builder) Param1(v string) *Builder {
	b.req.param1 = v
	return b
}

// Param2 sets the second merchant passthrough value
func (b *Builder) Param2(v string) *Builder {
	b.req.param2 = v
	return b
}

// ProcID pre-selects a channel processor
func (b *Builder) ProcID(v string) *Builder {
	b.req.procID = v
	return b
}

// SetParams merges raw key value parameters into the builder, last write
// wins. Presence of required fields is not checked here, that is deferred to
// Build.
func (b *Builder) SetParams(params map[string]string) *Builder {
	for k, v := range params {
		switch strings.ToLower(k) {
		case "merchantid":
			b.MerchantID(v)
		case "txnid":
			b.TxnID(v)
		case "amount":
			amount, err := decimal.NewFromString(v)
			if err != nil {
				b.errs = append(b.errs, fmt.Errorf("invalid amount %q: %w", v, err))
				continue
			}
			b.Amount(amount)
		case "ccy":
			b.Currency(v)
		case "description":
			b.Description(v)
		case "email":
			b.Email(v)
		case "param1":
			b.Param1(v)
		case "param2":
			b.Param2(v)
		case "procid":
			b.ProcID(v)
		default:
			b.errs = append(b.errs, fmt.Errorf("unknown transaction parameter %q", k))
		}
	}
	return b
}

// Build validates the accumulated parameters against the gateway's documented
// contract and returns the immutable request value.
func (b *Builder) Build() (Request, error) {
	if len(b.errs) > 0 {
		return Request{}, fmt.Errorf("invalid transaction parameters: %w", b.errs[0])
	}
	if !b.req.amount.IsPositive() {
		return Request{}, fmt.Errorf("transaction amount must be positive, got %s", b.req.amount)
	}
	ok, err := govalidator.ValidateStruct(requestValidation{
		MerchantID:  b.req.merchantID,
		TxnID:       b.req.txnID,
		Currency:    b.req.currency,
		Description: b.req.description,
		Email:       b.req.email,
	})
	if !ok {
		return Request{}, fmt.Errorf("invalid transaction parameters: %w", err)
	}
	return b.req, nil
}
