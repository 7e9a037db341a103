// Package channel represents the payment channel families a transaction may
// use as a bit mask, combinable by bitwise OR.
package channel

import (
	"strings"

	"github.com/payswitch-intl/payswitch-go/codes"
)

// Channel is a bit mask of payment channel families.
type Channel uint32

const (
	// OnlineBank - online bank transfer
	OnlineBank Channel = 1
	// OTCBank - over the counter bank payment
	OTCBank Channel = 2
	// OTCNonBank - over the counter non-bank outlets
	OTCNonBank Channel = 4
	// PayPal - paypal wallet
	PayPal Channel = 32
	// CreditCard - credit card billing
	CreditCard Channel = 64
	// GCash - gcash mobile wallet
	GCash Channel = 128
	// IntlOTC - international over the counter outlets
	IntlOTC Channel = 256
)

// names in ascending bit order
var names = []struct {
	ch   Channel
	name string
}{
	{OnlineBank, "online_bank"},
	{OTCBank, "otc_bank"},
	{OTCNonBank, "otc_non_bank"},
	{PayPal, "paypal"},
	{CreditCard, "credit_card"},
	{GCash, "gcash"},
	{IntlOTC, "intl_otc"},
}

// All is the union of every defined channel bit.
const All = OnlineBank | OTCBank | OTCNonBank | PayPal | CreditCard | GCash | IntlOTC

// Valid reports whether c is a non-empty subset of the defined channel bits.
func Valid(c Channel) bool {
	return c != 0 && c&^All == 0
}

// Filter validates a caller-supplied channel mask, failing with an
// InvalidChannel-kinded error when c carries undefined bits.
func Filter(c Channel) (Channel, error) {
	if !Valid(c) {
		return 0, codes.Errorf(codes.InvalidChannel, "undefined payment channel bits in mask %d", uint32(c))
	}
	return c, nil
}

// Has reports whether every bit of member is set in c.
func (c Channel) Has(member Channel) bool {
	return c&member == member
}

// String returns the + joined names of the set bits.
func (c Channel) String() string {
	var set []string
	for _, n := range names {
		if c.Has(n.ch) {
			set = append(set, n.name)
		}
	}
	return strings.Join(set, "+")
}

// MarshalText implements encoding.TextMarshaler
func (c Channel) MarshalText() ([]byte, error) {
	if _, err := Filter(c); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Channel) UnmarshalText(text []byte) error {
	var mask Channel
	for _, part := range strings.Split(string(text), "+") {
		found := false
		for _, n := range names {
			if n.name == strings.TrimSpace(part) {
				mask |= n.ch
				found = true
				break
			}
		}
		if !found {
			return codes.Errorf(codes.InvalidChannel, "unknown payment channel %q", part)
		}
	}
	*c = mask
	return nil
}
