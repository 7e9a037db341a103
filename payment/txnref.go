package payment

import (
	"crypto/sha256"
	"strings"

	"github.com/shengdoushi/base58"
	"github.com/shopspring/decimal"
)

// GenerateTxnRef generates a deterministic transaction reference id for
// idempotency. Replaying the same logical transaction always yields the same
// reference, letting the gateway deduplicate resubmissions.
func GenerateTxnRef(merchantID, email, description string, amount decimal.Decimal, currency string) string {
	key := strings.Join([]string{
		merchantID,
		email,
		description,
		amount.StringFixed(2),
		currency,
	}, "_")
	bytes := sha256.Sum256([]byte(key))
	refID := base58.Encode(bytes[:], base58.IPFSAlphabet)
	return refID
}
