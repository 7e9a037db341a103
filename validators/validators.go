// Package validators registers the custom govalidator tags used across the
// transaction parameter and billing structures.
package validators

import (
	"regexp"

	"github.com/asaskevich/govalidator"
	uuid "github.com/satori/go.uuid"
)

func init() {
	govalidator.TagMap["currency"] = govalidator.Validator(IsCurrencyCode)
	govalidator.TagMap["txnid"] = govalidator.Validator(IsTxnID)
	govalidator.TagMap["telephone"] = govalidator.Validator(IsTelephone)
	govalidator.TagMap["zip"] = govalidator.Validator(IsZipCode)
	govalidator.CustomTypeTagMap.Set("requiredUUID", govalidator.CustomTypeValidator(IsRequiredUUID))
}

const (
	currencyCode string = "^[A-Z]{3}$"
	txnID        string = "^[A-Za-z0-9][A-Za-z0-9._-]{0,39}$"
	telephone    string = "^\\+?[0-9 ()-]{6,20}$"
	zipCode      string = "^[A-Za-z0-9 -]{3,10}$"
)

var (
	rxCurrencyCode = regexp.MustCompile(currencyCode)
	rxTxnID        = regexp.MustCompile(txnID)
	rxTelephone    = regexp.MustCompile(telephone)
	rxZipCode      = regexp.MustCompile(zipCode)
)

// IsCurrencyCode returns true if the string str is an ISO-4217 style alpha
// currency code. Whether the gateway supports the currency is its own
// verdict, surfaced as a response code.
func IsCurrencyCode(str string) bool {
	return rxCurrencyCode.MatchString(str)
}

// IsTxnID returns true if the string str is an acceptable merchant
// transaction reference per the gateway's documented contract
func IsTxnID(str string) bool {
	return rxTxnID.MatchString(str)
}

// IsTelephone returns true if the string str looks like a dialable telephone number
func IsTelephone(str string) bool {
	return rxTelephone.MatchString(str)
}

// IsZipCode returns true if the string str is a plausible postal code
func IsZipCode(str string) bool {
	return rxZipCode.MatchString(str)
}

// IsRequiredUUID checks if the uuid is present
func IsRequiredUUID(i interface{}, context interface{}) bool {
	switch v := i.(type) { // you can type switch on the context interface being validated
	case uuid.UUID:
		return !uuid.Equal(v, uuid.Nil)
	default:
		panic("invalid type recieved in IsRequiredUUID")
	}
}

// IsUUID checks if the string is a valid UUID
func IsUUID(v string) bool {
	_, err := uuid.FromString(v)
	return err == nil
}
