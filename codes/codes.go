// Package codes maps the numeric response codes returned by the payment
// gateway onto a closed, typed error taxonomy.
package codes

import (
	"errors"
	"fmt"
	"strconv"
)

// Code is a numeric response code returned by the gateway.
type Code int

// Kind identifies one member of the closed error taxonomy. Callers
// discriminate gateway failures by kind, never by raw numeric code.
type Kind string

const (
	// InvalidPaymentGatewayID - the configured payment gateway id is not recognized
	InvalidPaymentGatewayID Kind = "invalid_payment_gateway_id"
	// IncorrectSecretKey - the digest was computed with the wrong secret key
	IncorrectSecretKey Kind = "incorrect_secret_key"
	// InvalidReferenceNumber - the merchant transaction reference is not recognized
	InvalidReferenceNumber Kind = "invalid_reference_number"
	// UnauthorizedAccess - the merchant is not authorized for this operation
	UnauthorizedAccess Kind = "unauthorized_access"
	// InvalidToken - the web service token is not valid
	InvalidToken Kind = "invalid_token"
	// CurrencyNotSupported - the gateway does not support the requested currency
	CurrencyNotSupported Kind = "currency_not_supported"
	// TransactionCancelled - the transaction was cancelled
	TransactionCancelled Kind = "transaction_cancelled"
	// InsufficientFunds - the payer has insufficient funds
	InsufficientFunds Kind = "insufficient_funds"
	// TransactionLimitExceeded - the transaction exceeds a gateway limit
	TransactionLimitExceeded Kind = "transaction_limit_exceeded"
	// ErrorInOperation - the gateway failed while processing the operation
	ErrorInOperation Kind = "error_in_operation"
	// InvalidParameters - the request parameters failed gateway validation
	InvalidParameters Kind = "invalid_parameters"
	// InvalidMerchantID - the web service merchant id is not recognized
	InvalidMerchantID Kind = "invalid_merchant_id"
	// InvalidMerchantPassword - the web service merchant password is wrong
	InvalidMerchantPassword Kind = "invalid_merchant_password"

	// UnknownErrorCode - the gateway returned a code outside the documented table
	UnknownErrorCode Kind = "unknown_error_code"
	// InvalidMode - a transaction mode other than sandbox/production was supplied
	InvalidMode Kind = "invalid_mode"
	// InvalidChannel - a channel mask with undefined bits was supplied
	InvalidChannel Kind = "invalid_channel"
	// TransportFailure - the underlying transport failed before a gateway verdict
	TransportFailure Kind = "transport_failure"
)

type entry struct {
	kind    Kind
	message string
}

// catalog is the documented gateway response code table. It is read-only
// after initialization.
var catalog = map[Code]entry{
	101: {InvalidPaymentGatewayID, "Invalid payment gateway id"},
	102: {IncorrectSecretKey, "Incorrect secret key"},
	103: {InvalidReferenceNumber, "Invalid reference number"},
	104: {UnauthorizedAccess, "Unauthorized access"},
	105: {InvalidToken, "Invalid token"},
	106: {CurrencyNotSupported, "Currency not supported"},
	107: {TransactionCancelled, "Transaction cancelled"},
	108: {InsufficientFunds, "Insufficient funds"},
	109: {TransactionLimitExceeded, "Transaction limit exceeded"},
	110: {ErrorInOperation, "Error in operation"},
	111: {InvalidParameters, "Invalid parameters"},
	201: {InvalidMerchantID, "Invalid merchant id"},
	202: {InvalidMerchantPassword, "Invalid merchant password"},
}

// GatewayError is a typed error resolved from the catalog, or constructed
// locally for the out-of-catalog kinds.
type GatewayError struct {
	Code    Code
	Kind    Kind
	Message string

	cause error
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause.Error())
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *GatewayError) Unwrap() error {
	return e.cause
}

// Is reports whether target carries the same kind, allowing errors.Is
// comparisons against catalog sentinels produced by New
func (e *GatewayError) Is(target error) bool {
	ge, ok := target.(*GatewayError)
	return ok && ge.Kind == e.Kind
}

// New resolves code into a typed error. Codes outside the documented table
// produce an error of kind UnknownErrorCode rather than faulting.
func New(code Code) *GatewayError {
	if e, ok := catalog[code]; ok {
		return &GatewayError{Code: code, Kind: e.kind, Message: e.message}
	}
	return &GatewayError{
		Code:    code,
		Kind:    UnknownErrorCode,
		Message: fmt.Sprintf("Unknown gateway response code %d", code),
	}
}

// Resolve looks up the kind for code, failing with an UnknownErrorCode-kinded
// error when code is not in the table.
func Resolve(code Code) (Kind, error) {
	if e, ok := catalog[code]; ok {
		return e.kind, nil
	}
	return UnknownErrorCode, New(code)
}

// Message returns the canonical human-readable message for a known code.
func Message(code Code) (string, error) {
	if e, ok := catalog[code]; ok {
		return e.message, nil
	}
	return "", New(code)
}

// FromResult inspects a raw web service result value. When the value is a
// numeric code present in the catalog the resolved error is returned,
// otherwise the value is an opaque token and ok is false.
func FromResult(result string) (*GatewayError, bool) {
	code, err := strconv.Atoi(result)
	if err != nil {
		return nil, false
	}
	if _, ok := catalog[Code(code)]; !ok {
		return nil, false
	}
	return New(Code(code)), true
}

// Errorf constructs a typed error of the given out-of-catalog kind.
func Errorf(kind Kind, format string, args ...interface{}) *GatewayError {
	return &GatewayError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Transport wraps a transport-level fault, preserving the underlying cause.
func Transport(cause error) *GatewayError {
	return &GatewayError{
		Kind:    TransportFailure,
		Message: "gateway transport failure",
		cause:   cause,
	}
}

// KindOf extracts the kind from err, unwrapping as needed, returning the
// empty kind when no GatewayError is in the chain.
func KindOf(err error) Kind {
	var ge *GatewayError
	if !errors.As(err, &ge) {
		return ""
	}
	return ge.Kind
}
