package context

import "errors"

// CTXKey - a type for context keys
type CTXKey string

const (
	// EnvironmentCTXKey - the key used for the running environment
	EnvironmentCTXKey CTXKey = "environment"
	// DebugLoggingCTXKey - context key for debug logging
	DebugLoggingCTXKey CTXKey = "debug_logging"
	// LogLevelCTXKey - context key for the log level
	LogLevelCTXKey CTXKey = "log_level"
	// LogWriterCTXKey - context key for overriding the log writer
	LogWriterCTXKey CTXKey = "log_writer"
	// ProgressLoggingCTXKey - context key for progress logging
	ProgressLoggingCTXKey CTXKey = "progress_logging"

	// VersionCTXKey - context key for version of code
	VersionCTXKey CTXKey = "version"
	// CommitCTXKey - context key for the commit of the code
	CommitCTXKey CTXKey = "commit"
	// BuildTimeCTXKey - context key for the build time of code
	BuildTimeCTXKey CTXKey = "build_time"

	// MerchantIDCTXKey - context key for the gateway issued merchant id
	MerchantIDCTXKey CTXKey = "merchant_id"
	// MerchantSecretCTXKey - context key for the merchant secret key used in digest signing
	MerchantSecretCTXKey CTXKey = "merchant_secret"
	// MerchantPasswordCTXKey - context key for the merchant web service password
	MerchantPasswordCTXKey CTXKey = "merchant_password"
	// GatewayServerCTXKey - context key for the gateway web service base url
	GatewayServerCTXKey CTXKey = "gateway_server"
	// GatewayClientCTXKey - context key for a constructed gateway web service client
	GatewayClientCTXKey CTXKey = "gateway_client"
	// BillingEndpointCTXKey - context key for a billing-info endpoint override
	BillingEndpointCTXKey CTXKey = "billing_endpoint"
	// GatewayPinFingerprintCTXKey - context key for the pinned gateway certificate fingerprint
	GatewayPinFingerprintCTXKey CTXKey = "gateway_pin_fingerprint"
)

var (
	// ErrNotInContext - error you get when you ask for something not in the context.
	ErrNotInContext = errors.New("failed to get value from context")
	// ErrValueWrongType - error you get when you ask for something, and it is not the type you expected
	ErrValueWrongType = errors.New("context value of wrong type")
)
