// Package endpoints resolves the active gateway endpoint from the operating
// environment (sandbox or production) and the initiation protocol (browser
// redirect or web service).
package endpoints

import (
	"fmt"
	"net/url"

	"github.com/payswitch-intl/payswitch-go/codes"
)

// Environment selects between the sandbox and production gateways.
type Environment string

const (
	// Sandbox - the gateway test environment
	Sandbox Environment = "sandbox"
	// Production - the live gateway
	Production Environment = "production"
)

// String returns the mode string the configuration surface accepts
func (e Environment) String() string {
	return string(e)
}

// ParseEnvironment parses a configuration mode string, failing with an
// InvalidMode-kinded error for anything but sandbox/production.
func ParseEnvironment(raw string) (Environment, error) {
	switch Environment(raw) {
	case Sandbox:
		return Sandbox, nil
	case Production:
		return Production, nil
	}
	return "", codes.Errorf(codes.InvalidMode, "unknown transaction mode %q, must be sandbox or production", raw)
}

// Protocol is the initiation protocol axis of endpoint resolution.
type Protocol string

const (
	// Redirect - browser redirect initiation
	Redirect Protocol = "redirect"
	// WebService - token based web service initiation
	WebService Protocol = "webservice"
)

func validProtocol(p Protocol) bool {
	return p == Redirect || p == WebService
}

// built-in gateway endpoints
const (
	sandboxRedirectURL      = "https://test.payswitch.ph/Pay.aspx"
	productionRedirectURL   = "https://gw.payswitch.ph/Pay.aspx"
	sandboxWebServiceURL    = "https://test.payswitch.ph/api/collect/v1"
	productionWebServiceURL = "https://gw.payswitch.ph/api/collect/v1"
	sandboxBillingURL       = "https://test.payswitch.ph/api/billing/v1"
	productionBillingURL    = "https://gw.payswitch.ph/api/billing/v1"
)

// Resolver holds the four (environment, protocol) endpoint URLs plus the
// billing-info endpoint per environment, each overridable independently.
// Overrides always name the target (environment, protocol) pair explicitly,
// resolution never branches on request history.
type Resolver struct {
	urls    map[Environment]map[Protocol]string
	billing map[Environment]string
}

// NewResolver returns a resolver preloaded with the built-in gateway URLs
func NewResolver() *Resolver {
	return &Resolver{
		urls: map[Environment]map[Protocol]string{
			Sandbox: {
				Redirect:   sandboxRedirectURL,
				WebService: sandboxWebServiceURL,
			},
			Production: {
				Redirect:   productionRedirectURL,
				WebService: productionWebServiceURL,
			},
		},
		billing: map[Environment]string{
			Sandbox:    sandboxBillingURL,
			Production: productionBillingURL,
		},
	}
}

// URL resolves the endpoint for the given environment and protocol.
func (r *Resolver) URL(env Environment, proto Protocol) (string, error) {
	if _, err := ParseEnvironment(string(env)); err != nil {
		return "", err
	}
	if !validProtocol(proto) {
		return "", fmt.Errorf("unknown protocol %q", proto)
	}
	return r.urls[env][proto], nil
}

// SetURL overrides the endpoint for the given environment and protocol,
// failing with an InvalidMode-kinded error when env is not a known mode.
func (r *Resolver) SetURL(raw string, env Environment, proto Protocol) error {
	parsed, err := ParseEnvironment(string(env))
	if err != nil {
		return err
	}
	if !validProtocol(proto) {
		return fmt.Errorf("unknown protocol %q", proto)
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return fmt.Errorf("invalid endpoint url %q: %w", raw, err)
	}
	r.urls[parsed][proto] = raw
	return nil
}

// BillingURL resolves the billing-info endpoint for the given environment.
func (r *Resolver) BillingURL(env Environment) (string, error) {
	if _, err := ParseEnvironment(string(env)); err != nil {
		return "", err
	}
	return r.billing[env], nil
}

// SetBillingURL overrides the billing-info endpoint for the given environment.
func (r *Resolver) SetBillingURL(raw string, env Environment) error {
	parsed, err := ParseEnvironment(string(env))
	if err != nil {
		return err
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return fmt.Errorf("invalid billing endpoint url %q: %w", raw, err)
	}
	r.billing[parsed] = raw
	return nil
}
