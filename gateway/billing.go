package gateway

import (
	"context"
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/payswitch-intl/payswitch-go/clients"
	"github.com/payswitch-intl/payswitch-go/codes"
	"github.com/payswitch-intl/payswitch-go/digest"
	"github.com/payswitch-intl/payswitch-go/payment"
	_ "github.com/payswitch-intl/payswitch-go/validators" // registers the custom validator tags
)

// Address carries the billing sub-fields required by the credit card
// verification protocol.
type Address struct {
	FirstName string `json:"firstname" valid:"required"`
	LastName  string `json:"lastname" valid:"required"`
	Address1  string `json:"address1" valid:"required"`
	Address2  string `json:"address2" valid:"-"`
	City      string `json:"city" valid:"required"`
	State     string `json:"state" valid:"required"`
	Country   string `json:"country" valid:"ISO3166Alpha2,required"`
	ZipCode   string `json:"zipcode" valid:"zip,required"`
	Telephone string `json:"telephone" valid:"telephone,required"`
}

// Validate - implementation of validatable interface
func (a Address) Validate(ctx context.Context) error {
	if ok, err := govalidator.ValidateStruct(a); !ok {
		return fmt.Errorf("invalid billing address: %w", err)
	}
	return nil
}

// Verifier submits the billing information for a credit card transaction to
// the billing-info endpoint. Implementations own the wire protocol, this
// client only resolves the endpoint and hands over the parameter set.
type Verifier interface {
	VerifyBillingInfo(ctx context.Context, endpoint string, req payment.Request, addr Address) error
}

// billingPayload is the wire structure of the billing-info call, the signed
// canonical parameters followed by the address sub-fields.
type billingPayload struct {
	payment.TokenParams
	Address
}

// HTTPVerifier is the standard Verifier, posting the signed parameter set
// plus the billing sub-fields to the billing-info endpoint as JSON.
type HTTPVerifier struct {
	signer digest.Signer
}

// NewHTTPVerifier creates a verifier that signs the carried parameters with
// the given signer
func NewHTTPVerifier(signer digest.Signer) *HTTPVerifier {
	return &HTTPVerifier{signer: signer}
}

// VerifyBillingInfo implements Verifier
func (v *HTTPVerifier) VerifyBillingInfo(ctx context.Context, endpoint string, req payment.Request, addr Address) error {
	client, err := clients.New(endpoint, "")
	if err != nil {
		return codes.Transport(err)
	}
	params, err := req.TokenParams(v.signer)
	if err != nil {
		return err
	}
	httpReq, err := client.NewRequest(ctx, "POST", "", billingPayload{params, addr}, nil)
	if err != nil {
		return codes.Transport(err)
	}
	if _, err := client.Do(ctx, httpReq, nil); err != nil {
		return codes.Transport(err)
	}
	return nil
}
