package cmd

import (
	"net/http"
	"time"

	"github.com/payswitch-intl/payswitch-go/clients/payswitch"
	"github.com/payswitch-intl/payswitch-go/endpoints"
	"github.com/payswitch-intl/payswitch-go/gateway"
	"github.com/payswitch-intl/payswitch-go/inputs"
	"github.com/payswitch-intl/payswitch-go/payment"
	"github.com/payswitch-intl/payswitch-go/pindialer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// transactionFlags attaches the shared transaction parameter flags to a command
func transactionFlags(command *cobra.Command) {
	NewFlagBuilder(command).
		String("amount", "", "the transaction amount").Require().Bind("amount").
		Flag().String("currency", "PHP", "the ISO-4217 transaction currency").Bind("currency").Env("PAYSWITCH_CURRENCY").
		Flag().String("description", "", "the transaction description").Require().Bind("description").
		Flag().String("email", "", "the payer contact email").Require().Bind("email").
		Flag().String("txnid", "", "the merchant transaction reference, derived deterministically when omitted").Bind("txnid").
		Flag().String("param1", "", "merchant passthrough value one").Bind("param1").
		Flag().String("param2", "", "merchant passthrough value two").Bind("param2").
		Flag().String("procid", "", "pre-selected channel processor").Bind("procid")
}

// environment resolves and validates the configured transaction mode
func environment() (endpoints.Environment, error) {
	return endpoints.ParseEnvironment(viper.GetString("environment"))
}

// buildRequest assembles and validates the transaction parameter set from
// the bound flags
func buildRequest(command *cobra.Command) (payment.Request, error) {
	ctx := command.Context()

	var amount inputs.Amount
	if err := inputs.DecodeAndValidateString(ctx, &amount, viper.GetString("amount")); err != nil {
		return payment.Request{}, err
	}

	merchantID := viper.GetString("merchant-id")
	currency := viper.GetString("currency")
	description := viper.GetString("description")
	email := viper.GetString("email")

	txnID := viper.GetString("txnid")
	if txnID == "" {
		txnID = payment.GenerateTxnRef(merchantID, email, description, amount.Decimal(), currency)
	} else {
		var in inputs.TxnID
		if err := inputs.DecodeAndValidateString(ctx, &in, txnID); err != nil {
			return payment.Request{}, err
		}
	}

	return payment.NewBuilder().
		MerchantID(merchantID).
		TxnID(txnID).
		Amount(amount.Decimal()).
		Currency(currency).
		Description(description).
		Email(email).
		Param1(viper.GetString("param1")).
		Param2(viper.GetString("param2")).
		ProcID(viper.GetString("procid")).
		Build()
}

// webServiceClient constructs the gateway web service client for env,
// honoring the service override and the optional certificate pin
func webServiceClient(env endpoints.Environment, resolver *endpoints.Resolver) (payswitch.Client, error) {
	if override := viper.GetString("gateway-service"); override != "" {
		if err := resolver.SetURL(override, env, endpoints.WebService); err != nil {
			return nil, err
		}
	}
	serverURL, err := resolver.URL(env, endpoints.WebService)
	if err != nil {
		return nil, err
	}

	if fingerprint := viper.GetString("pin-fingerprint"); fingerprint != "" {
		hc, err := payswitch.NewWithHTTPClient(serverURL, &http.Client{
			Timeout: time.Second * 10,
			Transport: &http.Transport{
				TLSClientConfig: pindialer.GetTLSConfig(fingerprint),
			},
		})
		if err != nil {
			return nil, err
		}
		return payswitch.NewClientWithPrometheus(hc, "payswitch_client"), nil
	}
	return payswitch.New(serverURL)
}

// newGateway wires up a Gateway with all of its required collaborators
func newGateway(signerKey string) (*gateway.Gateway, error) {
	env, err := environment()
	if err != nil {
		return nil, err
	}
	resolver := endpoints.NewResolver()
	ws, err := webServiceClient(env, resolver)
	if err != nil {
		return nil, err
	}
	cfg := gateway.Config{
		MerchantID:  viper.GetString("merchant-id"),
		SecretKey:   signerKey,
		Environment: env,
	}
	signer, err := cfg.Signer()
	if err != nil {
		return nil, err
	}
	return gateway.New(cfg, resolver, ws, gateway.NewHTTPVerifier(signer))
}
