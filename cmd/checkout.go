package cmd

import (
	"fmt"

	"github.com/payswitch-intl/payswitch-go/channel"
	"github.com/payswitch-intl/payswitch-go/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CheckoutCmd builds the signed browser redirect URL for a transaction
var CheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "build the signed checkout redirect url for a transaction",
	Run:   Perform("checkout", RunCheckout),
}

func init() {
	transactionFlags(CheckoutCmd)
	NewFlagBuilder(CheckoutCmd).
		String("channel", "", "restrict the transaction to these payment channels, e.g. online_bank+credit_card").
		Bind("channel")
	RootCmd.AddCommand(CheckoutCmd)
}

// RunCheckout - execution of the checkout command
func RunCheckout(command *cobra.Command, args []string) error {
	ctx := command.Context()
	logger := logging.Logger(ctx, "cmd.RunCheckout")

	key, err := secretKey()
	if err != nil {
		return err
	}
	gw, err := newGateway(key)
	if err != nil {
		return err
	}

	if raw := viper.GetString("channel"); raw != "" {
		var mask channel.Channel
		if err := mask.UnmarshalText([]byte(raw)); err != nil {
			return err
		}
		if err := gw.SetChannel(mask); err != nil {
			return err
		}
	}

	req, err := buildRequest(command)
	if err != nil {
		return err
	}
	logging.AddTxnIDToContext(ctx, req.TxnID())

	checkoutURL, err := gw.Checkout(ctx, req)
	if err != nil {
		return err
	}

	logger.Info().Str("txnID", req.TxnID()).Msg("checkout url built")
	fmt.Println(checkoutURL)
	return nil
}
