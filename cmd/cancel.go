package cmd

import (
	"fmt"

	"github.com/payswitch-intl/payswitch-go/clients/payswitch"
	"github.com/payswitch-intl/payswitch-go/endpoints"
	"github.com/payswitch-intl/payswitch-go/inputs"
	"github.com/payswitch-intl/payswitch-go/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CancelCmd voids a pending transaction by merchant reference
var CancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "void a pending transaction by merchant reference",
	Run:   Perform("cancel", RunCancel),
}

func init() {
	NewFlagBuilder(CancelCmd).
		String("txnid", "", "the merchant transaction reference").Require().Bind("txnid").
		Flag().Bool("yes", false, "skip the confirmation prompt").Bind("yes")
	RootCmd.AddCommand(CancelCmd)
}

// RunCancel - execution of the cancel command
func RunCancel(command *cobra.Command, args []string) error {
	ctx := command.Context()

	var txnID inputs.TxnID
	if err := inputs.DecodeAndValidateString(ctx, &txnID, viper.GetString("txnid")); err != nil {
		return err
	}
	pwd, err := merchantPassword()
	if err != nil {
		return err
	}

	if !viper.GetBool("yes") {
		fmt.Printf("cancel transaction %s? ", txnID.String())
		ok, err := prompt.Bool()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	env, err := environment()
	if err != nil {
		return err
	}
	client, err := webServiceClient(env, endpoints.NewResolver())
	if err != nil {
		return err
	}

	if _, err := client.CancelTxn(ctx, &payswitch.CancelQuery{
		MerchantID: viper.GetString("merchant-id"),
		Password:   pwd,
		TxnID:      txnID.String(),
	}); err != nil {
		return err
	}

	fmt.Printf("transaction %s cancelled\n", txnID.String())
	return nil
}
