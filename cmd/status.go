package cmd

import (
	"fmt"
	"os"

	"github.com/payswitch-intl/payswitch-go/clients/payswitch"
	"github.com/payswitch-intl/payswitch-go/endpoints"
	"github.com/payswitch-intl/payswitch-go/inputs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// StatusCmd queries the state of a transaction by merchant reference
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "query the state of a transaction by merchant reference",
	Run:   Perform("status", RunStatus),
}

func init() {
	NewFlagBuilder(StatusCmd).
		String("txnid", "", "the merchant transaction reference").Require().Bind("txnid")
	RootCmd.AddCommand(StatusCmd)
}

// merchantPassword resolves the web service password from the environment
func merchantPassword() (string, error) {
	if pwd := os.Getenv("PAYSWITCH_MERCHANT_PWD"); pwd != "" {
		return pwd, nil
	}
	return "", fmt.Errorf("PAYSWITCH_MERCHANT_PWD must be set for merchant web service calls")
}

// RunStatus - execution of the status command
func RunStatus(command *cobra.Command, args []string) error {
	ctx := command.Context()

	var txnID inputs.TxnID
	if err := inputs.DecodeAndValidateString(ctx, &txnID, viper.GetString("txnid")); err != nil {
		return err
	}
	pwd, err := merchantPassword()
	if err != nil {
		return err
	}

	env, err := environment()
	if err != nil {
		return err
	}
	client, err := webServiceClient(env, endpoints.NewResolver())
	if err != nil {
		return err
	}

	status, err := client.GetTxnStatus(ctx, &payswitch.StatusQuery{
		MerchantID: viper.GetString("merchant-id"),
		Password:   pwd,
		TxnID:      txnID.String(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("status: %s\nrefno: %s\ndescription: %s\n",
		status.Status, status.RefNo, status.Description)
	return nil
}
