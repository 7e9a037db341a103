package cmd

import (
	"fmt"

	"github.com/payswitch-intl/payswitch-go/logging"
	"github.com/spf13/cobra"
)

// TokenCmd requests a web service token for a transaction
var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "request a web service token for a transaction",
	Run:   Perform("token", RunToken),
}

func init() {
	transactionFlags(TokenCmd)
	RootCmd.AddCommand(TokenCmd)
}

// RunToken - execution of the token command
func RunToken(command *cobra.Command, args []string) error {
	ctx := command.Context()
	logger := logging.Logger(ctx, "cmd.RunToken")

	key, err := secretKey()
	if err != nil {
		return err
	}
	gw, err := newGateway(key)
	if err != nil {
		return err
	}

	req, err := buildRequest(command)
	if err != nil {
		return err
	}
	logging.AddTxnIDToContext(ctx, req.TxnID())

	token, err := gw.RequestToken(ctx, req)
	if err != nil {
		if msg := gw.LastError(); msg != "" {
			logger.Error().Str("gateway_message", msg).Msg("gateway rejected the token request")
		}
		return err
	}

	logger.Info().Str("txnID", req.TxnID()).Msg("token issued")
	fmt.Println(token)
	return nil
}
