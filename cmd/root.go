package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"github.com/payswitch-intl/payswitch-go/clients"
	appctx "github.com/payswitch-intl/payswitch-go/context"
	errorutils "github.com/payswitch-intl/payswitch-go/errors"
	"github.com/payswitch-intl/payswitch-go/logging"
	"github.com/payswitch-intl/payswitch-go/prompt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// RootCmd is the base command (what the binary is called)
	RootCmd = &cobra.Command{
		Use:   "payswitch",
		Short: "payswitch is the merchant cli for the PaySwitch payment gateway",
	}
	ctx = context.Background()
)

// Execute - the main entrypoint for all subcommands
func Execute(version, commit, buildTime string) {
	// setup context with logging, but first we need to setup the environment
	var logger *zerolog.Logger
	ctx = context.WithValue(ctx, appctx.EnvironmentCTXKey, viper.GetString("environment"))
	ctx = context.WithValue(ctx, appctx.DebugLoggingCTXKey, viper.GetBool("debug"))
	ctx, logger = logging.SetupLogger(ctx)

	ctx = context.WithValue(ctx, appctx.VersionCTXKey, version)
	ctx = context.WithValue(ctx, appctx.CommitCTXKey, commit)
	ctx = context.WithValue(ctx, appctx.BuildTimeCTXKey, buildTime)

	// optional sentry error reporting
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: viper.GetString("environment"),
			Release:     fmt.Sprintf("payswitch-go@%s-%s", commit, buildTime),
		}); err != nil {
			logger.Error().Err(err).Msg("failed to initialize sentry")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// execute the root cmd
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		sentry.CaptureException(err)
		logger.Error().Err(err).Msg("./payswitch command encountered an error")
		os.Exit(1)
	}
}

func init() {
	// env - defaults to sandbox
	RootCmd.PersistentFlags().String("environment", "sandbox",
		"the transaction mode, sandbox or production")
	Must(viper.BindPFlag("environment", RootCmd.PersistentFlags().Lookup("environment")))
	Must(viper.BindEnv("environment", "PAYSWITCH_ENV"))

	// debug logging - defaults to off
	RootCmd.PersistentFlags().Bool("debug", false, "turn on debug logging")
	Must(viper.BindPFlag("debug", RootCmd.PersistentFlags().Lookup("debug")))
	Must(viper.BindEnv("debug", "DEBUG"))

	// merchant id (required by all)
	RootCmd.PersistentFlags().String("merchant-id", "",
		"the gateway issued merchant id")
	Must(viper.BindPFlag("merchant-id", RootCmd.PersistentFlags().Lookup("merchant-id")))
	Must(viper.BindEnv("merchant-id", "PAYSWITCH_MERCHANT_ID"))

	// gateway web service override
	RootCmd.PersistentFlags().String("gateway-service", "",
		"override the gateway web service address")
	Must(viper.BindPFlag("gateway-service", RootCmd.PersistentFlags().Lookup("gateway-service")))
	Must(viper.BindEnv("gateway-service", "PAYSWITCH_SERVER"))

	// pinned production certificate fingerprint
	RootCmd.PersistentFlags().String("pin-fingerprint", "",
		"pin the gateway server certificate to this public key fingerprint")
	Must(viper.BindPFlag("pin-fingerprint", RootCmd.PersistentFlags().Lookup("pin-fingerprint")))
	Must(viper.BindEnv("pin-fingerprint", "PAYSWITCH_PIN_FINGERPRINT"))

	RootCmd.AddCommand(VersionCmd)
}

// VersionCmd is the command to get the code's version information
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "get the version of this binary",
	Run:   versionRun,
}

func versionRun(command *cobra.Command, args []string) {
	version := command.Context().Value(appctx.VersionCTXKey).(string)
	commit := command.Context().Value(appctx.CommitCTXKey).(string)
	buildTime := command.Context().Value(appctx.BuildTimeCTXKey).(string)
	fmt.Printf("version: %s\ncommit: %s\nbuild time: %s\n",
		version, commit, buildTime,
	)
}

// Perform performs a run
func Perform(action string, fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			logger, lerr := appctx.GetLogger(cmd.Context())
			if lerr != nil {
				_, logger = logging.SetupLogger(cmd.Context())
			}

			log := logger.Err(err).Str("action", action)
			httpError, ok := err.(*errorutils.ErrorBundle)
			if ok {
				state, ok := httpError.Data().(clients.HTTPState)
				if ok {
					log = log.Int("status", state.Status).
						Str("path", state.Path).
						Interface("data", state.Body)
				}
			}
			log.Msg("failed")
		}
		<-time.After(10 * time.Millisecond)
		if err != nil {
			os.Exit(1)
		}
	}
}

// secretKey resolves the merchant secret key from the environment, prompting
// when absent so it never rides on argv.
func secretKey() (string, error) {
	if key := os.Getenv("PAYSWITCH_SECRET_KEY"); key != "" {
		return key, nil
	}
	key, err := prompt.SecretKey()
	if err != nil {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}
	return string(key), nil
}
