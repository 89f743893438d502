package main

import (
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

// Injected at build time
var version = "<missing>"

var logger, _ = logging.PackageLogger("perawallet", "github.com/perawallet/pera-wallet-core")

func main() {
	logging.InstantiateLoggers(logging.WithDefaultLevel(zap.InfoLevel))

	Run(
		"perawallet",
		"Pera wallet transaction fee, balance and decoding tooling",
		Description(`
			Offline tooling around the wallet's transaction core: estimating
			the network fee of a transaction, checking that an account can
			afford a send, opt-in, opt-out or rekey without dropping under
			its minimum balance, and decoding fetched transactions into the
			detail shown on the transaction screen.

			No command talks to the network. Suggested params and account
			snapshots are passed through flags; every flag can also be set
			through a PERAWALLET_ prefixed environment variable.
		`),

		ConfigureVersion(version),
		ConfigureViper("PERAWALLET"),

		CobraCmd(NewToolEstimateFeeCmd(logger)),
		CobraCmd(NewToolCheckBalanceCmd(logger)),
		CobraCmd(NewToolDecodeTransactionCmd(logger)),

		OnCommandErrorLogAndExit(logger),
	)
}

func CobraCmd(cmd *cobra.Command) cli.CommandOption {
	return cli.CommandOptionFunc(func(parent *cobra.Command) {
		parent.AddCommand(cmd)
	})
}
