package main

import (
	"github.com/perawallet/pera-wallet-core/types"
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
)

func addProtocolFlags(cmd *cobra.Command) {
	defaults := types.DefaultProtocolParams()

	cmd.Flags().Uint64("protocol-min-fee", defaults.MinFee, "Protocol minimum transaction fee in microAlgos")
	cmd.Flags().Uint64("protocol-min-balance", defaults.MinBalance, "Protocol base minimum balance in microAlgos")
	cmd.Flags().Uint64("protocol-asset-min-balance", defaults.AssetMinBalanceIncrement, "Minimum balance increment per opted-in asset in microAlgos")
	cmd.Flags().Uint64("protocol-app-min-balance", defaults.AppMinBalanceIncrement, "Minimum balance increment per opted-in application in microAlgos")
	cmd.Flags().Int("protocol-max-inner-depth", defaults.MaxInnerTransactionDepth, "Maximum inner transaction nesting followed when decoding")
}

func protocolParamsFromFlags(cmd *cobra.Command) types.ProtocolParams {
	return types.ProtocolParams{
		MinFee:                   sflags.MustGetUint64(cmd, "protocol-min-fee"),
		MinBalance:               sflags.MustGetUint64(cmd, "protocol-min-balance"),
		AssetMinBalanceIncrement: sflags.MustGetUint64(cmd, "protocol-asset-min-balance"),
		AppMinBalanceIncrement:   sflags.MustGetUint64(cmd, "protocol-app-min-balance"),
		MaxInnerTransactionDepth: sflags.MustGetInt(cmd, "protocol-max-inner-depth"),
	}
}

func addSuggestedParamsFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("min-fee", types.MinTransactionFee, "Node suggested minimum fee in microAlgos")
	cmd.Flags().Uint64("fee-per-byte", 0, "Node suggested fee per byte in microAlgos, 0 outside of congestion")
}

func suggestedParamsFromFlags(cmd *cobra.Command) *types.TransactionParams {
	return &types.TransactionParams{
		MinFee:     sflags.MustGetUint64(cmd, "min-fee"),
		FeePerByte: sflags.MustGetUint64(cmd, "fee-per-byte"),
	}
}
