package main

import (
	"encoding/base64"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	sdktypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/perawallet/pera-wallet-core/fee"
	"github.com/perawallet/pera-wallet-core/utils"
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
	"go.uber.org/zap"
)

// defaultEncodedSize is the size assumed for a signed single-key payment
const defaultEncodedSize = 250

func NewToolEstimateFeeCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool-estimate-fee",
		Short: "Estimate the network fee of a transaction",
		Long: `Computes max(min-fee, size * fee-per-byte) for a transaction.

The size is either given directly or taken from a base64 msgpack transaction,
sized as if it carried a signature.

Examples:
  # Fee of a 250 bytes transaction under congestion
  perawallet tool-estimate-fee --size 250 --fee-per-byte 10

  # Fee of an encoded transaction
  perawallet tool-estimate-fee --txn gqNzaWfEQ...
`,
		RunE: runToolEstimateFee(logger),
	}

	cmd.Flags().Uint64("size", defaultEncodedSize, "Encoded size of the signed transaction in bytes")
	cmd.Flags().String("txn", "", "Base64 msgpack signed or unsigned transaction, overrides --size")
	cmd.Flags().String("kind", "send", "Transaction kind: send, opt-in, opt-out or rekey")
	addSuggestedParamsFlags(cmd)
	addProtocolFlags(cmd)

	return cmd
}

func runToolEstimateFee(logger *zap.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		kind, ok := fee.ParseTransactionKind(sflags.MustGetString(cmd, "kind"))
		if !ok {
			return fmt.Errorf("unknown transaction kind %q", sflags.MustGetString(cmd, "kind"))
		}

		calculator := fee.NewCalculator(suggestedParamsFromFlags(cmd), protocolParamsFromFlags(cmd), logger)

		size := sflags.MustGetUint64(cmd, "size")
		if encoded := sflags.MustGetString(cmd, "txn"); encoded != "" {
			txn, err := decodeTransaction(encoded)
			if err != nil {
				return err
			}
			size = fee.EstimateSignedSize(txn)
		}

		calculated := calculator.Calculate(kind, size)

		fmt.Printf("Kind:          %s\n", kind)
		fmt.Printf("Encoded size:  %d bytes\n", size)
		fmt.Printf("Minimum fee:   %d microAlgos\n", calculator.MinFee())
		fmt.Printf("Fee:           %d microAlgos (%s ALGO)\n", calculated, utils.FormatAlgos(calculated))
		return nil
	}
}

// decodeTransaction accepts both signed envelopes and bare transactions
func decodeTransaction(encoded string) (sdktypes.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return sdktypes.Transaction{}, fmt.Errorf("decoding base64 transaction: %w", err)
	}

	var stx sdktypes.SignedTxn
	if err := msgpack.Decode(raw, &stx); err == nil && stx.Txn.Type != "" {
		return stx.Txn, nil
	}

	var txn sdktypes.Transaction
	if err := msgpack.Decode(raw, &txn); err != nil {
		return sdktypes.Transaction{}, fmt.Errorf("decoding msgpack transaction: %w", err)
	}
	if txn.Type == "" {
		return sdktypes.Transaction{}, fmt.Errorf("transaction has no type")
	}
	return txn, nil
}
