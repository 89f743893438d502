package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/perawallet/pera-wallet-core/decoder"
	"github.com/perawallet/pera-wallet-core/types"
	"github.com/perawallet/pera-wallet-core/utils"
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
	"go.uber.org/zap"
)

func NewToolDecodeTransactionCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool-decode-transaction <file>",
		Short: "Decode a transaction and display its detail",
		Long: `Reads an indexer transaction record (JSON), an indexer transactions page
(JSON) or a base64 msgpack signed transaction, and displays the detail the
wallet derives from it.

Examples:
  perawallet tool-decode-transaction ./lookup.json
  perawallet tool-decode-transaction ./signed.txn.b64 --format msgpack
`,
		Args: cobra.ExactArgs(1),
		RunE: runToolDecodeTransaction(logger),
	}

	cmd.Flags().String("format", "auto", "Input format: auto, json or msgpack")
	cmd.Flags().Bool("show-note", false, "Show transaction notes")
	addProtocolFlags(cmd)

	return cmd
}

func runToolDecodeTransaction(logger *zap.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading transaction file: %w", err)
		}
		data = bytes.TrimSpace(data)

		format := sflags.MustGetString(cmd, "format")
		if format == "auto" {
			format = "msgpack"
			if bytes.HasPrefix(data, []byte("{")) {
				format = "json"
			}
		}

		dec := decoder.NewDecoder(protocolParamsFromFlags(cmd), logger)
		showNote := sflags.MustGetBool(cmd, "show-note")

		var txs []types.RawTransaction
		switch format {
		case "json":
			if bytes.Contains(data, []byte(`"transactions"`)) {
				txs, err = dec.DecodeRawTransactionsJSON(data)
			} else {
				var tx *types.RawTransaction
				tx, err = dec.DecodeRawTransactionJSON(data)
				if tx != nil {
					txs = append(txs, *tx)
				}
			}
		case "msgpack":
			var tx *types.RawTransaction
			tx, err = dec.DecodeSignedTransactionFromBase64(string(data))
			if tx != nil {
				txs = append(txs, *tx)
			}
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}

		for i := range txs {
			fmt.Printf("\n--- Transaction %d ---\n", i)
			printDetail(dec.Mapper().MapTransaction(&txs[i]), "", showNote)
		}
		return nil
	}
}

func printDetail(detail decoder.BaseTransactionDetail, indent string, showNote bool) {
	base := detail.Base()

	fmt.Printf("%sType:      %s\n", indent, detail.Type())
	if base.ID != "" {
		fmt.Printf("%sID:        %s\n", indent, base.ID)
	}
	fmt.Printf("%sSender:    %s\n", indent, base.SenderAddress)
	if base.ReceiverAddress != "" {
		fmt.Printf("%sReceiver:  %s\n", indent, base.ReceiverAddress)
	}
	fmt.Printf("%sFee:       %s ALGO\n", indent, utils.FormatAlgos(base.Fee))
	if base.RoundTimestamp != nil {
		fmt.Printf("%sTime:      %s (round %d)\n", indent, base.RoundTimestamp.Format("2006-01-02 15:04:05 MST"), base.ConfirmedRound)
	}
	if base.IsCloseTo() {
		fmt.Printf("%sClose to:  %s\n", indent, base.CloseToAddress)
	}
	if base.IsRekey() {
		fmt.Printf("%sRekey to:  %s\n", indent, base.RekeyToAddress)
	}
	if base.GroupID != "" {
		fmt.Printf("%sGroup:     %s\n", indent, base.GroupID)
	}
	if showNote && len(base.Note) > 0 {
		fmt.Printf("%sNote:      %q\n", indent, base.Note)
	}

	switch d := detail.(type) {
	case *decoder.PaymentTransactionDetail:
		fmt.Printf("%sAmount:    %s ALGO\n", indent, utils.FormatAssetAmount(d.TransactionAmount, types.AlgoDecimals))
	case *decoder.AssetTransferTransactionDetail:
		fmt.Printf("%sAsset:     %d\n", indent, d.AssetID)
		fmt.Printf("%sAmount:    %s (base units)\n", indent, d.TransactionAmount)
		if d.IsOptIn() {
			fmt.Printf("%sOpt-in:    true\n", indent)
		}
	case *decoder.AssetConfigurationTransactionDetail:
		if d.IsCreation() {
			fmt.Printf("%sCreation:  %s (%s)\n", indent, d.Name, d.UnitName)
		} else {
			fmt.Printf("%sAsset:     %d\n", indent, *d.AssetID)
		}
	case *decoder.ApplicationCallTransactionDetail:
		fmt.Printf("%sApp:       %d (%s)\n", indent, d.ApplicationID, d.OnCompletion)
		if amount := d.Amount(); amount != nil && amount.Sign() > 0 {
			fmt.Printf("%sAmount:    %s (base units)\n", indent, amount)
		}
		fmt.Printf("%sInner:     %d\n", indent, d.InnerTransactionCount)
		for _, inner := range d.InnerTransactions {
			fmt.Printf("%s  ---\n", indent)
			printDetail(inner, indent+strings.Repeat(" ", 2), showNote)
		}
	case *decoder.UndefinedTransactionDetail:
		fmt.Printf("%sRaw type:  %s\n", indent, d.RawType)
		fmt.Printf("%sAmount:    %s (base units)\n", indent, d.Amount())
	}
}
