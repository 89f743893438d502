package main

import (
	"fmt"

	"github.com/perawallet/pera-wallet-core/accounts"
	"github.com/perawallet/pera-wallet-core/fee"
	"github.com/perawallet/pera-wallet-core/types"
	"github.com/perawallet/pera-wallet-core/utils"
	"github.com/spf13/cobra"
	"github.com/streamingfast/cli/sflags"
	"go.uber.org/zap"
)

func NewToolCheckBalanceCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool-check-balance",
		Short: "Check that an account can afford a transaction",
		Long: `Checks that balance - amount - fee stays above the account's minimum
balance once the transaction is applied.

Amounts are in microAlgos. When --fee is 0 the fee is computed from --size and
the suggested params flags.

Examples:
  # Send 0.6 ALGO from an account holding 0.701 ALGO and no asset
  perawallet tool-check-balance --balance 701000 --amount 600000

  # Opt in to an asset from an account already holding 3 assets
  perawallet tool-check-balance --balance 450000 --assets 3 --kind opt-in
`,
		RunE: runToolCheckBalance(logger),
	}

	cmd.Flags().String("address", "ACCOUNT", "Account address, only used for display")
	cmd.Flags().String("auth-address", "", "Address signing for the account when it is rekeyed")
	cmd.Flags().Uint64("balance", 0, "Account balance in microAlgos")
	cmd.Flags().Uint64("min-balance", 0, "Node reported minimum balance, 0 to compute it from --assets and --apps")
	cmd.Flags().Int("assets", 0, "Number of assets the account is opted in to")
	cmd.Flags().Uint64("apps", 0, "Number of applications the account is opted in to")
	cmd.Flags().Uint64("amount", 0, "Amount to send")
	cmd.Flags().String("amount-algos", "", "ALGO amount to send such as 1.5, overrides --amount")
	cmd.Flags().Uint64("asset-id", 0, "Asset sent, 0 for ALGO. Asset amounts do not count against the balance")
	cmd.Flags().String("kind", "send", "Transaction kind: send, opt-in, opt-out or rekey")
	cmd.Flags().Uint64("fee", 0, "Transaction fee in microAlgos, 0 to compute it")
	cmd.Flags().Uint64("size", defaultEncodedSize, "Encoded size of the signed transaction in bytes, used when --fee is 0")
	addSuggestedParamsFlags(cmd)
	addProtocolFlags(cmd)

	return cmd
}

func runToolCheckBalance(logger *zap.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		kind, ok := fee.ParseTransactionKind(sflags.MustGetString(cmd, "kind"))
		if !ok {
			return fmt.Errorf("unknown transaction kind %q", sflags.MustGetString(cmd, "kind"))
		}

		assetCount := sflags.MustGetInt(cmd, "assets")
		if assetCount < 0 {
			return fmt.Errorf("--assets must not be negative")
		}

		protocol := protocolParamsFromFlags(cmd)

		account := types.Account{
			Address:          sflags.MustGetString(cmd, "address"),
			Amount:           sflags.MustGetUint64(cmd, "balance"),
			MinBalance:       sflags.MustGetUint64(cmd, "min-balance"),
			Assets:           make([]types.AssetHolding, assetCount),
			TotalAppsOptedIn: sflags.MustGetUint64(cmd, "apps"),
			AuthAddress:      sflags.MustGetString(cmd, "auth-address"),
		}

		store, err := accounts.NewStore(1, logger)
		if err != nil {
			return err
		}
		store.Put(account)

		txFee := sflags.MustGetUint64(cmd, "fee")
		if txFee == 0 {
			calculator := fee.NewCalculator(suggestedParamsFromFlags(cmd), protocol, logger)
			txFee = calculator.Calculate(kind, sflags.MustGetUint64(cmd, "size"))
		}

		draft := &types.TransactionDraft{
			SenderAddress:     account.Address,
			Amount:            sflags.MustGetUint64(cmd, "amount"),
			IsAlgoTransaction: true,
		}
		if algos := sflags.MustGetString(cmd, "amount-algos"); algos != "" {
			if draft.Amount, err = utils.AlgosToMicroAlgos(algos); err != nil {
				return err
			}
		}
		if assetID := sflags.MustGetUint64(cmd, "asset-id"); assetID != types.AlgoAssetID {
			draft.AssetIndex = &assetID
			draft.IsAlgoTransaction = false
		}

		validator := fee.NewMinimumBalanceValidator(store, protocol, logger)
		valid := validator.IsValidTransactionAmount(draft, kind, txFee)

		fmt.Printf("Account:          %s\n", account.Address)
		if account.IsRekeyed() {
			fmt.Printf("Rekeyed to:       %s\n", account.AuthAddress)
		}
		fmt.Printf("Balance:          %s ALGO\n", utils.FormatAlgos(account.Amount))
		fmt.Printf("Minimum balance:  %s ALGO\n", utils.FormatAlgos(validator.MinimumRequiredBalance(&account)))
		fmt.Printf("Kind:             %s\n", kind)
		fmt.Printf("Amount:           %d\n", draft.Amount)
		fmt.Printf("Fee:              %s ALGO\n", utils.FormatAlgos(txFee))
		fmt.Printf("Max sendable:     %s ALGO\n", utils.FormatAlgos(validator.MaxSendableAmount(&account, txFee)))
		fmt.Printf("Valid:            %v\n", valid)

		if !valid {
			return fmt.Errorf("insufficient balance for %s transaction", kind)
		}
		return nil
	}
}
