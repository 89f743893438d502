package decoder

import (
	"math/big"

	"github.com/perawallet/pera-wallet-core/types"
)

// The same record shape is reused for every kind, so several fields have to
// be looked up across sub-objects. The order of each chain is significant.

// resolveReceiverAddress: payment → asset transfer → asset freeze → ""
func resolveReceiverAddress(tx *types.RawTransaction) string {
	if tx.Payment != nil && tx.Payment.Receiver != "" {
		return tx.Payment.Receiver
	}
	if tx.AssetTransfer != nil && tx.AssetTransfer.Receiver != "" {
		return tx.AssetTransfer.Receiver
	}
	if tx.AssetFreeze != nil && tx.AssetFreeze.Address != "" {
		return tx.AssetFreeze.Address
	}
	return ""
}

// resolveTransactionAmount: payment → asset transfer → 0
func resolveTransactionAmount(tx *types.RawTransaction) *big.Int {
	if tx.Payment != nil && tx.Payment.Amount != nil {
		return new(big.Int).SetUint64(*tx.Payment.Amount)
	}
	if tx.AssetTransfer != nil && tx.AssetTransfer.Amount != nil {
		return new(big.Int).SetUint64(*tx.AssetTransfer.Amount)
	}
	return new(big.Int)
}

// resolveCloseToAddress: payment close-remainder-to → asset transfer close-to → ""
func resolveCloseToAddress(tx *types.RawTransaction) string {
	if tx.Payment != nil && tx.Payment.CloseRemainderTo != "" {
		return tx.Payment.CloseRemainderTo
	}
	if tx.AssetTransfer != nil && tx.AssetTransfer.CloseTo != "" {
		return tx.AssetTransfer.CloseTo
	}
	return ""
}

// resolveAssetID: asset transfer → asset freeze → asset config → first
// non-nil foreign asset of an application call → ALGO.
// TODO: check against indexer records whether an axfer ever needs the
// application call's foreign assets; this looks like it covers a gap in how
// records were modelled rather than real protocol behaviour.
func resolveAssetID(tx *types.RawTransaction) uint64 {
	if tx.AssetTransfer != nil && tx.AssetTransfer.AssetID != nil {
		return *tx.AssetTransfer.AssetID
	}
	if tx.AssetFreeze != nil && tx.AssetFreeze.AssetID != nil {
		return *tx.AssetFreeze.AssetID
	}
	if tx.AssetConfiguration != nil && tx.AssetConfiguration.AssetID != nil {
		return *tx.AssetConfiguration.AssetID
	}
	if tx.ApplicationCall != nil {
		for _, assetID := range tx.ApplicationCall.ForeignAssets {
			if assetID != nil {
				return *assetID
			}
		}
	}
	return types.AlgoAssetID
}
