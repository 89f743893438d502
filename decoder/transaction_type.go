package decoder

import (
	sdktypes "github.com/algorand/go-algorand-sdk/v2/types"
)

// RawTransactionType is the kind a fetched transaction is displayed as
type RawTransactionType int

const (
	// PayTransaction is an Algo payment ("pay")
	PayTransaction RawTransactionType = iota
	// AssetTransaction is an asset transfer, opt-in or opt-out ("axfer")
	AssetTransaction
	// AppTransaction is an application call ("appl")
	AppTransaction
	// AssetConfiguration creates, reconfigures or destroys an asset ("acfg")
	AssetConfiguration
	// Undefined is every other tag
	Undefined
)

// UndefinedTag is the tag sent for transactions the backend could not classify
const UndefinedTag = "UNDEFINED"

func (t RawTransactionType) String() string {
	switch t {
	case PayTransaction:
		return "PAY_TRANSACTION"
	case AssetTransaction:
		return "ASSET_TRANSACTION"
	case AppTransaction:
		return "APP_TRANSACTION"
	case AssetConfiguration:
		return "ASSET_CONFIGURATION"
	default:
		return "UNDEFINED"
	}
}

// Tag returns the wire tag of the type
func (t RawTransactionType) Tag() string {
	switch t {
	case PayTransaction:
		return string(sdktypes.PaymentTx)
	case AssetTransaction:
		return string(sdktypes.AssetTransferTx)
	case AppTransaction:
		return string(sdktypes.ApplicationCallTx)
	case AssetConfiguration:
		return string(sdktypes.AssetConfigTx)
	default:
		return UndefinedTag
	}
}

// DecideRawTransactionType maps a wire tx-type tag to its RawTransactionType.
// Any unknown tag, including keyreg and afrz, is Undefined.
func DecideRawTransactionType(tag string) RawTransactionType {
	switch sdktypes.TxType(tag) {
	case sdktypes.PaymentTx:
		return PayTransaction
	case sdktypes.AssetTransferTx:
		return AssetTransaction
	case sdktypes.ApplicationCallTx:
		return AppTransaction
	case sdktypes.AssetConfigTx:
		return AssetConfiguration
	default:
		return Undefined
	}
}
