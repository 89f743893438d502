package utils

import (
	"fmt"
	"math/big"
	"time"

	"github.com/perawallet/pera-wallet-core/types"
	"github.com/shopspring/decimal"
)

// RoundTimeToTime converts an indexer round-time (unix seconds) to time.Time
func RoundTimeToTime(roundTime int64) time.Time {
	return time.Unix(roundTime, 0).UTC()
}

// MicroAlgosToAlgos converts microAlgos to Algos (1 Algo = 1,000,000 microAlgos)
func MicroAlgosToAlgos(microAlgos uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(microAlgos), -types.AlgoDecimals)
}

// FormatAlgos renders a microAlgo amount with the full six decimals
func FormatAlgos(microAlgos uint64) string {
	return MicroAlgosToAlgos(microAlgos).StringFixed(types.AlgoDecimals)
}

// FormatAssetAmount renders a base-unit amount of an asset with the given decimals
func FormatAssetAmount(amount *big.Int, decimals int32) string {
	if amount == nil {
		return ""
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}

// AlgosToMicroAlgos parses an Algo amount such as "1.5" into microAlgos.
// More than six decimals is rejected rather than rounded.
func AlgosToMicroAlgos(algos string) (uint64, error) {
	d, err := decimal.NewFromString(algos)
	if err != nil {
		return 0, fmt.Errorf("parsing algo amount %q: %w", algos, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative algo amount %q", algos)
	}

	micro := d.Shift(types.AlgoDecimals)
	if !micro.Equal(micro.Truncate(0)) {
		return 0, fmt.Errorf("algo amount %q has more than %d decimals", algos, types.AlgoDecimals)
	}
	if !micro.BigInt().IsUint64() {
		return 0, fmt.Errorf("algo amount %q overflows", algos)
	}

	return micro.BigInt().Uint64(), nil
}
