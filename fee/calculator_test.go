package fee_test

import (
	"math"
	"testing"

	sdktypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/perawallet/pera-wallet-core/fee"
	"github.com/perawallet/pera-wallet-core/types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func createCalculator(minFee, feePerByte uint64) *fee.Calculator {
	params := &types.TransactionParams{
		MinFee:     minFee,
		FeePerByte: feePerByte,
		LastRound:  30000000,
		GenesisID:  "mainnet-v1.0",
	}
	return fee.NewCalculator(params, types.DefaultProtocolParams(), zap.NewNop())
}

func TestCalculator_ZeroFeePerByteShouldReturnMinFee(t *testing.T) {
	t.Parallel()

	calculator := createCalculator(1000, 0)
	assert.Equal(t, uint64(1000), calculator.Calculate(fee.Send, 250))
}

func TestCalculator_SizeFeeAboveFloorShouldWin(t *testing.T) {
	t.Parallel()

	calculator := createCalculator(1000, 10)
	assert.Equal(t, uint64(2500), calculator.Calculate(fee.Send, 250))
	assert.Equal(t, uint64(1000), calculator.Calculate(fee.Send, 99))
}

func TestCalculator_NeverBelowProtocolFloor(t *testing.T) {
	t.Parallel()

	kinds := []fee.TransactionKind{fee.Send, fee.AssetAddition, fee.AssetRemoval, fee.Rekey}
	calculators := []*fee.Calculator{
		createCalculator(0, 0),
		createCalculator(10, 1),
		createCalculator(1000, 3),
		fee.NewCalculator(nil, types.DefaultProtocolParams(), zap.NewNop()),
		fee.NewCalculator(nil, types.ProtocolParams{}, zap.NewNop()),
	}

	for _, calculator := range calculators {
		for _, kind := range kinds {
			for _, size := range []uint64{0, 1, 250, 1024, 1 << 20} {
				assert.GreaterOrEqual(t, calculator.Calculate(kind, size), types.MinTransactionFee)
			}
		}
	}
}

func TestCalculator_NodeMinFeeAboveFloorShouldApply(t *testing.T) {
	t.Parallel()

	calculator := createCalculator(2000, 0)
	assert.Equal(t, uint64(2000), calculator.MinFee())
	assert.Equal(t, uint64(2000), calculator.Calculate(fee.Rekey, 250))
}

func TestCalculator_OverflowShouldSaturate(t *testing.T) {
	t.Parallel()

	calculator := createCalculator(1000, math.MaxUint64)
	assert.Equal(t, uint64(math.MaxUint64), calculator.Calculate(fee.Send, 2))
}

func TestEstimateSignedSize_CountsPlaceholderSignature(t *testing.T) {
	t.Parallel()

	txn := sdktypes.Transaction{
		Type: sdktypes.PaymentTx,
		Header: sdktypes.Header{
			Fee:        1000,
			FirstValid: 1000,
			LastValid:  2000,
			GenesisID:  "mainnet-v1.0",
		},
		PaymentTxnFields: sdktypes.PaymentTxnFields{
			Amount: 600000,
		},
	}

	// 64 signature bytes plus the "sig" key and bin8 header
	size := fee.EstimateSignedSize(txn)
	assert.Greater(t, size, uint64(64+3+2))

	calculator := createCalculator(1000, 1000)
	assert.Equal(t, size*1000, calculator.CalculateForTransaction(fee.Send, txn))
}

func TestParseTransactionKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []fee.TransactionKind{fee.Send, fee.AssetAddition, fee.AssetRemoval, fee.Rekey} {
		parsed, ok := fee.ParseTransactionKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, parsed)
	}

	parsed, ok := fee.ParseTransactionKind("opt-in")
	assert.True(t, ok)
	assert.Equal(t, fee.AssetAddition, parsed)

	_, ok = fee.ParseTransactionKind("transfer")
	assert.False(t, ok)
}
