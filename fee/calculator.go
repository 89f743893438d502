package fee

import (
	"math/bits"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	sdktypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/perawallet/pera-wallet-core/types"
	"go.uber.org/zap"
)

// placeholderSignature stands in for the real signature when sizing a
// transaction that is not signed yet. msgpack omits zero values, so the
// bytes must be non-zero for the signature to be counted.
var placeholderSignature = func() sdktypes.Signature {
	var sig sdktypes.Signature
	for i := range sig {
		sig[i] = 0xff
	}
	return sig
}()

// Calculator computes the network fee of a transaction from its encoded size
type Calculator struct {
	params *types.TransactionParams
	floor  uint64
	logger *zap.Logger
}

// NewCalculator creates a fee calculator. A nil params falls back to the
// protocol minimum fee for every transaction.
func NewCalculator(params *types.TransactionParams, protocol types.ProtocolParams, logger *zap.Logger) *Calculator {
	floor := protocol.MinFee
	if floor == 0 {
		floor = types.MinTransactionFee
	}

	return &Calculator{
		params: params,
		floor:  floor,
		logger: logger,
	}
}

// MinFee returns the fee floor applied by Calculate
func (c *Calculator) MinFee() uint64 {
	return c.params.EffectiveMinFee(c.floor)
}

// Calculate returns max(minFee, encodedSizeBytes * feePerByte). The size
// must be that of the signed transaction.
func (c *Calculator) Calculate(kind TransactionKind, encodedSizeBytes uint64) uint64 {
	minFee := c.MinFee()

	var feePerByte uint64
	if c.params != nil {
		feePerByte = c.params.FeePerByte
	}

	hi, sizeFee := bits.Mul64(encodedSizeBytes, feePerByte)
	if hi != 0 {
		sizeFee = ^uint64(0)
	}

	fee := minFee
	if sizeFee > fee {
		fee = sizeFee
	}

	c.logger.Debug("calculated transaction fee",
		zap.Stringer("kind", kind),
		zap.Uint64("encoded_size", encodedSizeBytes),
		zap.Uint64("fee_per_byte", feePerByte),
		zap.Uint64("fee", fee))

	return fee
}

// CalculateForTransaction sizes txn as if it were signed and returns its fee
func (c *Calculator) CalculateForTransaction(kind TransactionKind, txn sdktypes.Transaction) uint64 {
	return c.Calculate(kind, EstimateSignedSize(txn))
}

// EstimateSignedSize returns the msgpack length of txn wrapped in a signed
// envelope carrying a placeholder signature
func EstimateSignedSize(txn sdktypes.Transaction) uint64 {
	stx := sdktypes.SignedTxn{
		Sig: placeholderSignature,
		Txn: txn,
	}
	return uint64(len(msgpack.Encode(stx)))
}
