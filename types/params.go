package types

// Protocol constants, in microAlgos unless stated otherwise
const (
	MinTransactionFee        uint64 = 1000
	MinAccountBalance        uint64 = 100000
	AssetMinBalanceIncrement uint64 = 100000
	AppMinBalanceIncrement   uint64 = 100000
	MaxInnerTransactionDepth        = 8
	AlgoAssetID              uint64 = 0
	AlgoDecimals             int32  = 6
)

// TransactionParams are the suggested parameters served by the node for
// building a new transaction
type TransactionParams struct {
	MinFee      uint64 `json:"min-fee"`
	FeePerByte  uint64 `json:"fee"`
	LastRound   uint64 `json:"last-round"`
	GenesisHash []byte `json:"genesis-hash"`
	GenesisID   string `json:"genesis-id"`
}

// ProtocolParams groups the consensus values the fee and balance checks
// depend on
type ProtocolParams struct {
	MinFee                   uint64
	MinBalance               uint64
	AssetMinBalanceIncrement uint64
	AppMinBalanceIncrement   uint64
	MaxInnerTransactionDepth int
}

// DefaultProtocolParams returns the current mainnet consensus values
func DefaultProtocolParams() ProtocolParams {
	return ProtocolParams{
		MinFee:                   MinTransactionFee,
		MinBalance:               MinAccountBalance,
		AssetMinBalanceIncrement: AssetMinBalanceIncrement,
		AppMinBalanceIncrement:   AppMinBalanceIncrement,
		MaxInnerTransactionDepth: MaxInnerTransactionDepth,
	}
}

// EffectiveMinFee returns the node-suggested minimum fee, or the protocol
// floor when the node did not report one or reported less
func (p *TransactionParams) EffectiveMinFee(floor uint64) uint64 {
	if p == nil || p.MinFee < floor {
		return floor
	}
	return p.MinFee
}
