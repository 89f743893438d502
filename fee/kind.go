package fee

// TransactionKind is the category of an outgoing transaction, as far as fee
// and minimum balance checks are concerned
type TransactionKind int

const (
	// Send moves Algos or an asset to another account
	Send TransactionKind = iota
	// AssetAddition opts the sender in to an asset
	AssetAddition
	// AssetRemoval opts the sender out of an asset
	AssetRemoval
	// Rekey changes the account's authorized signing key
	Rekey
)

func (k TransactionKind) String() string {
	switch k {
	case Send:
		return "send"
	case AssetAddition:
		return "asset-addition"
	case AssetRemoval:
		return "asset-removal"
	case Rekey:
		return "rekey"
	default:
		return "unknown"
	}
}

// ParseTransactionKind maps a kind name back to its TransactionKind
func ParseTransactionKind(name string) (TransactionKind, bool) {
	switch name {
	case "send":
		return Send, true
	case "asset-addition", "opt-in":
		return AssetAddition, true
	case "asset-removal", "opt-out":
		return AssetRemoval, true
	case "rekey":
		return Rekey, true
	}
	return Send, false
}
