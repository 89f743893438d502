package types

// Account is a snapshot of an account's on-chain state
type Account struct {
	Address string `json:"address"`
	// Amount is the total balance in microAlgos
	Amount uint64 `json:"amount"`
	// MinBalance is the node-reported minimum balance, zero when unknown
	MinBalance       uint64         `json:"min-balance,omitempty"`
	Assets           []AssetHolding `json:"assets,omitempty"`
	TotalAppsOptedIn uint64         `json:"total-apps-opted-in,omitempty"`
	AuthAddress      string         `json:"auth-addr,omitempty"`
}

// AssetHolding is one opted-in asset of an account
type AssetHolding struct {
	AssetID  uint64 `json:"asset-id"`
	Amount   uint64 `json:"amount"`
	IsFrozen bool   `json:"is-frozen"`
}

// IsRekeyed reports whether another address signs for this account
func (a *Account) IsRekeyed() bool {
	return a.AuthAddress != "" && a.AuthAddress != a.Address
}

// HasAsset reports whether the account is opted in to assetID
func (a *Account) HasAsset(assetID uint64) bool {
	for _, holding := range a.Assets {
		if holding.AssetID == assetID {
			return true
		}
	}
	return false
}

// TransactionDraft is what the user composed on the send screen. It is
// consumed once by the fee calculator and the balance validator.
type TransactionDraft struct {
	SenderAddress     string
	AssetIndex        *uint64
	Amount            uint64
	Note              []byte
	IsAlgoTransaction bool
}
