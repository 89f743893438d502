package types

// RawTransaction is a fetched transaction record as served by the indexer.
// A single shape is shared by every transaction kind: only the sub-object
// matching TxType is expected to be populated, but nothing guarantees it.
type RawTransaction struct {
	ID             string                `json:"id,omitempty"`
	Signature      *TransactionSignature `json:"signature,omitempty"`
	Sender         string                `json:"sender,omitempty"`
	Fee            *uint64               `json:"fee,omitempty"`
	Note           []byte                `json:"note,omitempty"` // base64 on the wire
	Group          string                `json:"group,omitempty"`
	TxType         string                `json:"tx-type,omitempty"`
	RoundTime      *int64                `json:"round-time,omitempty"` // unix seconds
	ConfirmedRound *uint64               `json:"confirmed-round,omitempty"`
	RekeyTo        string                `json:"rekey-to,omitempty"`

	Payment            *PaymentTransaction            `json:"payment-transaction,omitempty"`
	AssetTransfer      *AssetTransferTransaction      `json:"asset-transfer-transaction,omitempty"`
	AssetFreeze        *AssetFreezeTransaction        `json:"asset-freeze-transaction,omitempty"`
	AssetConfiguration *AssetConfigurationTransaction `json:"asset-config-transaction,omitempty"`
	ApplicationCall    *ApplicationCallTransaction    `json:"application-transaction,omitempty"`

	InnerTransactions []RawTransaction `json:"inner-txns,omitempty"`
}

// TransactionSignature holds the single-key signature of a transaction
type TransactionSignature struct {
	Sig string `json:"sig,omitempty"`
}

// PaymentTransaction holds the fields of a "pay" transaction
type PaymentTransaction struct {
	Receiver         string  `json:"receiver,omitempty"`
	Amount           *uint64 `json:"amount,omitempty"`
	CloseRemainderTo string  `json:"close-remainder-to,omitempty"`
	CloseAmount      *uint64 `json:"close-amount,omitempty"`
}

// AssetTransferTransaction holds the fields of an "axfer" transaction
type AssetTransferTransaction struct {
	Receiver    string  `json:"receiver,omitempty"`
	Amount      *uint64 `json:"amount,omitempty"`
	AssetID     *uint64 `json:"asset-id,omitempty"`
	CloseTo     string  `json:"close-to,omitempty"`
	CloseAmount *uint64 `json:"close-amount,omitempty"`
	// Sender is only set for clawback transfers
	Sender string `json:"sender,omitempty"`
}

// AssetFreezeTransaction holds the fields of an "afrz" transaction
type AssetFreezeTransaction struct {
	Address         string  `json:"address,omitempty"`
	AssetID         *uint64 `json:"asset-id,omitempty"`
	NewFreezeStatus bool    `json:"new-freeze-status,omitempty"`
}

// AssetConfigurationTransaction holds the fields of an "acfg" transaction
type AssetConfigurationTransaction struct {
	AssetID *uint64      `json:"asset-id,omitempty"`
	Params  *AssetParams `json:"params,omitempty"`
}

// AssetParams describes an asset as created or reconfigured by "acfg"
type AssetParams struct {
	Creator       string  `json:"creator,omitempty"`
	Name          string  `json:"name,omitempty"`
	UnitName      string  `json:"unit-name,omitempty"`
	URL           string  `json:"url,omitempty"`
	Total         *uint64 `json:"total,omitempty"`
	Decimals      *uint64 `json:"decimals,omitempty"`
	DefaultFrozen bool    `json:"default-frozen,omitempty"`
	Manager       string  `json:"manager,omitempty"`
	Reserve       string  `json:"reserve,omitempty"`
	Freeze        string  `json:"freeze,omitempty"`
	Clawback      string  `json:"clawback,omitempty"`
}

// ApplicationCallTransaction holds the fields of an "appl" transaction
type ApplicationCallTransaction struct {
	ApplicationID   *uint64   `json:"application-id,omitempty"`
	OnCompletion    string    `json:"on-completion,omitempty"`
	ApplicationArgs [][]byte  `json:"application-args,omitempty"`
	Accounts        []string  `json:"accounts,omitempty"`
	ForeignApps     []uint64  `json:"foreign-apps,omitempty"`
	ForeignAssets   []*uint64 `json:"foreign-assets,omitempty"`
}
