package decoder

import (
	"math/big"
	"time"
)

// BaseTransactionDetail is a display-ready transaction. Exactly one of the
// *TransactionDetail types below implements it per transaction, and Type
// tells which.
type BaseTransactionDetail interface {
	Type() RawTransactionType
	Base() *TransactionDetailBase
	// Amount is the moved amount in the base unit of the asset, nil when
	// the kind carries none
	Amount() *big.Int
}

// TransactionDetailBase holds the fields every transaction kind carries
type TransactionDetailBase struct {
	ID              string
	Signature       string
	SenderAddress   string
	ReceiverAddress string
	CloseToAddress  string
	RekeyToAddress  string
	GroupID         string
	RoundTimestamp  *time.Time
	ConfirmedRound  uint64
	Fee             uint64
	Note            []byte
}

// Base returns the shared fields
func (b *TransactionDetailBase) Base() *TransactionDetailBase {
	return b
}

// IsRekey reports whether the transaction rekeyed its sender
func (b *TransactionDetailBase) IsRekey() bool {
	return b.RekeyToAddress != ""
}

// IsCloseTo reports whether the transaction closed out the sender's holding
func (b *TransactionDetailBase) IsCloseTo() bool {
	return b.CloseToAddress != ""
}

// PaymentTransactionDetail is a mapped Algo payment
type PaymentTransactionDetail struct {
	TransactionDetailBase
	TransactionAmount *big.Int
	CloseAmount       *big.Int
}

// Type returns PayTransaction
func (*PaymentTransactionDetail) Type() RawTransactionType { return PayTransaction }

func (d *PaymentTransactionDetail) Amount() *big.Int { return d.TransactionAmount }

// AssetTransferTransactionDetail is a mapped asset transfer, opt-in or clawback
type AssetTransferTransactionDetail struct {
	TransactionDetailBase
	TransactionAmount *big.Int
	CloseAmount       *big.Int
	AssetID           uint64
	// ClawbackAddress is the account assets were revoked from, if any
	ClawbackAddress string
}

// Type returns AssetTransaction
func (*AssetTransferTransactionDetail) Type() RawTransactionType { return AssetTransaction }

func (d *AssetTransferTransactionDetail) Amount() *big.Int { return d.TransactionAmount }

// IsOptIn reports whether the transfer is an asset opt-in: a zero amount
// sent by an account to itself
func (d *AssetTransferTransactionDetail) IsOptIn() bool {
	return d.SenderAddress != "" &&
		d.SenderAddress == d.ReceiverAddress &&
		d.TransactionAmount != nil && d.TransactionAmount.Sign() == 0 &&
		d.CloseToAddress == ""
}

// AssetConfigurationTransactionDetail never carries an amount;
// TransactionAmount is always nil.
type AssetConfigurationTransactionDetail struct {
	TransactionDetailBase
	TransactionAmount *big.Int
	AssetID           *uint64
	Name              string
	UnitName          string
	URL               string
	Total             *big.Int
	Decimals          *uint64
	CreatorAddress    string
	ManagerAddress    string
}

// Type returns AssetConfiguration
func (*AssetConfigurationTransactionDetail) Type() RawTransactionType { return AssetConfiguration }

func (d *AssetConfigurationTransactionDetail) Amount() *big.Int { return d.TransactionAmount }

// IsCreation reports whether the transaction created a new asset
func (d *AssetConfigurationTransactionDetail) IsCreation() bool {
	return d.AssetID == nil || *d.AssetID == 0
}

// ApplicationCallTransactionDetail is a mapped application call with its
// inner transactions
type ApplicationCallTransactionDetail struct {
	TransactionDetailBase
	// TransactionAmount follows the same payment then asset transfer
	// fallback as the other kinds
	TransactionAmount *big.Int
	ApplicationID     uint64
	OnCompletion      string
	ApplicationArgs   [][]byte
	ForeignAssetIDs   []uint64
	ForeignAppIDs     []uint64
	Accounts          []string
	// InnerTransactions holds the mapped direct children. Deeper levels are
	// reachable through each child's own InnerTransactions.
	InnerTransactions []BaseTransactionDetail
	// InnerTransactionCount counts every nested transaction, not only
	// direct children
	InnerTransactionCount int
}

// Type returns AppTransaction
func (*ApplicationCallTransactionDetail) Type() RawTransactionType { return AppTransaction }

func (d *ApplicationCallTransactionDetail) Amount() *big.Int { return d.TransactionAmount }

// UndefinedTransactionDetail keeps the shared fields of a transaction whose
// kind is not recognised
type UndefinedTransactionDetail struct {
	TransactionDetailBase
	TransactionAmount *big.Int
	// RawType is the tx-type tag as received
	RawType string
}

// Type returns Undefined
func (*UndefinedTransactionDetail) Type() RawTransactionType { return Undefined }

func (d *UndefinedTransactionDetail) Amount() *big.Int { return d.TransactionAmount }
