package decoder

import (
	"math/big"

	"github.com/perawallet/pera-wallet-core/types"
	"github.com/perawallet/pera-wallet-core/utils"
	"go.uber.org/zap"
)

// Mapper projects raw transaction records into kind-specific details
type Mapper struct {
	protocol types.ProtocolParams
	logger   *zap.Logger
}

// NewMapper creates a new mapper
func NewMapper(protocol types.ProtocolParams, logger *zap.Logger) *Mapper {
	if protocol.MinFee == 0 {
		protocol.MinFee = types.MinTransactionFee
	}
	if protocol.MaxInnerTransactionDepth <= 0 {
		protocol.MaxInnerTransactionDepth = types.MaxInnerTransactionDepth
	}

	return &Mapper{
		protocol: protocol,
		logger:   logger,
	}
}

// MapTransaction decides the kind of tx and maps it, inner transactions included.
// This is the main entry point for mapping a fetched transaction.
func (m *Mapper) MapTransaction(tx *types.RawTransaction) BaseTransactionDetail {
	return m.mapTransaction(tx, 0)
}

func (m *Mapper) mapTransaction(tx *types.RawTransaction, depth int) BaseTransactionDetail {
	switch DecideRawTransactionType(tx.TxType) {
	case PayTransaction:
		return m.MapToPaymentTransactionDetail(tx)
	case AssetTransaction:
		return m.MapToAssetTransferTransactionDetail(tx)
	case AssetConfiguration:
		return m.MapToAssetConfigurationTransactionDetail(tx)
	case AppTransaction:
		return m.MapToApplicationCallTransactionDetail(tx, m.mapInnerTransactions(tx, depth))
	default:
		return m.MapToUndefinedTransactionDetail(tx)
	}
}

// mapInnerTransactions maps the children of tx. Levels past the protocol
// nesting limit are not followed.
func (m *Mapper) mapInnerTransactions(tx *types.RawTransaction, depth int) []BaseTransactionDetail {
	if len(tx.InnerTransactions) == 0 {
		return nil
	}
	if depth >= m.protocol.MaxInnerTransactionDepth {
		m.logger.Warn("inner transactions nested past protocol limit, not mapped",
			zap.String("tx_id", tx.ID),
			zap.Int("depth", depth),
			zap.Int("max_depth", m.protocol.MaxInnerTransactionDepth))
		return nil
	}

	inner := make([]BaseTransactionDetail, 0, len(tx.InnerTransactions))
	for i := range tx.InnerTransactions {
		inner = append(inner, m.mapTransaction(&tx.InnerTransactions[i], depth+1))
	}
	return inner
}

// MapToPaymentTransactionDetail maps a payment
func (m *Mapper) MapToPaymentTransactionDetail(tx *types.RawTransaction) *PaymentTransactionDetail {
	detail := &PaymentTransactionDetail{
		TransactionDetailBase: m.mapBase(tx),
		TransactionAmount:     resolveTransactionAmount(tx),
	}
	if tx.Payment != nil {
		detail.CloseAmount = bigFromUint64Ptr(tx.Payment.CloseAmount)
	}
	return detail
}

// MapToAssetTransferTransactionDetail maps an asset transfer
func (m *Mapper) MapToAssetTransferTransactionDetail(tx *types.RawTransaction) *AssetTransferTransactionDetail {
	detail := &AssetTransferTransactionDetail{
		TransactionDetailBase: m.mapBase(tx),
		TransactionAmount:     resolveTransactionAmount(tx),
		AssetID:               resolveAssetID(tx),
	}
	if tx.AssetTransfer != nil {
		detail.CloseAmount = bigFromUint64Ptr(tx.AssetTransfer.CloseAmount)
		detail.ClawbackAddress = tx.AssetTransfer.Sender
	}
	return detail
}

// MapToAssetConfigurationTransactionDetail maps an asset configuration, leaving the amount nil
func (m *Mapper) MapToAssetConfigurationTransactionDetail(tx *types.RawTransaction) *AssetConfigurationTransactionDetail {
	detail := &AssetConfigurationTransactionDetail{
		TransactionDetailBase: m.mapBase(tx),
	}

	config := tx.AssetConfiguration
	if config == nil {
		return detail
	}

	detail.AssetID = copyUint64Ptr(config.AssetID)
	if params := config.Params; params != nil {
		detail.Name = params.Name
		detail.UnitName = params.UnitName
		detail.URL = params.URL
		detail.Total = bigFromUint64Ptr(params.Total)
		detail.Decimals = copyUint64Ptr(params.Decimals)
		detail.CreatorAddress = params.Creator
		detail.ManagerAddress = params.Manager
	}
	return detail
}

// MapToApplicationCallTransactionDetail maps an application call. inner holds
// the already mapped direct children of tx.
func (m *Mapper) MapToApplicationCallTransactionDetail(tx *types.RawTransaction, inner []BaseTransactionDetail) *ApplicationCallTransactionDetail {
	detail := &ApplicationCallTransactionDetail{
		TransactionDetailBase: m.mapBase(tx),
		TransactionAmount:     resolveTransactionAmount(tx),
		InnerTransactions:     inner,
		InnerTransactionCount: CountInnerTransactions(tx),
	}

	call := tx.ApplicationCall
	if call == nil {
		return detail
	}

	if call.ApplicationID != nil {
		detail.ApplicationID = *call.ApplicationID
	}
	detail.OnCompletion = call.OnCompletion
	detail.ForeignAppIDs = append([]uint64(nil), call.ForeignApps...)
	detail.Accounts = append([]string(nil), call.Accounts...)
	for _, arg := range call.ApplicationArgs {
		detail.ApplicationArgs = append(detail.ApplicationArgs, append([]byte(nil), arg...))
	}
	for _, assetID := range call.ForeignAssets {
		if assetID != nil {
			detail.ForeignAssetIDs = append(detail.ForeignAssetIDs, *assetID)
		}
	}
	return detail
}

// MapToUndefinedTransactionDetail maps the shared fields of an unrecognised transaction
func (m *Mapper) MapToUndefinedTransactionDetail(tx *types.RawTransaction) *UndefinedTransactionDetail {
	return &UndefinedTransactionDetail{
		TransactionDetailBase: m.mapBase(tx),
		TransactionAmount:     resolveTransactionAmount(tx),
		RawType:               tx.TxType,
	}
}

func (m *Mapper) mapBase(tx *types.RawTransaction) TransactionDetailBase {
	base := TransactionDetailBase{
		ID:              tx.ID,
		SenderAddress:   tx.Sender,
		ReceiverAddress: resolveReceiverAddress(tx),
		CloseToAddress:  resolveCloseToAddress(tx),
		RekeyToAddress:  tx.RekeyTo,
		GroupID:         tx.Group,
		Fee:             m.protocol.MinFee,
		Note:            append([]byte(nil), tx.Note...),
	}

	if tx.Signature != nil {
		base.Signature = tx.Signature.Sig
	}
	if tx.Fee != nil {
		base.Fee = *tx.Fee
	}
	if tx.RoundTime != nil {
		roundTime := utils.RoundTimeToTime(*tx.RoundTime)
		base.RoundTimestamp = &roundTime
	}
	if tx.ConfirmedRound != nil {
		base.ConfirmedRound = *tx.ConfirmedRound
	}

	return base
}

// CountInnerTransactions returns the number of transactions nested under tx
// at any depth
func CountInnerTransactions(tx *types.RawTransaction) int {
	count := 0
	for i := range tx.InnerTransactions {
		count += 1 + CountInnerTransactions(&tx.InnerTransactions[i])
	}
	return count
}

func copyUint64Ptr(value *uint64) *uint64 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func bigFromUint64Ptr(value *uint64) *big.Int {
	if value == nil {
		return nil
	}
	return new(big.Int).SetUint64(*value)
}
