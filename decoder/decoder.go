package decoder

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	sdktypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/perawallet/pera-wallet-core/types"
	"go.uber.org/zap"
)

var (
	ErrEmptyPayload         = errors.New("empty transaction payload")
	ErrMalformedTransaction = errors.New("malformed transaction")
)

// Decoder turns wire payloads into raw transaction records and maps them
type Decoder struct {
	logger *zap.Logger
	mapper *Mapper
}

// NewDecoder creates a new decoder
func NewDecoder(protocol types.ProtocolParams, logger *zap.Logger) *Decoder {
	return &Decoder{
		logger: logger,
		mapper: NewMapper(protocol, logger),
	}
}

// Mapper returns the mapper used by MapTransaction* methods
func (d *Decoder) Mapper() *Mapper {
	return d.mapper
}

// DecodeRawTransactionJSON decodes an indexer transaction record. Both the
// bare record and the {"transaction": ...} lookup envelope are accepted.
func (d *Decoder) DecodeRawTransactionJSON(data []byte) (*types.RawTransaction, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	var envelope struct {
		Transaction *types.RawTransaction `json:"transaction"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding transaction json: %w", err)
	}
	if envelope.Transaction != nil {
		return envelope.Transaction, nil
	}

	tx := &types.RawTransaction{}
	if err := json.Unmarshal(data, tx); err != nil {
		return nil, fmt.Errorf("decoding transaction json: %w", err)
	}
	return tx, nil
}

// DecodeRawTransactionsJSON decodes an indexer {"transactions": [...]} page
func (d *Decoder) DecodeRawTransactionsJSON(data []byte) ([]types.RawTransaction, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	var page struct {
		Transactions []types.RawTransaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decoding transactions page: %w", err)
	}
	return page.Transactions, nil
}

// DecodeSignedTransactionFromBase64 decodes a base64 msgpack signed transaction
func (d *Decoder) DecodeSignedTransactionFromBase64(blob string) (*types.RawTransaction, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 transaction blob: %w", err)
	}
	return d.DecodeSignedTransaction(raw)
}

// DecodeSignedTransaction decodes a msgpack signed transaction into the
// record shape served by the indexer
func (d *Decoder) DecodeSignedTransaction(blob []byte) (*types.RawTransaction, error) {
	if len(blob) == 0 {
		return nil, ErrEmptyPayload
	}

	var stx sdktypes.SignedTxn
	if err := msgpack.Decode(blob, &stx); err != nil {
		return nil, fmt.Errorf("decoding signed transaction: %w", err)
	}
	if stx.Txn.Type == "" {
		return nil, fmt.Errorf("%w: missing transaction type", ErrMalformedTransaction)
	}

	tx := rawTransactionFromSigned(stx)
	d.logger.Debug("decoded signed transaction",
		zap.String("tx_id", tx.ID),
		zap.String("tx_type", tx.TxType),
		zap.Int("size", len(blob)))

	return tx, nil
}

// MapTransactionFromBase64 decodes a base64 msgpack signed transaction and maps it
func (d *Decoder) MapTransactionFromBase64(blob string) (BaseTransactionDetail, error) {
	tx, err := d.DecodeSignedTransactionFromBase64(blob)
	if err != nil {
		return nil, err
	}
	return d.mapper.MapTransaction(tx), nil
}

// MapTransactionFromJSON decodes an indexer transaction record and maps it
func (d *Decoder) MapTransactionFromJSON(data []byte) (BaseTransactionDetail, error) {
	tx, err := d.DecodeRawTransactionJSON(data)
	if err != nil {
		return nil, err
	}
	return d.mapper.MapTransaction(tx), nil
}

func rawTransactionFromSigned(stx sdktypes.SignedTxn) *types.RawTransaction {
	txn := stx.Txn
	// an omitted fee key is a zero fee covered by the group, keep it
	fee := uint64(txn.Fee)

	tx := &types.RawTransaction{
		ID:      crypto.GetTxID(txn),
		Sender:  addressString(txn.Sender),
		Fee:     &fee,
		Note:    txn.Note,
		TxType:  string(txn.Type),
		RekeyTo: addressString(txn.RekeyTo),
	}

	if stx.Sig != (sdktypes.Signature{}) {
		tx.Signature = &types.TransactionSignature{Sig: base64.StdEncoding.EncodeToString(stx.Sig[:])}
	}
	if txn.Group != (sdktypes.Digest{}) {
		tx.Group = base64.StdEncoding.EncodeToString(txn.Group[:])
	}

	switch txn.Type {
	case sdktypes.PaymentTx:
		amount := uint64(txn.Amount)
		tx.Payment = &types.PaymentTransaction{
			Receiver:         addressString(txn.Receiver),
			Amount:           &amount,
			CloseRemainderTo: addressString(txn.CloseRemainderTo),
		}
	case sdktypes.AssetTransferTx:
		amount := txn.AssetAmount
		assetID := uint64(txn.XferAsset)
		tx.AssetTransfer = &types.AssetTransferTransaction{
			Receiver: addressString(txn.AssetReceiver),
			Amount:   &amount,
			AssetID:  &assetID,
			CloseTo:  addressString(txn.AssetCloseTo),
			Sender:   addressString(txn.AssetSender),
		}
	case sdktypes.AssetFreezeTx:
		assetID := uint64(txn.FreezeAsset)
		tx.AssetFreeze = &types.AssetFreezeTransaction{
			Address:         addressString(txn.FreezeAccount),
			AssetID:         &assetID,
			NewFreezeStatus: txn.AssetFrozen,
		}
	case sdktypes.AssetConfigTx:
		tx.AssetConfiguration = assetConfigurationFromTxn(txn)
	case sdktypes.ApplicationCallTx:
		tx.ApplicationCall = applicationCallFromTxn(txn)
	}

	return tx
}

func assetConfigurationFromTxn(txn sdktypes.Transaction) *types.AssetConfigurationTransaction {
	config := &types.AssetConfigurationTransaction{}
	if txn.ConfigAsset != 0 {
		assetID := uint64(txn.ConfigAsset)
		config.AssetID = &assetID
	}

	// a reconfiguration with empty params destroys the asset
	if txn.AssetParams == (sdktypes.AssetParams{}) {
		return config
	}

	total := txn.AssetParams.Total
	decimals := uint64(txn.AssetParams.Decimals)
	config.Params = &types.AssetParams{
		Name:          txn.AssetParams.AssetName,
		UnitName:      txn.AssetParams.UnitName,
		URL:           txn.AssetParams.URL,
		Total:         &total,
		Decimals:      &decimals,
		DefaultFrozen: txn.AssetParams.DefaultFrozen,
		Manager:       addressString(txn.AssetParams.Manager),
		Reserve:       addressString(txn.AssetParams.Reserve),
		Freeze:        addressString(txn.AssetParams.Freeze),
		Clawback:      addressString(txn.AssetParams.Clawback),
	}
	if txn.ConfigAsset == 0 {
		config.Params.Creator = addressString(txn.Sender)
	}
	return config
}

func applicationCallFromTxn(txn sdktypes.Transaction) *types.ApplicationCallTransaction {
	appID := uint64(txn.ApplicationID)
	call := &types.ApplicationCallTransaction{
		ApplicationID:   &appID,
		OnCompletion:    onCompletionName(txn.OnCompletion),
		ApplicationArgs: txn.ApplicationArgs,
	}

	for _, account := range txn.Accounts {
		call.Accounts = append(call.Accounts, addressString(account))
	}
	for _, app := range txn.ForeignApps {
		call.ForeignApps = append(call.ForeignApps, uint64(app))
	}
	for _, asset := range txn.ForeignAssets {
		assetID := uint64(asset)
		call.ForeignAssets = append(call.ForeignAssets, &assetID)
	}
	return call
}

// onCompletionName returns the indexer name of an on-completion action
func onCompletionName(oc sdktypes.OnCompletion) string {
	switch oc {
	case sdktypes.NoOpOC:
		return "noop"
	case sdktypes.OptInOC:
		return "optin"
	case sdktypes.CloseOutOC:
		return "closeout"
	case sdktypes.ClearStateOC:
		return "clear"
	case sdktypes.UpdateApplicationOC:
		return "update"
	case sdktypes.DeleteApplicationOC:
		return "delete"
	default:
		return ""
	}
}

func addressString(addr sdktypes.Address) string {
	if addr == (sdktypes.Address{}) {
		return ""
	}
	return addr.String()
}
