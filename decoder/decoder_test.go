package decoder_test

import (
	"encoding/base64"
	"errors"
	"math/big"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	sdktypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/perawallet/pera-wallet-core/decoder"
	"github.com/perawallet/pera-wallet-core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const indexerPaymentRecord = `{
  "current-round": 33000100,
  "transaction": {
    "id": "PAYTXID",
    "tx-type": "pay",
    "sender": "SENDER",
    "fee": 1000,
    "note": "aGVsbG8=",
    "round-time": 1700000000,
    "confirmed-round": 33000000,
    "signature": {"sig": "c2ln"},
    "payment-transaction": {"receiver": "RECEIVER", "amount": 600000, "close-amount": 0}
  }
}`

const indexerTransactionsPage = `{
  "transactions": [
    {"id": "A", "tx-type": "axfer", "asset-transfer-transaction": {"receiver": "R", "amount": 5000, "asset-id": 31566704}},
    {"id": "B", "tx-type": "appl", "application-transaction": {"application-id": 1, "foreign-assets": [31566704]},
     "inner-txns": [{"tx-type": "pay", "payment-transaction": {"receiver": "R", "amount": 1}}]}
  ]
}`

func createDecoder() *decoder.Decoder {
	return decoder.NewDecoder(types.DefaultProtocolParams(), zap.NewNop())
}

func addressFromByte(b byte) sdktypes.Address {
	var addr sdktypes.Address
	for i := range addr {
		addr[i] = b
	}
	return addr
}

func TestDecodeRawTransactionJSON_LookupEnvelope(t *testing.T) {
	t.Parallel()

	tx, err := createDecoder().DecodeRawTransactionJSON([]byte(indexerPaymentRecord))
	require.NoError(t, err)

	assert.Equal(t, "PAYTXID", tx.ID)
	assert.Equal(t, "pay", tx.TxType)
	assert.Equal(t, []byte("hello"), tx.Note)
	require.NotNil(t, tx.Payment)
	assert.Equal(t, uint64(600000), *tx.Payment.Amount)
	assert.Nil(t, tx.AssetTransfer)
}

func TestDecodeRawTransactionJSON_BareRecord(t *testing.T) {
	t.Parallel()

	tx, err := createDecoder().DecodeRawTransactionJSON([]byte(`{"id": "X", "tx-type": "UNDEFINED"}`))
	require.NoError(t, err)
	assert.Equal(t, "X", tx.ID)
	assert.Equal(t, decoder.Undefined, decoder.DecideRawTransactionType(tx.TxType))
}

func TestDecodeRawTransactionJSON_InvalidPayloadShouldErr(t *testing.T) {
	t.Parallel()

	dec := createDecoder()

	_, err := dec.DecodeRawTransactionJSON([]byte("  "))
	assert.True(t, errors.Is(err, decoder.ErrEmptyPayload))

	_, err = dec.DecodeRawTransactionJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeRawTransactionsJSON(t *testing.T) {
	t.Parallel()

	txs, err := createDecoder().DecodeRawTransactionsJSON([]byte(indexerTransactionsPage))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, []*uint64{u64(31566704)}, txs[1].ApplicationCall.ForeignAssets)
	assert.Equal(t, 1, decoder.CountInnerTransactions(&txs[1]))
}

func TestMapTransactionFromJSON(t *testing.T) {
	t.Parallel()

	detail, err := createDecoder().MapTransactionFromJSON([]byte(indexerPaymentRecord))
	require.NoError(t, err)

	payment, ok := detail.(*decoder.PaymentTransactionDetail)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(600000), payment.TransactionAmount)
	assert.Equal(t, "RECEIVER", payment.ReceiverAddress)
	assert.Equal(t, big.NewInt(0), payment.CloseAmount)
}

func TestDecodeSignedTransaction_Payment(t *testing.T) {
	t.Parallel()

	sender := addressFromByte(1)
	receiver := addressFromByte(2)
	txn := sdktypes.Transaction{
		Type: sdktypes.PaymentTx,
		Header: sdktypes.Header{
			Sender:     sender,
			Fee:        1000,
			FirstValid: 100,
			LastValid:  1100,
			Note:       []byte("note"),
			GenesisID:  "testnet-v1.0",
			RekeyTo:    receiver,
		},
		PaymentTxnFields: sdktypes.PaymentTxnFields{
			Receiver: receiver,
			Amount:   600000,
		},
	}
	var sig sdktypes.Signature
	sig[0] = 7
	blob := msgpack.Encode(sdktypes.SignedTxn{Sig: sig, Txn: txn})

	tx, err := createDecoder().DecodeSignedTransactionFromBase64(base64.StdEncoding.EncodeToString(blob))
	require.NoError(t, err)

	assert.Equal(t, crypto.GetTxID(txn), tx.ID)
	assert.Equal(t, "pay", tx.TxType)
	assert.Equal(t, sender.String(), tx.Sender)
	assert.Equal(t, receiver.String(), tx.RekeyTo)
	assert.Equal(t, uint64(1000), *tx.Fee)
	assert.Equal(t, []byte("note"), tx.Note)
	require.NotNil(t, tx.Signature)
	assert.Equal(t, base64.StdEncoding.EncodeToString(sig[:]), tx.Signature.Sig)
	assert.Empty(t, tx.Group)
	require.NotNil(t, tx.Payment)
	assert.Equal(t, receiver.String(), tx.Payment.Receiver)
	assert.Equal(t, uint64(600000), *tx.Payment.Amount)
	assert.Empty(t, tx.Payment.CloseRemainderTo)
}

func TestMapTransactionFromBase64_AssetTransfer(t *testing.T) {
	t.Parallel()

	sender := addressFromByte(3)
	txn := sdktypes.Transaction{
		Type:   sdktypes.AssetTransferTx,
		Header: sdktypes.Header{Sender: sender, Fee: 1000, FirstValid: 1, LastValid: 2},
		AssetTransferTxnFields: sdktypes.AssetTransferTxnFields{
			XferAsset:     31566704,
			AssetAmount:   5000,
			AssetReceiver: addressFromByte(4),
		},
	}
	blob := msgpack.Encode(sdktypes.SignedTxn{Txn: txn})

	detail, err := createDecoder().MapTransactionFromBase64(base64.StdEncoding.EncodeToString(blob))
	require.NoError(t, err)

	transfer, ok := detail.(*decoder.AssetTransferTransactionDetail)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(5000), transfer.TransactionAmount)
	assert.Equal(t, uint64(31566704), transfer.AssetID)
	assert.Equal(t, addressFromByte(4).String(), transfer.ReceiverAddress)
	assert.Empty(t, transfer.Signature)
}

func TestDecodeSignedTransaction_ApplicationCall(t *testing.T) {
	t.Parallel()

	txn := sdktypes.Transaction{
		Type:   sdktypes.ApplicationCallTx,
		Header: sdktypes.Header{Sender: addressFromByte(5), Fee: 2000, FirstValid: 1, LastValid: 2},
	}
	txn.ApplicationID = 552635992
	txn.OnCompletion = sdktypes.OptInOC
	txn.ForeignAssets = []sdktypes.AssetIndex{31566704}
	txn.ForeignApps = []sdktypes.AppIndex{1}
	txn.Accounts = []sdktypes.Address{addressFromByte(6)}

	tx, err := createDecoder().DecodeSignedTransaction(msgpack.Encode(sdktypes.SignedTxn{Txn: txn}))
	require.NoError(t, err)

	require.NotNil(t, tx.ApplicationCall)
	assert.Equal(t, uint64(552635992), *tx.ApplicationCall.ApplicationID)
	assert.Equal(t, "optin", tx.ApplicationCall.OnCompletion)
	assert.Equal(t, []*uint64{u64(31566704)}, tx.ApplicationCall.ForeignAssets)
	assert.Equal(t, []uint64{1}, tx.ApplicationCall.ForeignApps)
	assert.Equal(t, []string{addressFromByte(6).String()}, tx.ApplicationCall.Accounts)
}

func TestDecodeSignedTransaction_AssetCreation(t *testing.T) {
	t.Parallel()

	creator := addressFromByte(8)
	txn := sdktypes.Transaction{
		Type:   sdktypes.AssetConfigTx,
		Header: sdktypes.Header{Sender: creator, Fee: 1000, FirstValid: 1, LastValid: 2},
	}
	txn.AssetParams = sdktypes.AssetParams{
		Total:     1000000,
		Decimals:  2,
		UnitName:  "PERA",
		AssetName: "Pera Token",
		Manager:   creator,
	}

	detail := createDecoder().Mapper().MapTransaction(mustDecode(t, txn))

	config, ok := detail.(*decoder.AssetConfigurationTransactionDetail)
	require.True(t, ok)
	assert.True(t, config.IsCreation())
	assert.Nil(t, config.TransactionAmount)
	assert.Equal(t, "Pera Token", config.Name)
	assert.Equal(t, u64(2), config.Decimals)
	assert.Equal(t, creator.String(), config.CreatorAddress)
	assert.Equal(t, creator.String(), config.ManagerAddress)
}

func mustDecode(t *testing.T, txn sdktypes.Transaction) *types.RawTransaction {
	tx, err := createDecoder().DecodeSignedTransaction(msgpack.Encode(sdktypes.SignedTxn{Txn: txn}))
	require.NoError(t, err)
	return tx
}

func TestDecodeSignedTransaction_InvalidPayloadShouldErr(t *testing.T) {
	t.Parallel()

	dec := createDecoder()

	_, err := dec.DecodeSignedTransaction(nil)
	assert.True(t, errors.Is(err, decoder.ErrEmptyPayload))

	_, err = dec.DecodeSignedTransactionFromBase64("!!!")
	assert.Error(t, err)

	_, err = dec.DecodeSignedTransaction(msgpack.Encode(sdktypes.SignedTxn{}))
	assert.True(t, errors.Is(err, decoder.ErrMalformedTransaction))
}

func TestDecodeSignedTransaction_PooledZeroFeeIsKept(t *testing.T) {
	t.Parallel()

	txn := sdktypes.Transaction{
		Type:             sdktypes.PaymentTx,
		Header:           sdktypes.Header{Sender: addressFromByte(9), FirstValid: 1, LastValid: 2},
		PaymentTxnFields: sdktypes.PaymentTxnFields{Receiver: addressFromByte(10), Amount: 1},
	}

	tx := mustDecode(t, txn)
	require.NotNil(t, tx.Fee)
	assert.Equal(t, uint64(0), *tx.Fee)

	detail := createDecoder().Mapper().MapTransaction(tx)
	assert.Equal(t, uint64(0), detail.Base().Fee)
}
