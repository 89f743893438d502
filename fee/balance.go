package fee

import (
	"math/bits"

	"github.com/perawallet/pera-wallet-core/types"
	"go.uber.org/zap"
)

// AccountRepository resolves account snapshots by address
type AccountRepository interface {
	Account(address string) (*types.Account, bool)
}

// MinimumBalanceValidator checks whether an account can afford a transaction
// without dropping under its minimum balance
type MinimumBalanceValidator struct {
	accounts AccountRepository
	protocol types.ProtocolParams
	logger   *zap.Logger
}

// NewMinimumBalanceValidator creates a validator resolving senders through accounts
func NewMinimumBalanceValidator(accounts AccountRepository, protocol types.ProtocolParams, logger *zap.Logger) *MinimumBalanceValidator {
	return &MinimumBalanceValidator{
		accounts: accounts,
		protocol: protocol,
		logger:   logger,
	}
}

// MinimumRequiredBalance returns the balance account must keep. The
// node-reported value wins when present since it also covers app schemas.
func (v *MinimumBalanceValidator) MinimumRequiredBalance(account *types.Account) uint64 {
	if account.MinBalance != 0 {
		return account.MinBalance
	}

	required := v.protocol.MinBalance
	required = saturatingAdd(required, saturatingMul(uint64(len(account.Assets)), v.protocol.AssetMinBalanceIncrement))
	required = saturatingAdd(required, saturatingMul(account.TotalAppsOptedIn, v.protocol.AppMinBalanceIncrement))
	return required
}

// IsValidTransactionAmount resolves the draft's sender and checks it can pay
// calculatedFee, and the draft amount when it moves Algos, for a transaction
// of the given kind. An unknown sender is never valid.
func (v *MinimumBalanceValidator) IsValidTransactionAmount(draft *types.TransactionDraft, kind TransactionKind, calculatedFee uint64) bool {
	account, found := v.accounts.Account(draft.SenderAddress)
	if !found || account == nil {
		v.logger.Debug("sender account not found", zap.String("address", draft.SenderAddress))
		return false
	}

	var amount uint64
	if draft.IsAlgoTransaction {
		amount = draft.Amount
	}

	return v.IsValidAmount(account, kind, amount, calculatedFee)
}

// IsValidAmount reports whether account.Amount - amount - fee stays at or
// above the minimum balance required after a transaction of the given kind
func (v *MinimumBalanceValidator) IsValidAmount(account *types.Account, kind TransactionKind, amount, fee uint64) bool {
	required := v.MinimumRequiredBalance(account)

	// An account already under its minimum cannot send anything
	if account.Amount < required {
		v.logger.Debug("account balance below minimum balance",
			zap.String("address", account.Address),
			zap.Uint64("balance", account.Amount),
			zap.Uint64("min_balance", required))
		return false
	}

	switch kind {
	case AssetAddition:
		required = saturatingAdd(required, v.protocol.AssetMinBalanceIncrement)
	case AssetRemoval:
		if required >= v.protocol.AssetMinBalanceIncrement {
			required -= v.protocol.AssetMinBalanceIncrement
		} else {
			required = 0
		}
	case Rekey:
		amount = 0
	}

	spent := saturatingAdd(amount, fee)
	valid := account.Amount >= spent && account.Amount-spent >= required

	v.logger.Debug("validated transaction amount",
		zap.String("address", account.Address),
		zap.Stringer("kind", kind),
		zap.Uint64("balance", account.Amount),
		zap.Uint64("amount", amount),
		zap.Uint64("fee", fee),
		zap.Uint64("required_balance", required),
		zap.Bool("valid", valid))

	return valid
}

// MaxSendableAmount returns the largest Algo amount account can send with
// the given fee, or zero when nothing can be sent
func (v *MinimumBalanceValidator) MaxSendableAmount(account *types.Account, fee uint64) uint64 {
	reserved := saturatingAdd(v.MinimumRequiredBalance(account), fee)
	if account.Amount <= reserved {
		return 0
	}
	return account.Amount - reserved
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return ^uint64(0)
	}
	return lo
}
