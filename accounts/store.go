package accounts

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/perawallet/pera-wallet-core/types"
	"go.uber.org/zap"
)

// DefaultStoreSize is the number of account snapshots kept by default
const DefaultStoreSize = 256

// Store keeps the most recently used account snapshots in memory. It is
// safe for concurrent use.
type Store struct {
	cache  *lru.Cache[string, types.Account]
	logger *zap.Logger
}

// NewStore creates a store holding at most size accounts
func NewStore(size int, logger *zap.Logger) (*Store, error) {
	cache, err := lru.New[string, types.Account](size)
	if err != nil {
		return nil, fmt.Errorf("creating account cache: %w", err)
	}

	return &Store{
		cache:  cache,
		logger: logger,
	}, nil
}

// Put stores a copy of account, replacing any previous snapshot
func (s *Store) Put(account types.Account) {
	account.Assets = append([]types.AssetHolding(nil), account.Assets...)
	if evicted := s.cache.Add(account.Address, account); evicted {
		s.logger.Debug("evicted account snapshot", zap.Int("size", s.cache.Len()))
	}
}

// Account returns a copy of the snapshot stored for address
func (s *Store) Account(address string) (*types.Account, bool) {
	account, ok := s.cache.Get(address)
	if !ok {
		return nil, false
	}
	account.Assets = append([]types.AssetHolding(nil), account.Assets...)
	return &account, true
}

// Remove drops the snapshot stored for address
func (s *Store) Remove(address string) {
	s.cache.Remove(address)
}

// Len returns the number of stored snapshots
func (s *Store) Len() int {
	return s.cache.Len()
}
