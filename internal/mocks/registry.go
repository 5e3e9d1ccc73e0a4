package mocks

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/just-one-coder/flux-prism/internal/services/registry"
)

// Registry is an in-memory ledger double. Registered records become
// visible to Verify/Details/All immediately after WaitConfirmed.
type Registry struct {
	locker sync.Mutex

	records map[[32]byte]*registry.Record
	order   [][32]byte
	owner   common.Address

	RegisterErr error
	VerifyErr   error
	DetailsErr  map[[32]byte]error
	AllErr      error
	WaitErr     error

	RegisterCalls int
	VerifyCalls   int
	WaitCalls     int

	pending map[common.Hash]*registry.Record
}

func NewRegistry(owner common.Address) *Registry {
	return &Registry{
		records: make(map[[32]byte]*registry.Record),
		owner:   owner,
		pending: make(map[common.Hash]*registry.Record),
	}
}

func (r *Registry) Register(ctx context.Context, storageRef string, contentHash [32]byte, title, description string) (*types.Transaction, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	r.RegisterCalls++
	if r.RegisterErr != nil {
		return nil, r.RegisterErr
	}

	tx := types.NewTx(&types.LegacyTx{Nonce: uint64(r.RegisterCalls)})
	r.pending[tx.Hash()] = &registry.Record{
		Owner:       r.owner,
		StorageRef:  storageRef,
		ContentHash: contentHash,
		Timestamp:   1700000000,
		Title:       title,
		Description: description,
	}
	return tx, nil
}

func (r *Registry) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	r.WaitCalls++
	if r.WaitErr != nil {
		return nil, r.WaitErr
	}

	rec, ok := r.pending[tx.Hash()]
	if !ok {
		return nil, registry.ErrReverted
	}

	r.records[rec.ContentHash] = rec
	r.order = append(r.order, rec.ContentHash)
	delete(r.pending, tx.Hash())

	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}, nil
}

func (r *Registry) Verify(ctx context.Context, contentHash [32]byte) (*registry.Verification, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	r.VerifyCalls++
	if r.VerifyErr != nil {
		return nil, r.VerifyErr
	}

	rec, ok := r.records[contentHash]
	if !ok {
		return &registry.Verification{Found: false}, nil
	}

	return &registry.Verification{
		Found:     true,
		Owner:     rec.Owner,
		Timestamp: rec.Timestamp,
		Title:     rec.Title,
	}, nil
}

func (r *Registry) Details(ctx context.Context, contentHash [32]byte) (*registry.Record, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	if err, ok := r.DetailsErr[contentHash]; ok {
		return nil, err
	}

	rec, ok := r.records[contentHash]
	if !ok {
		return nil, registry.ErrReverted
	}
	return rec, nil
}

func (r *Registry) ByOwner(ctx context.Context, owner common.Address) ([][32]byte, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	var hashes [][32]byte
	for _, h := range r.order {
		if r.records[h].Owner == owner {
			hashes = append(hashes, h)
		}
	}
	return hashes, nil
}

func (r *Registry) All(ctx context.Context) ([][32]byte, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.AllErr != nil {
		return nil, r.AllErr
	}

	return append([][32]byte(nil), r.order...), nil
}

func (r *Registry) Total(ctx context.Context) (uint64, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	return uint64(len(r.records)), nil
}

// Seed inserts a confirmed record directly, bypassing the transaction
// path.
func (r *Registry) Seed(rec *registry.Record) {
	r.locker.Lock()
	defer r.locker.Unlock()

	r.records[rec.ContentHash] = rec
	r.order = append(r.order, rec.ContentHash)
}
