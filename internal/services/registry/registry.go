package registry

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/just-one-coder/flux-prism/env"
)

var (
	ErrNoSigner      = errors.New("registry is read-only")
	ErrReverted      = errors.New("transaction reverted")
	ErrNotConfigured = errors.New("contract address isn't configured")
)

// Verification is the tagged result of a verify call. Found is false
// when the contract answered with the zero-address sentinel; callers
// never compare owners against a magic value themselves.
type Verification struct {
	Found     bool
	Owner     common.Address
	Timestamp int64
	Title     string
}

// Record is a full on-chain artwork record.
type Record struct {
	Owner       common.Address
	StorageRef  string
	ContentHash [32]byte
	Timestamp   int64
	Title       string
	Description string
}

// Registry is the typed binding to the remote ledger contract. One
// mutating operation, the rest read-only.
type Registry interface {
	Register(ctx context.Context, storageRef string, contentHash [32]byte, title, description string) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	Verify(ctx context.Context, contentHash [32]byte) (*Verification, error)
	Details(ctx context.Context, contentHash [32]byte) (*Record, error)
	ByOwner(ctx context.Context, owner common.Address) ([][32]byte, error)
	All(ctx context.Context) ([][32]byte, error)
	Total(ctx context.Context) (uint64, error)
}

// SigningRegistry is the session-bound instance used by the mutating
// path. A separate type so wiring never hands the read-only binding to
// a component expecting to commit.
type SigningRegistry interface {
	Registry
}

type registry struct {
	client   *ethclient.Client
	contract *bind.BoundContract
	session  *Session
}

// NewReadOnly binds the contract through the configured RPC endpoint
// without any signing session. Verification and browsing work with no
// wallet present.
func NewReadOnly(client *ethclient.Client) (Registry, error) {
	return newRegistry(client, nil)
}

// NewSigning binds the contract to an authenticated session for the
// registration path.
func NewSigning(client *ethclient.Client, session *Session) (SigningRegistry, error) {
	return newRegistry(client, session)
}

func newRegistry(client *ethclient.Client, session *Session) (Registry, error) {
	addrHex, err := env.Get(env.ContractAddress)
	if err != nil {
		return nil, ErrNotConfigured
	}

	if !common.IsHexAddress(addrHex) {
		return nil, errors.Wrapf(ErrNotConfigured, "bad address %q", addrHex)
	}

	parsed, err := abi.JSON(strings.NewReader(prismABI))
	if err != nil {
		return nil, err
	}

	contract := bind.NewBoundContract(common.HexToAddress(addrHex), parsed, client, client, client)

	return &registry{
		client:   client,
		contract: contract,
		session:  session,
	}, nil
}

func (r *registry) Register(ctx context.Context, storageRef string, contentHash [32]byte, title, description string) (*types.Transaction, error) {
	if r.session == nil {
		return nil, ErrNoSigner
	}

	opts, err := r.session.transactor(ctx)
	if err != nil {
		return nil, err
	}

	return r.contract.Transact(opts, "registerArtwork", storageRef, contentHash, title, description)
}

func (r *registry) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, r.client, tx)
	if err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, ErrReverted
	}

	return receipt, nil
}

func (r *registry) Verify(ctx context.Context, contentHash [32]byte) (*Verification, error) {
	var out []interface{}
	err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "verifyArtwork", contentHash)
	if err != nil {
		return nil, err
	}

	owner := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	timestamp := *abi.ConvertType(out[1], new(*big.Int)).(**big.Int)
	title := *abi.ConvertType(out[2], new(string)).(*string)

	if owner == (common.Address{}) {
		return &Verification{Found: false}, nil
	}

	return &Verification{
		Found:     true,
		Owner:     owner,
		Timestamp: timestamp.Int64(),
		Title:     title,
	}, nil
}

// artRecord matches the contract's ArtRecord tuple layout.
type artRecord struct {
	Owner       common.Address
	IpfsHash    string
	ContentHash [32]byte
	Timestamp   *big.Int
	Title       string
	Description string
}

func (r *registry) Details(ctx context.Context, contentHash [32]byte) (*Record, error) {
	var out []interface{}
	err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getArtworkDetails", contentHash)
	if err != nil {
		return nil, err
	}

	rec := *abi.ConvertType(out[0], new(artRecord)).(*artRecord)

	return &Record{
		Owner:       rec.Owner,
		StorageRef:  rec.IpfsHash,
		ContentHash: rec.ContentHash,
		Timestamp:   rec.Timestamp.Int64(),
		Title:       rec.Title,
		Description: rec.Description,
	}, nil
}

func (r *registry) ByOwner(ctx context.Context, owner common.Address) ([][32]byte, error) {
	var out []interface{}
	err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getUserArtworks", owner)
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([][32]byte)).(*[][32]byte), nil
}

func (r *registry) All(ctx context.Context) ([][32]byte, error) {
	var out []interface{}
	err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getAllArtworks")
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([][32]byte)).(*[][32]byte), nil
}

func (r *registry) Total(ctx context.Context) (uint64, error) {
	var out []interface{}
	err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getTotalArtworks")
	if err != nil {
		return 0, err
	}

	total := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return total.Uint64(), nil
}
