package registry

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/just-one-coder/flux-prism/env"
)

// Session is an authenticated signing identity bound to one account on
// one chain. It is immutable; switching accounts or networks means
// discarding the session and creating a new one, never mutating this
// one while a commit is in flight.
type Session struct {
	key     *ecdsa.PrivateKey
	account common.Address
	chainID *big.Int
}

// NewSession loads the signing key from the environment and binds it to
// the chain the client is connected to.
func NewSession(ctx context.Context, client *ethclient.Client) (*Session, error) {
	keyHex, err := env.Get(env.PrivateKey)
	if err != nil {
		return nil, err
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid signing key")
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve chain id")
	}

	return &Session{
		key:     key,
		account: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

func (s *Session) Account() common.Address {
	return s.account
}

func (s *Session) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
