package deps

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/just-one-coder/flux-prism/env"
)

func NewEthClient() (*ethclient.Client, error) {
	rpcURL := env.GetOptional(env.RPCUrl, env.DefaultRPCUrl)

	return ethclient.DialContext(context.Background(), rpcURL)
}
