package env

import (
	"fmt"
	"os"
)

const (
	ContractAddress = "CONTRACT_ADDRESS"
	RPCUrl          = "RPC_URL"
	PinataJWT       = "PINATA_JWT"
	IPFSGateway     = "IPFS_GATEWAY"
	PrivateKey      = "PRIVATE_KEY"
	JournalPath     = "JOURNAL_PATH"
	GalleryWorkers  = "GALLERY_WORKERS"
	RestHost        = "REST_HOST"
)

const (
	DefaultRPCUrl      = "https://ethereum-sepolia-rpc.publicnode.com"
	DefaultIPFSGateway = "https://gateway.pinata.cloud/ipfs/"
	DefaultJournalPath = "prism.db"
)

func NewErrNotSet(env string) error {
	return fmt.Errorf("env %s isn't set", env)
}

func Get(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", NewErrNotSet(key)
	}
	return value, nil
}

func GetOptional(key string, optional string) string {
	value := os.Getenv(key)
	if value == "" {
		return optional
	}
	return value
}
