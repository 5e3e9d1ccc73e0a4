package cli

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/just-one-coder/flux-prism/internal/services/registry"
)

var mineOwner string

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List artworks registered by an owner",
	Run:   runMine,
}

func init() {
	mineCmd.Flags().StringVarP(&mineOwner, "owner", "o", "", "owner address (defaults to the signing account)")
}

func runMine(cmd *cobra.Command, args []string) {
	err := container.Invoke(func(ledger registry.Registry, session *registry.Session) {
		ctx := context.Background()

		owner, err := resolveOwner(session)
		if err != nil {
			fatal(err)
		}

		hashes, err := ledger.ByOwner(ctx, owner)
		if err != nil {
			fatal(err)
		}

		for _, h := range hashes {
			rec, err := ledger.Details(ctx, h)
			if err != nil {
				fmt.Printf("0x%x  (details unavailable)\n", h)
				continue
			}
			fmt.Printf("0x%x  %s\n", h, rec.Title)
		}

		fmt.Printf("%d artworks owned by %s\n", len(hashes), owner.Hex())
	})
	if err != nil {
		fatal(err)
	}
}

func resolveOwner(session *registry.Session) (common.Address, error) {
	if mineOwner != "" {
		if !common.IsHexAddress(mineOwner) {
			return common.Address{}, fmt.Errorf("invalid address %q", mineOwner)
		}
		return common.HexToAddress(mineOwner), nil
	}

	if session == nil {
		return common.Address{}, fmt.Errorf("no owner given and no signing key configured")
	}

	return session.Account(), nil
}
