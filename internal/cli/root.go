package cli

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/just-one-coder/flux-prism/deps"
	"github.com/just-one-coder/flux-prism/env"
	"github.com/just-one-coder/flux-prism/internal/services/gallery"
	"github.com/just-one-coder/flux-prism/internal/services/journal"
	"github.com/just-one-coder/flux-prism/internal/services/pinata"
	"github.com/just-one-coder/flux-prism/internal/services/registrar"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
	"github.com/just-one-coder/flux-prism/internal/services/verifier"
)

var container *dig.Container

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Register and verify digital artwork ownership on-chain",
	Long: "prism anchors a SHA-256 fingerprint of your artwork to the PRISM\n" +
		"registry contract and pins the bytes to IPFS. Verification and\n" +
		"browsing are read-only and need no wallet.",
	PersistentPreRun: initializeApp,
	SilenceUsage:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(submissionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp builds the dependency container. Providers are lazy:
// a read-only command never asks for the uploader or the signing key,
// so their configuration is only required where it is used.
func initializeApp(cmd *cobra.Command, args []string) {
	container = dig.New()

	providers := []interface{}{
		deps.NewZapLogger,
		deps.NewEthClient,
		deps.NewJournalDB,
		journal.New,
		pinata.New,
		registry.NewReadOnly,
		newSession,
		newSigningLedger,
		registrar.New,
		verifier.New,
		gallery.New,
	}

	for _, p := range providers {
		if err := container.Provide(p); err != nil {
			fatal(err)
		}
	}
}

// newSession yields a nil session when no signing key is configured so
// that read-only commands keep working without a wallet.
func newSession(client *ethclient.Client) (*registry.Session, error) {
	if env.GetOptional(env.PrivateKey, "") == "" {
		return nil, nil
	}

	return registry.NewSession(context.Background(), client)
}

// newSigningLedger yields a nil ledger without a session; the registrar
// then refuses with its precondition error instead of the process
// failing on startup.
func newSigningLedger(client *ethclient.Client, session *registry.Session) (registry.SigningRegistry, error) {
	if session == nil {
		return nil, nil
	}

	return registry.NewSigning(client, session)
}
