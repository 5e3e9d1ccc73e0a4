package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/just-one-coder/flux-prism/internal/services/registrar"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
)

var (
	registerFile        string
	registerTitle       string
	registerDescription string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register an artwork on the ledger",
	Long: "Fingerprints the file, checks for an existing registration, pins\n" +
		"the bytes to IPFS and commits the ownership record. Requires\n" +
		"PRIVATE_KEY and PINATA_JWT.",
	Run: runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerFile, "file", "f", "", "artwork file to register")
	registerCmd.Flags().StringVarP(&registerTitle, "title", "t", "", "artwork title")
	registerCmd.Flags().StringVarP(&registerDescription, "description", "d", "", "optional description")
	_ = registerCmd.MarkFlagRequired("file")
	_ = registerCmd.MarkFlagRequired("title")
}

func runRegister(cmd *cobra.Command, args []string) {
	err := container.Invoke(func(r registrar.Registrar, ledger registry.SigningRegistry) {
		file, err := os.Open(registerFile)
		if err != nil {
			fatal(err)
		}
		defer file.Close()

		draft := registrar.Draft{
			File:        file,
			FileName:    filepath.Base(registerFile),
			Title:       registerTitle,
			Description: registerDescription,
		}

		r.OnStage(func(s registrar.Stage) {
			if s != registrar.StageError {
				fmt.Printf("... %s\n", s)
			}
		})

		receipt, err := r.Register(context.Background(), ledger, &draft)
		if err != nil {
			fatal(err)
		}

		fmt.Println("artwork registered")
		fmt.Println("  content hash:", receipt.ContentHash)
		fmt.Println("  storage ref: ", receipt.StorageRef)
		fmt.Println("  tx:          ", receipt.TxHash)
		fmt.Println("  block:       ", receipt.BlockNumber)
	})
	if err != nil {
		fatal(err)
	}
}
