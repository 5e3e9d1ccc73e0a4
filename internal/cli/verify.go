package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	verifier2 "github.com/just-one-coder/flux-prism/internal/services/verifier"
)

var verifyFile string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check whether an artwork is registered",
	Long:  "Read-only; works without a wallet or signing key.",
	Run:   runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyFile, "file", "f", "", "artwork file to verify")
	_ = verifyCmd.MarkFlagRequired("file")
}

func runVerify(cmd *cobra.Command, args []string) {
	err := container.Invoke(func(v verifier2.Verifier) {
		file, err := os.Open(verifyFile)
		if err != nil {
			fatal(err)
		}
		defer file.Close()

		result, err := v.Verify(context.Background(), file)
		if err != nil {
			fatal(err)
		}

		fmt.Println("fingerprint:", result.ContentHash)

		switch result.Outcome {
		case verifier2.OutcomeVerified:
			fmt.Println("status:  registered")
			fmt.Println("title:  ", result.Title)
			fmt.Println("owner:  ", result.Owner.Hex())
			fmt.Println("since:  ", result.RegisteredAt.Format("2006-01-02 15:04:05 MST"))
		case verifier2.OutcomeNotRegistered:
			fmt.Println("status:  not registered")
		case verifier2.OutcomeLookupFailed:
			fmt.Println("status:  lookup failed, try again")
			fmt.Println("reason: ", result.Err)
		}
	})
	if err != nil {
		fatal(err)
	}
}
