package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	journal2 "github.com/just-one-coder/flux-prism/internal/services/journal"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Show this client's registration attempts",
	Long: "Lists the local submission journal: every commit this client has\n" +
		"sent, with its transaction hash and confirmation status.",
	Run: runSubmissions,
}

func runSubmissions(cmd *cobra.Command, args []string) {
	err := container.Invoke(func(j journal2.Journal) {
		list, err := j.List(context.Background())
		if err != nil {
			fatal(err)
		}

		for _, sub := range list {
			fmt.Printf("%s  %-9s  %-24s  %s\n",
				sub.CreatedAt.Format("2006-01-02 15:04"),
				sub.Status,
				sub.Title,
				sub.TxHash,
			)
		}

		fmt.Printf("%d submissions\n", len(list))
	})
	if err != nil {
		fatal(err)
	}
}
