package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gallery2 "github.com/just-one-coder/flux-prism/internal/services/gallery"
)

var (
	gallerySearch string
	gallerySort   string
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Browse every registered artwork",
	Long:  "Read-only; works without a wallet or signing key.",
	Run:   runGallery,
}

func init() {
	galleryCmd.Flags().StringVarP(&gallerySearch, "search", "s", "", "substring filter on title/description")
	galleryCmd.Flags().StringVar(&gallerySort, "sort", "newest", "order by time: newest|oldest")
}

func runGallery(cmd *cobra.Command, args []string) {
	err := container.Invoke(func(g gallery2.Gallery) {
		listing, err := g.Fetch(context.Background())
		if err != nil {
			fatal(err)
		}

		if listing.Fallback {
			fmt.Println("registry unavailable or empty, showing sample data")
		}
		if listing.Partial {
			fmt.Println("some artworks could not be loaded")
		}

		items := gallery2.Filter(listing.Items, gallerySearch)
		items = gallery2.SortByTime(items, gallerySort == "oldest")

		for _, item := range items {
			fmt.Printf("%s  %-24s  %s  %s\n",
				item.RegisteredAt.Format("2006-01-02"),
				item.Title,
				truncateAddress(item.Owner.Hex()),
				item.ImageURL,
			)
		}

		fmt.Printf("%d artworks\n", len(items))
	})
	if err != nil {
		fatal(err)
	}
}
