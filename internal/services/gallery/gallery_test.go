package gallery_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/just-one-coder/flux-prism/internal/mocks"
	gallery2 "github.com/just-one-coder/flux-prism/internal/services/gallery"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
)

var testOwner = common.HexToAddress("0x742d35Cc6634C0532925a3b8D0000000000abcde")

func seededLedger(n int) *mocks.Registry {
	ledger := mocks.NewRegistry(testOwner)
	for i := 0; i < n; i++ {
		var hash [32]byte
		hash[0] = byte(i + 1)
		ledger.Seed(&registry.Record{
			Owner:       testOwner,
			StorageRef:  fmt.Sprintf("https://gateway.pinata.cloud/ipfs/Qm%03d", i),
			ContentHash: hash,
			Timestamp:   int64(1700000000 + i),
			Title:       fmt.Sprintf("Artwork %d", i),
			Description: fmt.Sprintf("Description %d", i),
		})
	}
	return ledger
}

func newGallery(ledger registry.Registry) gallery2.Gallery {
	return gallery2.New(ledger, zap.NewNop().Sugar())
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	listing, err := newGallery(seededLedger(5)).Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Items, 5)
	require.False(t, listing.Partial)
	require.False(t, listing.Fallback)
	require.NoError(t, listing.Err)

	for _, item := range listing.Items {
		require.NotEmpty(t, item.Title)
		require.Contains(t, item.ImageURL, "/ipfs/Qm")
	}
}

func TestFetchPartialFailure(t *testing.T) {
	ctx := context.Background()

	ledger := seededLedger(5)

	var failing [32]byte
	failing[0] = 2
	var alsoFailing [32]byte
	alsoFailing[0] = 4
	ledger.DetailsErr = map[[32]byte]error{
		failing:     errors.New("details unavailable"),
		alsoFailing: errors.New("details unavailable"),
	}

	listing, err := newGallery(ledger).Fetch(ctx)
	require.NoError(t, err)

	// N entries, M failures: exactly N-M records, flagged partial
	require.Len(t, listing.Items, 3)
	require.True(t, listing.Partial)
	require.False(t, listing.Fallback)
	require.Error(t, listing.Err)
}

func TestFetchEmptyRegistryFallsBack(t *testing.T) {
	ctx := context.Background()

	listing, err := newGallery(mocks.NewRegistry(testOwner)).Fetch(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, listing.Items)
	require.True(t, listing.Fallback)
	require.NoError(t, listing.Err)
}

func TestFetchEnumerationFailureFallsBack(t *testing.T) {
	ctx := context.Background()

	ledger := mocks.NewRegistry(testOwner)
	ledger.AllErr = errors.New("connection refused")

	listing, err := newGallery(ledger).Fetch(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, listing.Items)
	require.True(t, listing.Fallback)
	require.Error(t, listing.Err)
}

func TestFilter(t *testing.T) {
	items := []gallery2.Item{
		{Title: "Digital Sunset", Description: "landscape"},
		{Title: "Cyber City", Description: "neon sunset lights"},
		{Title: "Abstract", Description: "painting"},
	}

	require.Len(t, gallery2.Filter(items, "sunset"), 2)
	require.Len(t, gallery2.Filter(items, "PAINTING"), 1)
	require.Len(t, gallery2.Filter(items, ""), 3)
	require.Empty(t, gallery2.Filter(items, "sculpture"))

	// input order preserved, input untouched
	require.Equal(t, "Digital Sunset", items[0].Title)
}

func TestSortByTime(t *testing.T) {
	ctx := context.Background()

	listing, err := newGallery(seededLedger(4)).Fetch(ctx)
	require.NoError(t, err)

	asc := gallery2.SortByTime(listing.Items, true)
	for i := 1; i < len(asc); i++ {
		require.False(t, asc[i].RegisteredAt.Before(asc[i-1].RegisteredAt))
	}

	desc := gallery2.SortByTime(listing.Items, false)
	for i := 1; i < len(desc); i++ {
		require.False(t, desc[i].RegisteredAt.After(desc[i-1].RegisteredAt))
	}

	// the fetched listing itself is untouched by sorting
	require.Len(t, listing.Items, 4)
}
