package gallery

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/just-one-coder/flux-prism/env"
	"github.com/just-one-coder/flux-prism/internal/helpers"
	"github.com/just-one-coder/flux-prism/internal/services/pinata"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
)

const (
	DefaultWorkers = 8
)

// Item is one display-ready gallery record.
type Item struct {
	ContentHash  string
	Title        string
	Description  string
	Owner        common.Address
	RegisteredAt time.Time
	StorageRef   string
	ImageURL     string
}

// Listing is the aggregation outcome. Partial marks dropped items,
// Fallback marks placeholder data; both stay distinguishable from a
// genuinely empty registry.
type Listing struct {
	Items    []Item
	Partial  bool
	Fallback bool
	Err      error
}

type Gallery interface {
	Fetch(ctx context.Context) (*Listing, error)
}

func New(ledger registry.Registry, log *zap.SugaredLogger) Gallery {
	workers := DefaultWorkers
	if v, err := strconv.Atoi(env.GetOptional(env.GalleryWorkers, "")); err == nil && v > 0 {
		workers = v
	}

	return &gallery{
		ledger:  ledger,
		log:     log,
		workers: workers,
	}
}

type gallery struct {
	ledger  registry.Registry
	log     *zap.SugaredLogger
	workers int
}

// Fetch enumerates every registered artwork and resolves each to a
// display record. Per-item detail failures drop that one item; a failed
// or empty enumeration falls back to the placeholder dataset.
func (g *gallery) Fetch(ctx context.Context) (*Listing, error) {
	hashes, err := g.ledger.All(ctx)
	if err != nil {
		g.log.With("err", err).Error("failed to list artworks, serving fallback")
		return &Listing{Items: placeholderItems(), Fallback: true, Err: err}, nil
	}

	if len(hashes) == 0 {
		return &Listing{Items: placeholderItems(), Fallback: true}, nil
	}

	items := make([]*Item, len(hashes))
	errs := make(chan error, len(hashes))
	sem := make(chan struct{}, g.workers)

	var wg sync.WaitGroup
	for i, h := range hashes {
		wg.Add(1)
		go func(i int, h [32]byte) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			rec, err := g.ledger.Details(ctx, h)
			if err != nil {
				g.log.With("err", err).Warn("failed to fetch artwork details")
				errs <- err
				return
			}

			items[i] = newItem(rec)
		}(i, h)
	}
	wg.Wait()
	close(errs)

	listing := Listing{
		Items: make([]Item, 0, len(hashes)),
		Err:   helpers.ReadErrors(errs),
	}
	for _, item := range items {
		if item != nil {
			listing.Items = append(listing.Items, *item)
		}
	}
	listing.Partial = len(listing.Items) < len(hashes)

	return &listing, nil
}

func newItem(rec *registry.Record) *Item {
	title := rec.Title
	if title == "" {
		title = "Untitled"
	}

	description := rec.Description
	if description == "" {
		description = "No description"
	}

	cid := pinata.ExtractCID(rec.StorageRef)

	return &Item{
		ContentHash:  "0x" + common.Bytes2Hex(rec.ContentHash[:]),
		Title:        title,
		Description:  description,
		Owner:        rec.Owner,
		RegisteredAt: time.Unix(rec.Timestamp, 0).UTC(),
		StorageRef:   rec.StorageRef,
		ImageURL:     pinata.GatewayURL(cid),
	}
}

// Filter keeps items whose title or description contains the term,
// case-insensitive. Pure; never refetches.
func Filter(items []Item, term string) []Item {
	if term == "" {
		return items
	}

	term = strings.ToLower(term)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortByTime orders items by registration time. Pure; operates on a
// copy.
func SortByTime(items []Item, ascending bool) []Item {
	sorted := append([]Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].RegisteredAt.Before(sorted[j].RegisteredAt)
		}
		return sorted[i].RegisteredAt.After(sorted[j].RegisteredAt)
	})
	return sorted
}
