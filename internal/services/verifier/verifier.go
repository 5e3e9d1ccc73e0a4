package verifier

import (
	"context"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/just-one-coder/flux-prism/internal/services/fingerprint"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
)

// Outcome distinguishes a confirmed negative answer from a lookup that
// never completed. Both render as "not verified" to an end user; retry
// logic must be able to tell them apart.
type Outcome int

const (
	OutcomeVerified Outcome = iota
	OutcomeNotRegistered
	OutcomeLookupFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVerified:
		return "verified"
	case OutcomeNotRegistered:
		return "not registered"
	case OutcomeLookupFailed:
		return "lookup failed"
	}
	return "unknown"
}

type Result struct {
	Outcome      Outcome
	ContentHash  string
	Owner        common.Address
	RegisteredAt time.Time
	Title        string
	Err          error
}

// Verifier resolves a file's registration status through the read-only
// ledger client; no signing session is involved, so anonymous visitors
// can verify.
type Verifier interface {
	Verify(ctx context.Context, reader io.Reader) (*Result, error)
}

func New(ledger registry.Registry, log *zap.SugaredLogger) Verifier {
	return &verifier{
		ledger: ledger,
		log:    log,
	}
}

type verifier struct {
	ledger registry.Registry
	log    *zap.SugaredLogger
}

func (v *verifier) Verify(ctx context.Context, reader io.Reader) (*Result, error) {
	fp, err := fingerprint.Reader(reader)
	if err != nil {
		return nil, err
	}

	verification, err := v.ledger.Verify(ctx, fp.Bytes32())
	if err != nil {
		v.log.With("err", err, "hash", fp.Hex()).Error("ledger lookup failed")
		return &Result{
			Outcome:     OutcomeLookupFailed,
			ContentHash: fp.Hex(),
			Err:         err,
		}, nil
	}

	if !verification.Found {
		return &Result{
			Outcome:     OutcomeNotRegistered,
			ContentHash: fp.Hex(),
		}, nil
	}

	return &Result{
		Outcome:      OutcomeVerified,
		ContentHash:  fp.Hex(),
		Owner:        verification.Owner,
		RegisteredAt: time.Unix(verification.Timestamp, 0).UTC(),
		Title:        verification.Title,
	}, nil
}
