package registrar

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/just-one-coder/flux-prism/internal/services/fingerprint"
	"github.com/just-one-coder/flux-prism/internal/services/journal"
	"github.com/just-one-coder/flux-prism/internal/services/pinata"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
)

var (
	ErrPrecondition = errors.New("precondition failed")
	ErrNoSession    = errors.Wrap(ErrPrecondition, "no signing session")
	ErrNoFile       = errors.Wrap(ErrPrecondition, "no file selected")
	ErrNoTitle      = errors.Wrap(ErrPrecondition, "title is required")

	ErrDuplicate = errors.New("artwork is already registered")
	ErrUpload    = errors.New("upload failed")
)

// Receipt is the durable outcome of a confirmed registration.
type Receipt struct {
	ContentHash string
	StorageRef  string
	TxHash      string
	BlockNumber uint64
}

// Registrar sequences fingerprinting, duplicate check, storage upload
// and ledger commit. Calling it twice with byte-identical content never
// produces two ledger entries: the second call stops at the duplicate
// check once the first commit confirmed.
type Registrar interface {
	Register(ctx context.Context, ledger registry.Registry, draft *Draft) (*Receipt, error)
	OnStage(fn func(Stage))
}

func New(
	uploader pinata.Uploader,
	jrnl journal.Journal,
	log *zap.SugaredLogger,
) Registrar {
	return &registrar{
		uploader: uploader,
		journal:  jrnl,
		log:      log,
	}
}

type registrar struct {
	uploader pinata.Uploader
	journal  journal.Journal
	log      *zap.SugaredLogger
	onStage  func(Stage)
}

func (r *registrar) OnStage(fn func(Stage)) {
	r.onStage = fn
}

func (r *registrar) Register(ctx context.Context, ledger registry.Registry, draft *Draft) (*Receipt, error) {
	if err := r.checkPreconditions(ledger, draft); err != nil {
		r.fail(draft, err)
		return nil, err
	}

	fp, err := r.hash(draft)
	if err != nil {
		r.fail(draft, err)
		return nil, err
	}

	if err = r.checkDuplicate(ctx, ledger, draft, fp); err != nil {
		r.fail(draft, err)
		return nil, err
	}

	if err = r.upload(ctx, draft); err != nil {
		r.fail(draft, err)
		return nil, err
	}

	receipt, err := r.commit(ctx, ledger, draft, fp)
	if err != nil {
		r.fail(draft, err)
		return nil, err
	}

	// the only stage resetting the local working artifact
	r.transition(draft, StageDone)
	draft.Reset()

	return receipt, nil
}

// checkPreconditions refuses before any hashing or network activity.
func (r *registrar) checkPreconditions(ledger registry.Registry, draft *Draft) error {
	if ledger == nil {
		return ErrNoSession
	}
	if draft == nil || draft.File == nil {
		return ErrNoFile
	}
	if strings.TrimSpace(draft.Title) == "" {
		return ErrNoTitle
	}
	return nil
}

func (r *registrar) hash(draft *Draft) (fingerprint.Fingerprint, error) {
	r.transition(draft, StageHashing)

	fp, err := fingerprint.Reader(draft.File)
	if err != nil {
		return fingerprint.Fingerprint{}, err
	}

	draft.Fingerprint = fp.Hex()
	return fp, nil
}

// checkDuplicate treats a failed lookup as "not registered" and lets
// the flow proceed; a stale answer is backstopped by the contract
// rejecting the commit with an already-registered revert.
func (r *registrar) checkDuplicate(ctx context.Context, ledger registry.Registry, draft *Draft, fp fingerprint.Fingerprint) error {
	r.transition(draft, StageDuplicateCheck)

	verification, err := ledger.Verify(ctx, fp.Bytes32())
	if err != nil {
		r.log.With("err", err, "hash", fp.Hex()).Warn("duplicate check failed, proceeding")
		return nil
	}

	if verification.Found {
		return ErrDuplicate
	}
	return nil
}

func (r *registrar) upload(ctx context.Context, draft *Draft) error {
	r.transition(draft, StageUploading)

	if _, err := draft.File.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(ErrUpload, err.Error())
	}

	ref, err := r.uploader.Upload(ctx, draft.FileName, draft.File)
	if err != nil {
		return errors.Wrap(ErrUpload, err.Error())
	}

	draft.StorageRef = ref
	return nil
}

func (r *registrar) commit(ctx context.Context, ledger registry.Registry, draft *Draft, fp fingerprint.Fingerprint) (*Receipt, error) {
	r.transition(draft, StageCommitting)

	tx, err := ledger.Register(ctx, draft.StorageRef, fp.Bytes32(),
		strings.TrimSpace(draft.Title), strings.TrimSpace(draft.Description))
	if err != nil {
		return nil, classifyCommit(err)
	}

	sub := journal.NewSubmission(fp.Hex(), draft.StorageRef, draft.Title, tx.Hash().Hex())
	if err = r.journal.Create(ctx, &sub); err != nil {
		r.log.With("err", err).Warn("failed to journal submission")
	}

	r.transition(draft, StageAwaitingConfirmation)

	receipt, err := ledger.WaitConfirmed(ctx, tx)
	if err != nil {
		r.setStatus(ctx, sub.ID, journal.SubmissionStatusFailed)
		return nil, classifyCommit(err)
	}

	r.setStatus(ctx, sub.ID, journal.SubmissionStatusConfirmed)

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}

	return &Receipt{
		ContentHash: fp.Hex(),
		StorageRef:  draft.StorageRef,
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: block,
	}, nil
}

func (r *registrar) setStatus(ctx context.Context, id string, status journal.SubmissionStatus) {
	if err := r.journal.SetStatus(ctx, id, status); err != nil {
		r.log.With("err", err, "id", id).Warn("failed to update submission status")
	}
}

func (r *registrar) transition(draft *Draft, stage Stage) {
	if draft != nil {
		draft.Stage = stage
	}
	if r.onStage != nil {
		r.onStage(stage)
	}
}

func (r *registrar) fail(draft *Draft, err error) {
	if draft != nil {
		draft.Stage = StageError
	}
	if r.onStage != nil {
		r.onStage(StageError)
	}
	if r.log != nil {
		r.log.With("err", err).Error("registration failed")
	}
}
