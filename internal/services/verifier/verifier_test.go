package verifier_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/just-one-coder/flux-prism/internal/mocks"
	"github.com/just-one-coder/flux-prism/internal/services/fingerprint"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
	verifier2 "github.com/just-one-coder/flux-prism/internal/services/verifier"
)

var testOwner = common.HexToAddress("0x742d35Cc6634C0532925a3b8D0000000000abcde")

func newVerifier(ledger registry.Registry) verifier2.Verifier {
	return verifier2.New(ledger, zap.NewNop().Sugar())
}

func TestVerifyRegistered(t *testing.T) {
	ctx := context.Background()
	content := []byte("registered artwork")

	fp, err := fingerprint.Reader(bytes.NewReader(content))
	require.NoError(t, err)

	ledger := mocks.NewRegistry(testOwner)
	ledger.Seed(&registry.Record{
		Owner:       testOwner,
		StorageRef:  "ipfs://Qm123",
		ContentHash: fp.Bytes32(),
		Timestamp:   1700000000,
		Title:       "My Art",
	})

	result, err := newVerifier(ledger).Verify(ctx, bytes.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, verifier2.OutcomeVerified, result.Outcome)
	require.Equal(t, testOwner, result.Owner)
	require.Equal(t, "My Art", result.Title)
	require.Equal(t, time.Unix(1700000000, 0).UTC(), result.RegisteredAt)
	require.Equal(t, fp.Hex(), result.ContentHash)
}

func TestVerifyNotRegistered(t *testing.T) {
	ctx := context.Background()

	ledger := mocks.NewRegistry(testOwner)

	result, err := newVerifier(ledger).Verify(ctx, bytes.NewReader([]byte("unknown")))
	require.NoError(t, err)
	require.Equal(t, verifier2.OutcomeNotRegistered, result.Outcome)
	require.NoError(t, result.Err)
}

func TestVerifyLookupFailed(t *testing.T) {
	ctx := context.Background()

	ledger := mocks.NewRegistry(testOwner)
	ledger.VerifyErr = errors.New("connection refused")

	result, err := newVerifier(ledger).Verify(ctx, bytes.NewReader([]byte("unknown")))
	require.NoError(t, err)
	require.Equal(t, verifier2.OutcomeLookupFailed, result.Outcome)
	require.Error(t, result.Err)

	// a failed lookup never masquerades as a confirmed negative
	require.NotEqual(t, verifier2.OutcomeNotRegistered, result.Outcome)
}

func TestVerifyUnreadableFile(t *testing.T) {
	ctx := context.Background()

	ledger := mocks.NewRegistry(testOwner)

	_, err := newVerifier(ledger).Verify(ctx, failingReader{})
	require.ErrorIs(t, err, fingerprint.ErrRead)
	require.Equal(t, 0, ledger.VerifyCalls)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken stream")
}
