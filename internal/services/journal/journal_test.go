package journal_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/dig"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	journal2 "github.com/just-one-coder/flux-prism/internal/services/journal"
)

func TestAll(t *testing.T) {
	suite.Run(t, new(testSuite))
}

type testSuite struct {
	suite.Suite
	ctn     *dig.Container
	journal journal2.Journal
}

func (t *testSuite) SetupTest() {
	path := filepath.Join(t.T().TempDir(), "journal.db")

	t.ctn = dig.New()
	t.Require().NoError(t.ctn.Provide(func() (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}))
	t.Require().NoError(t.ctn.Provide(journal2.New))

	err := t.ctn.Invoke(func(j journal2.Journal) {
		t.journal = j
	})
	t.Require().NoError(err)
}

func (t *testSuite) TestCreateAndList() {
	ctx := context.Background()

	sub := journal2.NewSubmission("0xabc", "ipfs://Qm123", "My Art", "0xtx1")
	t.Require().NoError(t.journal.Create(ctx, &sub))

	list, err := t.journal.List(ctx)
	t.Require().NoError(err)
	t.Require().Len(list, 1)
	t.Require().Equal(sub.ID, list[0].ID)
	t.Require().Equal(journal2.SubmissionStatusPending, list[0].Status)
}

func (t *testSuite) TestSetStatus() {
	ctx := context.Background()

	sub := journal2.NewSubmission("0xabc", "ipfs://Qm123", "My Art", "0xtx1")
	t.Require().NoError(t.journal.Create(ctx, &sub))

	t.Require().NoError(t.journal.SetStatus(ctx, sub.ID, journal2.SubmissionStatusConfirmed))

	pending, err := t.journal.FindPending(ctx)
	t.Require().NoError(err)
	t.Require().Empty(pending)

	err = t.journal.SetStatus(ctx, "missing", journal2.SubmissionStatusFailed)
	t.Require().ErrorIs(err, journal2.ErrNotFound)
}

func (t *testSuite) TestFindPending() {
	ctx := context.Background()

	first := journal2.NewSubmission("0x1", "ipfs://Qm1", "First", "0xtx1")
	second := journal2.NewSubmission("0x2", "ipfs://Qm2", "Second", "0xtx2")
	t.Require().NoError(t.journal.Create(ctx, &first))
	t.Require().NoError(t.journal.Create(ctx, &second))

	t.Require().NoError(t.journal.SetStatus(ctx, first.ID, journal2.SubmissionStatusFailed))

	pending, err := t.journal.FindPending(ctx)
	t.Require().NoError(err)
	t.Require().Len(pending, 1)
	t.Require().Equal(second.ID, pending[0].ID)
}
