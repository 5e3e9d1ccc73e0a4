package journal

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("not found")
)

type Journal interface {
	Create(ctx context.Context, submission *Submission) error
	SetStatus(ctx context.Context, id string, status SubmissionStatus) error
	FindPending(ctx context.Context) ([]*Submission, error)
	List(ctx context.Context) ([]*Submission, error)
}

type journal struct {
	db *gorm.DB
}

func New(db *gorm.DB) (Journal, error) {
	if err := db.AutoMigrate(&Submission{}); err != nil {
		return nil, err
	}

	return &journal{
		db: db,
	}, nil
}

func (j journal) Create(ctx context.Context, submission *Submission) error {
	tx := j.db.WithContext(ctx).Create(submission)
	return tx.Error
}

func (j journal) SetStatus(ctx context.Context, id string, status SubmissionStatus) error {
	tx := j.db.WithContext(ctx).Model(&Submission{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (j journal) FindPending(ctx context.Context) ([]*Submission, error) {
	var submissions []*Submission
	tx := j.db.WithContext(ctx).Where("status = ?", SubmissionStatusPending).
		Order("created_at").Find(&submissions)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return submissions, nil
}

func (j journal) List(ctx context.Context) ([]*Submission, error) {
	var submissions []*Submission
	tx := j.db.WithContext(ctx).Order("created_at desc").Find(&submissions)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return submissions, nil
}
