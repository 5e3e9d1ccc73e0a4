package journal

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusConfirmed SubmissionStatus = "confirmed"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

// Submission is one registration attempt made by this client. It is
// bookkeeping for the local user, not a cache of the ledger record.
type Submission struct {
	ID          string `gorm:"primaryKey"`
	ContentHash string `gorm:"index"`
	StorageRef  string
	Title       string
	TxHash      string
	Status      SubmissionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSubmission(contentHash, storageRef, title, txHash string) Submission {
	now := time.Now().UTC()
	return Submission{
		ID:          uuid.NewString(),
		ContentHash: contentHash,
		StorageRef:  storageRef,
		Title:       title,
		TxHash:      txHash,
		Status:      SubmissionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
