package registrar

import (
	"fmt"
	"strings"
)

// RejectReason classifies why the ledger commit was refused.
type RejectReason string

const (
	ReasonUserRejected      RejectReason = "user rejected"
	ReasonInsufficientFunds RejectReason = "insufficient funds"
	ReasonAlreadyRegistered RejectReason = "already registered"
	ReasonUnknown           RejectReason = "unknown"
)

// CommitError is a classified commit rejection. Raw transport text is
// only ever inspected for this small known set of reasons.
type CommitError struct {
	Reason RejectReason
	cause  error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit rejected (%s): %v", e.Reason, e.cause)
}

func (e *CommitError) Unwrap() error {
	return e.cause
}

func classifyCommit(err error) *CommitError {
	msg := strings.ToLower(err.Error())

	reason := ReasonUnknown
	switch {
	case strings.Contains(msg, "user rejected") || strings.Contains(msg, "user denied"):
		reason = ReasonUserRejected
	case strings.Contains(msg, "insufficient funds"):
		reason = ReasonInsufficientFunds
	case strings.Contains(msg, "already registered"):
		reason = ReasonAlreadyRegistered
	}

	return &CommitError{Reason: reason, cause: err}
}
