package registrar

import "io"

// Stage is the registration state machine position. Terminal on Done
// or Error.
type Stage int

const (
	StageIdle Stage = iota
	StageHashing
	StageDuplicateCheck
	StageUploading
	StageCommitting
	StageAwaitingConfirmation
	StageDone
	StageError
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageHashing:
		return "hashing"
	case StageDuplicateCheck:
		return "duplicate check"
	case StageUploading:
		return "uploading"
	case StageCommitting:
		return "committing"
	case StageAwaitingConfirmation:
		return "awaiting confirmation"
	case StageDone:
		return "done"
	case StageError:
		return "error"
	}
	return "unknown"
}

// Draft is the local working artifact of one registration attempt. It
// lives from file selection until success or reset; the ledger record
// it produces is never cached here.
type Draft struct {
	File        io.ReadSeeker
	FileName    string
	Title       string
	Description string

	Fingerprint string
	StorageRef  string
	Stage       Stage
}

// Reset clears the draft back to the empty idle form.
func (d *Draft) Reset() {
	*d = Draft{}
}
