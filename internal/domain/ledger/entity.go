package ledger

import (
	"time"
)

// EntryKind classifies a single punch event.
type EntryKind string

const (
	EntryKindEntry EntryKind = "entry"
	EntryKindPause EntryKind = "pause"
	EntryKindExit  EntryKind = "exit"
)

func (k EntryKind) Valid() bool {
	switch k {
	case EntryKindEntry, EntryKindPause, EntryKindExit:
		return true
	}
	return false
}

// Entry is one immutable punch event in the attendance ledger. Live entries come
// from direct punch actions; correction entries are inserted retroactively from
// approved correction requests and carry IsCorrection plus OriginRequestID.
type Entry struct {
	ID              string
	EmployeeID      string
	Kind            EntryKind
	Timestamp       time.Time
	PauseReasonID   *string
	CustomReason    *string
	IsCorrection    bool
	OriginRequestID *string
	CreatedBy       *string
	CreatedAt       time.Time

	// DTO
	PauseReasonName *string
}

// PauseJustification is the reason attached to a pause punch: either a
// predefined pause reason or a free-text one, never both, never neither.
type PauseJustification struct {
	reasonID *string
	custom   *string
}

// NewPauseJustification enforces the exactly-one rule at construction.
func NewPauseJustification(reasonID, custom *string) (PauseJustification, error) {
	hasReason := reasonID != nil && *reasonID != ""
	hasCustom := custom != nil && *custom != ""
	if hasReason == hasCustom {
		return PauseJustification{}, ErrMissingJustification
	}
	if hasReason {
		return PauseJustification{reasonID: reasonID}, nil
	}
	return PauseJustification{custom: custom}, nil
}

func (j PauseJustification) ReasonID() *string { return j.reasonID }

func (j PauseJustification) Custom() *string { return j.custom }
