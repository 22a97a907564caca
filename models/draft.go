package models

import (
	"sort"
	"time"
)

// DraftState is the position of a draft in the wizard workflow.
//
//	Empty -> InProgress -> ReadyToCommit -> Committing -> Committed
//	                ^            |              |
//	                +------------+   (failure)  +-> ReadyToCommit
type DraftState int

const (
	DraftEmpty DraftState = iota
	DraftInProgress
	DraftReadyToCommit
	DraftCommitting
	DraftCommitted
)

// String implements fmt.Stringer.
func (s DraftState) String() string {
	switch s {
	case DraftEmpty:
		return "empty"
	case DraftInProgress:
		return "in_progress"
	case DraftReadyToCommit:
		return "ready_to_commit"
	case DraftCommitting:
		return "committing"
	case DraftCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Draft is an entity being created or edited across several wizard steps.
//
// A draft with Updating set always carries a non-empty ID.
type Draft struct {
	// DraftID identifies this editing session locally. It changes on every
	// StartCreate / StartEdit.
	DraftID string `json:"draft_id"`

	Kind EntityKind `json:"kind"`

	// ID is the identifier of the persisted entity being edited.
	ID ID `json:"id,omitempty"`

	// Updating distinguishes editing an existing entity from creating one.
	Updating bool `json:"updating"`

	// Fields holds the accumulated entity fields.
	Fields Fields `json:"fields"`

	State DraftState `json:"state"`

	// Step is the last applied wizard step.
	Step string `json:"step,omitempty"`

	// Applied maps each applied step to the revision it produced.
	Applied map[string]int64 `json:"applied,omitempty"`

	// Revision grows by one on every mutation.
	Revision int64 `json:"revision"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep-enough copy of d: maps are copied, values are shared.
func (d Draft) Clone() Draft {
	out := d
	if d.Fields != nil {
		out.Fields = d.Fields.Clone()
	}
	if d.Applied != nil {
		out.Applied = make(map[string]int64, len(d.Applied))
		for k, v := range d.Applied {
			out.Applied[k] = v
		}
	}
	return out
}

// Values returns the draft as a flat record: every entity field plus the
// "updating" flag and, when set, the "id".
func (d Draft) Values() Fields {
	out := d.Fields.Clone()
	out[FieldUpdating] = d.Updating
	if d.ID != "" {
		out[FieldID] = string(d.ID)
	}
	return out
}

// PendingSteps returns the required steps that have not been applied yet,
// sorted by name.
func (d Draft) PendingSteps(required []string) []string {
	pending := make([]string, 0, len(required))
	for _, step := range required {
		if _, ok := d.Applied[step]; !ok {
			pending = append(pending, step)
		}
	}
	sort.Strings(pending)
	return pending
}

// Active reports whether the draft is being edited.
func (d Draft) Active() bool {
	return d.State == DraftInProgress || d.State == DraftReadyToCommit
}

// Confirmation acknowledges an applied wizard step.
type Confirmation struct {
	Step     string
	Revision int64
	State    DraftState
	// Pending lists the required steps still missing after this apply.
	Pending []string
}
