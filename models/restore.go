package models

// RestoreState is the per page-edit state of the restore workflow.
type RestoreState int

const (
	// NoDraft means there is no valid staged submission for the page.
	NoDraft RestoreState = iota
	// DraftPendingDecision means a valid draft exists and the editor has not
	// chosen what to do with it yet.
	DraftPendingDecision
	// Applied means the draft was restored (or previewed with "test").
	Applied
	// Discarded means the draft was deleted without touching the form.
	Discarded
)

func (s RestoreState) String() string {
	switch s {
	case NoDraft:
		return "no_draft"
	case DraftPendingDecision:
		return "pending"
	case Applied:
		return "applied"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// RestoreAction is the editor's choice for a pending draft.
type RestoreAction string

const (
	ActionRestore RestoreAction = "restore"
	ActionTest    RestoreAction = "test"
	ActionDelete  RestoreAction = "delete"
	ActionIgnore  RestoreAction = "ignore"
)

// Valid reports whether a is one of the known actions.
func (a RestoreAction) Valid() bool {
	switch a {
	case ActionRestore, ActionTest, ActionDelete, ActionIgnore:
		return true
	}
	return false
}

// RestoreStatus describes whether a page has a pending draft.
type RestoreStatus struct {
	State RestoreState
	Info  IdentityInfo
}

// RestoreResult is the outcome of applying a [RestoreAction].
type RestoreResult struct {
	// State is the workflow state after the action.
	State RestoreState

	// Changed lists the field names whose values differ between the live
	// submission and the draft, sorted.
	Changed []string

	// Fields is a copy of the live submission with the action applied. For
	// [ActionRestore] and [ActionTest] it carries the draft values of the
	// changed keys; the caller's map is never modified. Only ActionRestore
	// deletes the draft.
	Fields Fields

	// DraftDeleted reports whether the staged draft was removed.
	DraftDeleted bool
}
