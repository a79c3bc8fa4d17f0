package reconciler

import "github.com/google/uuid"

// Action is what a toggle did to the local view.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionNone   Action = "none"
)

// Status is how a toggle settled.
type Status string

const (
	// StatusApplied: the store accepted the mutation.
	StatusApplied Status = "applied"
	// StatusRolledBack: the store rejected the mutation and the local view was restored.
	StatusRolledBack Status = "rolled_back"
	// StatusReconciled: the store already held the selection and its list was adopted.
	StatusReconciled Status = "reconciled"
	// StatusDropped: the toggle was not started.
	StatusDropped Status = "dropped"
)

// Outcome is the settle result of one Toggle.
type Outcome struct {
	Key    Key
	Action Action
	Status Status
	Err    error
}

// NoticeKind classifies a notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient user-facing message.
type Notice struct {
	ID      uuid.UUID
	Kind    NoticeKind
	Message string
	Key     Key
}

// Notifier displays notices. Implementations dismiss notices on their own
// after a fixed delay; Dismiss removes one early.
type Notifier interface {
	Notify(n Notice)
	Dismiss(id uuid.UUID)
}

type noopNotifier struct{}

func (noopNotifier) Notify(Notice)     {}
func (noopNotifier) Dismiss(uuid.UUID) {}
