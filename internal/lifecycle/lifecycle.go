// Package lifecycle holds the return status graph and the rules for
// moving a return through it. The engine mutates nothing but the entity
// handed to it, so callers decide when and how the change is persisted.
package lifecycle

import (
	"time"

	"returnhub-be/internal/entity"
	"returnhub-be/internal/pkg/apperror"
)

// Action is a caller-requested transition on a return.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// transitions maps each action to the statuses it may be applied from
// and the status it lands on.
var transitions = map[Action]struct {
	from    map[entity.ReturnStatus]bool
	to      entity.ReturnStatus
	message string
}{
	ActionApprove: {
		from:    map[entity.ReturnStatus]bool{entity.StatusInitiated: true},
		to:      entity.StatusAuthorized,
		message: "Can only approve returns in INITIATED status",
	},
	ActionCancel: {
		from: map[entity.ReturnStatus]bool{
			entity.StatusInitiated:  true,
			entity.StatusAuthorized: true,
			entity.StatusDroppedOff: true,
			entity.StatusProcessing: true,
		},
		to:      entity.StatusCancelled,
		message: "Cannot cancel completed or already cancelled returns",
	},
	ActionComplete: {
		from:    map[entity.ReturnStatus]bool{entity.StatusProcessing: true},
		to:      entity.StatusCompleted,
		message: "Can only complete returns in PROCESSING status",
	},
}

// Engine applies lifecycle actions to returns. The clock is injected so
// tests can pin the timestamps it writes.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Apply moves ret to the status the action targets, or returns an
// InvalidTransitionError leaving ret untouched. Completing a return also
// stamps CompletedAt; every successful transition refreshes UpdatedAt.
func (e *Engine) Apply(ret *entity.Return, action Action) error {
	t, ok := transitions[action]
	if !ok {
		return apperror.NewValidationError("unknown lifecycle action")
	}
	if !t.from[ret.Status] {
		return apperror.NewInvalidTransitionError(t.message)
	}

	now := e.now().UTC()
	ret.Status = t.to
	ret.UpdatedAt = &now
	if action == ActionComplete {
		completed := now
		ret.CompletedAt = &completed
	}
	return nil
}

// CanApply reports whether the action is legal from the return's current
// status without mutating anything.
func (e *Engine) CanApply(ret *entity.Return, action Action) bool {
	t, ok := transitions[action]
	return ok && t.from[ret.Status]
}
