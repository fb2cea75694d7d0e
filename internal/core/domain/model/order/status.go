package order

import (
	"fmt"

	"fabrication/internal/pkg/errs"
)

// Status represents the manufacturing lifecycle state of a production order.
// It implements a state machine with an explicit transition table so the
// graph stays inspectable and exhaustively testable.
//
// State transitions:
//
//	InProgress ──confirm──> Scheduled ──start──> InProgress
//	InProgress ──finish───> ForDelivery ──deliver──> Completed
//
// InProgress deliberately appears twice: it is both the drafting state a new
// order starts in and the mid-manufacturing state reached via start. The
// engine only compares numeric codes and does not distinguish the two.
//
// The numeric values are significant because they are exposed on the wire
// as statusId.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProgress (1) is the initial status of a new order and the status of
	// an order actively being manufactured after start.
	InProgress

	// Scheduled (2) indicates the order was confirmed and queued for
	// manufacturing.
	Scheduled

	// ForDelivery (3) indicates manufacturing finished and the units await
	// delivery.
	ForDelivery

	// Completed (4) indicates the order was delivered. This is a final
	// state with no further transitions allowed.
	Completed
)

// Transition identifies one of the four fixed lifecycle operations.
type Transition string

const (
	TransitionConfirm Transition = "confirm"
	TransitionStart   Transition = "start"
	TransitionFinish  Transition = "finish"
	TransitionDeliver Transition = "deliver"
)

// transitionRule pins the exact precondition and result of one operation.
type transitionRule struct {
	required Status
	next     Status
}

// transitionTable holds the full lifecycle graph keyed by operation.
// Each operation has exactly one required current status.
var transitionTable = map[Transition]transitionRule{
	TransitionConfirm: {required: InProgress, next: Scheduled},
	TransitionStart:   {required: Scheduled, next: InProgress},
	TransitionFinish:  {required: InProgress, next: ForDelivery},
	TransitionDeliver: {required: ForDelivery, next: Completed},
}

// statusStrings maps Status values to their string representations.
// All statuses are included for string conversion.
var statusStrings = map[Status]string{
	Unknown:     "Unknown",
	InProgress:  "InProgress",
	Scheduled:   "Scheduled",
	ForDelivery: "ForDelivery",
	Completed:   "Completed",
}

// validStatusStrings maps only valid Status values to their names.
// Unknown is intentionally excluded to support validation.
var validStatusStrings = map[Status]string{
	InProgress:  "InProgress",
	Scheduled:   "Scheduled",
	ForDelivery: "ForDelivery",
	Completed:   "Completed",
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: InProgress, Scheduled, ForDelivery, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := validStatusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the wire-level numeric status code (statusId).
func (s Status) Code() int {
	return int(s)
}

// Apply runs one lifecycle transition against the current status.
//
// Returns:
//   - (next status, nil) when the current status matches the operation's
//     required status exactly
//   - (0, *errs.InvalidStateError) when it does not; the error message
//     reports both the expected and the actual code
//   - (0, *errs.ValueIsInvalidError) for an unknown transition name
//
// Example:
//
//	next, err := currentStatus.Apply(order.TransitionConfirm)
//	if err != nil {
//	    // precondition violated, order must stay unchanged
//	}
func (s Status) Apply(t Transition) (Status, error) {
	rule, ok := transitionTable[t]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"transition",
			fmt.Errorf("%s is not a known lifecycle transition", t),
		)
	}

	if s != rule.required {
		return 0, errs.NewInvalidStateError("order status", rule.required.Code(), s.Code())
	}

	return rule.next, nil
}

// RequiredStatus returns the precondition status for the given transition.
// Returns Unknown for a transition that is not part of the lifecycle graph.
func RequiredStatus(t Transition) Status {
	rule, ok := transitionTable[t]
	if !ok {
		return Unknown
	}
	return rule.required
}
