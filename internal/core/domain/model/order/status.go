package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the coffee shop workflow.
//
// State transitions:
//
//	Created ──> Paid ──> Preparing ──> Ready ──> Completed
//	   │          │          │
//	   │          ├──────────┘ (mark ready skips Preparing when requested from Paid)
//	   │          │
//	   └──────────┴──> Cancelled
//
// The upstream order service is the authority on transitions; the desk uses
// this table only to decide which actions it offers and requests. Status is a
// value object providing action availability, wire names, display labels,
// and colors.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when an order is first created.
	// Orders in this status await payment and may still be cancelled.
	StatusCreated

	// StatusPaid indicates the order has been paid. The barista may mark it
	// ready from here, and the customer may still cancel.
	StatusPaid

	// StatusPreparing indicates the coffee is being prepared.
	// Cancellation is no longer offered.
	StatusPreparing

	// StatusReady indicates the coffee is ready for pickup or delivery.
	StatusReady

	// StatusCompleted indicates the order has been handed over.
	// This is a terminal state.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled before preparation.
	// This is a terminal state.
	StatusCancelled
)

// Action is a lifecycle operation the desk may offer for an order.
type Action string

const (
	// ActionMarkReady requests the transition to Ready.
	ActionMarkReady Action = "markReady"
	// ActionComplete requests the transition to Completed.
	ActionComplete Action = "complete"
	// ActionCancel requests the transition to Cancelled.
	ActionCancel Action = "cancel"
)

// statusNames maps every Status to its wire name, the representation the
// upstream order service uses in JSON and URL segments.
func statusNames() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusCreated:   "CREATED",
		StatusPaid:      "PAID",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusCompleted: "COMPLETED",
		StatusCancelled: "CANCELLED",
	}
}

// validStatusNames maps only valid Status values to support validation.
func validStatusNames() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "CREATED",
		StatusPaid:      "PAID",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusCompleted: "COMPLETED",
		StatusCancelled: "CANCELLED",
	}
}

// AllStatuses returns every valid status in lifecycle order.
// Used by the dashboard to build a distribution that includes zero counts.
func AllStatuses() []Status {
	return []Status{
		StatusCreated,
		StatusPaid,
		StatusPreparing,
		StatusReady,
		StatusCompleted,
		StatusCancelled,
	}
}

// ParseStatus converts a wire name such as "PAID" into a Status.
// Returns an error for names outside the enumeration.
func ParseStatus(name string) (Status, error) {
	for status, statusName := range validStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", name),
	)
}

// Validate checks if the Status value is a member of the enumeration.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, e.g. "PREPARING".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Label returns the display label for the status.
func (s Status) Label() string {
	labels := map[Status]string{
		StatusCreated:   "已创建",
		StatusPaid:      "已支付",
		StatusPreparing: "制作中",
		StatusReady:     "已就绪",
		StatusCompleted: "已完成",
		StatusCancelled: "已取消",
	}
	if label, ok := labels[s]; ok {
		return label
	}
	return "未知"
}

// Color returns the display color for the status as a hex string.
func (s Status) Color() string {
	colors := map[Status]string{
		StatusCreated:   "#9E9E9E",
		StatusPaid:      "#2196F3",
		StatusPreparing: "#FF9800",
		StatusReady:     "#4CAF50",
		StatusCompleted: "#009688",
		StatusCancelled: "#F44336",
	}
	if color, ok := colors[s]; ok {
		return color
	}
	return "#9E9E9E"
}

// IsTerminal reports whether no further actions are offered for the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsPending reports whether the order still needs attention: any valid
// status that is neither Completed nor Cancelled.
func (s Status) IsPending() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// CanMarkReady reports whether the mark-ready action is offered.
// Mark ready is available while the order is Paid or Preparing.
func (s Status) CanMarkReady() bool {
	return s == StatusPaid || s == StatusPreparing
}

// CanComplete reports whether the complete action is offered.
// Completion is available only when the order is Ready.
func (s Status) CanComplete() bool {
	return s == StatusReady
}

// CanCancel reports whether the cancel action is offered.
// Cancellation is available while the order is Created or Paid;
// once preparation starts the order can no longer be cancelled.
func (s Status) CanCancel() bool {
	return s == StatusCreated || s == StatusPaid
}

// AvailableActions returns exactly the actions offered for the status:
//
//	Created   -> cancel
//	Paid      -> markReady, cancel
//	Preparing -> markReady
//	Ready     -> complete
//	Completed -> (none)
//	Cancelled -> (none)
//
// Availability is a pure function of the current status. It gates which
// transition requests the desk issues; the upstream service remains the
// authority on whether a transition is applied.
func (s Status) AvailableActions() []Action {
	actions := make([]Action, 0, 2)
	if s.CanMarkReady() {
		actions = append(actions, ActionMarkReady)
	}
	if s.CanComplete() {
		actions = append(actions, ActionComplete)
	}
	if s.CanCancel() {
		actions = append(actions, ActionCancel)
	}
	return actions
}
