package order

import (
	"errors"
	"fmt"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a production order for manufactured window/door units.
// It is the aggregate root that manages the order identity and its
// manufacturing lifecycle.
//
// Order follows these invariants:
//   - orderUUID, orderNumber, customerID, and teamID are assigned at
//     creation and immutable thereafter
//   - The database-assigned id is immutable once persisted
//   - Status is the only mutable field and changes only through the four
//     lifecycle transitions (Confirm, Start, Finish, Deliver)
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the database-assigned identifier; zero until first persisted
	id int64

	// orderUUID is the opaque external-facing identity
	orderUUID kernel.UUID

	// orderNumber is the human-readable label (e.g. "ORD-2026-10")
	orderNumber string

	// customerID references the customer the order is manufactured for
	customerID int64

	// teamID references the production team building the order
	teamID int64

	// status is the current state in the manufacturing lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. New orders receive a fresh
// orderUUID and start in InProgress status; the numeric id stays zero until
// the order is persisted.
//
// Parameters:
//   - orderNumber: Human-readable label (required)
//   - customerID: Customer reference (must be positive)
//   - teamID: Production team reference (must be positive)
//
// Example:
//
//	order, err := order.NewOrder("ORD-2026-10", 10, 5)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(orderNumber string, customerID, teamID int64) (*Order, error) {
	o := &Order{
		orderUUID:     kernel.NewUUID(),
		status:        InProgress,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setTeamID(teamID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an already
// assigned id, external UUID, and status. It validates every field and is
// the only legal way to obtain an order outside InProgress without walking
// the lifecycle.
func RestoreOrder(
	id int64,
	orderUUID kernel.UUID,
	orderNumber string,
	customerID, teamID int64,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderUUID(orderUUID),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setTeamID(teamID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their external UUID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderUUID.IsEqual(other.orderUUID)
}

// ID returns the database-assigned identifier (zero if not yet persisted).
func (o *Order) ID() int64 {
	return o.id
}

// OrderUUID returns the opaque external-facing identity.
func (o *Order) OrderUUID() kernel.UUID {
	return o.orderUUID
}

// OrderNumber returns the human-readable order label.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the customer reference.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// TeamID returns the production team reference.
func (o *Order) TeamID() int64 {
	return o.teamID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Confirm moves the order from InProgress to Scheduled.
//
// Returns an *errs.InvalidStateError (reporting expected and actual codes)
// when the order is not InProgress; the order is left unchanged.
func (o *Order) Confirm() error {
	return o.apply(TransitionConfirm)
}

// Start moves the order from Scheduled back to InProgress, marking the
// beginning of manufacturing.
//
// Returns an *errs.InvalidStateError when the order is not Scheduled; the
// order is left unchanged.
func (o *Order) Start() error {
	return o.apply(TransitionStart)
}

// Finish moves the order from InProgress to ForDelivery once manufacturing
// is done.
//
// Returns an *errs.InvalidStateError when the order is not InProgress; the
// order is left unchanged.
func (o *Order) Finish() error {
	return o.apply(TransitionFinish)
}

// Deliver moves the order from ForDelivery to Completed, the final state.
//
// Returns an *errs.InvalidStateError when the order is not ForDelivery; the
// order is left unchanged.
func (o *Order) Deliver() error {
	return o.apply(TransitionDeliver)
}

// apply runs one table transition; the status only changes on success.
func (o *Order) apply(t Transition) error {
	newStatus, err := o.status.Apply(t)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the database-assigned identifier.
// This is a private method used only during reconstruction.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setOrderUUID validates and sets the external identity.
// This is a private method used only during reconstruction.
func (o *Order) setOrderUUID(orderUUID kernel.UUID) error {
	if err := orderUUID.Validate(); err != nil {
		return err
	}
	o.orderUUID = orderUUID
	return nil
}

// setOrderNumber validates and sets the human-readable label.
// This is a private method used only during construction.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerID validates and sets the customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid", fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

// setTeamID validates and sets the production team reference.
// This is a private method used only during construction.
func (o *Order) setTeamID(teamID int64) error {
	if teamID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("teamId is invalid", fmt.Errorf("%d is not greater than 0", teamID))
	}
	o.teamID = teamID
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during reconstruction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
