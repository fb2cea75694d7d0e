package commands

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand requests the finish lifecycle transition: the order
// moves from InProgress to ForDelivery once the units are manufactured.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to finish manufacturing the given
// order. Validates that the order id is positive.
func NewFinishOrderCommand(orderID int64) (FinishOrderCommand, error) {
	cmd := FinishOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FinishOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinishOrderCommandIsNotConstructed if validation fails.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finish.
func (c FinishOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *FinishOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
