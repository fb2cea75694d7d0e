package commands

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand requests the start lifecycle transition: the order
// moves from Scheduled back to InProgress, marking the beginning of
// manufacturing.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to start manufacturing the given
// order. Validates that the order id is positive.
func NewStartOrderCommand(orderID int64) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartOrderCommandIsNotConstructed if validation fails.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to start.
func (c StartOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *StartOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
