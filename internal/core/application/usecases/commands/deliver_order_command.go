package commands

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand requests the deliver lifecycle transition: the order
// moves from ForDelivery to Completed, the final state.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver the given order.
// Validates that the order id is positive.
func NewDeliverOrderCommand(orderID int64) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c DeliverOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *DeliverOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
