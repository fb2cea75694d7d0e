package commands

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// ConfirmOrderCommand requests the confirm lifecycle transition: the order
// moves from InProgress (drafting) to Scheduled, queueing it for
// manufacturing.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(10)
//	if err != nil {
//	    return err
//	}
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	confirmed, err := handler.Handle(ctx, cmd)
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the given order.
// Validates that the order id is positive.
func NewConfirmOrderCommand(orderID int64) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderCommandIsNotConstructed if validation fails.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *ConfirmOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
