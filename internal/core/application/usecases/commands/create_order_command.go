package commands

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrCustomerIDIsInvalid   = errors.New("customer id must be greater than 0")
	ErrTeamIDIsInvalid       = errors.New("team id must be greater than 0")
)

// CreateOrderCommand represents a request to register a new production
// order. Encapsulates the human-readable order number and the customer and
// production team references.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-2026-10", 10, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d created in progress", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	customerID  int64
	teamID      int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates that the order number is not empty and both references are
// positive. Returns an error if any validation fails.
func NewCreateOrderCommand(orderNumber string, customerID, teamID int64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderNumber(orderNumber),
		orderCommand.setCustomerID(customerID),
		orderCommand.setTeamID(teamID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderNumber returns the human-readable order label.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the customer reference.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// TeamID returns the production team reference.
func (c CreateOrderCommand) TeamID() int64 {
	return c.teamID
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTeamID(teamID int64) error {
	if teamID <= 0 {
		return ErrTeamIDIsInvalid
	}

	c.teamID = teamID
	return nil
}
