package commands

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var ErrReplaceItemsCommandIsNotConstructed = errors.New(
	"ReplaceItemsCommand must be created via NewReplaceItemsCommand constructor",
)

// ItemSpec describes one line item in a replace request. Dimension and
// quantity validation happens when the domain item is constructed, so the
// spec itself carries raw values.
type ItemSpec struct {
	ProductType string
	WidthMm     int
	HeightMm    int
	Quantity    int
}

// ReplaceItemsCommand swaps the full line item set of an order. An empty
// spec list clears the order's items.
type ReplaceItemsCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	items   []ItemSpec

	guard guard.ConstructorGuard
}

// NewReplaceItemsCommand creates a command to replace the items of the given
// order. Validates that the order id is positive; items may be empty.
func NewReplaceItemsCommand(orderID int64, items []ItemSpec) (ReplaceItemsCommand, error) {
	cmd := ReplaceItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReplaceItemsCommand{}, err
	}
	cmd.items = items

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReplaceItemsCommandIsNotConstructed if validation fails.
func (c ReplaceItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are replaced.
func (c ReplaceItemsCommand) OrderID() int64 {
	return c.orderID
}

// Items returns the requested line item specs in submission order.
func (c ReplaceItemsCommand) Items() []ItemSpec {
	return c.items
}

func (c *ReplaceItemsCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
