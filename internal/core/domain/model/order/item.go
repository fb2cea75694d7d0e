package order

import (
	"errors"
	"fmt"

	"fabrication/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Item is a line item of a production order: one specification of a product
// type, millimeter dimensions, and quantity of identical units.
//
// Items belong exclusively to one order and only exist as a complete
// per-order set; the set is wiped and rewritten on every replace operation,
// so item ids are freshly assigned each time. The product type is a
// free-form category label ("Window", "Door") carried for display, not
// validated against a closed set.
type Item struct {
	// id is the database-assigned identifier; zero until persisted
	id int64

	// orderID is the owning order's identifier
	orderID int64

	// productType is the free-form category label
	productType string

	// widthMm and heightMm are the unit dimensions in millimeters
	widthMm  int
	heightMm int

	// quantity is the count of identical units
	quantity int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new Item stamped with its owning order. The numeric id
// stays zero until the item is persisted.
//
// Parameters:
//   - orderID: Owning order's identifier (must be positive)
//   - productType: Category label (required)
//   - widthMm, heightMm: Unit dimensions in millimeters (must be positive)
//   - quantity: Count of identical units (must be positive)
func NewItem(orderID int64, productType string, widthMm, heightMm, quantity int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setProductType(productType),
		item.setWidthMm(widthMm),
		item.setHeightMm(heightMm),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence with an already
// assigned id.
func RestoreItem(id, orderID int64, productType string, widthMm, heightMm, quantity int) (*Item, error) {
	item, err := NewItem(orderID, productType, widthMm, heightMm, quantity)
	if err != nil {
		return nil, err
	}

	if err = item.setID(id); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through
// NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the database-assigned identifier (zero if not yet persisted).
func (i *Item) ID() int64 {
	return i.id
}

// OrderID returns the owning order's identifier.
func (i *Item) OrderID() int64 {
	return i.orderID
}

// ProductType returns the free-form category label.
func (i *Item) ProductType() string {
	return i.productType
}

// WidthMm returns the unit width in millimeters.
func (i *Item) WidthMm() int {
	return i.widthMm
}

// HeightMm returns the unit height in millimeters.
func (i *Item) HeightMm() int {
	return i.heightMm
}

// Quantity returns the count of identical units.
func (i *Item) Quantity() int {
	return i.quantity
}

// setID validates and sets the database-assigned identifier.
// This is a private method used only during reconstruction.
func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid", fmt.Errorf("%d is not greater than 0", orderID))
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductType(productType string) error {
	if productType == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	i.productType = productType
	return nil
}

func (i *Item) setWidthMm(widthMm int) error {
	if widthMm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("widthMm is invalid", fmt.Errorf("%d is not greater than 0", widthMm))
	}
	i.widthMm = widthMm
	return nil
}

func (i *Item) setHeightMm(heightMm int) error {
	if heightMm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("heightMm is invalid", fmt.Errorf("%d is not greater than 0", heightMm))
	}
	i.heightMm = heightMm
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
