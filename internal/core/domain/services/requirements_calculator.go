package services

import (
	"math"

	"fabrication/internal/core/domain/model/order"
)

// MaterialFigures holds the derived material quantities for one line item,
// each rounded to 3 decimal places.
type MaterialFigures struct {
	// ProfileMeters is the total linear frame material:
	// perimeter in meters times quantity.
	ProfileMeters float64

	// GlassSquareMeters is the total glazing area:
	// unit area in square meters times quantity.
	GlassSquareMeters float64

	// HardwareUnits is one hardware set per manufactured unit,
	// independent of product type.
	HardwareUnits int
}

// ItemRequirements annotates one line item with its computed figures.
type ItemRequirements struct {
	ItemID      int64
	ProductType string
	WidthMm     int
	HeightMm    int
	Quantity    int
	Figures     MaterialFigures
}

// Requirements aggregates the material totals across all items of an order.
type Requirements struct {
	TotalProfileMeters     float64
	TotalGlassSquareMeters float64
	TotalHardwareUnits     int
}

// Summary is the derived, never-persisted material overview of one order.
type Summary struct {
	OrderID      int64
	Items        []ItemRequirements
	Requirements Requirements
}

// RequirementsCalculator is a pure domain service mapping line items to the
// material quantities needed to manufacture them.
//
// Formulas (dimensions in millimeters):
//   - profileMeters      = 2 * (width + height) / 1000 * quantity
//   - glassSquareMeters  = width * height / 1_000_000 * quantity
//   - hardwareUnits      = quantity
//
// The product type is carried through for display only; it does not branch
// the formulas. All figures are rounded to 3 decimal places half-up so
// results are bit-for-bit reproducible.
//
// Example usage:
//
//	calc := services.NewRequirementsCalculator()
//	item, _ := order.RestoreItem(1, 60, "Window", 1000, 1200, 2)
//	figures, err := calc.Calculate(item)
//	// figures.ProfileMeters == 8.8, figures.GlassSquareMeters == 2.4
type RequirementsCalculator struct{}

// NewRequirementsCalculator creates a new RequirementsCalculator instance.
func NewRequirementsCalculator() RequirementsCalculator {
	return RequirementsCalculator{}
}

// Calculate derives the material figures for a single line item.
//
// Returns an error only when the item was not properly constructed.
func (c RequirementsCalculator) Calculate(item *order.Item) (MaterialFigures, error) {
	if err := item.Validate(); err != nil {
		return MaterialFigures{}, err
	}

	width := float64(item.WidthMm())
	height := float64(item.HeightMm())
	quantity := float64(item.Quantity())

	return MaterialFigures{
		ProfileMeters:     round3(2 * (width + height) / 1000 * quantity),
		GlassSquareMeters: round3(width * height / 1_000_000 * quantity),
		HardwareUnits:     item.Quantity(),
	}, nil
}

// BuildSummary composes Calculate over an order's current items and
// aggregates the totals. The input slice order is preserved in the result.
//
// Totals are sums of the already-rounded per-item figures, rounded again to
// 3 decimal places. The summary reflects exactly the item set passed in; it
// is never cached.
func (c RequirementsCalculator) BuildSummary(orderID int64, items []*order.Item) (Summary, error) {
	summary := Summary{
		OrderID: orderID,
		Items:   make([]ItemRequirements, 0, len(items)),
	}

	for _, item := range items {
		figures, err := c.Calculate(item)
		if err != nil {
			return Summary{}, err
		}

		summary.Items = append(summary.Items, ItemRequirements{
			ItemID:      item.ID(),
			ProductType: item.ProductType(),
			WidthMm:     item.WidthMm(),
			HeightMm:    item.HeightMm(),
			Quantity:    item.Quantity(),
			Figures:     figures,
		})

		summary.Requirements.TotalProfileMeters += figures.ProfileMeters
		summary.Requirements.TotalGlassSquareMeters += figures.GlassSquareMeters
		summary.Requirements.TotalHardwareUnits += figures.HardwareUnits
	}

	summary.Requirements.TotalProfileMeters = round3(summary.Requirements.TotalProfileMeters)
	summary.Requirements.TotalGlassSquareMeters = round3(summary.Requirements.TotalGlassSquareMeters)

	return summary, nil
}

// round3 rounds to 3 decimal places, half away from zero. All material
// quantities are non-negative, so this is half-up rounding.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
