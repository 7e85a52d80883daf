// Package pricing computes repetition-discounted point prices for components.
package pricing

import (
	"fmt"
	"strings"
)

// MaxDiscountPercent is the discount applied from the fifth copy onward.
const MaxDiscountPercent = 50

// discountTiers maps copy number (index) to discount percent.
// Copies past the end of the table use MaxDiscountPercent.
var discountTiers = []int{0, 0, 20, 30, 40}

// CopyPrice is the price of a single copy within a quantity.
type CopyPrice struct {
	Copy     int `json:"copy"`
	Discount int `json:"discount"`
	Price    int `json:"price"`
}

// Breakdown holds the per-copy prices and total for a quantity of one component.
type Breakdown struct {
	Quantity  int
	UnitPrice int
	Discount  int // discount tier of the last copy, 0 for a single copy
	Total     int
	Copies    []CopyPrice
}

// DiscountPercentFor returns the discount percent for the nth copy (1-based).
func DiscountPercentFor(copyIndex int) int {
	if copyIndex < 1 {
		return 0
	}
	if copyIndex < len(discountTiers) {
		return discountTiers[copyIndex]
	}
	return MaxDiscountPercent
}

// PriceForCopy returns the floored price of the nth copy of a component.
// Integer division truncates, which equals floor for non-negative inputs.
func PriceForCopy(basePoints, copyIndex int) int {
	return basePoints * (100 - DiscountPercentFor(copyIndex)) / 100
}

// ComputeBreakdown prices copies 1..quantity of a component.
// Callers guarantee quantity >= 1; anything lower yields an empty breakdown.
func ComputeBreakdown(basePoints, quantity int) Breakdown {
	b := Breakdown{
		Quantity:  quantity,
		UnitPrice: basePoints,
	}
	if quantity < 1 {
		b.Quantity = 0
		return b
	}

	b.Copies = make([]CopyPrice, 0, quantity)
	for i := 1; i <= quantity; i++ {
		p := CopyPrice{
			Copy:     i,
			Discount: DiscountPercentFor(i),
			Price:    PriceForCopy(basePoints, i),
		}
		b.Copies = append(b.Copies, p)
		b.Total += p.Price
	}
	if quantity > 1 {
		b.Discount = DiscountPercentFor(quantity)
	}
	return b
}

// Total is shorthand for ComputeBreakdown(basePoints, quantity).Total.
func Total(basePoints, quantity int) int {
	total := 0
	for i := 1; i <= quantity; i++ {
		total += PriceForCopy(basePoints, i)
	}
	return total
}

// Savings returns how many points the discount ladder saves versus paying
// full price for every copy.
func Savings(basePoints, quantity int) int {
	if quantity < 1 {
		return 0
	}
	return basePoints*quantity - Total(basePoints, quantity)
}

// DiscountExamples renders the tier ladder shown on catalog cards.
// e.g. 25 -> "25 pts · 2nd −20% = 20 · 3rd −30% = 17 · 4th −40% = 15 · 5+ −50% = 12"
func DiscountExamples(basePoints int) string {
	parts := []string{
		fmt.Sprintf("%d pts", basePoints),
		fmt.Sprintf("2nd −%d%% = %d", DiscountPercentFor(2), PriceForCopy(basePoints, 2)),
		fmt.Sprintf("3rd −%d%% = %d", DiscountPercentFor(3), PriceForCopy(basePoints, 3)),
		fmt.Sprintf("4th −%d%% = %d", DiscountPercentFor(4), PriceForCopy(basePoints, 4)),
		fmt.Sprintf("5+ −%d%% = %d", DiscountPercentFor(5), PriceForCopy(basePoints, 5)),
	}
	return strings.Join(parts, " · ")
}
