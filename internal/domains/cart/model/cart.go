package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinels substituted into the variant key when a product has no
// category/brand, so key construction is total and collision-free.
const (
	NoCategory = "no-category"
	NoBrand    = "no-brand"
)

const lineIDSeparator = "|"

// DisplayMeta is informational only - never part of identity or pricing.
type DisplayMeta struct {
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category,omitempty"`
	Brand    string  `json:"brand,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
}

// CartLine is one row in the cart, identified by product+seller+variant.
type CartLine struct {
	LineID     string `json:"line_id"`
	ProductID  string `json:"product_id"`
	SellerID   string `json:"seller_id"`
	VariantKey string `json:"variant_key"`
	Quantity   int    `json:"quantity"`

	// UnitPrice is the price quoted at add-time; the backend re-prices
	// at checkout, so this is advisory for display and cart totals.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// DiscountPercent in 0-100; zero means no discount.
	DiscountPercent decimal.Decimal `json:"discount_percent"`

	Meta DisplayMeta `json:"meta"`
}

// VariantKey derives the category/brand combination that distinguishes
// otherwise-identical product references.
func VariantKey(category, brand string) string {
	if category == "" {
		category = NoCategory
	}
	if brand == "" {
		brand = NoBrand
	}
	return category + lineIDSeparator + brand
}

// BuildLineID computes the stable identity of a cart row.
func BuildLineID(productID, sellerID, variantKey string) string {
	return strings.Join([]string{productID, sellerID, variantKey}, lineIDSeparator)
}

// EffectiveUnitPrice applies the discount percentage, if any.
func (l CartLine) EffectiveUnitPrice() decimal.Decimal {
	if l.DiscountPercent.IsZero() {
		return l.UnitPrice
	}
	factor := decimal.NewFromInt(100).Sub(l.DiscountPercent).Div(decimal.NewFromInt(100))
	return l.UnitPrice.Mul(factor)
}

// Subtotal is effective price times quantity, unrounded.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// TotalItems sums quantities across lines.
func TotalItems(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums effective price * quantity over lines, rounding once
// on the aggregate to a whole currency unit. Rounding per line would
// compound error.
func TotalPrice(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum.Round(0)
}

// QuantityOf aggregates quantity across all variants of a product,
// optionally restricted to one seller. Matches on the identity fields
// rather than a key-prefix scan so that one product id being a prefix
// of another cannot miscount.
func QuantityOf(lines []CartLine, productID, sellerID string) int {
	total := 0
	for _, l := range lines {
		if l.ProductID != productID {
			continue
		}
		if sellerID != "" && l.SellerID != sellerID {
			continue
		}
		total += l.Quantity
	}
	return total
}

// GroupBySeller buckets lines by seller, preserving line order within
// each bucket. Checkout fulfillment is scoped per seller.
func GroupBySeller(lines []CartLine) map[string][]CartLine {
	groups := make(map[string][]CartLine)
	for _, l := range lines {
		groups[l.SellerID] = append(groups[l.SellerID], l)
	}
	return groups
}

// TotalPriceForSeller sums effective price * quantity for one seller,
// rounded on the aggregate.
func TotalPriceForSeller(lines []CartLine, sellerID string) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		if l.SellerID == sellerID {
			sum = sum.Add(l.Subtotal())
		}
	}
	return sum.Round(0)
}

// MergeLine applies add-to-cart semantics: if a line with the candidate's
// LineID exists, its quantity grows by the candidate's quantity and
// price/discount/meta are overwritten (last write wins); otherwise the
// candidate is appended. Returns the updated slice.
func MergeLine(lines []CartLine, candidate CartLine) []CartLine {
	for i, l := range lines {
		if l.LineID == candidate.LineID {
			lines[i].Quantity = l.Quantity + candidate.Quantity
			lines[i].UnitPrice = candidate.UnitPrice
			lines[i].DiscountPercent = candidate.DiscountPercent
			lines[i].Meta = candidate.Meta
			return lines
		}
	}
	return append(lines, candidate)
}

// SetQuantity sets a line's quantity exactly (not additive - this
// asymmetry with MergeLine is intentional). Quantity <= 0 removes the
// line. Setting quantity on an absent line reports ErrLineNotFound.
func SetQuantity(lines []CartLine, lineID string, quantity int) ([]CartLine, error) {
	if quantity <= 0 {
		return RemoveLine(lines, lineID), nil
	}
	for i, l := range lines {
		if l.LineID == lineID {
			lines[i].Quantity = quantity
			return lines, nil
		}
	}
	return lines, fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
}

// RemoveLine deletes the line with the given id; no-op when absent.
func RemoveLine(lines []CartLine, lineID string) []CartLine {
	for i, l := range lines {
		if l.LineID == lineID {
			return append(lines[:i], lines[i+1:]...)
		}
	}
	return lines
}
