package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// AddItemRequest carries a candidate line from the product pages.
// Category/brand become part of the variant key; the rest of the
// display fields are informational.
type AddItemRequest struct {
	ProductID       string          `json:"product_id"`
	SellerID        string          `json:"seller_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Category        string          `json:"category"`
	Brand           string          `json:"brand"`
	Rating          float64         `json:"rating"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.SellerID, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.UnitPrice, validation.By(nonNegativeDecimal)),
		validation.Field(&r.DiscountPercent, validation.By(percentRange)),
	)
}

// ToLine converts the request into a CartLine with derived identity.
func (r AddItemRequest) ToLine() CartLine {
	variantKey := VariantKey(r.Category, r.Brand)
	return CartLine{
		LineID:          BuildLineID(r.ProductID, r.SellerID, variantKey),
		ProductID:       r.ProductID,
		SellerID:        r.SellerID,
		VariantKey:      variantKey,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.DiscountPercent,
		Meta: DisplayMeta{
			Name:     r.Name,
			Image:    r.Image,
			Category: r.Category,
			Brand:    r.Brand,
			Rating:   r.Rating,
		},
	}
}

// UpdateQuantityRequest sets a line's quantity exactly; zero removes.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Min(0)),
	)
}

// CartLineResponse is a CartLine plus derived pricing for display.
type CartLineResponse struct {
	CartLine
	EffectivePrice decimal.Decimal `json:"effective_price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// CartResponse is the aggregate view; totals are always recomputed
// from lines, never read from storage.
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalItems int                `json:"total_items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

// NewCartResponse derives the aggregate view from lines.
func NewCartResponse(lines []CartLine) *CartResponse {
	lineResponses := make([]CartLineResponse, len(lines))
	for i, l := range lines {
		lineResponses[i] = CartLineResponse{
			CartLine:       l,
			EffectivePrice: l.EffectiveUnitPrice(),
			Subtotal:       l.Subtotal(),
		}
	}

	return &CartResponse{
		Lines:      lineResponses,
		TotalItems: TotalItems(lines),
		TotalPrice: TotalPrice(lines),
	}
}

// SellerGroupResponse is one seller's slice of the cart.
type SellerGroupResponse struct {
	SellerID   string             `json:"seller_id"`
	Lines      []CartLineResponse `json:"lines"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

// QuantityResponse answers "already N in cart" for product pages.
type QuantityResponse struct {
	ProductID string `json:"product_id"`
	SellerID  string `json:"seller_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

func percentRange(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return ErrInvalidDiscount
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidDiscount
	}
	return nil
}
