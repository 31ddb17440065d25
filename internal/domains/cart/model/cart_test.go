package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID, sellerID, category, brand string, qty int, price string, discount string) CartLine {
	vk := VariantKey(category, brand)
	return CartLine{
		LineID:          BuildLineID(productID, sellerID, vk),
		ProductID:       productID,
		SellerID:        sellerID,
		VariantKey:      vk,
		Quantity:        qty,
		UnitPrice:       decimal.RequireFromString(price),
		DiscountPercent: decimal.RequireFromString(discount),
		Meta:            DisplayMeta{Name: productID},
	}
}

func TestVariantKey_Sentinels(t *testing.T) {
	assert.Equal(t, "no-category|no-brand", VariantKey("", ""))
	assert.Equal(t, "books|no-brand", VariantKey("books", ""))
	assert.Equal(t, "no-category|acme", VariantKey("", "acme"))
	assert.Equal(t, "books|acme", VariantKey("books", "acme"))
}

func TestBuildLineID(t *testing.T) {
	assert.Equal(t, "p1|s1|books|acme", BuildLineID("p1", "s1", VariantKey("books", "acme")))
}

func TestMergeLine_SameIdentityMergesAdditively(t *testing.T) {
	lines := []CartLine{line("p1", "s1", "books", "acme", 2, "100", "0")}

	lines = MergeLine(lines, line("p1", "s1", "books", "acme", 3, "90", "10"))

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	// last write wins for price and discount
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("90")))
	assert.True(t, lines[0].DiscountPercent.Equal(decimal.RequireFromString("10")))
}

func TestMergeLine_DifferentSellerIsDistinctLine(t *testing.T) {
	lines := []CartLine{line("p1", "s1", "books", "acme", 1, "100", "0")}

	lines = MergeLine(lines, line("p1", "s2", "books", "acme", 1, "100", "0"))

	assert.Len(t, lines, 2)
}

func TestMergeLine_DifferentVariantIsDistinctLine(t *testing.T) {
	lines := []CartLine{line("p1", "s1", "books", "acme", 1, "100", "0")}

	lines = MergeLine(lines, line("p1", "s1", "books", "other", 1, "100", "0"))

	assert.Len(t, lines, 2)
}

func TestEffectiveUnitPrice(t *testing.T) {
	l := line("p1", "s1", "", "", 1, "200", "25")
	assert.True(t, l.EffectiveUnitPrice().Equal(decimal.RequireFromString("150")))

	noDiscount := line("p1", "s1", "", "", 1, "200", "0")
	assert.True(t, noDiscount.EffectiveUnitPrice().Equal(decimal.RequireFromString("200")))
}

func TestTotalPrice_RoundsOnceOnAggregate(t *testing.T) {
	// Three lines at 10.4 each: per-line rounding would give 30,
	// aggregate rounding gives round(31.2) = 31.
	lines := []CartLine{
		line("p1", "s1", "", "", 1, "10.4", "0"),
		line("p2", "s1", "", "", 1, "10.4", "0"),
		line("p3", "s1", "", "", 1, "10.4", "0"),
	}

	assert.True(t, TotalPrice(lines).Equal(decimal.RequireFromString("31")),
		"got %s", TotalPrice(lines))
}

func TestTotalPrice_AppliesDiscounts(t *testing.T) {
	lines := []CartLine{
		line("p1", "s1", "", "", 2, "100", "10"), // 2 * 90 = 180
		line("p2", "s1", "", "", 1, "50", "0"),   // 50
	}

	assert.True(t, TotalPrice(lines).Equal(decimal.RequireFromString("230")))
	assert.Equal(t, 3, TotalItems(lines))
}

func TestTotalPrice_EmptyCartIsZero(t *testing.T) {
	assert.True(t, TotalPrice(nil).IsZero())
	assert.Equal(t, 0, TotalItems(nil))
}

func TestQuantityOf_SumsAcrossVariants(t *testing.T) {
	lines := []CartLine{
		line("p1", "s1", "books", "acme", 2, "10", "0"),
		line("p1", "s1", "books", "other", 3, "10", "0"),
		line("p1", "s2", "books", "acme", 4, "10", "0"),
		line("p2", "s1", "books", "acme", 9, "10", "0"),
	}

	assert.Equal(t, 5, QuantityOf(lines, "p1", "s1"))
	assert.Equal(t, 9, QuantityOf(lines, "p1", ""), "no seller filter sums all sellers")
	assert.Equal(t, 0, QuantityOf(lines, "p3", ""))
}

func TestQuantityOf_ProductIDPrefixDoesNotMiscount(t *testing.T) {
	lines := []CartLine{
		line("p1", "s1", "", "", 2, "10", "0"),
		line("p10", "s1", "", "", 7, "10", "0"),
	}

	assert.Equal(t, 2, QuantityOf(lines, "p1", ""))
}

func TestSetQuantity_ExactNotAdditive(t *testing.T) {
	lines := []CartLine{line("p1", "s1", "", "", 5, "10", "0")}

	lines, err := SetQuantity(lines, lines[0].LineID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantity_ZeroRemoves(t *testing.T) {
	lines := []CartLine{line("p1", "s1", "", "", 5, "10", "0")}

	lines, err := SetQuantity(lines, lines[0].LineID, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines = []CartLine{line("p1", "s1", "", "", 5, "10", "0")}
	lines, err = SetQuantity(lines, lines[0].LineID, -3)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSetQuantity_AbsentLine(t *testing.T) {
	_, err := SetQuantity(nil, "missing", 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveLine_IdempotentWhenAbsent(t *testing.T) {
	lines := []CartLine{line("p1", "s1", "", "", 1, "10", "0")}

	lines = RemoveLine(lines, "does-not-exist")
	assert.Len(t, lines, 1)

	lines = RemoveLine(lines, lines[0].LineID)
	assert.Empty(t, lines)

	lines = RemoveLine(lines, "does-not-exist")
	assert.Empty(t, lines)
}

func TestGroupBySeller(t *testing.T) {
	lines := []CartLine{
		line("p1", "s1", "", "", 1, "100", "0"),
		line("p2", "s2", "", "", 1, "200", "0"),
		line("p3", "s1", "", "", 1, "300", "0"),
	}

	groups := GroupBySeller(lines)
	require.Len(t, groups, 2)
	assert.Len(t, groups["s1"], 2)
	assert.Len(t, groups["s2"], 1)

	assert.True(t, TotalPriceForSeller(lines, "s1").Equal(decimal.RequireFromString("400")))
	assert.True(t, TotalPriceForSeller(lines, "s2").Equal(decimal.RequireFromString("200")))
	assert.True(t, TotalPriceForSeller(lines, "s3").IsZero())
}

func TestNewCartResponse_DerivesTotals(t *testing.T) {
	lines := []CartLine{
		line("p1", "s1", "", "", 2, "100", "50"), // 2 * 50 = 100
	}

	resp := NewCartResponse(lines)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.TotalItems)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("100")))
	assert.True(t, resp.Lines[0].EffectivePrice.Equal(decimal.RequireFromString("50")))
	assert.True(t, resp.Lines[0].Subtotal.Equal(decimal.RequireFromString("100")))
}

func TestAddItemRequest_Validate(t *testing.T) {
	valid := AddItemRequest{
		ProductID: "p1",
		SellerID:  "s1",
		Name:      "Widget",
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("10"),
	}
	assert.NoError(t, valid.Validate())

	zeroQty := valid
	zeroQty.Quantity = 0
	assert.Error(t, zeroQty.Validate())

	negativeQty := valid
	negativeQty.Quantity = -1
	assert.Error(t, negativeQty.Validate())

	badDiscount := valid
	badDiscount.DiscountPercent = decimal.RequireFromString("101")
	assert.Error(t, badDiscount.Validate())
}
