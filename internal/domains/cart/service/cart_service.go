package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/internal/domains/cart/store"
	"storefront-backend/pkg/logger"
)

type CartService struct {
	store *store.Store
}

func NewCartService(s *store.Store) ServiceInterface {
	if s == nil {
		panic("cart store is required")
	}
	return &CartService{store: s}
}

func (s *CartService) GetCart(ctx context.Context, owner string) (*model.CartResponse, error) {
	lines, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return model.NewCartResponse(lines), nil
}

func (s *CartService) AddItem(ctx context.Context, owner string, req *model.AddItemRequest) (*model.CartResponse, error) {
	// Step 1: Validate input
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidQuantity, err)
	}

	// Step 2: Merge into persisted lines
	lines, err := s.store.AddItem(ctx, owner, req.ToLine())
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	logger.Info("Cart item added", map[string]interface{}{
		"owner":      owner,
		"product_id": req.ProductID,
		"seller_id":  req.SellerID,
		"quantity":   req.Quantity,
	})

	return model.NewCartResponse(lines), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, owner, lineID string, quantity int) (*model.CartResponse, error) {
	lines, err := s.store.UpdateQuantity(ctx, owner, lineID, quantity)
	if err != nil {
		return nil, err
	}
	return model.NewCartResponse(lines), nil
}

func (s *CartService) RemoveItem(ctx context.Context, owner, lineID string) (*model.CartResponse, error) {
	lines, err := s.store.RemoveLine(ctx, owner, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}
	return model.NewCartResponse(lines), nil
}

func (s *CartService) ClearCart(ctx context.Context, owner string) error {
	if err := s.store.Clear(ctx, owner); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	logger.Info("Cart cleared", map[string]interface{}{"owner": owner})
	return nil
}

func (s *CartService) GetItemQuantity(ctx context.Context, owner, productID, sellerID string) (*model.QuantityResponse, error) {
	lines, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return &model.QuantityResponse{
		ProductID: productID,
		SellerID:  sellerID,
		Quantity:  model.QuantityOf(lines, productID, sellerID),
	}, nil
}

func (s *CartService) GetItemsBySeller(ctx context.Context, owner string) ([]model.SellerGroupResponse, error) {
	lines, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	groups := model.GroupBySeller(lines)

	// Keep seller order stable by first appearance in the cart.
	seen := make(map[string]bool)
	result := make([]model.SellerGroupResponse, 0, len(groups))
	for _, l := range lines {
		if seen[l.SellerID] {
			continue
		}
		seen[l.SellerID] = true

		group := groups[l.SellerID]
		result = append(result, model.SellerGroupResponse{
			SellerID:   l.SellerID,
			Lines:      model.NewCartResponse(group).Lines,
			TotalPrice: model.TotalPriceForSeller(lines, l.SellerID),
		})
	}

	return result, nil
}

func (s *CartService) GetTotalPriceBySeller(ctx context.Context, owner, sellerID string) (*model.SellerGroupResponse, error) {
	lines, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	group := model.GroupBySeller(lines)[sellerID]
	return &model.SellerGroupResponse{
		SellerID:   sellerID,
		Lines:      model.NewCartResponse(group).Lines,
		TotalPrice: model.TotalPriceForSeller(lines, sellerID),
	}, nil
}
