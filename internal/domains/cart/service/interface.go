package service

import (
	"context"

	"storefront-backend/internal/domains/cart/model"
)

type ServiceInterface interface {
	GetCart(ctx context.Context, owner string) (*model.CartResponse, error)
	AddItem(ctx context.Context, owner string, req *model.AddItemRequest) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, owner, lineID string, quantity int) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, owner, lineID string) (*model.CartResponse, error)
	ClearCart(ctx context.Context, owner string) error
	GetItemQuantity(ctx context.Context, owner, productID, sellerID string) (*model.QuantityResponse, error)
	GetItemsBySeller(ctx context.Context, owner string) ([]model.SellerGroupResponse, error)
	GetTotalPriceBySeller(ctx context.Context, owner, sellerID string) (*model.SellerGroupResponse, error)
}
