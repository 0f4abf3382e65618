package service

import (
	"context"
	"errors"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
	"github.com/vitrineweb/vitrine-backend/internal/app/repository"
	"github.com/vitrineweb/vitrine-backend/pkg/logger"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidCartItem  = errors.New("invalid cart item")
)

// CartService is the session cart ledger. Lines are keyed by menu item id:
// adding an id that is already in the cart bumps its quantity, and setting a
// quantity to zero or below removes the line.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*model.Cart, error)
	AddItem(ctx context.Context, sessionID string, item model.MenuItem) (*model.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*model.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.cartRepo.Find(ctx, sessionID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return &model.Cart{SessionID: sessionID, Items: []model.CartItem{}}, nil
	}
	if err != nil {
		logger.Error("Failed to fetch cart", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}
	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, item model.MenuItem) (*model.Cart, error) {
	if item.ID == "" || item.Name == "" {
		return nil, ErrInvalidCartItem
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == item.ID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, model.CartItem{MenuItem: item, Quantity: 1})
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		logger.Error("Failed to save cart", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}

	logger.Debug("Cart item added", map[string]interface{}{
		"session_id": sessionID,
		"item_id":    item.ID,
	})
	return cart, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*model.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrCartItemNotFound
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	} else {
		cart.Items[index].Quantity = quantity
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		logger.Error("Failed to save cart", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}
	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*model.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, itemID, 0)
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("Failed to clear cart", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return err
	}
	logger.Debug("Cart cleared", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}
