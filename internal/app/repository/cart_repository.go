package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitrineweb/vitrine-backend/internal/app/model"
)

// ErrCartNotFound is returned when no cart exists for a session.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists session carts. Carts are throwaway session state,
// not orders; they expire with the session TTL.
type CartRepository interface {
	Find(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type cartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository creates a redis-backed cart repository. Each cart lives
// as one JSON blob under its session key.
func NewCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRepository{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (r *cartRepository) Find(ctx context.Context, sessionID string) (*model.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cart.SessionID), data, r.ttl).Err()
}

func (r *cartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}
