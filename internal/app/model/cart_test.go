package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Derived(t *testing.T) {
	cart := Cart{
		SessionID: "sess-1",
		Items: []CartItem{
			{MenuItem: MenuItem{ID: "1", Name: "Margherita", Price: 45.9}, Quantity: 2},
			{MenuItem: MenuItem{ID: "2", Name: "Guaraná", Price: 8}, Quantity: 3},
		},
	}

	assert.Equal(t, 5, cart.Count())
	assert.InDelta(t, 2*45.9+3*8, cart.Total(), 1e-9)
	assert.False(t, cart.HasUnpriced())
}

func TestCart_HasUnpriced(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{MenuItem: MenuItem{ID: "1", Name: "Prato do dia", Price: 0}, Quantity: 1},
		},
	}
	assert.True(t, cart.HasUnpriced())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCart_EmptyDerived(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, 0.0, cart.Total())
	assert.False(t, cart.HasUnpriced())
}
