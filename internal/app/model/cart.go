package model

// CartItem is one cart line: a menu item plus its quantity.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Cart is a session-scoped quantity ledger over menu items. Lines are keyed
// by the menu item id; the same id never appears twice.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of price×quantity across all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// HasUnpriced reports whether any line has price 0, meaning the displayed
// total undercounts the real order value.
func (c *Cart) HasUnpriced() bool {
	for _, item := range c.Items {
		if item.Price == 0 {
			return true
		}
	}
	return false
}
