package ifood

// Token is the client-credentials exchange response.
type Token struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// Catalog is a top-level menu container owned by the merchant.
type Catalog struct {
	CatalogID string   `json:"catalogId"`
	Context   []string `json:"context"`
	Status    string   `json:"status"`
}

// Category is one grouping inside a catalog.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Sequence int    `json:"sequence"`
	Index    int    `json:"index"`
}

// categoryItems is the per-category payload: sellable items plus the product
// records their metadata lives in.
type categoryItems struct {
	CategoryID string    `json:"categoryId"`
	Items      []Item    `json:"items"`
	Products   []Product `json:"products"`
}

// ContextModifier is a price/availability override scoped to a sales channel.
type ContextModifier struct {
	Price  ModifierPrice `json:"price"`
	Status string        `json:"status"`
}

// ModifierPrice carries the channel price. Value is a pointer because its
// absence excludes the item from the menu, which "0" would not.
type ModifierPrice struct {
	Value         *float64 `json:"value"`
	OriginalValue *float64 `json:"originalValue"`
}

// Item is a sellable availability+price record referencing a product.
type Item struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"productId"`
	Status           string            `json:"status"`
	ContextModifiers []ContextModifier `json:"contextModifiers"`
}

// Product is the descriptive metadata an item references.
type Product struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	ImagePath           string   `json:"imagePath"`
	Serving             string   `json:"serving"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Tags                []string `json:"tags"`
}

const statusAvailable = "AVAILABLE"
