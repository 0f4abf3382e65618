// Package ifood implements a read-only client for the iFood merchant catalog
// API: client-credentials auth, catalog/category/item listing and the mapping
// of platform items into the storefront menu model. Failures never propagate
// to callers of the public methods; the integration degrades to an empty menu
// so the spreadsheet-driven storefront keeps working.
package ifood

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
	"github.com/vitrineweb/vitrine-backend/pkg/cache"
	"github.com/vitrineweb/vitrine-backend/pkg/logger"
)

// Client represents an iFood catalog API client. Caches are process-wide and
// expire on independent windows; refresh is lazy, there is no background
// refresh.
type Client struct {
	config Config

	tokens     *cache.Cache[string]
	catalogs   *cache.Cache[string]
	categories *cache.Cache[[]Category]
	items      *cache.Cache[categoryItems]
}

// NewClient creates a new catalog client with the given configuration.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg := config.withDefaults()

	return &Client{
		config:     cfg,
		tokens:     cache.New[string](cache.Clock(cfg.Clock)),
		catalogs:   cache.New[string](cache.Clock(cfg.Clock)),
		categories: cache.New[[]Category](cache.Clock(cfg.Clock)),
		items:      cache.New[categoryItems](cache.Clock(cfg.Clock)),
	}, nil
}

// Enabled reports whether the integration is turned on.
func (c *Client) Enabled() bool {
	return c.config.Enabled
}

// Categories lists the first catalog's categories. Any failure is logged and
// yields an empty list; a disabled client returns empty without network I/O.
func (c *Client) Categories(ctx context.Context) []Category {
	if !c.config.Enabled {
		return []Category{}
	}

	categories, err := c.fetchCategoriesChain(ctx)
	if err != nil {
		logger.Error("Failed to fetch catalog categories", err, nil)
		return []Category{}
	}
	return categories
}

// ItemsByCategory fetches one category's items mapped into menu items.
// categoryName becomes the items' grouping key; failures degrade to empty.
func (c *Client) ItemsByCategory(ctx context.Context, categoryID, categoryName string) []model.MenuItem {
	if !c.config.Enabled {
		return []model.MenuItem{}
	}

	token, err := c.authenticate(ctx)
	if err != nil {
		logger.Error("Failed to authenticate against catalog API", err, nil)
		return []model.MenuItem{}
	}

	data, err := c.fetchCategoryItems(ctx, token, categoryID)
	if err != nil {
		logger.Error("Failed to fetch category items", err, map[string]interface{}{
			"category": categoryName,
		})
		return []model.MenuItem{}
	}

	return mapItems(data, categoryName)
}

// Menu fetches the whole catalog menu: all categories, then each category's
// items concurrently, flattened. A failing category contributes nothing but
// never aborts the others.
func (c *Client) Menu(ctx context.Context) []model.MenuItem {
	if !c.config.Enabled {
		return []model.MenuItem{}
	}

	categories := c.Categories(ctx)

	var (
		mu   sync.Mutex
		menu []model.MenuItem
		wg   sync.WaitGroup
	)
	for _, category := range categories {
		wg.Add(1)
		go func(cat Category) {
			defer wg.Done()
			items := c.ItemsByCategory(ctx, cat.ID, cat.Name)
			mu.Lock()
			menu = append(menu, items...)
			mu.Unlock()
		}(category)
	}
	wg.Wait()

	if menu == nil {
		menu = []model.MenuItem{}
	}
	return menu
}

// SweepCaches drops expired entries from every cache and returns the count.
func (c *Client) SweepCaches() int {
	return c.tokens.Sweep() + c.catalogs.Sweep() + c.categories.Sweep() + c.items.Sweep()
}

// fetchCategoriesChain walks auth → catalog → categories.
func (c *Client) fetchCategoriesChain(ctx context.Context) ([]Category, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	catalogID, err := c.catalogID(ctx, token)
	if err != nil {
		return nil, err
	}
	return c.fetchCategories(ctx, token, catalogID)
}

// authenticate returns a bearer token, reusing the cached one while its
// window (just under the real expiry) holds.
func (c *Client) authenticate(ctx context.Context) (string, error) {
	key := c.config.ClientID + "|" + c.config.ClientSecret
	if token, ok := c.tokens.Get(key); ok {
		return token, nil
	}

	form := url.Values{}
	form.Set("grantType", "client_credentials")
	form.Set("clientId", c.config.ClientID)
	form.Set("clientSecret", c.config.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/authentication/v1.0/oauth/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d %s", ErrAuthFailed, resp.StatusCode, string(body))
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	c.tokens.Set(key, token.AccessToken, c.config.TokenTTL)
	logger.Debug("Catalog API token refreshed", nil)
	return token.AccessToken, nil
}

// catalogID resolves the merchant's catalog, deterministically the first one.
// Zero catalogs is a hard failure.
func (c *Client) catalogID(ctx context.Context, token string) (string, error) {
	if id, ok := c.catalogs.Get(c.config.MerchantID); ok {
		return id, nil
	}

	var list []Catalog
	path := fmt.Sprintf("/catalog/v2.0/merchants/%s/catalogs", c.config.MerchantID)
	if err := c.getJSON(ctx, token, path, &list); err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", ErrNoCatalogs
	}

	c.catalogs.Set(c.config.MerchantID, list[0].CatalogID, c.config.CatalogTTL)
	return list[0].CatalogID, nil
}

func (c *Client) fetchCategories(ctx context.Context, token, catalogID string) ([]Category, error) {
	if categories, ok := c.categories.Get(catalogID); ok {
		return categories, nil
	}

	var categories []Category
	path := fmt.Sprintf("/catalog/v2.0/merchants/%s/catalogs/%s/categories", c.config.MerchantID, catalogID)
	if err := c.getJSON(ctx, token, path, &categories); err != nil {
		return nil, err
	}

	c.categories.Set(catalogID, categories, c.config.CategoryTTL)
	return categories, nil
}

func (c *Client) fetchCategoryItems(ctx context.Context, token, categoryID string) (categoryItems, error) {
	if data, ok := c.items.Get(categoryID); ok {
		return data, nil
	}

	var data categoryItems
	path := fmt.Sprintf("/catalog/v2.0/merchants/%s/categories/%s/items", c.config.MerchantID, categoryID)
	if err := c.getJSON(ctx, token, path, &data); err != nil {
		return categoryItems{}, err
	}

	c.items.Set(categoryID, data, c.config.ItemsTTL)
	return data, nil
}

// getJSON performs an authenticated GET and decodes the response.
func (c *Client) getJSON(ctx context.Context, token, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: %d %s", ErrRequestFailed, path, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return nil
}

// mapItems turns a category payload into menu items. An item is visible only
// when it is available, its product record exists, and an available context
// modifier carries a price. Catalog items are never highlights; that flag
// belongs to the spreadsheet menu.
func mapItems(data categoryItems, categoryName string) []model.MenuItem {
	products := make(map[string]Product, len(data.Products))
	for _, p := range data.Products {
		products[p.ID] = p
	}

	menu := make([]model.MenuItem, 0, len(data.Items))
	for _, item := range data.Items {
		if item.Status != statusAvailable {
			continue
		}
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		modifier := availableModifier(item.ContextModifiers)
		if modifier == nil || modifier.Price.Value == nil {
			continue
		}

		menu = append(menu, model.MenuItem{
			ID:            item.ID,
			Name:          product.Name,
			Description:   product.Description,
			Price:         *modifier.Price.Value,
			OriginalPrice: modifier.Price.OriginalValue,
			Category:      categoryName,
			Image:         product.ImagePath,
			IsHighlight:   false,
			Serving:       product.Serving,
			Tags:          mergeTags(product.Tags, product.DietaryRestrictions),
		})
	}
	return menu
}

func availableModifier(modifiers []ContextModifier) *ContextModifier {
	for i := range modifiers {
		if modifiers[i].Status == statusAvailable {
			return &modifiers[i]
		}
	}
	return nil
}

// mergeTags unions product tags and dietary-restriction labels, deduplicated
// in first-seen order.
func mergeTags(tags, restrictions []string) []string {
	seen := make(map[string]bool, len(tags)+len(restrictions))
	merged := make([]string, 0, len(tags)+len(restrictions))
	for _, t := range append(append([]string{}, tags...), restrictions...) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		merged = append(merged, t)
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}
