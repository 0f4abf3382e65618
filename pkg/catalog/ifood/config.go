package ifood

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the production merchant API host.
const DefaultBaseURL = "https://merchant-api.ifood.com.br"

// Default cache windows. The token window sits just under the real one-hour
// expiry so a cached token is never handed out moments before it dies.
const (
	DefaultTokenTTL    = 59 * time.Minute
	DefaultCatalogTTL  = time.Minute
	DefaultCategoryTTL = time.Minute
	DefaultItemsTTL    = time.Minute
)

// Config represents the configuration for the iFood catalog client.
type Config struct {
	// Enabled gates the whole integration. When false every public
	// operation returns empty without touching the network.
	Enabled bool

	// ClientID and ClientSecret are the client-credentials pair.
	ClientID     string
	ClientSecret string

	// MerchantID selects the store on the platform.
	MerchantID string

	// BaseURL overrides the API host (tests). Empty means DefaultBaseURL.
	BaseURL string

	// Cache windows. Zero values take the defaults above.
	TokenTTL    time.Duration
	CatalogTTL  time.Duration
	CategoryTTL time.Duration
	ItemsTTL    time.Duration

	// HTTPClient overrides the outbound client (tests). Nil means a client
	// with a 30s timeout.
	HTTPClient *http.Client

	// Clock overrides time.Now for cache expiry (tests).
	Clock func() time.Time
}

// Validate checks if the configuration is valid. A disabled config is always
// valid: credentials are only required when the integration is on.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.ClientID == "" || c.ClientSecret == "" {
		return ErrMissingCredentials
	}
	if c.MerchantID == "" {
		return ErrMissingMerchant
	}
	return nil
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.BaseURL == "" {
		out.BaseURL = DefaultBaseURL
	}
	if out.TokenTTL == 0 {
		out.TokenTTL = DefaultTokenTTL
	}
	if out.CatalogTTL == 0 {
		out.CatalogTTL = DefaultCatalogTTL
	}
	if out.CategoryTTL == 0 {
		out.CategoryTTL = DefaultCategoryTTL
	}
	if out.ItemsTTL == 0 {
		out.ItemsTTL = DefaultItemsTTL
	}
	if out.HTTPClient == nil {
		out.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if out.Clock == nil {
		out.Clock = time.Now
	}
	return out
}
