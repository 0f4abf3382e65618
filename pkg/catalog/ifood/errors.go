package ifood

import "errors"

var (
	// ErrMissingCredentials is returned when the integration is enabled
	// without a client id/secret pair.
	ErrMissingCredentials = errors.New("missing client credentials")

	// ErrMissingMerchant is returned when the integration is enabled
	// without a merchant id.
	ErrMissingMerchant = errors.New("missing merchant id")

	// ErrAuthFailed is returned when the token exchange is rejected.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNoCatalogs is returned when the merchant has no catalogs at all.
	ErrNoCatalogs = errors.New("no catalogs found for merchant")

	// ErrRequestFailed is returned for any other non-2xx API response.
	ErrRequestFailed = errors.New("catalog request failed")
)
