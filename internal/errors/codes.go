package errors

// Error code constants, CATEGORY_SPECIFIC_DETAIL.
// The frontend maps these codes to display messages.

const (
	// ==================== Store data (SHEET_) ====================
	SheetUnavailable = "SHEET_UNAVAILABLE" // spreadsheet download failed
	SheetMalformed   = "SHEET_MALFORMED"   // response was not a readable workbook
	SheetNotConfig   = "SHEET_NOT_CONFIGURED"

	// ==================== Aggregate (STORE_) ====================
	StoreDataUnavailable = "STORE_DATA_UNAVAILABLE" // degraded: empty shape served

	// ==================== Delivery catalog (CATALOG_) ====================
	CatalogDisabled = "CATALOG_DISABLED"

	// ==================== Cart (CART_) ====================
	CartItemNotFound   = "CART_ITEM_NOT_FOUND"
	CartInvalidItem    = "CART_INVALID_ITEM"
	CartSessionMissing = "CART_SESSION_MISSING"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalExternalAPI = "INTERNAL_EXTERNAL_API"
)
