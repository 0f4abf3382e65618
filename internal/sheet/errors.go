package sheet

import "errors"

var (
	// ErrNotConfigured is returned when no spreadsheet URL is set.
	ErrNotConfigured = errors.New("spreadsheet URL not configured")

	// ErrConnection is returned when the workbook download fails, including
	// non-2xx HTTP statuses.
	ErrConnection = errors.New("connection failed")

	// ErrMalformedWorkbook is returned when the response body is not a
	// readable spreadsheet.
	ErrMalformedWorkbook = errors.New("malformed workbook")
)
