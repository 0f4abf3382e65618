// Package sheet downloads the storefront spreadsheet and normalizes its
// loosely-structured sections into the typed store model. The workbook is a
// spreadsheet-as-CMS maintained by the store owner, so section names, column
// headers and cell types all come in several variants and the parsers here
// accept every known spelling.
package sheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
	"github.com/vitrineweb/vitrine-backend/pkg/logger"
	"github.com/vitrineweb/vitrine-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Known sheet-name variants per logical section. The first present wins; a
// section with no matching sheet is simply absent, not an error.
var (
	configSheetNames = []string{"Loja", "Config"}
	menuSheetNames   = []string{"Cardápio", "Cardapio"}
	hoursSheetNames  = []string{
		"Horários de Funcionamento",
		"Horarios de Funcionamento",
		"Horários",
		"Horarios",
	}
	seoSheetNames = []string{"SEO"}
)

// Fetcher downloads and parses the storefront workbook.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewFetcher creates a Fetcher for the given workbook URL. httpClient and now
// may be nil; sensible defaults are used.
func NewFetcher(baseURL string, httpClient *http.Client, now func() time.Time) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if now == nil {
		now = time.Now
	}
	return &Fetcher{baseURL: baseURL, httpClient: httpClient, now: now}
}

// FetchStoreData downloads the workbook and maps its sections into StoreData.
// Network failures, non-2xx statuses and unreadable workbooks propagate as
// errors; missing sections and malformed rows do not.
func (f *Fetcher) FetchStoreData(ctx context.Context) (*model.StoreData, error) {
	if f.baseURL == "" {
		return nil, ErrNotConfigured
	}

	wb, err := f.download(ctx)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	configRows, _ := resolveSection(wb, configSheetNames)
	menuRows, _ := resolveSection(wb, menuSheetNames)
	hoursRows, _ := resolveSection(wb, hoursSheetNames)
	seoRows, hasSEO := resolveSection(wb, seoSheetNames)

	business := ParseBusinessInfo(configRows)
	if hasSEO {
		MergeSEO(&business, ParseBusinessInfo(seoRows))
	}
	business.PhoneDisplay = util.FormatPhone(business.Phone)
	menu := ParseMenu(menuRows)
	openingHours := ParseOpeningHours(hoursRows)

	logger.Info("Store spreadsheet synced", map[string]interface{}{
		"menu_items": len(menu),
		"hour_days":  len(openingHours),
	})

	return &model.StoreData{
		Business:     business,
		Menu:         menu,
		OpeningHours: openingHours,
	}, nil
}

// download fetches a fresh copy of the workbook. A timestamp query parameter
// defeats any intermediary cache between us and the sheet host.
func (f *Fetcher) download(ctx context.Context) (*excelize.File, error) {
	sep := "?"
	if strings.Contains(f.baseURL, "?") {
		sep = "&"
	}
	url := f.baseURL + sep + "t=" + strconv.FormatInt(f.now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d %s", ErrConnection, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	return wb, nil
}

// resolveSection tries each name variant in order and returns the first
// present sheet's non-blank rows.
func resolveSection(wb *excelize.File, names []string) ([][]Cell, bool) {
	for _, name := range names {
		idx, err := wb.GetSheetIndex(name)
		if err != nil || idx < 0 {
			continue
		}
		rows, err := readRows(wb, name)
		if err != nil {
			logger.Warn("Failed to read sheet section", map[string]interface{}{
				"sheet": name,
				"error": err.Error(),
			})
			continue
		}
		logger.Debug("Sheet section resolved", map[string]interface{}{
			"sheet": name,
			"rows":  len(rows),
		})
		return rows, true
	}
	return nil, false
}

// readRows reads a sheet as raw cells, classifying each by its stored type,
// and drops rows where every cell is blank.
func readRows(wb *excelize.File, name string) ([][]Cell, error) {
	raw, err := wb.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	rows := make([][]Cell, 0, len(raw))
	for i, rawRow := range raw {
		row := make([]Cell, len(rawRow))
		blank := true
		for j, value := range rawRow {
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				row[j] = EmptyCell()
				continue
			}
			cellType, _ := wb.GetCellType(name, axis)
			row[j] = newCell(value, cellType)
			if !row[j].IsEmpty() {
				blank = false
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
