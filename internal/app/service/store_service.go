package service

import (
	"context"

	"github.com/vitrineweb/vitrine-backend/internal/app/model"
	"github.com/vitrineweb/vitrine-backend/internal/sheet"
	"github.com/vitrineweb/vitrine-backend/pkg/catalog/ifood"
	"github.com/vitrineweb/vitrine-backend/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// MenuSource names which data source produced the effective menu.
type MenuSource string

const (
	MenuSourceSheet   MenuSource = "sheet"
	MenuSourceCatalog MenuSource = "catalog"
)

// StoreService aggregates the two menu sources into the single StoreData
// view the UI consumes. The spreadsheet is always the source of business info
// and opening hours; the delivery catalog, when enabled, takes precedence for
// menu items.
type StoreService interface {
	GetStoreData(ctx context.Context) (*model.StoreData, error)
	GetMenu(ctx context.Context) ([]model.MenuItem, MenuSource, error)
	CatalogEnabled() bool
}

type storeService struct {
	fetcher *sheet.Fetcher
	catalog *ifood.Client
	flight  singleflight.Group
}

func NewStoreService(fetcher *sheet.Fetcher, catalog *ifood.Client) StoreService {
	return &storeService{fetcher: fetcher, catalog: catalog}
}

// GetStoreData downloads and normalizes the spreadsheet. Concurrent callers
// share a single in-flight download; the result is not cached once the
// flight lands, so the next call fetches fresh data.
func (s *storeService) GetStoreData(ctx context.Context) (*model.StoreData, error) {
	result, err, shared := s.flight.Do("store-data", func() (interface{}, error) {
		return s.fetcher.FetchStoreData(ctx)
	})
	if err != nil {
		logger.Error("Failed to fetch store data", err, nil)
		return nil, err
	}
	if shared {
		logger.Debug("Store data fetch deduplicated", nil)
	}
	return result.(*model.StoreData), nil
}

// GetMenu returns the effective menu. Catalog items win when the integration
// is enabled and yields anything; the spreadsheet menu is the fallback.
func (s *storeService) GetMenu(ctx context.Context) ([]model.MenuItem, MenuSource, error) {
	if s.catalog != nil && s.catalog.Enabled() {
		if menu := s.catalog.Menu(ctx); len(menu) > 0 {
			return menu, MenuSourceCatalog, nil
		}
	}

	data, err := s.GetStoreData(ctx)
	if err != nil {
		return nil, MenuSourceSheet, err
	}
	return data.Menu, MenuSourceSheet, nil
}

func (s *storeService) CatalogEnabled() bool {
	return s.catalog != nil && s.catalog.Enabled()
}
