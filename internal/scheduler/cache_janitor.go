package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/vitrineweb/vitrine-backend/pkg/catalog/ifood"
	"github.com/vitrineweb/vitrine-backend/pkg/logger"
)

// CacheJanitor periodically evicts expired entries from the catalog client's
// caches. Eviction only: refresh stays lazy, on the next read that misses.
type CacheJanitor struct {
	cron    *cron.Cron
	catalog *ifood.Client
}

func NewCacheJanitor(catalog *ifood.Client) *CacheJanitor {
	return &CacheJanitor{
		cron:    cron.New(),
		catalog: catalog,
	}
}

// Start schedules the sweep every minute, matching the shortest cache window.
func (j *CacheJanitor) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		dropped := j.catalog.SweepCaches()
		if dropped > 0 {
			logger.Debug("Swept expired catalog cache entries", map[string]interface{}{
				"dropped": dropped,
			})
		}
	})
	if err != nil {
		logger.Error("Failed to schedule cache janitor", err)
		return err
	}

	j.cron.Start()
	logger.Info("Cache janitor started", nil)
	return nil
}

// Stop halts the janitor.
func (j *CacheJanitor) Stop() {
	j.cron.Stop()
	logger.Info("Cache janitor stopped", nil)
}
