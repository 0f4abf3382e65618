package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitrineweb/vitrine-backend/internal/app/model"
	"github.com/vitrineweb/vitrine-backend/internal/app/service"
	apperrors "github.com/vitrineweb/vitrine-backend/internal/errors"
	"github.com/vitrineweb/vitrine-backend/internal/middleware"
	"github.com/vitrineweb/vitrine-backend/pkg/util"
)

type StoreController struct {
	storeService service.StoreService
	now          func() time.Time
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{storeService: storeService, now: time.Now}
}

// GetStoreData serves the full normalized store view. On source failure it
// still answers 200 with an empty default shape plus an error code, so the
// storefront renders a "failed to load" state instead of crashing.
func (ctrl *StoreController) GetStoreData(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.storeService.GetStoreData(c.Request.Context())
	if err != nil {
		info := apperrors.ParseError(err)
		log.Warn("Serving empty store data fallback", map[string]interface{}{
			"reason": info.Code,
		})
		c.JSON(http.StatusOK, gin.H{
			"store": model.EmptyStoreData(),
			"error": apperrors.StoreDataUnavailable,
		})
		return
	}

	log.Info("Store data served", map[string]interface{}{
		"menu_items": len(data.Menu),
	})
	c.JSON(http.StatusOK, gin.H{
		"store": data,
	})
}

// GetStatus answers "open now?" against the normalized opening hours.
func (ctrl *StoreController) GetStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.storeService.GetStoreData(c.Request.Context())
	if err != nil {
		info := apperrors.ParseError(err)
		log.Warn("Store status unavailable", map[string]interface{}{
			"reason": info.Code,
		})
		c.JSON(http.StatusOK, gin.H{
			"status": util.GetBusinessStatus(nil, ctrl.now()),
			"error":  apperrors.StoreDataUnavailable,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": util.GetBusinessStatus(data.OpeningHours, ctrl.now()),
	})
}

// GetSchedule serves the display-ordered weekly schedule (Mon..Sat, Sun).
func (ctrl *StoreController) GetSchedule(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.storeService.GetStoreData(c.Request.Context())
	if err != nil {
		info := apperrors.ParseError(err)
		log.Warn("Store schedule unavailable", map[string]interface{}{
			"reason": info.Code,
		})
		c.JSON(http.StatusOK, gin.H{
			"schedule": util.FormattedSchedule(nil),
			"error":    apperrors.StoreDataUnavailable,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule": util.FormattedSchedule(data.OpeningHours),
	})
}

// GetMenu serves the effective menu with its source, catalog items taking
// precedence over spreadsheet rows when the integration is enabled.
func (ctrl *StoreController) GetMenu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	menu, source, err := ctrl.storeService.GetMenu(c.Request.Context())
	if err != nil {
		info := apperrors.ParseError(err)
		log.Warn("Serving empty menu fallback", map[string]interface{}{
			"reason": info.Code,
		})
		c.JSON(http.StatusOK, gin.H{
			"menu":   []model.MenuItem{},
			"source": source,
			"error":  apperrors.StoreDataUnavailable,
		})
		return
	}

	log.Info("Menu served", map[string]interface{}{
		"count":  len(menu),
		"source": source,
	})
	c.JSON(http.StatusOK, gin.H{
		"menu":   menu,
		"source": source,
	})
}
