package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrineweb/vitrine-backend/internal/middleware"
	"github.com/vitrineweb/vitrine-backend/pkg/catalog/ifood"
)

// CatalogController exposes the delivery-platform catalog for the menu page's
// per-category browsing. Every handler degrades to an empty list; the
// storefront must keep working when the platform is down or disabled.
type CatalogController struct {
	catalog *ifood.Client
}

func NewCatalogController(catalog *ifood.Client) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories := ctrl.catalog.Categories(c.Request.Context())

	log.Info("Catalog categories served", map[string]interface{}{
		"count":   len(categories),
		"enabled": ctrl.catalog.Enabled(),
	})
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"enabled":    ctrl.catalog.Enabled(),
	})
}

func (ctrl *CatalogController) GetCategoryItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categoryID := c.Param("id")
	categoryName := c.Query("name")

	items := ctrl.catalog.ItemsByCategory(c.Request.Context(), categoryID, categoryName)

	log.Info("Catalog category items served", map[string]interface{}{
		"category": categoryName,
		"count":    len(items),
	})
	c.JSON(http.StatusOK, gin.H{
		"items": items,
	})
}
