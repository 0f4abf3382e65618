package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrineweb/vitrine-backend/pkg/catalog/ifood"
)

func setupCatalogControllerTest(t *testing.T, config ifood.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := ifood.NewClient(config)
	require.NoError(t, err)
	catalogController := NewCatalogController(client)

	router := gin.New()
	router.GET("/api/v1/catalog/categories", catalogController.GetCategories)
	router.GET("/api/v1/catalog/categories/:id/items", catalogController.GetCategoryItems)
	return router
}

func TestCatalogController_Disabled(t *testing.T) {
	router := setupCatalogControllerTest(t, ifood.Config{Enabled: false})

	code, resp := getJSON(t, router, "/api/v1/catalog/categories")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["enabled"])
	assert.Empty(t, resp["categories"])

	code, resp = getJSON(t, router, "/api/v1/catalog/categories/pizzas/items?name=Pizzas")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp["items"])
}

func TestCatalogController_Enabled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/authentication/v1.0/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":"tok","expiresIn":3600}`))
	})
	mux.HandleFunc("/catalog/v2.0/merchants/m-1/catalogs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"catalogId":"cat-1"}]`))
	})
	mux.HandleFunc("/catalog/v2.0/merchants/m-1/catalogs/cat-1/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"pizzas","name":"Pizzas"}]`))
	})
	mux.HandleFunc("/catalog/v2.0/merchants/m-1/categories/pizzas/items", func(w http.ResponseWriter, r *http.Request) {
		payload, _ := json.Marshal(map[string]interface{}{
			"items": []map[string]interface{}{{
				"id": "item-1", "productId": "prod-1", "status": "AVAILABLE",
				"contextModifiers": []map[string]interface{}{{
					"status": "AVAILABLE",
					"price":  map[string]interface{}{"value": 45.9},
				}},
			}},
			"products": []map[string]interface{}{{"id": "prod-1", "name": "Margherita"}},
		})
		w.Write(payload)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	router := setupCatalogControllerTest(t, ifood.Config{
		Enabled:      true,
		ClientID:     "id",
		ClientSecret: "secret",
		MerchantID:   "m-1",
		BaseURL:      server.URL,
	})

	code, resp := getJSON(t, router, "/api/v1/catalog/categories")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["enabled"])
	categories := resp["categories"].([]interface{})
	require.Len(t, categories, 1)

	code, resp = getJSON(t, router, "/api/v1/catalog/categories/pizzas/items?name=Pizzas")
	assert.Equal(t, http.StatusOK, code)
	items := resp["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Margherita", item["name"])
	assert.Equal(t, "Pizzas", item["category"])
}

func TestCatalogController_PlatformDownDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	router := setupCatalogControllerTest(t, ifood.Config{
		Enabled:      true,
		ClientID:     "id",
		ClientSecret: "secret",
		MerchantID:   "m-1",
		BaseURL:      server.URL,
	})

	code, resp := getJSON(t, router, "/api/v1/catalog/categories")
	assert.Equal(t, http.StatusOK, code, "platform failure never breaks the storefront")
	assert.Empty(t, resp["categories"])
	assert.Equal(t, true, resp["enabled"])
}
