package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrineweb/vitrine-backend/internal/app/model"
	"github.com/vitrineweb/vitrine-backend/internal/app/service"
	apperrors "github.com/vitrineweb/vitrine-backend/internal/errors"
	"github.com/vitrineweb/vitrine-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// cartResponse decorates the cart with its derived totals.
func cartResponse(cart *model.Cart) gin.H {
	return gin.H{
		"items":        cart.Items,
		"count":        cart.Count(),
		"total":        cart.Total(),
		"has_unpriced": cart.HasUnpriced(),
	}
}

func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apperrors.BadRequest(c, apperrors.CartSessionMissing, "Sessão do carrinho ausente")
		return
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to fetch cart", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

type addItemRequest struct {
	Item model.MenuItem `json:"item" binding:"required"`
}

func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apperrors.BadRequest(c, apperrors.CartSessionMissing, "Sessão do carrinho ausente")
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Corpo da requisição inválido")
		return
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), sessionID, req.Item)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCartItem) {
			apperrors.BadRequest(c, apperrors.CartInvalidItem, "Item inválido")
			return
		}
		log.Error("Failed to add cart item", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Cart item added", map[string]interface{}{
		"item_id": req.Item.ID,
		"count":   cart.Count(),
	})
	c.JSON(http.StatusOK, cartResponse(cart))
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (ctrl *CartController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apperrors.BadRequest(c, apperrors.CartSessionMissing, "Sessão do carrinho ausente")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Corpo da requisição inválido")
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), sessionID, c.Param("id"), *req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Item não encontrado no carrinho")
			return
		}
		log.Error("Failed to update cart item", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

func (ctrl *CartController) RemoveItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apperrors.BadRequest(c, apperrors.CartSessionMissing, "Sessão do carrinho ausente")
		return
	}

	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Item não encontrado no carrinho")
			return
		}
		log.Error("Failed to remove cart item", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apperrors.BadRequest(c, apperrors.CartSessionMissing, "Sessão do carrinho ausente")
		return
	}

	if err := ctrl.cartService.ClearCart(c.Request.Context(), sessionID); err != nil {
		log.Error("Failed to clear cart", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, cartResponse(&model.Cart{SessionID: sessionID, Items: []model.CartItem{}}))
}
