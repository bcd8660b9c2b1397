package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// ShoppingItemHandler provides the shopping item CRUD endpoints, nested
// under their parent shopping list.
type ShoppingItemHandler struct {
	itemService service.ShoppingItemService
	perPage     int
}

// NewShoppingItemHandler creates a new ShoppingItemHandler.
func NewShoppingItemHandler(svc service.ShoppingItemService, perPage int) *ShoppingItemHandler {
	return &ShoppingItemHandler{itemService: svc, perPage: perPage}
}

// Create godoc
// @Summary Add an item to a shopping list
// @Tags    shoppingitems
// @Accept  json
// @Produce json
// @Param   id    path int                           true "List ID"
// @Param   input body model.CreateShoppingItemInput true "Item to add"
// @Success 201 {object} model.ShoppingItemDTO
// @Failure 400 {object} map[string]string "message"
// @Security JWTAuth
// @Router  /shoppinglists/{id}/items/ [post]
func (h *ShoppingItemHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input model.CreateShoppingItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no data was sent"})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		return
	}

	dto, err := h.itemService.Create(listID, userID, &input)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// List godoc
// @Summary List the items of a shopping list
// @Tags    shoppingitems
// @Produce json
// @Param   id    path  int    true  "List ID"
// @Param   q     query string false "name search"
// @Param   limit query int    false "page size"
// @Param   page  query int    false "page number"
// @Success 200 {array} model.ShoppingItemDTO
// @Security JWTAuth
// @Router  /shoppinglists/{id}/items/ [get]
func (h *ShoppingItemHandler) List(c *gin.Context) {
	listID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	p, ok := paginationFromQuery(c, h.perPage)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "limit and page query parameters should be integers"})
		return
	}

	dtos, err := h.itemService.List(listID, c.Query("q"), p)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// Get godoc
// @Summary Get one shopping item
// @Tags    shoppingitems
// @Produce json
// @Param   id      path int true "List ID"
// @Param   item_id path int true "Item ID"
// @Success 200 {object} model.ShoppingItemDTO
// @Failure 404 {object} map[string]string "message"
// @Security JWTAuth
// @Router  /shoppinglists/{id}/items/{item_id} [get]
func (h *ShoppingItemHandler) Get(c *gin.Context) {
	listID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}

	dto, err := h.itemService.Get(listID, itemID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Update godoc
// @Summary Update a shopping item
// @Tags    shoppingitems
// @Accept  json
// @Produce json
// @Param   id      path int                           true "List ID"
// @Param   item_id path int                           true "Item ID"
// @Param   input   body model.UpdateShoppingItemInput true "fields"
// @Success 200 {object} model.ShoppingItemDTO
// @Failure 403 {object} map[string]string "not the owner"
// @Security JWTAuth
// @Router  /shoppinglists/{id}/items/{item_id} [put]
func (h *ShoppingItemHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}

	var input model.UpdateShoppingItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no data was sent"})
		return
	}
	if input.Name == nil && input.Quantity == nil && input.Unit == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		return
	}

	dto, err := h.itemService.Update(listID, itemID, userID, &input)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Delete godoc
// @Summary Delete a shopping item
// @Tags    shoppingitems
// @Produce json
// @Param   id      path int true "List ID"
// @Param   item_id path int true "Item ID"
// @Success 200 {object} map[string]string "message"
// @Failure 403 {object} map[string]string "not the owner"
// @Security JWTAuth
// @Router  /shoppinglists/{id}/items/{item_id} [delete]
func (h *ShoppingItemHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.itemService.Delete(listID, itemID, userID); err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shopping item successfully deleted"})
}

// respondItemError translates service errors into the stable JSON responses.
func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrShoppingListNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "The shopping list does not exist"})
	case errors.Is(err, repository.ErrShoppingItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "The shopping item does not exist"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": service.MsgNoPermission})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
	}
}

// RegisterProtectedRoutes registers the shopping item endpoints.
func (h *ShoppingItemHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/shoppinglists/:id/items/", h.Create)
	rg.GET("/shoppinglists/:id/items/", h.List)
	rg.GET("/shoppinglists/:id/items/:item_id", h.Get)
	rg.PUT("/shoppinglists/:id/items/:item_id", h.Update)
	rg.DELETE("/shoppinglists/:id/items/:item_id", h.Delete)
}
