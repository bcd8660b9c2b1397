package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/shoplist-api/internal/middleware"
	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// ShoppingListHandler provides the shopping list CRUD endpoints.
type ShoppingListHandler struct {
	listService service.ShoppingListService
	perPage     int
}

// NewShoppingListHandler creates a new ShoppingListHandler.
func NewShoppingListHandler(svc service.ShoppingListService, perPage int) *ShoppingListHandler {
	return &ShoppingListHandler{listService: svc, perPage: perPage}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return uint(v), true
}

func currentUserID(c *gin.Context) (uint, bool) {
	uidAny, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": service.MsgNoPermission})
		return 0, false
	}
	return uidAny.(uint), true
}

// paginationFromQuery builds paging parameters from the limit/page query
// args. Both absent means no pagination at all; a non-integer value in
// either is a client error.
func paginationFromQuery(c *gin.Context, defaultLimit int) (*repository.Pagination, bool) {
	limitStr := c.Query("limit")
	pageStr := c.Query("page")
	if limitStr == "" && pageStr == "" {
		return nil, true
	}

	limit := defaultLimit
	page := 1
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, false
		}
		limit = v
	}
	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, false
		}
		page = v
	}
	return &repository.Pagination{Page: page, PageSize: limit}, true
}

// Create godoc
// @Summary Create a shopping list
// @Tags    shoppinglists
// @Accept  json
// @Produce json
// @Param   input body model.CreateShoppingListInput true "List to create"
// @Success 201 {object} model.ShoppingListDTO
// @Failure 400 {object} map[string]string "message"
// @Security JWTAuth
// @Router  /shoppinglists/ [post]
func (h *ShoppingListHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input model.CreateShoppingListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no data was sent"})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		return
	}

	dto, err := h.listService.Create(&input, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// List godoc
// @Summary List the user's shopping lists
// @Tags    shoppinglists
// @Produce json
// @Param   q     query string false "title search"
// @Param   limit query int    false "page size"
// @Param   page  query int    false "page number"
// @Success 200 {array} model.ShoppingListDTO
// @Security JWTAuth
// @Router  /shoppinglists/ [get]
func (h *ShoppingListHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	p, ok := paginationFromQuery(c, h.perPage)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "limit and page query parameters should be integers"})
		return
	}

	dtos, err := h.listService.List(userID, c.Query("q"), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not fetch shopping lists"})
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// Get godoc
// @Summary Get one shopping list
// @Tags    shoppinglists
// @Produce json
// @Param   id path int true "List ID"
// @Success 200 {object} model.ShoppingListDTO
// @Failure 404 {object} map[string]string "message"
// @Security JWTAuth
// @Router  /shoppinglists/{id} [get]
func (h *ShoppingListHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	dto, err := h.listService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "The shopping list does not exist"})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Update godoc
// @Summary Update a shopping list
// @Tags    shoppinglists
// @Accept  json
// @Produce json
// @Param   id    path int                           true "List ID"
// @Param   input body model.UpdateShoppingListInput true "fields"
// @Success 200 {object} model.ShoppingListDTO
// @Failure 403 {object} map[string]string "not the owner"
// @Security JWTAuth
// @Router  /shoppinglists/{id} [put]
func (h *ShoppingListHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input model.UpdateShoppingListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no data was sent"})
		return
	}
	if input.Title == nil && input.Description == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		return
	}

	dto, err := h.listService.Update(id, userID, &input)
	if err != nil {
		respondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Delete godoc
// @Summary Delete a shopping list
// @Tags    shoppinglists
// @Produce json
// @Param   id path int true "List ID"
// @Success 200 {object} map[string]string "message"
// @Failure 403 {object} map[string]string "not the owner"
// @Security JWTAuth
// @Router  /shoppinglists/{id} [delete]
func (h *ShoppingListHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.listService.Delete(id, userID); err != nil {
		respondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shopping list successfully deleted"})
}

// respondListError translates service errors into the stable JSON responses.
func respondListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrShoppingListNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "The shopping list does not exist"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": service.MsgNoPermission})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
	}
}

// RegisterProtectedRoutes registers the shopping list endpoints.
func (h *ShoppingListHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/shoppinglists/", h.Create)
	rg.GET("/shoppinglists/", h.List)
	rg.GET("/shoppinglists/:id", h.Get)
	rg.PUT("/shoppinglists/:id", h.Update)
	rg.DELETE("/shoppinglists/:id", h.Delete)
}
