package api

import (
	"errors"
	"net/http"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemCommands commands.ItemCommands
	itemQueries  queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands: itemCommands,
		itemQueries:  itemQueries,
	}
}

// @Summary Create item
// @Description List a new item owned by the caller
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.itemCommands.Create(c.Request.Context(), userID, commands.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		h.writeItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Patch item
// @Description Partially update an item; owner only
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.PatchItemRequest true "Fields to update"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [patch]
func (h *ItemHandler) PatchItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.itemCommands.Patch(c.Request.Context(), userID, id, commands.PatchItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}); err != nil {
		h.writeItemError(c, err)
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Get an item with comments; the owner also sees the last and next approved booking
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Description List the caller's items with projections and comments
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 401 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var q reqdto.SearchItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.itemQueries.ListOwned(c.Request.Context(), userID,
		queries.Page{Offset: q.Offset, Limit: q.Limit})
	if err != nil {
		h.writeItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search items
// @Description Search available items by name or description; blank text yields an empty list
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param text query string false "Search text"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 401 {object} map[string]string
// @Router /items/search [get]
func (h *ItemHandler) SearchItems(c *gin.Context) {
	var q reqdto.SearchItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.itemQueries.Search(c.Request.Context(), q.Text,
		queries.Page{Offset: q.Offset, Limit: q.Limit})
	if err != nil {
		h.writeItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Add comment
// @Description Comment on an item after a finished approved booking
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.AddCommentRequest true "Comment"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/comments [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	commentID, err := h.itemCommands.AddComment(c.Request.Context(), userID, id, req.Text)
	if err != nil {
		h.writeItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: commentID})
}

func (h *ItemHandler) writeItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, commands.ErrNotOwner),
		errors.Is(err, commands.ErrRequestNotFound),
		errors.Is(err, queries.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	case errors.Is(err, commands.ErrItemValidation),
		errors.Is(err, commands.ErrCommentValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item data",
		})
	case errors.Is(err, commands.ErrCommentNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Commenting requires a finished booking",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
