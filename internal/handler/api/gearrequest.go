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

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Create gear request
// @Description Post a wish for gear nobody has listed yet
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGearRequestRequest true "Gear request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateGearRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.requestCommands.Create(c.Request.Context(), userID, commands.CreateRequestInput{
		Description: req.Description,
	})
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List own gear requests
// @Description List the caller's requests, oldest first, with answering items
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GearRequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) ListOwnRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.requestQueries.ListOwn(c.Request.Context(), userID)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' gear requests
// @Description List requests posted by everyone else, newest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.GearRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /requests/all [get]
func (h *RequestHandler) ListAllRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var q reqdto.ListGearRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.requestQueries.ListOthers(c.Request.Context(), userID,
		queries.Page{Offset: q.Offset, Limit: q.Limit})
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get gear request
// @Description Get one request with its answering items; visible to any user
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.GearRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
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
			"error": "Invalid request ID format",
		})
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

func (h *RequestHandler) writeRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, queries.ErrUserNotFound),
		errors.Is(err, queries.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	case errors.Is(err, commands.ErrRequestValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
