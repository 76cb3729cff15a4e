package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pet-registry-backend/internal/domains/cat"
	"pet-registry-backend/internal/shared/response"
	"pet-registry-backend/pkg/logger"
)

// CatHandler exposes the cat resource over HTTP.
type CatHandler struct {
	service cat.Service
}

func NewCatHandler(service cat.Service) *CatHandler {
	return &CatHandler{service: service}
}

// List handles GET /cats?limit&offset. The collection endpoint returns the
// plain cat shape; single-item endpoints embed the owner.
func (h *CatHandler) List(c *gin.Context) {
	var req cat.ListCatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.UnprocessableEntity(c, "invalid query parameters", err.Error())
		return
	}

	cats, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	req.SetDefaults()
	response.SuccessWithMeta(c, http.StatusOK, cats, &response.Meta{
		Limit:  req.Limit,
		Offset: req.Offset,
		Total:  total,
	})
}

// GetByID handles GET /cats/:id
func (h *CatHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Create handles POST /cats
func (h *CatHandler) Create(c *gin.Context) {
	var req cat.CreateCatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.UnprocessableEntity(c, "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to HTTP responses.
func (h *CatHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.UnprocessableEntity(c, "validation failed", verrs)

	case errors.Is(err, cat.ErrCatNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, cat.ErrOwnerNotExists):
		// The owner reference failed to resolve at the store boundary.
		response.NotFound(c, err.Error())

	default:
		logger.Error("cat request failed", err)
		response.InternalServerError(c, "storage unavailable")
	}
}
