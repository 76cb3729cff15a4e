package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pet-registry-backend/internal/domains/owner"
	"pet-registry-backend/internal/shared/response"
	"pet-registry-backend/pkg/logger"
)

// OwnerHandler exposes the owner resource over HTTP. Stateless; it only
// holds the service dependency.
type OwnerHandler struct {
	service owner.Service
}

func NewOwnerHandler(service owner.Service) *OwnerHandler {
	return &OwnerHandler{service: service}
}

// List handles GET /owners
func (h *OwnerHandler) List(c *gin.Context) {
	owners, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, owners)
}

// GetByID handles GET /owners/:id
func (h *OwnerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	o, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, o)
}

// Create handles POST /owners
func (h *OwnerHandler) Create(c *gin.Context) {
	var req owner.OwnerRequest
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

// Update handles PUT /owners/:id
func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req owner.OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /owners/:id
func (h *OwnerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// parseID reads the :id path segment. Anything that is not a positive
// integer is invalid input, not a missing record.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.UnprocessableEntity(c, "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to HTTP responses.
func (h *OwnerHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.UnprocessableEntity(c, "validation failed", verrs)

	case errors.Is(err, owner.ErrOwnerNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, owner.ErrEmailAlreadyExists):
		response.Conflict(c, err.Error())

	default:
		// Never leak storage internals to the client.
		logger.Error("owner request failed", err)
		response.InternalServerError(c, "storage unavailable")
	}
}
