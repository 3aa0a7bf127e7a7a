package handler

import (
	"errors"
	"net/http"

	"propertyfinder/internal/model"
	"propertyfinder/internal/repository"
	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PropertyHandler handles by-id property requests
type PropertyHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(searchService *service.SearchService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.searchService.ListProperties(c.Request.Context())
	if err != nil {
		h.logger.Error("list properties failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.PropertyListResponse{Results: properties, Total: len(properties)})
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	property, err := h.searchService.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "Failed to get property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// Overview handles GET /api/v1/properties/:id/overview
func (h *PropertyHandler) Overview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	overview, err := h.searchService.GetAIOverview(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "Failed to get overview", err)
		return
	}

	c.JSON(http.StatusOK, model.OverviewResponse{ID: id.String(), AIOverview: overview})
}

// Update handles PATCH /api/v1/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch model.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	property, err := h.searchService.UpdateProperty(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, "Failed to update property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, repository.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
	case errors.Is(err, repository.ErrEmptyPatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
	default:
		h.logger.Error(msg, zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg + ": " + err.Error()})
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return uuid.Nil, false
	}
	return id, true
}
