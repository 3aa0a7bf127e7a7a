package handler

import (
	"net/http"

	"propertyfinder/internal/model"
	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.search(c, &req)
}

// SearchQuery handles GET /api/v1/search?q=
func (h *SearchHandler) SearchQuery(c *gin.Context) {
	h.search(c, &model.SearchRequest{Query: c.Query("q")})
}

func (h *SearchHandler) search(c *gin.Context, req *model.SearchRequest) {
	response, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("search request failed", zap.String("query", req.Query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
