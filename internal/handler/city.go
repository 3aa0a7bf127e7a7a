package handler

import (
	"net/http"

	"propertyfinder/internal/model"

	"github.com/gin-gonic/gin"
)

// CityHandler serves the location selector's city list
type CityHandler struct {
	defaultCity string
}

// NewCityHandler creates a city handler. An unsupported defaultCity falls back
// to model.DefaultCity.
func NewCityHandler(defaultCity string) *CityHandler {
	return &CityHandler{defaultCity: model.ResolveCity(defaultCity, model.DefaultCity)}
}

// List handles GET /api/v1/cities?city=
func (h *CityHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, model.CitiesResponse{
		Cities:   model.SupportedCities,
		Selected: model.ResolveCity(c.Query("city"), h.defaultCity),
	})
}
