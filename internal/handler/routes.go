package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api/v1
func RegisterRoutes(router gin.IRouter, search *SearchHandler, properties *PropertyHandler, cities *CityHandler) {
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", search.Search)
		apiV1.GET("/search", search.SearchQuery)

		apiV1.GET("/properties", properties.List)
		apiV1.GET("/properties/:id", properties.Get)
		apiV1.GET("/properties/:id/overview", properties.Overview)
		apiV1.PATCH("/properties/:id", properties.Update)

		apiV1.GET("/cities", cities.List)
	}
}
