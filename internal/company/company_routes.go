package company

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	companies := r.Group("/company")
	companies.Use(authRequired)
	{
		companies.GET("", h.GetAll)
		companies.GET("/:id", h.GetById)
		companies.POST("", h.Create)
		companies.PUT("", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}
