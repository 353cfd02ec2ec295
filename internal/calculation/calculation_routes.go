package calculation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	calculations := r.Group("/calculation")
	calculations.Use(authRequired)
	{
		calculations.GET("/:comId", h.ForCompany)
		calculations.GET("/:comId/export", h.Export)
	}
}
