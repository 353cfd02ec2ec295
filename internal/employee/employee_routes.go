package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	employees := r.Group("/employee")
	employees.Use(authRequired)
	{
		employees.GET("/:id", h.GetByCompanyOrID)
		employees.GET("/:id/:depId", h.GetByDepartment)
		employees.POST("", h.Create)
		employees.PUT("", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
