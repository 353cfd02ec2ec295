package department

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	departments := r.Group("/department")
	departments.Use(authRequired)
	{
		departments.GET("/fromcompany/:comId", h.FromCompany)
		departments.GET("/:id", h.GetById)
		departments.POST("", h.Create)
		departments.PUT("", h.Update)
		departments.DELETE("/:id", h.Delete)
	}
}
