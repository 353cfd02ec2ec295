package workingtime

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	workingTimes := r.Group("/workingtime")
	workingTimes.Use(authRequired)
	{
		workingTimes.GET("/fromdepartment/:depId", h.FromDepartment)
		workingTimes.GET("/fromcompany/:comId", h.FromCompany)
		workingTimes.GET("/calendar/:empId", h.Calendar)
		workingTimes.POST("/create", h.Create)
		workingTimes.POST("/createRangeForCompany", h.CreateRangeForCompany)
		workingTimes.PUT("", h.Update)
		workingTimes.DELETE("/:id", h.Delete)
	}
}
