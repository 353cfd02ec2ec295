package workingtime

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-timesheet/internal/shared/apperror"
	"go-timesheet/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("workingtime.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workingtime.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) FromDepartment(c *gin.Context) {
	callerID := c.GetString("user_id")
	depID, err := strconv.ParseUint(c.Param("depId"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.FromDepartment(c.Request.Context(), callerID, uint(depID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *Handler) FromCompany(c *gin.Context) {
	callerID := c.GetString("user_id")
	comID, err := strconv.ParseUint(c.Param("comId"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.FromCompany(c.Request.Context(), callerID, uint(comID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *Handler) Create(c *gin.Context) {
	callerID := c.GetString("user_id")
	var req CreateWorkingTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), callerID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Working time added")
}

func (h *Handler) CreateRangeForCompany(c *gin.Context) {
	callerID := c.GetString("user_id")
	comID, err := strconv.ParseUint(c.Query("comId"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	err = h.service.CreateRangeForCompany(
		c.Request.Context(),
		callerID,
		uint(comID),
		c.Query("date"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Working times added")
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetString("user_id")
	var req UpdateWorkingTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), callerID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Working time edited succesfully.")
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetString("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, uint(id)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Working time deleted")
}

func (h *Handler) Calendar(c *gin.Context) {
	callerID := c.GetString("user_id")

	feed, err := h.service.Calendar(c.Request.Context(), callerID, c.Param("empId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="working-times.ics"`)
	c.Data(http.StatusOK, "text/calendar", []byte(feed))
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("working time request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}
