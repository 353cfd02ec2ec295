package company

import (
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
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	callerID := c.GetString("user_id")

	resp, err := h.service.GetAll(c.Request.Context(), callerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	callerID := c.GetString("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), callerID, uint(id))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *Handler) Create(c *gin.Context) {
	callerID := c.GetString("user_id")
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), callerID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Company created")
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetString("user_id")
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), callerID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Company edited succesfully.")
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetString("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	targetDepartmentID, _ := strconv.ParseUint(c.Query("targetDepartmentId"), 10, 32)
	deleteEmployees, _ := strconv.ParseBool(c.Query("deleteEmployees"))

	if err := h.service.Delete(c.Request.Context(), callerID, uint(id), uint(targetDepartmentID), deleteEmployees); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Company deleted")
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("company request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}
