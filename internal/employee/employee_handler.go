package employee

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// GetByCompanyOrID serves GET /:id. A numeric id is a company id and returns
// that company's employees paginated; anything else is an employee id.
// Employee ids always start with the DOB day so they never collide with the
// small serial company ids in practice.
func (h *Handler) GetByCompanyOrID(c *gin.Context) {
	callerID := c.GetString("user_id")
	param := c.Param("id")

	if comID, err := strconv.ParseUint(param, 10, 32); err == nil && comID < 1_000_000 {
		emps, err := h.service.FromCompany(c.Request.Context(), callerID, uint(comID))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		h.writePage(c, emps)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), callerID, param)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *Handler) GetByDepartment(c *gin.Context) {
	callerID := c.GetString("user_id")
	depID, err := strconv.ParseUint(c.Param("depId"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	emps, err := h.service.FromDepartment(c.Request.Context(), callerID, uint(depID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writePage(c, emps)
}

func (h *Handler) Create(c *gin.Context) {
	callerID := c.GetString("user_id")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), callerID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Employee created")
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetString("user_id")
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), callerID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Employee edited succesfully.")
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetString("user_id")

	if err := h.service.Delete(c.Request.Context(), callerID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, "Employee deleted")
}

// writePage applies zero-based pageNumber/pageSize to the full result set.
// Count is always the unpaginated total.
func (h *Handler) writePage(c *gin.Context, emps []EmployeeResponse) {
	total := int64(len(emps))

	pageNumber, _ := strconv.Atoi(c.Query("pageNumber"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	if pageSize > 0 {
		start := pageNumber * pageSize
		if start < 0 || start >= len(emps) {
			emps = []EmployeeResponse{}
		} else {
			end := start + pageSize
			if end > len(emps) {
				end = len(emps)
			}
			emps = emps[start:end]
		}
	}

	response.Paginated(c, emps, total)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}
