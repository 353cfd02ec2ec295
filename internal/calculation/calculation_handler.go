package calculation

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

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
	l := zap.L().Named("calculation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calculation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ForCompany(c *gin.Context) {
	rows, err := h.report(c)
	if err != nil {
		return
	}
	response.OK(c, rows)
}

func (h *Handler) Export(c *gin.Context) {
	rows, err := h.report(c)
	if err != nil {
		return
	}

	f, err := BuildXLSX(rows)
	if err != nil {
		h.logger.Error("xlsx rendering failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Could not build the report file.")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("earnings-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("xlsx write failed", zap.Error(err))
	}
}

// report parses the common params and runs the service call; on failure it
// has already written the response and returns a non-nil error.
func (h *Handler) report(c *gin.Context) ([]CalculationRow, error) {
	callerID := c.GetString("user_id")
	comID, err := strconv.ParseUint(c.Param("comId"), 10, 32)
	if err != nil {
		response.Fail(c, apperror.ErrInvalidInput)
		return nil, err
	}

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	rows, err := h.service.ForCompany(c.Request.Context(), callerID, uint(comID), year, month)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("calculation request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Message)
		return nil, err
	}
	return rows, nil
}
