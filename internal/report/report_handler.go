package report

import (
	"net/http"
	"strconv"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"
	reporterrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/report/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) identity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
	}
	return identity, ok
}

func (h *Handler) Calendar(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Calendar(c.Request.Context(), identity, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upcoming(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	// Unparseable values fall back to the default window.
	days, _ := strconv.Atoi(c.Query("days"))

	resp, err := h.service.Upcoming(c.Request.Context(), identity, days)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Stats(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Stats(c.Request.Context(), identity, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AnnualReport(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.writeServiceError(c, reporterrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.AnnualReport(c.Request.Context(), identity, c.Param("userId"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DepartmentAnalytics(c *gin.Context) {
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.DepartmentAnalytics(c.Request.Context(), c.Param("deptId"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Export returns the rows as JSON. Rendering them to a file format is left
// to the client.
func (h *Handler) Export(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var q ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ExportRows(c.Request.Context(), identity, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp.Truncated {
		c.Header("X-Truncated", "true")
		c.Header("X-Total-Records", strconv.FormatInt(resp.Total, 10))
	}
	response.Success(c, http.StatusOK, resp, nil)
}
