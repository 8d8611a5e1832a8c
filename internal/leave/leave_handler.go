package leave

import (
	"net/http"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
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

func (h *Handler) Create(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), identity, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	h.list(c, func(identity auth.Identity, q ListQuery) ([]LeaveResponse, int64, error) {
		return h.service.ListMine(c.Request.Context(), identity, q)
	})
}

func (h *Handler) ListTeam(c *gin.Context) {
	h.list(c, func(identity auth.Identity, q ListQuery) ([]LeaveResponse, int64, error) {
		return h.service.ListTeam(c.Request.Context(), identity, q)
	})
}

func (h *Handler) ListAll(c *gin.Context) {
	h.list(c, func(_ auth.Identity, q ListQuery) ([]LeaveResponse, int64, error) {
		return h.service.ListAll(c.Request.Context(), q)
	})
}

func (h *Handler) list(c *gin.Context, fetch func(auth.Identity, ListQuery) ([]LeaveResponse, int64, error)) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	q = q.Normalize()

	resp, total, err := fetch(identity, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
