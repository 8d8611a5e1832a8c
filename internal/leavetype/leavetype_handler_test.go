package leavetype_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype"
	leavetypeerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveTypeService struct {
	GetAllFn  func(ctx context.Context, includeInactive bool) ([]leavetype.LeaveTypeResponse, error)
	GetByIDFn func(ctx context.Context, id string) (leavetype.LeaveTypeResponse, error)
	CreateFn  func(ctx context.Context, req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error)
	UpdateFn  func(ctx context.Context, id string, req leavetype.UpdateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeLeaveTypeService) GetAll(ctx context.Context, includeInactive bool) ([]leavetype.LeaveTypeResponse, error) {
	return f.GetAllFn(ctx, includeInactive)
}
func (f *fakeLeaveTypeService) GetByID(ctx context.Context, id string) (leavetype.LeaveTypeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeLeaveTypeService) Create(ctx context.Context, req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeLeaveTypeService) Update(ctx context.Context, id string, req leavetype.UpdateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeLeaveTypeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestLeaveTypeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLeaveTypeService{
		GetAllFn: func(ctx context.Context, includeInactive bool) ([]leavetype.LeaveTypeResponse, error) {
			assert.True(t, includeInactive)
			return []leavetype.LeaveTypeResponse{{ID: "1", Name: "Annual Leave"}}, nil
		},
	}
	h := leavetype.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/leave-types?includeInactive=true", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Annual Leave")
}

func TestLeaveTypeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveTypeService{
			CreateFn: func(ctx context.Context, req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error) {
				assert.Equal(t, "Paternity Leave", req.Name)
				return leavetype.LeaveTypeResponse{ID: "1", Name: req.Name, DayCountingRule: "business_days"}, nil
			},
		}
		h := leavetype.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-types", strings.NewReader(`{"name":"Paternity Leave","defaultDaysPerYear":10}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Paternity Leave")
	})

	t.Run("validation error", func(t *testing.T) {
		h := leavetype.NewHandler(&fakeLeaveTypeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-types", strings.NewReader(`{"defaultDaysPerYear":10}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeLeaveTypeService{
			CreateFn: func(ctx context.Context, req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error) {
				return leavetype.LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeExists
			},
		}
		h := leavetype.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-types", strings.NewReader(`{"name":"Annual Leave"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveTypeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLeaveTypeService{
		DeleteFn: func(ctx context.Context, id string) error {
			if id == "missing" {
				return leavetypeerrors.ErrLeaveTypeNotFound
			}
			return nil
		},
	}
	h := leavetype.NewHandler(svc)

	for id, status := range map[string]int{"ok": http.StatusOK, "missing": http.StatusNotFound} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/leave-types/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Delete(c)
		assert.Equal(t, status, w.Code, id)
	}
}
