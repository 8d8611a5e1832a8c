package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	balanceerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"
	leaveerrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave/errors"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/response"

	leaveMock "github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

func newContext(method, target, body string, identity *auth.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
		c.Request = httptest.NewRequest(method, target, reader)
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	if identity != nil {
		c.Set(middleware.IdentityKey, *identity)
	}
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestLeaveHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employee := auth.Identity{UserID: uuid.New(), Role: auth.RoleEmployee}
	validBody := `{"leaveTypeId":"` + uuid.NewString() + `","startDate":"2024-03-04","endDate":"2024-03-08","reason":"trip"}`

	tests := []struct {
		name     string
		body     string
		identity *auth.Identity
		err      error
		status   int
		expect   string
	}{
		{"created", validBody, &employee, nil, http.StatusCreated, `"status":"pending"`},
		{"unauthenticated", validBody, nil, nil, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"missing reason", `{"leaveTypeId":"` + uuid.NewString() + `","startDate":"2024-03-04","endDate":"2024-03-08"}`, &employee, nil, http.StatusBadRequest, "Reason is required"},
		{"slashed date", `{"leaveTypeId":"` + uuid.NewString() + `","startDate":"04/03/2024","endDate":"2024-03-08","reason":"x"}`, &employee, nil, http.StatusBadRequest, "Start Date must be a date"},
		{"bad leave type id", `{"leaveTypeId":"annual","startDate":"2024-03-04","endDate":"2024-03-08","reason":"x"}`, &employee, nil, http.StatusBadRequest, "is invalid"},
		{"insufficient balance", validBody, &employee, balanceerrors.ErrInsufficientBalance, http.StatusConflict, "CONFLICT"},
		{"overlap", validBody, &employee, leaveerrors.ErrLeaveOverlap, http.StatusConflict, "overlapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := leaveMock.NewMockService(ctrl)
			calls := 0
			if tt.err != nil || tt.status == http.StatusCreated {
				calls = 1
			}
			svc.EXPECT().
				Create(gomock.Any(), employee, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ auth.Identity, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
					assert.Equal(t, "2024-03-04", req.StartDate)
					if tt.err != nil {
						return leave.LeaveResponse{}, tt.err
					}
					return leave.LeaveResponse{ID: uuid.NewString(), Status: "pending", TotalDays: 5}, nil
				}).
				Times(calls)

			c, w := newContext(http.MethodPost, "/leaves", tt.body, tt.identity)

			leave.NewHandler(svc).Create(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.expect)
		})
	}
}

func TestLeaveHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employee := auth.Identity{UserID: uuid.New(), Role: auth.RoleEmployee}

	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().
		ListMine(gomock.Any(), employee, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ auth.Identity, q leave.ListQuery) ([]leave.LeaveResponse, int64, error) {
			assert.Equal(t, "approved", q.Status)
			assert.Equal(t, 20, q.Limit)
			assert.Equal(t, 1, q.Page)
			return []leave.LeaveResponse{{ID: "a"}, {ID: "b"}}, 42, nil
		})
	c, w := newContext(http.MethodGet, "/leaves/my?status=approved", "", &employee)

	leave.NewHandler(svc).ListMine(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Ok)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(42), env.Meta.Total)
	assert.Equal(t, 3, env.Meta.TotalPages)
}

func TestLeaveHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := auth.Identity{UserID: uuid.New(), Role: auth.RoleManager}

	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"approved", `{"status":"approved","reviewComment":"ok"}`, nil, http.StatusOK},
		{"unknown status", `{"status":"cancelled"}`, nil, http.StatusBadRequest},
		{"already decided", `{"status":"approved"}`, leaveerrors.ErrInvalidTransition, http.StatusBadRequest},
		{"other department", `{"status":"approved"}`, leaveerrors.ErrDepartmentScope, http.StatusForbidden},
		{"hr stage", `{"status":"rejected"}`, leaveerrors.ErrReviewStageForbidden, http.StatusForbidden},
		{"missing", `{"status":"rejected"}`, leaveerrors.ErrLeaveNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := leaveMock.NewMockService(ctrl)
			calls := 0
			if tt.err != nil || tt.status == http.StatusOK {
				calls = 1
			}
			svc.EXPECT().
				UpdateStatus(gomock.Any(), manager, "leave-1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ auth.Identity, id string, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
					if tt.err != nil {
						return leave.LeaveResponse{}, tt.err
					}
					return leave.LeaveResponse{ID: id, Status: req.Status}, nil
				}).
				Times(calls)

			c, w := newContext(http.MethodPatch, "/leaves/leave-1/status", tt.body, &manager)
			c.Params = gin.Params{{Key: "id", Value: "leave-1"}}

			leave.NewHandler(svc).UpdateStatus(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestLeaveHandler_CancelAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employee := auth.Identity{UserID: uuid.New(), Role: auth.RoleEmployee}

	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().Cancel(gomock.Any(), employee, "l1").Return(leave.LeaveResponse{ID: "l1", Status: "cancelled"}, nil)
	svc.EXPECT().Cancel(gomock.Any(), employee, "not-mine").Return(leave.LeaveResponse{}, leaveerrors.ErrNotOwner)
	svc.EXPECT().Delete(gomock.Any(), employee, "l1").Return(nil)
	h := leave.NewHandler(svc)

	c, w := newContext(http.MethodPatch, "/leaves/l1/cancel", "", &employee)
	c.Params = gin.Params{{Key: "id", Value: "l1"}}
	h.Cancel(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")

	c, w = newContext(http.MethodPatch, "/leaves/not-mine/cancel", "", &employee)
	c.Params = gin.Params{{Key: "id", Value: "not-mine"}}
	h.Cancel(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = newContext(http.MethodDelete, "/leaves/l1", "", &employee)
	c.Params = gin.Params{{Key: "id", Value: "l1"}}
	h.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
