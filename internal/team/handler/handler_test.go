package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clubhq/membership/internal/auth"
	appConfig "github.com/clubhq/membership/internal/config"
	"github.com/clubhq/membership/internal/middleware"
	teamModel "github.com/clubhq/membership/internal/team/model"
	"github.com/clubhq/membership/internal/team/service"
)

const testSecret = "test-secret"

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context, id int64) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

func (m *mockService) List(ctx context.Context, filters map[string]string) ([]teamModel.Ref, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.Ref), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(svc, zap.NewNop().Sugar())

	r.GET("/api/teams", h.List)
	r.GET("/api/teams/:id", h.Get)

	admin := r.Group("", middleware.RequireAuth(testSecret), middleware.RequireAdmin())
	admin.POST("/api/teams", h.Create)
	admin.PATCH("/api/teams/:id", h.Update)
	admin.DELETE("/api/teams/:id", h.Delete)

	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueToken(appConfig.AuthConfig{
		Secret: testSecret, TokenTTL: time.Hour, Issuer: "membership",
	}, "tester", auth.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestHandler_List(t *testing.T) {
	t.Run("empty result is 204", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("List", mock.Anything, map[string]string{}).Return([]teamModel.Ref{}, nil)

		w := httptest.NewRecorder()
		setupRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("GET", "/api/teams", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown filter field is 403", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("List", mock.Anything, map[string]string{"budget": "0"}).
			Return(nil, teamModel.ErrUnknownField)

		w := httptest.NewRecorder()
		setupRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("GET", "/api/teams?budget=0", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_Get(t *testing.T) {
	t.Run("success with member refs", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Get", mock.Anything, int64(3)).Return(&teamModel.TeamResponse{
			ID: 3, Name: "payments",
			Members: []teamModel.MemberRef{{ID: 1, URI: "/api/members/1"}},
		}, nil)

		w := httptest.NewRecorder()
		setupRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("GET", "/api/teams/3", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]teamModel.TeamResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "payments", body["team"].Name)
		require.Len(t, body["team"].Members, 1)
	})

	t.Run("404 names the id", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Get", mock.Anything, int64(8)).Return(nil, teamModel.ErrTeamNotFound)

		w := httptest.NewRecorder()
		setupRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("GET", "/api/teams/8", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "team 8 not found")
	})
}

func TestHandler_Mutations(t *testing.T) {
	t.Run("create without token is 401", func(t *testing.T) {
		mockSvc := new(mockService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/teams", bytes.NewBufferString(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("create is 201 with location", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(&teamModel.TeamResponse{
			ID: 2, Name: "payments", Members: []teamModel.MemberRef{},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/teams", bytes.NewBufferString(`{"name":"payments"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		setupRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/teams/2", w.Header().Get("Location"))
	})

	t.Run("duplicate name is 409", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, teamModel.ErrTeamExists)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/teams", bytes.NewBufferString(`{"name":"payments"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		setupRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("delete returns deleted representation", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Delete", mock.Anything, int64(2)).Return(&teamModel.TeamResponse{
			ID: 2, Name: "payments", Members: []teamModel.MemberRef{},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/api/teams/2", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		setupRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "payments")
	})
}
