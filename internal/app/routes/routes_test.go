package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolhub/internal/app/controllers"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/auth"
)

// newTestRouter builds the route tree with zero-value controllers. Handlers
// are never reached: requests carry no token, so the auth middleware aborts
// first. A 401 therefore proves a route is registered, a 404 that it is not.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewSessionController(nil),
		controllers.NewClassController(nil),
		controllers.NewRoomController(nil),
		controllers.NewTeacherController(nil),
		controllers.NewStudentController(nil),
		controllers.NewAttendanceController(nil),
		controllers.NewActivityController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func TestRouteRegistration(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/sessions/create"},
		{http.MethodGet, "/sessions/list"},
		{http.MethodGet, "/sessions/1"},
		{http.MethodPatch, "/sessions/1/update"},
		{http.MethodPatch, "/sessions/1/change-room"},
		{http.MethodPatch, "/sessions/1/change-teacher"},
		{http.MethodDelete, "/sessions/1/delete"},
		{http.MethodPatch, "/classes/1/change-capacity"},
		{http.MethodPatch, "/classes/1/students/add"},
		{http.MethodPatch, "/classes/1/remove-student/2"},
		{http.MethodDelete, "/classes/1/students/2/remove"},
		{http.MethodGet, "/activity/list"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d (route must exist and be auth-gated)", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestHealthRouteIsPublic(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
