package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"duo-server/middleware"
	"duo-server/repositories"
	"duo-server/services"
	"duo-server/usecases"
	"duo-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("handler-test-secret")

// newTestRouter wires the full API against the in-memory store, mirroring
// server.Server.Start.
func newTestRouter() (*gin.Engine, *repositories.MemoryStore) {
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStore()

	userUseCase := usecases.NewUserUseCase(store.Users(), testSecret)
	noteUseCase := usecases.NewNoteUseCase(store.Notes(), store.Users())
	postUseCase := usecases.NewPostUseCase(store.Posts(), store.Users())
	projectUseCase := usecases.NewProjectUseCase(store.Projects(), store.Users())
	notificationUseCase := usecases.NewNotificationUseCase(store.Notifications())

	notifier := services.NewNotifier(ws.NewManager(), notificationUseCase)

	userHandler := NewUserHandler(userUseCase)
	loginHandler := NewLoginHandler(userUseCase)
	noteHandler := NewNoteHandler(noteUseCase, notifier)
	postHandler := NewPostHandler(postUseCase, notifier)
	projectHandler := NewProjectHandler(projectUseCase)

	requireAuth := middleware.RequireAuth(testSecret)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/users/register", userHandler.Register)
	api.GET("/users/profile", requireAuth, userHandler.Profile)
	api.PATCH("/users/partner", requireAuth, userHandler.UpdatePartner)
	api.POST("/auth/login", loginHandler.Login)
	api.POST("/notes", requireAuth, noteHandler.Create)
	api.GET("/notes", requireAuth, noteHandler.Inbox)
	api.POST("/posts", requireAuth, postHandler.Create)
	api.GET("/posts", requireAuth, postHandler.Inbox)
	api.POST("/projects", requireAuth, projectHandler.Create)

	return r, store
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"name":      name,
		"email":     email,
		"cellphone": "5511999990000",
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func loginUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
