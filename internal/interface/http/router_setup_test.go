package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/okiprasetya/user-management-api/internal/application"
	handlers "github.com/okiprasetya/user-management-api/internal/interface/http"
	"github.com/okiprasetya/user-management-api/internal/policy"
	"github.com/okiprasetya/user-management-api/internal/router/modules"
	"github.com/okiprasetya/user-management-api/pkg/helpers"
	"github.com/okiprasetya/user-management-api/pkg/validation"
)

var setupOnce sync.Once

type testAPI struct {
	router *gin.Engine
	repo   *memRepo
	jwt    *helpers.JWTManager
}

func newTestAPI(t *testing.T, access policy.Access) *testAPI {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := newMemRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	authSvc := application.NewAuthService(repo, jwt, logger)
	userSvc := application.NewUserService(repo, logger)

	r := gin.New()
	api := r.Group("/api/v1")
	modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)).Register(api)
	modules.NewUserModule(handlers.NewUserHandler(userSvc, access, logger), jwt).Register(api)

	return &testAPI{router: r, repo: repo, jwt: jwt}
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// register creates a user through the public endpoint and returns its id.
func (a *testAPI) register(t *testing.T, name, username, email, password string) int64 {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"name": name, "username": username, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())
	var u struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &u))
	return u.ID
}

// login performs a login and returns the issued token.
func (a *testAPI) login(t *testing.T, username, password string) string {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}
