package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okiprasetya/user-management-api/internal/policy"
)

func TestRegister_CreatedWithoutPasswordInBody(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)

	w, env := api.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"name":     "Alice Example",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cretpass",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.EqualValues(t, 1, data["id"])
	assert.Equal(t, "alice", data["username"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "password_hash")
	assert.NotContains(t, w.Body.String(), "s3cretpass")
}

func TestRegister_ValidationFailure(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)

	w, env := api.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"name":     "No Email",
		"username": "noemail",
		"password": "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
}

func TestRegister_DuplicateEmailWinsOverUsername(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)
	api.register(t, "User A", "usera", "x@example.com", "password1")
	api.register(t, "User B", "userb", "y@example.com", "password2")

	// Same email as A combined with the same username as B: the email
	// conflict is the one reported.
	w, env := api.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"name":     "User C",
		"username": "userb",
		"email":    "x@example.com",
		"password": "password3",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, map[string]string{"email": "already in use"}, env.Errors)
	assert.Equal(t, "Email already registered", env.Message)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)
	api.register(t, "User A", "usera", "a@example.com", "password1")

	w, env := api.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"name":     "User B",
		"username": "usera",
		"email":    "b@example.com",
		"password": "password2",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, map[string]string{"username": "already in use"}, env.Errors)
	assert.Equal(t, "Username already taken", env.Message)
}

func TestLogin_UnknownUsername(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)

	for _, password := range []string{"whatever", "password1"} {
		w, env := api.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
			"username": "ghost", "password": password,
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "user not found", env.Message)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)
	api.register(t, "Alice", "alice", "alice@example.com", "password1")

	w, env := api.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": "alice", "password": "password2",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "wrong password", env.Message)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLogin_SuccessIssuesUsableToken(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)
	id := api.register(t, "Alice", "alice", "alice@example.com", "password1")
	token := api.login(t, "alice", "password1")

	claims, err := api.jwt.ParseToken(token)
	require.NoError(t, err)
	uid, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, id, uid)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_ResponseNeverContainsPasswordField(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, policy.AllowAny)
	api.register(t, "Alice", "alice", "alice@example.com", "password1")

	w, env := api.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": "alice", "password": "password1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.NotContains(t, res.User, "password")
	assert.NotContains(t, res.User, "password_hash")
	assert.False(t, strings.Contains(w.Body.String(), `"password`))
}
