package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
)

func setupAuthApp(t *testing.T) *fiberAppWrapper {
	setupTestDB(t)

	app := setupTestApp()
	app.Post("/auth/register", Register)
	app.Post("/auth/login", Login)
	app.Get("/me", middleware.AuthMiddleware(), GetMe)

	return &fiberAppWrapper{app}
}

func TestRegisterAssignsUserRole(t *testing.T) {
	app := setupAuthApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/auth/register", map[string]interface{}{
		"email":     "reader@example.com",
		"password":  "secret123",
		"full_name": "Regular Reader",
	}, ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.NotEmpty(t, body["token"])
	// the password hash must never appear in responses
	assert.NotContains(t, user, "password")
}

func TestRegisterAdminEmailShim(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
	app := setupAuthApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/auth/register", map[string]interface{}{
		"email":    "owner@example.com",
		"password": "secret123",
	}, ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["role"])

	// a different address registered under the same config stays a user
	resp = app.do(t, jsonRequest(t, http.MethodPost, "/auth/register", map[string]interface{}{
		"email":    "Owner@example.com",
		"password": "secret123",
	}, ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var other map[string]interface{}
	decodeBody(t, resp, &other)
	assert.Equal(t, "user", other["user"].(map[string]interface{})["role"])
}

func TestRegisterValidation(t *testing.T) {
	app := setupAuthApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/auth/register", map[string]interface{}{
		"email":    "short@example.com",
		"password": "123",
	}, ""))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupAuthApp(t)

	payload := map[string]interface{}{
		"email":    "dup@example.com",
		"password": "secret123",
	}

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/auth/register", payload, ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, jsonRequest(t, http.MethodPost, "/auth/register", payload, ""))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginAndGetMe(t *testing.T) {
	app := setupAuthApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/auth/register", map[string]interface{}{
		"email":     "login@example.com",
		"password":  "secret123",
		"full_name": "Login User",
	}, ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, jsonRequest(t, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "login@example.com",
		"password": "secret123",
	}, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	// a login history row is written
	var historyCount int64
	database.GetDB().Model(&model.LoginHistory{}).Count(&historyCount)
	assert.Equal(t, int64(1), historyCount)

	resp = app.do(t, jsonRequest(t, http.MethodGet, "/me", nil, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me map[string]interface{}
	decodeBody(t, resp, &me)
	user := me["user"].(map[string]interface{})
	assert.Equal(t, "login@example.com", user["email"])
	assert.Equal(t, "Login User", user["full_name"])
	assert.Equal(t, "user", user["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupAuthApp(t)
	createTestUser(t, database.GetDB(), "known@example.com", model.RoleUser)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "known@example.com",
		"password": "wrong-password",
	}, ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetMeWithoutToken(t *testing.T) {
	app := setupAuthApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodGet, "/me", nil, ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = app.do(t, jsonRequest(t, http.MethodGet, "/me", nil, "not-a-valid-token"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
