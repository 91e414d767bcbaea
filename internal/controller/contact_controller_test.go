package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
)

func setupContactApp(t *testing.T) (*fiberAppWrapper, string) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "admin@example.com", model.RoleAdmin)

	app := setupTestApp()
	authRequired, adminOnly := authRoutes()
	app.Post("/contact", CreateContactSubmission)
	app.Get("/contact", authRequired, adminOnly, ListContactSubmissions)

	return &fiberAppWrapper{app}, token
}

func TestCreateContactSubmission(t *testing.T) {
	app, token := setupContactApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/contact", map[string]interface{}{
		"name":    "Jordan Reader",
		"email":   "jordan@example.com",
		"subject": "Speaking request",
		"message": "Would you speak at our meetup?",
	}, ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(t, jsonRequest(t, http.MethodGet, "/contact", nil, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submissions []map[string]interface{}
	decodeBody(t, resp, &submissions)
	require.Len(t, submissions, 1)
	assert.Equal(t, "Jordan Reader", submissions[0]["name"])
	assert.Equal(t, "Speaking request", submissions[0]["subject"])
}

func TestCreateContactSubmissionValidation(t *testing.T) {
	app, _ := setupContactApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/contact", map[string]interface{}{
		"name":  "No Message",
		"email": "nm@example.com",
	}, ""))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListContactSubmissionsIsAdminOnly(t *testing.T) {
	app, _ := setupContactApp(t)
	_, userToken := createTestUser(t, database.GetDB(), "viewer@example.com", model.RoleUser)

	resp := app.do(t, jsonRequest(t, http.MethodGet, "/contact", nil, ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = app.do(t, jsonRequest(t, http.MethodGet, "/contact", nil, userToken))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListContactSubmissionsNewestFirst(t *testing.T) {
	app, token := setupContactApp(t)

	for _, msg := range []string{"first", "second", "third"} {
		require.NoError(t, database.GetDB().Create(&model.ContactSubmission{
			Name:    "Sender",
			Email:   "s@example.com",
			Message: msg,
		}).Error)
	}

	resp := app.do(t, jsonRequest(t, http.MethodGet, "/contact", nil, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submissions []map[string]interface{}
	decodeBody(t, resp, &submissions)
	require.Len(t, submissions, 3)
}
