package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
)

func setupBookApp(t *testing.T) (*fiberAppWrapper, string) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "admin@example.com", model.RoleAdmin)

	app := setupTestApp()
	authRequired, adminOnly := authRoutes()
	app.Get("/books", ListBooks)
	app.Get("/books/:id", GetBook)
	app.Post("/books", authRequired, adminOnly, CreateBook)
	app.Put("/books/:id", authRequired, adminOnly, UpdateBook)
	app.Delete("/books/:id", authRequired, adminOnly, DeleteBook)

	return &fiberAppWrapper{app}, token
}

func seedBooks(t *testing.T) {
	t.Helper()
	books := []model.Book{
		{Title: "A Farewell to Arms", Author: "Ernest Hemingway", Category: "fiction", IsPublished: true},
		{Title: "The Arms Trade", Author: "J. Smith", Category: "non-fiction", IsPublished: true},
		{Title: "Clean Code", Author: "Robert Martin", Category: "technical", IsPublished: false},
		{Title: "Poems", Author: "Armstrong Carter", Category: "fiction", IsPublished: true},
	}
	for i := range books {
		require.NoError(t, database.GetDB().Create(&books[i]).Error)
	}
}

func TestListBooksSearchMatchesTitleOrAuthor(t *testing.T) {
	app, _ := setupBookApp(t)
	seedBooks(t)

	resp := app.do(t, jsonRequest(t, http.MethodGet, "/books?search=Arms", nil, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var books []map[string]interface{}
	decodeBody(t, resp, &books)
	// title matches, plus the author containing "Arms" via "Armstrong"
	require.Len(t, books, 3)

	titles := map[string]bool{}
	for _, b := range books {
		titles[b["title"].(string)] = true
	}
	assert.True(t, titles["A Farewell to Arms"])
	assert.True(t, titles["The Arms Trade"])
	assert.True(t, titles["Poems"])
}

func TestListBooksSearchIsCaseInsensitive(t *testing.T) {
	app, _ := setupBookApp(t)
	seedBooks(t)

	for _, q := range []string{"arms", "ARMS", "aRmS"} {
		resp := app.do(t, jsonRequest(t, http.MethodGet, "/books?search="+q, nil, ""))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var books []map[string]interface{}
		decodeBody(t, resp, &books)
		assert.Len(t, books, 3, "query %q", q)
	}
}

func TestListBooksCategoryAndPublishedFilters(t *testing.T) {
	app, _ := setupBookApp(t)
	seedBooks(t)

	resp := app.do(t, jsonRequest(t, http.MethodGet, "/books?category=fiction", nil, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fiction []map[string]interface{}
	decodeBody(t, resp, &fiction)
	assert.Len(t, fiction, 2)

	resp = app.do(t, jsonRequest(t, http.MethodGet, "/books?published=false", nil, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var drafts []map[string]interface{}
	decodeBody(t, resp, &drafts)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Clean Code", drafts[0]["title"])
}

func TestCreateBookDefaultsUnpublished(t *testing.T) {
	app, token := setupBookApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/books", map[string]interface{}{
		"title":  "New Book",
		"author": "Somebody",
	}, token))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, false, body["is_published"])
}

func TestCreateBookValidation(t *testing.T) {
	app, token := setupBookApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/books", map[string]interface{}{
		"title": "No Author",
	}, token))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateBookPartialPatch(t *testing.T) {
	app, token := setupBookApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodPost, "/books", map[string]interface{}{
		"title":    "Patchable",
		"author":   "Original Author",
		"category": "fiction",
	}, token))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decodeBody(t, resp, &created)
	id := itoa(created["ID"])

	resp = app.do(t, jsonRequest(t, http.MethodPut, "/books/"+id, map[string]interface{}{
		"category": "technical",
	}, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "technical", updated["category"])
	// untouched fields survive the patch
	assert.Equal(t, "Patchable", updated["title"])
	assert.Equal(t, "Original Author", updated["author"])
}

func TestBookNotFound(t *testing.T) {
	app, token := setupBookApp(t)

	resp := app.do(t, jsonRequest(t, http.MethodGet, "/books/404", nil, ""))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = app.do(t, jsonRequest(t, http.MethodPut, "/books/404", map[string]interface{}{}, token))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = app.do(t, jsonRequest(t, http.MethodDelete, "/books/404", nil, token))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
