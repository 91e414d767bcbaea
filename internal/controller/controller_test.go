package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/utils/jwt"
)

// setupTestDB points the controllers at a fresh in-memory database. A single
// connection keeps sqlite happy under the concurrency tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.LoginHistory{},
		&model.Blog{},
		&model.Book{},
		&model.ContactSubmission{},
		&model.Media{},
		&model.Sponsor{},
	))

	database.SetDB(db)
	return db
}

func setupTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role model.Role) (model.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Test User",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	return user, token
}

func authRoutes() (fiber.Handler, fiber.Handler) {
	return middleware.AuthMiddleware(), middleware.RequireAdmin()
}

func jsonRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// fiberAppWrapper adds a test helper that fails fast on transport errors.
type fiberAppWrapper struct {
	*fiber.App
}

func (a *fiberAppWrapper) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// itoa renders a JSON-decoded numeric id as a path segment.
func itoa(v interface{}) string {
	return strconv.FormatInt(int64(v.(float64)), 10)
}
