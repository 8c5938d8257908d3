package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"learnify/config"
	"learnify/database"
	"learnify/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupApp builds an app backed by a throwaway sqlite database and temp
// file directories. The uploads directory sits one level below the files
// base so traversal tests stay inside the temp root.
func setupApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	return setupAppStrict(t, false)
}

func setupAppStrict(t *testing.T, strictPaths bool) (*fiber.App, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.Migrate())

	root := t.TempDir()
	cfg := &config.Config{
		FilesBaseDir:   filepath.Join(root, "data"),
		UploadsDir:     filepath.Join(root, "data", "uploads"),
		MaxUploadBytes: 10 * 1024 * 1024,
		StrictPaths:    strictPaths,
	}
	require.NoError(t, os.MkdirAll(cfg.UploadsDir, 0755))

	return newApp(cfg, zap.NewNop(), session.NewMemoryStore()), cfg
}

func jsonRequest(method, path, token string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func perform(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// registerUser creates a user through the API and returns its id.
func registerUser(t *testing.T, app *fiber.App, username, role string) uint {
	t.Helper()
	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "password123",
		"full_name": "Test " + username,
		"role":      role,
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	user := body["user"].(map[string]any)
	return uint(user["id"].(float64))
}

// loginUser logs in through the API and returns the bearer token.
func loginUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// createClass creates a class through the API and returns its id and code.
func createClass(t *testing.T, app *fiber.App, token, name string) (uint, string) {
	t.Helper()
	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/classes", token, map[string]string{
		"name": name,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	return uint(body["id"].(float64)), body["code"].(string)
}

// createAssignment creates an assignment through the API and returns its id.
func createAssignment(t *testing.T, app *fiber.App, token string, classID uint, title string) uint {
	t.Helper()
	path := fmt.Sprintf("/api/classes/%d/assignments", classID)
	resp := perform(t, app, jsonRequest(http.MethodPost, path, token, map[string]string{
		"title": title,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	return uint(body["id"].(float64))
}

// uploadFile submits a multipart file. The filename goes into the
// Content-Disposition header verbatim, path segments included.
func uploadFile(t *testing.T, app *fiber.App, token string, assignmentID uint, filename, content string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/assignments/%d/submit", assignmentID), body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return perform(t, app, req)
}
