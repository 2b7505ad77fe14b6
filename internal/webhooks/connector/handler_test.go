package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fr0stylo/contentconnector/internal/adapters/sqlite"
	appservices "github.com/fr0stylo/contentconnector/internal/app/services"
	"github.com/fr0stylo/contentconnector/internal/db"
)

const testKey = "test-key"

type testEnv struct {
	handler  *Handler
	store    *sqlite.Store
	settings *appservices.SettingsService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "handler-test"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	store := sqlite.NewStore(database)
	settings := appservices.NewSettingsService(store)
	if err := settings.SetAPIKey(context.Background(), testKey); err != nil {
		t.Fatalf("set api key: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return testEnv{
		handler:  NewHandler(settings, appservices.NewIngestService(store, store), log),
		store:    store,
		settings: settings,
	}
}

func serve(t *testing.T, h *Handler, req *http.Request) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("handle request: %v", err)
	}
	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func jsonRequest(body, auth string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/connector/v1/ingest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set(AuthorizationHeader, auth)
	}
	return req
}

func TestHandleCreatesDraft(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, body := serve(t, env.handler, jsonRequest(`{
		"title": "<b>Hello</b> world",
		"description": "line one\nline two",
		"tags": ["go", "sqlite"],
		"category": "Release Notes",
		"media_url": "https://example.com/x.png"
	}`, "Bearer "+testKey))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body.Status != "success" || body.Message != "Post created successfully." || body.PostID == 0 {
		t.Fatalf("unexpected body %+v", body)
	}

	post, err := env.store.GetPost(context.Background(), body.PostID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post.Title != "Hello world" || post.Content != "line one\nline two" || post.Status != "draft" {
		t.Fatalf("unexpected post %+v", post)
	}
	if len(post.Tags) != 2 || post.Category == nil || post.Category.Name != "Release Notes" {
		t.Fatalf("unexpected taxonomy tags=%+v category=%+v", post.Tags, post.Category)
	}
	if post.Meta[appservices.MediaURLMetaKey] != "https://example.com/x.png" {
		t.Fatalf("unexpected meta %+v", post.Meta)
	}
}

func TestHandleInactiveRejectsValidKey(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if err := env.settings.SetActive(context.Background(), false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	rec, body := serve(t, env.handler, jsonRequest(`{"title":"x"}`, "Bearer "+testKey))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body.Status != "inactive" || body.Message != "Plugin is currently inactive." {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestHandleInvalidKey(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, body := serve(t, env.handler, jsonRequest(`{"title":"x","api_key":"wrong"}`, ""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body.Status != "error" || body.Message != "Invalid API key." {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestHandleHeaderBeatsBodyKey(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, body := serve(t, env.handler, jsonRequest(`{"title":"x","api_key":"wrong"}`, "bearer "+testKey))
	if rec.Code != http.StatusOK || body.PostID == 0 {
		t.Fatalf("expected success, got %d %+v", rec.Code, body)
	}
}

func TestHandleMalformedJSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, body := serve(t, env.handler, jsonRequest(`{"title":`, "Bearer "+testKey))
	if rec.Code != http.StatusBadRequest || body.Message != "Invalid request body." {
		t.Fatalf("expected 400, got %d %+v", rec.Code, body)
	}
}

func TestHandleMalformedJSONStillRequiresAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, _ := serve(t, env.handler, jsonRequest(`[1,2]`, ""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before payload errors, got %d", rec.Code)
	}
}

func TestHandleNonArrayTagsIgnored(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, body := serve(t, env.handler, jsonRequest(`{"title":"x","tags":"go,sqlite","category":42}`, "Bearer "+testKey))

	post, err := env.store.GetPost(context.Background(), body.PostID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if len(post.Tags) != 0 {
		t.Fatalf("expected no tags, got %+v", post.Tags)
	}
	if post.Category == nil || post.Category.Slug != "42" {
		t.Fatalf("expected numeric category to be coerced, got %+v", post.Category)
	}
}

func TestHandleFormBody(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	form := url.Values{
		"title":     {"From form"},
		"tags[]":    {"alpha", "beta"},
		"api_key":   {testKey},
		"media_url": {"example.com/pic.jpg"},
	}
	req := httptest.NewRequest(http.MethodPost, "/connector/v1/ingest", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, body := serve(t, env.handler, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", rec.Code, body)
	}
	post, err := env.store.GetPost(context.Background(), body.PostID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if len(post.Tags) != 2 {
		t.Fatalf("expected two tags, got %+v", post.Tags)
	}
	if post.Meta[appservices.MediaURLMetaKey] != "http://example.com/pic.jpg" {
		t.Fatalf("unexpected media url %+v", post.Meta)
	}
}

func TestHandleOversizedBody(t *testing.T) {
	t.Parallel()

	oversized := `{"title":"` + strings.Repeat("a", maxPayloadBytes) + `"}`

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec, body := serve(t, env.handler, jsonRequest(oversized, "Bearer "+testKey))
		if rec.Code != http.StatusBadRequest || body.Message != "Invalid request body." {
			t.Fatalf("expected 400, got %d %+v", rec.Code, body)
		}
		count, err := env.store.CountPosts(context.Background())
		if err != nil || count != 0 {
			t.Fatalf("expected no posts, got %d err=%v", count, err)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec, body := serve(t, env.handler, jsonRequest(oversized, ""))
		if rec.Code != http.StatusUnauthorized || body.Message != "Invalid API key." {
			t.Fatalf("expected 401 before the size check, got %d %+v", rec.Code, body)
		}
	})
}

func TestHandleMultipartBody(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"title", "From multipart"},
		{"description", "body text"},
		{"tags[]", "a"},
		{"tags[]", "b"},
		{"tags", "ignored"},
		{"category", "Uploads"},
		{"api_key", testKey},
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			t.Fatalf("write field %s: %v", field[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/connector/v1/ingest", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec, body := serve(t, env.handler, req)
	if rec.Code != http.StatusOK || body.Status != "success" {
		t.Fatalf("expected 200, got %d %+v", rec.Code, body)
	}
	post, err := env.store.GetPost(context.Background(), body.PostID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post.Title != "From multipart" || post.Content != "body text" {
		t.Fatalf("unexpected post %+v", post)
	}
	if len(post.Tags) != 2 || post.Tags[0].Slug != "a" || post.Tags[1].Slug != "b" {
		t.Fatalf("expected tags a and b, got %+v", post.Tags)
	}
	if post.Category == nil || post.Category.Name != "Uploads" {
		t.Fatalf("unexpected category %+v", post.Category)
	}
}

type stubSettings struct {
	cfg appservices.Config
	err error
}

func (s stubSettings) Load(context.Context) (appservices.Config, error) {
	return s.cfg, s.err
}

type panickingIngestor struct{}

func (panickingIngestor) Ingest(context.Context, appservices.IngestRequest, appservices.Config) (appservices.IngestResult, error) {
	panic("store exploded")
}

type failingIngestor struct{ err error }

func (f failingIngestor) Ingest(context.Context, appservices.IngestRequest, appservices.Config) (appservices.IngestResult, error) {
	return appservices.IngestResult{}, f.err
}

func TestHandleRecoversPanic(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(stubSettings{cfg: appservices.Config{Active: true, APIKey: testKey}}, panickingIngestor{}, log)

	rec, body := serve(t, h, jsonRequest(`{}`, "Bearer "+testKey))
	if rec.Code != http.StatusInternalServerError || body.Message != "Failed to insert post." {
		t.Fatalf("expected 500 persistence body, got %d %+v", rec.Code, body)
	}
}

func TestHandlePersistenceFailure(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(stubSettings{cfg: appservices.Config{Active: true, APIKey: testKey}},
		failingIngestor{err: errors.Join(appservices.ErrPersistence, errors.New("disk full"))}, log)

	rec, body := serve(t, h, jsonRequest(`{}`, "Bearer "+testKey))
	if rec.Code != http.StatusInternalServerError || body.Status != "error" {
		t.Fatalf("expected 500, got %d %+v", rec.Code, body)
	}
}

func TestHandleSettingsFailure(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(stubSettings{err: errors.New("db locked")}, failingIngestor{}, log)

	rec, _ := serve(t, h, jsonRequest(`{}`, "Bearer "+testKey))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestFlexStringCoercion(t *testing.T) {
	var payload ingestPayload
	if err := json.Unmarshal([]byte(`{"title":12.5,"description":true,"category":{"a":1},"media_url":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Title != "12.5" || payload.Description != "true" || payload.Category != "" || payload.MediaURL != "" {
		t.Fatalf("unexpected coercion %+v", payload)
	}
}
