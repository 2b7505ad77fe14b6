package connectorclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmitSendsBearerJSON(t *testing.T) {
	var gotAuth string
	var gotContentType string
	var gotPath string
	var got Submission

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"Post created successfully.","postId":42}`))
	}))
	defer server.Close()

	client := Client{Endpoint: server.URL + "/", APIKey: " key-123 "}
	result, err := client.Submit(context.Background(), Submission{
		Title:    "Hello",
		Tags:     []string{"go", "news"},
		Category: "Updates",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.PostID != 42 || result.Status != "success" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if gotPath != "/connector/v1/ingest" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer key-123" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %s", gotContentType)
	}
	if got.Title != "Hello" || len(got.Tags) != 2 || got.Category != "Updates" {
		t.Fatalf("unexpected submission: %+v", got)
	}
}

func TestSubmitUsesCustomRoutePrefix(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"success","postId":1}`))
	}))
	defer server.Close()

	client := Client{Endpoint: server.URL, APIKey: "k", RoutePrefix: "/hooks/"}
	if _, err := client.Submit(context.Background(), Submission{Title: "x"}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if gotPath != "/hooks/ingest" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}

func TestSubmitReturnsRejectedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"Invalid API key."}`))
	}))
	defer server.Close()

	client := Client{Endpoint: server.URL, APIKey: "wrong"}
	result, err := client.Submit(context.Background(), Submission{Title: "x"})

	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if rejected.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rejected.StatusCode)
	}
	if result.Message != "Invalid API key." {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestSubmitRequiresEndpointAndKey(t *testing.T) {
	if _, err := (Client{APIKey: "k"}).Submit(context.Background(), Submission{}); err == nil {
		t.Fatalf("expected error without endpoint")
	}
	if _, err := (Client{Endpoint: "http://localhost"}).Submit(context.Background(), Submission{}); err == nil {
		t.Fatalf("expected error without api key")
	}
}
