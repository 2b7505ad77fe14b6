package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fr0stylo/contentconnector/internal/db/queries"
)

func TestNewMigratesAndSeedsDefaultAuthor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := New(filepath.Join(t.TempDir(), "migrate-test"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer database.Close()

	version, err := database.MigrationVersion()
	if err != nil {
		t.Fatalf("migration version: %v", err)
	}
	if version < 2 {
		t.Fatalf("expected all migrations applied, got version %d", version)
	}

	user, err := database.GetUserByID(ctx, 1)
	if err != nil {
		t.Fatalf("get default user: %v", err)
	}
	if user.Login != "admin" {
		t.Fatalf("unexpected default user %+v", user)
	}
}

func TestQueryStatsTracksNamedQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := New(filepath.Join(t.TempDir(), "stats-test"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer database.Close()

	if _, err := database.CreatePost(ctx, queries.CreatePostParams{
		Guid: "g-1", Title: "t", Status: "draft", AuthorID: 1,
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := database.CountPosts(ctx); err != nil {
		t.Fatalf("count posts: %v", err)
	}

	names := map[string]QueryStats{}
	for _, stat := range database.QueryStats() {
		names[stat.Name] = stat
	}
	if names["CreatePost"].Count != 1 {
		t.Fatalf("expected one CreatePost sample, got %+v", names["CreatePost"])
	}
	if names["CountPosts"].Count != 1 {
		t.Fatalf("expected one CountPosts sample, got %+v", names["CountPosts"])
	}
}

func TestQueryNameParsesHeader(t *testing.T) {
	if got := queryName("-- name: GetOption :one\nSELECT 1"); got != "GetOption" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := queryName("SELECT 1"); got != "unknown" {
		t.Fatalf("unexpected name %q", got)
	}
}
