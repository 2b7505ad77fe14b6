package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/contentconnector/internal/adapters/sqlite"
	appservices "github.com/fr0stylo/contentconnector/internal/app/services"
	"github.com/fr0stylo/contentconnector/internal/db"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	root := NewRootCmd(OpenDatabase, dbPath)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSettingsCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli-test")

	out, err := run(t, dbPath, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version: 2")
	assert.Contains(t, out, "Default settings seeded.")

	out, err = run(t, dbPath, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Active: yes")
	assert.Contains(t, out, "API Key: (not set)")

	_, err = run(t, dbPath, "settings", "set-key", "abcdefghijkl")
	require.NoError(t, err)

	out, err = run(t, dbPath, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "API Key: abcd...ijkl")

	out, err = run(t, dbPath, "settings", "show", "--reveal")
	require.NoError(t, err)
	assert.Contains(t, out, "API Key: abcdefghijkl")

	out, err = run(t, dbPath, "settings", "deactivate")
	require.NoError(t, err)
	assert.Contains(t, out, "Connector deactivated.")

	out, err = run(t, dbPath, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Active: no")
}

func TestRotateKeyPrintsNewKey(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli-rotate")

	out, err := run(t, dbPath, "settings", "rotate-key")
	require.NoError(t, err)
	key := strings.TrimSpace(out)
	assert.Len(t, key, 64)

	out, err = run(t, dbPath, "settings", "show", "--reveal")
	require.NoError(t, err)
	assert.Contains(t, out, key)
}

func TestPostShow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli-post")

	database, err := db.New(dbPath)
	require.NoError(t, err)
	store := sqlite.NewStore(database)
	result, err := appservices.NewIngestService(store, store).Ingest(context.Background(), appservices.IngestRequest{
		Title:      "Drafted",
		Tags:       []string{"go"},
		Category:   "News",
		MediaURL:   "https://example.com/x.png",
		BodyAPIKey: "k",
	}, appservices.Config{Active: true, APIKey: "k"})
	require.NoError(t, err)
	require.NoError(t, database.Close())

	out, err := run(t, dbPath, "post", "show", strconv.FormatInt(result.PostID, 10))
	require.NoError(t, err)
	assert.Contains(t, out, "Title:    Drafted")
	assert.Contains(t, out, "Status:   draft")
	assert.Contains(t, out, "Category: News")
	assert.Contains(t, out, "Tags:     go")
	assert.Contains(t, out, "_connector_media_url = https://example.com/x.png")

	_, err = run(t, dbPath, "post", "show", "999")
	assert.ErrorContains(t, err, "not found")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "sk-1...cdef", maskAPIKey("sk-1234567890abcdef"))
}

func TestTermsListAndPostCount(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli-terms")

	out, err := run(t, dbPath, "terms", "list", "tag")
	require.NoError(t, err)
	assert.Contains(t, out, "No tag terms.")

	database, err := db.New(dbPath)
	require.NoError(t, err)
	store := sqlite.NewStore(database)
	_, err = appservices.NewIngestService(store, store).Ingest(context.Background(), appservices.IngestRequest{
		Title:      "Tagged",
		Tags:       []string{"Go", "SQLite"},
		Category:   "Release Notes",
		BodyAPIKey: "k",
	}, appservices.Config{Active: true, APIKey: "k"})
	require.NoError(t, err)
	require.NoError(t, database.Close())

	out, err = run(t, dbPath, "terms", "list", "tag")
	require.NoError(t, err)
	assert.Contains(t, out, "\tgo\tGo")
	assert.Contains(t, out, "\tsqlite\tSQLite")

	out, err = run(t, dbPath, "terms", "list", "category")
	require.NoError(t, err)
	assert.Contains(t, out, "\trelease-notes\tRelease Notes")

	_, err = run(t, dbPath, "terms", "list", "genre")
	assert.ErrorContains(t, err, "unknown taxonomy")

	out, err = run(t, dbPath, "post", "count")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}
