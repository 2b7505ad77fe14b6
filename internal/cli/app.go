package cli

import (
	"context"

	"github.com/fr0stylo/contentconnector/internal/adapters/sqlite"
	"github.com/fr0stylo/contentconnector/internal/app/ports"
	appservices "github.com/fr0stylo/contentconnector/internal/app/services"
	"github.com/fr0stylo/contentconnector/internal/db"
)

type settingsManager interface {
	Load(ctx context.Context) (appservices.Config, error)
	SetActive(ctx context.Context, active bool) error
	SetAPIKey(ctx context.Context, key string) error
	RotateAPIKey(ctx context.Context) (string, error)
	EnsureDefaults(ctx context.Context) (bool, error)
}

type postQuery interface {
	GetPost(ctx context.Context, id int64) (ports.PostDetail, error)
	CountPosts(ctx context.Context) (int64, error)
	ListTerms(ctx context.Context, taxonomy ports.Taxonomy) ([]ports.Term, error)
}

// App bundles what the commands operate on.
type App struct {
	Settings         settingsManager
	Posts            postQuery
	MigrationVersion func() (int64, error)
	Close            func() error
}

// Opener builds an App for a database path.
type Opener func(dbPath string) (*App, error)

// OpenDatabase opens (and migrates) the SQLite database at dbPath.
func OpenDatabase(dbPath string) (*App, error) {
	database, err := db.New(dbPath)
	if err != nil {
		return nil, err
	}
	store := sqlite.NewStore(database)
	return &App{
		Settings:         appservices.NewSettingsService(store),
		Posts:            appservices.NewPostQueryService(store),
		MigrationVersion: database.MigrationVersion,
		Close:            database.Close,
	}, nil
}
