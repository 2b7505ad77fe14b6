package routes

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
	appservices "github.com/fr0stylo/contentconnector/internal/app/services"
)

type settingsManager interface {
	Load(ctx context.Context) (appservices.Config, error)
	SetActive(ctx context.Context, active bool) error
	SetAPIKey(ctx context.Context, key string) error
	RotateAPIKey(ctx context.Context) (string, error)
}

type postQuery interface {
	GetPost(ctx context.Context, id int64) (ports.PostDetail, error)
}

// AdminRoutes registers the token-protected administration API.
type AdminRoutes struct {
	token    string
	settings settingsManager
	posts    postQuery
}

// NewAdminRoutes constructs admin routes guarded by token.
func NewAdminRoutes(token string, settings settingsManager, posts postQuery) *AdminRoutes {
	return &AdminRoutes{token: token, settings: settings, posts: posts}
}

type settingsView struct {
	Active    bool   `json:"active"`
	APIKeySet bool   `json:"apiKeySet"`
	APIKey    string `json:"apiKey"`
}

type settingsUpdate struct {
	Active *bool   `json:"active"`
	APIKey *string `json:"apiKey"`
}

type termView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type postView struct {
	ID        int64             `json:"id"`
	GUID      string            `json:"guid"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Status    string            `json:"status"`
	Author    string            `json:"author"`
	AuthorID  int64             `json:"authorId"`
	CreatedAt string            `json:"createdAt,omitempty"`
	UpdatedAt string            `json:"updatedAt,omitempty"`
	Category  *termView         `json:"category"`
	Tags      []termView        `json:"tags"`
	MediaURL  string            `json:"mediaUrl,omitempty"`
	Meta      map[string]string `json:"meta"`
}

// RegisterRoutes registers admin endpoints. Nothing is mounted without a token.
func (a *AdminRoutes) RegisterRoutes(s *echo.Echo) {
	if strings.TrimSpace(a.token) == "" {
		return
	}
	group := s.Group("/admin", a.requireAdminToken)
	group.GET("/settings", a.handleGetSettings)
	group.PUT("/settings", a.handleUpdateSettings)
	group.POST("/settings/rotate-key", a.handleRotateKey)
	group.GET("/posts/:id", a.handleGetPost)
}

func (a *AdminRoutes) requireAdminToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing admin token")
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(a.token)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin token")
		}
		return next(c)
	}
}

func (a *AdminRoutes) handleGetSettings(c echo.Context) error {
	cfg, err := a.settings.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsView(cfg))
}

func (a *AdminRoutes) handleUpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()
	payload := settingsUpdate{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid settings payload")
	}

	if payload.Active != nil {
		if err := a.settings.SetActive(ctx, *payload.Active); err != nil {
			return err
		}
	}
	if payload.APIKey != nil {
		if err := a.settings.SetAPIKey(ctx, *payload.APIKey); err != nil {
			return err
		}
	}

	cfg, err := a.settings.Load(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsView(cfg))
}

func (a *AdminRoutes) handleRotateKey(c echo.Context) error {
	key, err := a.settings.RotateAPIKey(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"apiKey": key})
}

func (a *AdminRoutes) handleGetPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	post, err := a.posts.GetPost(c.Request().Context(), id)
	if errors.Is(err, appservices.ErrPostNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostView(post))
}

func toSettingsView(cfg appservices.Config) settingsView {
	return settingsView{
		Active:    cfg.Active,
		APIKeySet: cfg.APIKey != "",
		APIKey:    cfg.APIKey,
	}
}

func toPostView(post ports.PostDetail) postView {
	view := postView{
		ID:        post.ID,
		GUID:      post.GUID,
		Title:     post.Title,
		Content:   post.Content,
		Status:    post.Status,
		Author:    post.Author,
		AuthorID:  post.AuthorID,
		CreatedAt: formatTime(post.CreatedAt),
		UpdatedAt: formatTime(post.UpdatedAt),
		Tags:      make([]termView, 0, len(post.Tags)),
		MediaURL:  appservices.MediaURL(post),
		Meta:      post.Meta,
	}
	if post.Category != nil {
		view.Category = &termView{ID: post.Category.ID, Name: post.Category.Name, Slug: post.Category.Slug}
	}
	for _, tag := range post.Tags {
		view.Tags = append(view.Tags, termView{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	return view
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
