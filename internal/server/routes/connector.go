package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ingestHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// ConnectorRoutes registers the public connector endpoints.
type ConnectorRoutes struct {
	prefix string
	ingest ingestHandler
}

// NewConnectorRoutes constructs connector routes under prefix.
func NewConnectorRoutes(prefix string, ingest ingestHandler) *ConnectorRoutes {
	return &ConnectorRoutes{prefix: prefix, ingest: ingest}
}

// RegisterRoutes registers connector endpoints.
func (r *ConnectorRoutes) RegisterRoutes(s *echo.Echo) {
	group := s.Group(r.prefix)
	group.GET("/ping", handlePing)
	group.POST("/ingest", r.handleIngest)
}

func handlePing(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Ping successful!",
	})
}

func (r *ConnectorRoutes) handleIngest(c echo.Context) error {
	return r.ingest.Handle(c.Response(), c.Request())
}
