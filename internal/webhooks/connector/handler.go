package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	appservices "github.com/fr0stylo/contentconnector/internal/app/services"
)

const (
	// AuthorizationHeader carries the bearer API key.
	AuthorizationHeader = "Authorization"
	maxPayloadBytes     = 1 << 20
)

// Response messages are part of the public contract.
const (
	messageSuccess       = "Post created successfully."
	messageInactive      = "Plugin is currently inactive."
	messageInvalidAPIKey = "Invalid API key."
	messageInvalidBody   = "Invalid request body."
	messageInsertFailed  = "Failed to insert post."
)

const (
	statusSuccess  = "success"
	statusInactive = "inactive"
	statusError    = "error"
)

// Response is the JSON body of every ingest outcome.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	PostID  int64  `json:"postId,omitempty"`
}

type settingsLoader interface {
	Load(ctx context.Context) (appservices.Config, error)
}

type ingestor interface {
	Ingest(ctx context.Context, req appservices.IngestRequest, cfg appservices.Config) (appservices.IngestResult, error)
}

// Handler accepts content submissions over HTTP.
type Handler struct {
	settings settingsLoader
	ingest   ingestor
	log      *slog.Logger
	metrics  ingestMetrics
}

// NewHandler constructs an ingest handler.
func NewHandler(settings settingsLoader, ingest ingestor, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		settings: settings,
		ingest:   ingest,
		log:      log,
		metrics:  newIngestMetrics(),
	}
}

// Handle decodes one submission, runs it through the ingest pipeline and
// writes the outcome. Unexpected faults are answered with a 500 body.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) (err error) {
	ctx := r.Context()
	h.metrics.recordRequest(ctx)

	defer func() {
		if recovered := recover(); recovered != nil {
			h.log.ErrorContext(ctx, "ingest handler panic", "panic", fmt.Sprint(recovered))
			h.metrics.recordOutcome(ctx, "panic")
			err = writeResponse(w, http.StatusInternalServerError, Response{Status: statusError, Message: messageInsertFailed})
		}
	}()

	req := decodeRequest(r)
	req.AuthorizationHeader = r.Header.Get(AuthorizationHeader)

	cfg, loadErr := h.settings.Load(ctx)
	if loadErr != nil {
		h.log.ErrorContext(ctx, "load connector settings", "error", loadErr)
		h.metrics.recordOutcome(ctx, "settings_error")
		return writeResponse(w, http.StatusInternalServerError, Response{Status: statusError, Message: messageInsertFailed})
	}

	result, ingestErr := h.ingest.Ingest(ctx, req, cfg)
	if ingestErr != nil {
		kind := appservices.ClassifyIngestError(ingestErr)
		h.metrics.recordOutcome(ctx, string(kind))
		status, body := errorResponse(kind)
		if status == http.StatusInternalServerError {
			h.log.ErrorContext(ctx, "ingest failed", "kind", kind, "error", ingestErr)
		}
		return writeResponse(w, status, body)
	}

	for _, failure := range result.Failures {
		h.log.WarnContext(ctx, "ingest annotation failed",
			"post_id", result.PostID,
			"step", failure.Step,
			"error", failure.Err,
		)
		h.metrics.recordAnnotationFailure(ctx, string(failure.Step))
	}
	h.metrics.recordOutcome(ctx, statusSuccess)
	h.log.InfoContext(ctx, "content ingested", "post_id", result.PostID)

	return writeResponse(w, http.StatusOK, Response{
		Status:  statusSuccess,
		Message: messageSuccess,
		PostID:  result.PostID,
	})
}

func errorResponse(kind appservices.IngestErrorKind) (int, Response) {
	switch kind {
	case appservices.IngestErrorInactive:
		return http.StatusForbidden, Response{Status: statusInactive, Message: messageInactive}
	case appservices.IngestErrorInvalidAuth:
		return http.StatusUnauthorized, Response{Status: statusError, Message: messageInvalidAPIKey}
	case appservices.IngestErrorInvalidPayload:
		return http.StatusBadRequest, Response{Status: statusError, Message: messageInvalidBody}
	default:
		return http.StatusInternalServerError, Response{Status: statusError, Message: messageInsertFailed}
	}
}

func writeResponse(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// decodeRequest reads JSON or form bodies. Undecodable bodies yield a
// request flagged MalformedBody so the pipeline can reject it after the
// active and auth gates.
func decodeRequest(r *http.Request) appservices.IngestRequest {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes+1))
	if err != nil || len(body) > maxPayloadBytes {
		return appservices.IngestRequest{MalformedBody: true}
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return appservices.IngestRequest{MalformedBody: true}
		}
		return requestFromForm(values)
	case "multipart/form-data":
		r.Body = io.NopCloser(bytes.NewReader(body))
		if err := r.ParseMultipartForm(maxPayloadBytes); err != nil {
			return appservices.IngestRequest{MalformedBody: true}
		}
		return requestFromForm(url.Values(r.MultipartForm.Value))
	default:
		return requestFromJSON(body)
	}
}

type ingestPayload struct {
	Title       flexString      `json:"title"`
	Description flexString      `json:"description"`
	Tags        json.RawMessage `json:"tags"`
	Category    flexString      `json:"category"`
	MediaURL    flexString      `json:"media_url"`
	APIKey      flexString      `json:"api_key"`
}

func requestFromJSON(body []byte) appservices.IngestRequest {
	if len(bytes.TrimSpace(body)) == 0 {
		return appservices.IngestRequest{}
	}
	var payload ingestPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return appservices.IngestRequest{MalformedBody: true}
	}
	return appservices.IngestRequest{
		Title:       string(payload.Title),
		Description: string(payload.Description),
		Tags:        decodeTags(payload.Tags),
		Category:    string(payload.Category),
		MediaURL:    string(payload.MediaURL),
		BodyAPIKey:  string(payload.APIKey),
	}
}

// decodeTags accepts only a JSON array of strings.
func decodeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}

// requestFromForm maps form fields; tags must be sent as tags[] to form a list.
func requestFromForm(values url.Values) appservices.IngestRequest {
	return appservices.IngestRequest{
		Title:       values.Get("title"),
		Description: values.Get("description"),
		Tags:        values["tags[]"],
		Category:    values.Get("category"),
		MediaURL:    values.Get("media_url"),
		BodyAPIKey:  values.Get("api_key"),
	}
}

// flexString decodes scalars as text and any other JSON value as empty.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*s = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*s = flexString(value)
	case 't', 'f':
		value, err := strconv.ParseBool(string(trimmed))
		if err != nil {
			return err
		}
		*s = flexString(strconv.FormatBool(value))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*s = flexString(trimmed)
	default:
		*s = ""
	}
	return nil
}
