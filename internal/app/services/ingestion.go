package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
	"github.com/fr0stylo/contentconnector/internal/observability"
)

var (
	// ErrInactive indicates the connector is switched off.
	ErrInactive = errors.New("connector inactive")
	// ErrInvalidAPIKey indicates a missing or mismatched API key.
	ErrInvalidAPIKey = errors.New("invalid api key")
	// ErrInvalidPayload indicates an undecodable request body.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrPersistence indicates the content store rejected the record.
	ErrPersistence = errors.New("persistence failure")

	errEmptyCategorySlug = errors.New("category name has no usable slug")
)

const (
	// PostStatusDraft is the status of every ingested record.
	PostStatusDraft = "draft"
	// MediaURLMetaKey is the post metadata key holding the media URL.
	MediaURLMetaKey = "_connector_media_url"
	// DefaultAuthorID is the account owning ingested records.
	DefaultAuthorID int64 = 1
)

var bearerPattern = regexp.MustCompile(`(?i)^\s*Bearer\s+(.*)$`)

// IngestErrorKind classifies ingestion failures for transport-specific mapping.
type IngestErrorKind string

const (
	// IngestErrorUnknown is used when error is nil or not classified.
	IngestErrorUnknown IngestErrorKind = "unknown"
	// IngestErrorInactive indicates the connector is switched off.
	IngestErrorInactive IngestErrorKind = "inactive"
	// IngestErrorInvalidAuth indicates a missing or mismatched API key.
	IngestErrorInvalidAuth IngestErrorKind = "invalid_auth"
	// IngestErrorInvalidPayload indicates an undecodable body.
	IngestErrorInvalidPayload IngestErrorKind = "invalid_payload"
	// IngestErrorPersistence indicates the record could not be stored.
	IngestErrorPersistence IngestErrorKind = "persistence"
)

// AnnotationStep names a best-effort step run after the record exists.
type AnnotationStep string

const (
	AnnotationTags     AnnotationStep = "tags"
	AnnotationCategory AnnotationStep = "category"
	AnnotationMedia    AnnotationStep = "media"
)

// IngestRequest is transport-agnostic ingestion input.
type IngestRequest struct {
	Title       string
	Description string
	Tags        []string
	Category    string
	MediaURL    string

	AuthorizationHeader string
	BodyAPIKey          string

	// MalformedBody is set when the transport could not decode the body.
	// It is reported only after the active and auth gates pass.
	MalformedBody bool
}

// AnnotationFailure records a best-effort step that did not complete.
type AnnotationFailure struct {
	Step AnnotationStep
	Err  error
}

func (f AnnotationFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Step, f.Err)
}

// IngestResult is the outcome of a successful ingestion. Failures lists
// annotation steps that did not complete; they never fail the request.
type IngestResult struct {
	PostID   int64
	Failures []AnnotationFailure
}

// IngestService turns authenticated requests into draft records.
type IngestService struct {
	content  ports.ContentStore
	taxonomy ports.TaxonomyStore
	authorID int64
	newGUID  func() string
}

// IngestOption customizes IngestService.
type IngestOption func(*IngestService)

// WithAuthorID sets the owner of ingested records.
func WithAuthorID(id int64) IngestOption {
	return func(s *IngestService) {
		if id > 0 {
			s.authorID = id
		}
	}
}

// WithGUIDGenerator replaces the record GUID source.
func WithGUIDGenerator(fn func() string) IngestOption {
	return func(s *IngestService) {
		if fn != nil {
			s.newGUID = fn
		}
	}
}

// NewIngestService constructs an ingestion service.
func NewIngestService(content ports.ContentStore, taxonomy ports.TaxonomyStore, opts ...IngestOption) *IngestService {
	s := &IngestService{
		content:  content,
		taxonomy: taxonomy,
		authorID: DefaultAuthorID,
		newGUID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClassifyIngestError classifies a returned ingestion error.
func ClassifyIngestError(err error) IngestErrorKind {
	switch {
	case err == nil:
		return IngestErrorUnknown
	case errors.Is(err, ErrInactive):
		return IngestErrorInactive
	case errors.Is(err, ErrInvalidAPIKey):
		return IngestErrorInvalidAuth
	case errors.Is(err, ErrInvalidPayload):
		return IngestErrorInvalidPayload
	case errors.Is(err, ErrPersistence):
		return IngestErrorPersistence
	default:
		return IngestErrorUnknown
	}
}

// ResolveToken picks the caller's API key: a non-empty bearer token from
// the Authorization header wins, otherwise the body api_key field is used.
func ResolveToken(authorizationHeader, bodyAPIKey string) string {
	if match := bearerPattern.FindStringSubmatch(authorizationHeader); match != nil {
		if token := strings.TrimSpace(match[1]); token != "" {
			return token
		}
	}
	return bodyAPIKey
}

// Authenticate reports whether token matches the stored key. An empty
// stored key never matches.
func Authenticate(token, storedKey string) bool {
	if storedKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(storedKey)) == 1
}

// Ingest runs the pipeline: active check, authentication, sanitization,
// persistence and best-effort annotation.
func (s *IngestService) Ingest(ctx context.Context, req IngestRequest, cfg Config) (IngestResult, error) {
	if !cfg.Active {
		return IngestResult{}, ErrInactive
	}
	if !Authenticate(ResolveToken(req.AuthorizationHeader, req.BodyAPIKey), cfg.APIKey) {
		return IngestResult{}, ErrInvalidAPIKey
	}
	if req.MalformedBody {
		return IngestResult{}, ErrInvalidPayload
	}

	title := SanitizeText(req.Title)
	body := SanitizeTextarea(req.Description)
	tags := NormalizeTags(req.Tags)
	category := SanitizeText(req.Category)
	mediaURL := SanitizeURL(req.MediaURL)

	postID, err := s.persist(ctx, title, body)
	if err != nil {
		return IngestResult{}, err
	}

	result := IngestResult{PostID: postID}
	if len(tags) > 0 {
		result.record(AnnotationTags, s.attachTags(ctx, postID, tags))
	}
	if category != "" {
		result.record(AnnotationCategory, s.attachCategory(ctx, postID, category))
	}
	if mediaURL != "" {
		result.record(AnnotationMedia, s.annotateMedia(ctx, postID, mediaURL))
	}
	return result, nil
}

func (r *IngestResult) record(step AnnotationStep, err error) {
	if err != nil {
		r.Failures = append(r.Failures, AnnotationFailure{Step: step, Err: err})
	}
}

func (s *IngestService) persist(ctx context.Context, title, body string) (int64, error) {
	ctx, span := observability.StartIngestSpan(ctx, "persist")
	defer span.End()

	postID, err := s.content.CreateDraft(ctx, ports.DraftInput{
		GUID:     s.newGUID(),
		Title:    title,
		Content:  body,
		Status:   PostStatusDraft,
		AuthorID: s.authorID,
	})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	span.SetAttributes(observability.PostIDAttribute(postID))
	return postID, nil
}

func (s *IngestService) attachTags(ctx context.Context, postID int64, tags []ports.TermInput) error {
	ctx, span := observability.StartIngestSpan(ctx, string(AnnotationTags))
	defer span.End()

	if err := s.taxonomy.SetPostTags(ctx, postID, tags); err != nil {
		span.RecordError(err)
		return fmt.Errorf("set post tags: %w", err)
	}
	return nil
}

func (s *IngestService) attachCategory(ctx context.Context, postID int64, name string) error {
	ctx, span := observability.StartIngestSpan(ctx, string(AnnotationCategory))
	defer span.End()

	termID, err := s.resolveCategory(ctx, name)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.taxonomy.SetPostCategory(ctx, postID, termID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("set post category: %w", err)
	}
	return nil
}

func (s *IngestService) resolveCategory(ctx context.Context, name string) (int64, error) {
	categorySlug := Slugify(name)
	if categorySlug == "" {
		return 0, errEmptyCategorySlug
	}

	term, err := s.taxonomy.GetCategoryBySlug(ctx, categorySlug)
	if err == nil {
		return term.ID, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return 0, fmt.Errorf("get category by slug: %w", err)
	}

	term, err = s.taxonomy.CreateCategory(ctx, ports.TermInput{Name: name, Slug: categorySlug})
	if err != nil {
		return 0, fmt.Errorf("create category: %w", err)
	}
	return term.ID, nil
}

func (s *IngestService) annotateMedia(ctx context.Context, postID int64, mediaURL string) error {
	ctx, span := observability.StartIngestSpan(ctx, string(AnnotationMedia))
	defer span.End()

	if err := s.content.SetPostMeta(ctx, postID, MediaURLMetaKey, mediaURL); err != nil {
		span.RecordError(err)
		return fmt.Errorf("set media url meta: %w", err)
	}
	return nil
}
