package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
)

var (
	// ErrPostNotFound indicates no record exists with the requested id.
	ErrPostNotFound = errors.New("post not found")
	// ErrUnknownAuthor indicates the configured owner of ingested records
	// has no user row, so every insert would fail.
	ErrUnknownAuthor = errors.New("unknown author")
)

// PostQueryService reads ingested records back for administrators.
type PostQueryService struct {
	reader ports.PostReader
}

func NewPostQueryService(reader ports.PostReader) *PostQueryService {
	return &PostQueryService{reader: reader}
}

func (s *PostQueryService) GetPost(ctx context.Context, id int64) (ports.PostDetail, error) {
	if id <= 0 {
		return ports.PostDetail{}, ErrPostNotFound
	}
	post, err := s.reader.GetPost(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return ports.PostDetail{}, ErrPostNotFound
	}
	if err != nil {
		return ports.PostDetail{}, fmt.Errorf("get post %d: %w", id, err)
	}
	return post, nil
}

func (s *PostQueryService) CountPosts(ctx context.Context) (int64, error) {
	count, err := s.reader.CountPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// ListTerms lists the categories or tags known to the store.
func (s *PostQueryService) ListTerms(ctx context.Context, taxonomy ports.Taxonomy) ([]ports.Term, error) {
	terms, err := s.reader.ListTerms(ctx, taxonomy)
	if err != nil {
		return nil, fmt.Errorf("list %s terms: %w", taxonomy, err)
	}
	return terms, nil
}

// VerifyAuthor fails with ErrUnknownAuthor when id cannot own records.
func (s *PostQueryService) VerifyAuthor(ctx context.Context, id int64) error {
	exists, err := s.reader.AuthorExists(ctx, id)
	if err != nil {
		return fmt.Errorf("look up author %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("%w: %d", ErrUnknownAuthor, id)
	}
	return nil
}

// MediaURL returns the media URL annotation of a record, if any.
func MediaURL(post ports.PostDetail) string {
	return post.Meta[MediaURLMetaKey]
}
