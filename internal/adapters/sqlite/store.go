package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
	"github.com/fr0stylo/contentconnector/internal/db"
	"github.com/fr0stylo/contentconnector/internal/db/queries"
)

// Store implements the connector ports over the SQLite database.
type Store struct {
	db storeDatabase
}

// NewStore wraps an open database.
func NewStore(database *db.Database) *Store {
	return &Store{db: database}
}

var (
	_ ports.ContentStore  = (*Store)(nil)
	_ ports.TaxonomyStore = (*Store)(nil)
	_ ports.OptionStore   = (*Store)(nil)
	_ ports.PostReader    = (*Store)(nil)
)

func (s *Store) CreateDraft(ctx context.Context, input ports.DraftInput) (int64, error) {
	post, err := s.db.CreatePost(ctx, queries.CreatePostParams{
		Guid:     input.GUID,
		Title:    input.Title,
		Content:  input.Content,
		Status:   input.Status,
		AuthorID: input.AuthorID,
	})
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	return post.ID, nil
}

func (s *Store) SetPostMeta(ctx context.Context, postID int64, key, value string) error {
	return s.db.UpsertPostMeta(ctx, postID, key, value)
}

// SetPostTags replaces the post's tag links in one transaction, creating
// tag terms that do not exist yet.
func (s *Store) SetPostTags(ctx context.Context, postID int64, tags []ports.TermInput) error {
	return s.db.WithTx(ctx, func(q *queries.Queries) error {
		if err := q.DeletePostTermsByTaxonomy(ctx, queries.DeletePostTermsByTaxonomyParams{
			PostID:   postID,
			Taxonomy: db.TaxonomyTag,
		}); err != nil {
			return fmt.Errorf("clear post tags: %w", err)
		}
		for _, tag := range tags {
			term, err := findOrCreateTerm(ctx, q, db.TaxonomyTag, tag)
			if err != nil {
				return err
			}
			if err := q.AddPostTerm(ctx, queries.AddPostTermParams{PostID: postID, TermID: term.ID}); err != nil {
				return fmt.Errorf("attach tag %q: %w", tag.Slug, err)
			}
		}
		return nil
	})
}

func findOrCreateTerm(ctx context.Context, q *queries.Queries, taxonomy string, input ports.TermInput) (queries.Term, error) {
	term, err := q.GetTermBySlug(ctx, queries.GetTermBySlugParams{Taxonomy: taxonomy, Slug: input.Slug})
	if err == nil {
		return term, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return queries.Term{}, fmt.Errorf("get %s %q: %w", taxonomy, input.Slug, err)
	}
	term, err = q.CreateTerm(ctx, queries.CreateTermParams{Taxonomy: taxonomy, Name: input.Name, Slug: input.Slug})
	if err != nil {
		return queries.Term{}, fmt.Errorf("create %s %q: %w", taxonomy, input.Slug, err)
	}
	return term, nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (ports.Term, error) {
	term, err := s.db.GetTermBySlug(ctx, db.TaxonomyCategory, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Term{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.Term{}, err
	}
	return mapTerm(term), nil
}

// CreateCategory inserts a category. A concurrent insert of the same slug
// resolves to the existing row.
func (s *Store) CreateCategory(ctx context.Context, input ports.TermInput) (ports.Term, error) {
	term, err := s.db.CreateTerm(ctx, db.TaxonomyCategory, input.Name, input.Slug)
	if err == nil {
		return mapTerm(term), nil
	}
	existing, lookupErr := s.db.GetTermBySlug(ctx, db.TaxonomyCategory, input.Slug)
	if lookupErr == nil {
		return mapTerm(existing), nil
	}
	return ports.Term{}, fmt.Errorf("insert category: %w", err)
}

// SetPostCategory makes termID the post's only category.
func (s *Store) SetPostCategory(ctx context.Context, postID, termID int64) error {
	return s.db.WithTx(ctx, func(q *queries.Queries) error {
		if err := q.DeletePostTermsByTaxonomy(ctx, queries.DeletePostTermsByTaxonomyParams{
			PostID:   postID,
			Taxonomy: db.TaxonomyCategory,
		}); err != nil {
			return fmt.Errorf("clear post category: %w", err)
		}
		return q.AddPostTerm(ctx, queries.AddPostTermParams{PostID: postID, TermID: termID})
	})
}

func (s *Store) GetOption(ctx context.Context, name string) (string, bool, error) {
	option, err := s.db.GetOption(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return option.Value, true, nil
}

func (s *Store) SetOption(ctx context.Context, name, value string) error {
	return s.db.UpsertOption(ctx, name, value)
}

func (s *Store) AddOption(ctx context.Context, name, value string) (bool, error) {
	return s.db.InsertOptionIfMissing(ctx, name, value)
}

func (s *Store) GetPost(ctx context.Context, id int64) (ports.PostDetail, error) {
	post, err := s.db.GetPostByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.PostDetail{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.PostDetail{}, err
	}

	detail := ports.PostDetail{
		ID:        post.ID,
		GUID:      post.Guid,
		Title:     post.Title,
		Content:   post.Content,
		Status:    post.Status,
		AuthorID:  post.AuthorID,
		CreatedAt: parseTimestamp(post.CreatedAt),
		UpdatedAt: parseTimestamp(post.UpdatedAt),
		Meta:      map[string]string{},
	}

	if user, err := s.db.GetUserByID(ctx, post.AuthorID); err == nil {
		detail.Author = user.Login
	} else if !errors.Is(err, sql.ErrNoRows) {
		return ports.PostDetail{}, err
	}

	categories, err := s.db.ListPostTerms(ctx, id, db.TaxonomyCategory)
	if err != nil {
		return ports.PostDetail{}, err
	}
	if len(categories) > 0 {
		category := mapTerm(categories[0])
		detail.Category = &category
	}

	tags, err := s.db.ListPostTerms(ctx, id, db.TaxonomyTag)
	if err != nil {
		return ports.PostDetail{}, err
	}
	for _, tag := range tags {
		detail.Tags = append(detail.Tags, mapTerm(tag))
	}

	meta, err := s.db.ListPostMeta(ctx, id)
	if err != nil {
		return ports.PostDetail{}, err
	}
	for _, row := range meta {
		detail.Meta[row.MetaKey] = row.MetaValue
	}
	return detail, nil
}

func (s *Store) CountPosts(ctx context.Context) (int64, error) {
	return s.db.CountPosts(ctx)
}

func (s *Store) ListTerms(ctx context.Context, taxonomy ports.Taxonomy) ([]ports.Term, error) {
	stored := db.TaxonomyCategory
	switch taxonomy {
	case ports.TaxonomyCategory:
	case ports.TaxonomyTag:
		stored = db.TaxonomyTag
	default:
		return nil, fmt.Errorf("unknown taxonomy %q", taxonomy)
	}
	rows, err := s.db.ListTermsByTaxonomy(ctx, stored)
	if err != nil {
		return nil, err
	}
	terms := make([]ports.Term, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, mapTerm(row))
	}
	return terms, nil
}

// AuthorExists reports whether a user row with id exists; posts.author_id
// references it.
func (s *Store) AuthorExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.db.GetUserByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func mapTerm(term queries.Term) ports.Term {
	return ports.Term{ID: term.ID, Taxonomy: term.Taxonomy, Name: term.Name, Slug: term.Slug}
}

func parseTimestamp(value string) time.Time {
	text := strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
