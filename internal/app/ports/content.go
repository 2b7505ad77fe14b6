package ports

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by store lookups that match no row.
var ErrNotFound = errors.New("not found")

// DraftInput is one content record to persist.
type DraftInput struct {
	GUID     string
	Title    string
	Content  string
	Status   string
	AuthorID int64
}

// TermInput names a taxonomy term by display name and normalized slug.
type TermInput struct {
	Name string
	Slug string
}

// Taxonomy selects categories or tags.
type Taxonomy string

const (
	TaxonomyCategory Taxonomy = "category"
	TaxonomyTag      Taxonomy = "tag"
)

// Term is a persisted category or tag.
type Term struct {
	ID       int64
	Taxonomy string
	Name     string
	Slug     string
}

// PostDetail is a content record read back with its annotations.
type PostDetail struct {
	ID        int64
	GUID      string
	Title     string
	Content   string
	Status    string
	Author    string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Category  *Term
	Tags      []Term
	Meta      map[string]string
}

// ContentStore persists content records and their metadata.
type ContentStore interface {
	CreateDraft(ctx context.Context, input DraftInput) (int64, error)
	SetPostMeta(ctx context.Context, postID int64, key, value string) error
}

// TaxonomyStore resolves and attaches categories and tags.
type TaxonomyStore interface {
	// SetPostTags replaces the record's tags, creating missing terms.
	SetPostTags(ctx context.Context, postID int64, tags []TermInput) error
	GetCategoryBySlug(ctx context.Context, slug string) (Term, error)
	CreateCategory(ctx context.Context, input TermInput) (Term, error)
	// SetPostCategory makes termID the record's only category.
	SetPostCategory(ctx context.Context, postID, termID int64) error
}

// PostReader loads content records and taxonomy listings for administrators.
type PostReader interface {
	GetPost(ctx context.Context, id int64) (PostDetail, error)
	CountPosts(ctx context.Context) (int64, error)
	// ListTerms returns every term of a taxonomy ordered by slug.
	ListTerms(ctx context.Context, taxonomy Taxonomy) ([]Term, error)
	// AuthorExists reports whether records can be owned by id.
	AuthorExists(ctx context.Context, id int64) (bool, error)
}
