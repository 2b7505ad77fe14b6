package db

import (
	"context"
	"database/sql"

	"github.com/fr0stylo/contentconnector/internal/db/queries"
)

// Taxonomy names stored in terms.taxonomy.
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// CreatePost inserts a post row.
func (c *Database) CreatePost(ctx context.Context, params queries.CreatePostParams) (queries.Post, error) {
	return c.Queries.CreatePost(ctx, params)
}

// GetPostByID fetches a post by id.
func (c *Database) GetPostByID(ctx context.Context, id int64) (queries.Post, error) {
	return c.Queries.GetPostByID(ctx, id)
}

// UpsertPostMeta sets one metadata value on a post, replacing any previous value.
func (c *Database) UpsertPostMeta(ctx context.Context, postID int64, key, value string) error {
	return c.Queries.UpsertPostMeta(ctx, queries.UpsertPostMetaParams{PostID: postID, MetaKey: key, MetaValue: value})
}

// ListPostMeta returns all metadata rows of a post.
func (c *Database) ListPostMeta(ctx context.Context, postID int64) ([]queries.ListPostMetaRow, error) {
	return c.Queries.ListPostMeta(ctx, postID)
}

// GetTermBySlug fetches a term of one taxonomy by slug.
func (c *Database) GetTermBySlug(ctx context.Context, taxonomy, slug string) (queries.Term, error) {
	return c.Queries.GetTermBySlug(ctx, queries.GetTermBySlugParams{Taxonomy: taxonomy, Slug: slug})
}

// CreateTerm inserts a term.
func (c *Database) CreateTerm(ctx context.Context, taxonomy, name, slug string) (queries.Term, error) {
	return c.Queries.CreateTerm(ctx, queries.CreateTermParams{Taxonomy: taxonomy, Name: name, Slug: slug})
}

// ListPostTerms lists the terms of one taxonomy attached to a post.
func (c *Database) ListPostTerms(ctx context.Context, postID int64, taxonomy string) ([]queries.Term, error) {
	return c.Queries.ListPostTerms(ctx, queries.ListPostTermsParams{PostID: postID, Taxonomy: taxonomy})
}

// GetOption fetches one option row.
func (c *Database) GetOption(ctx context.Context, name string) (queries.Option, error) {
	return c.Queries.GetOption(ctx, name)
}

// UpsertOption writes one option value.
func (c *Database) UpsertOption(ctx context.Context, name, value string) error {
	return c.Queries.UpsertOption(ctx, queries.UpsertOptionParams{Name: name, Value: value})
}

// InsertOptionIfMissing writes an option only when it does not exist yet.
func (c *Database) InsertOptionIfMissing(ctx context.Context, name, value string) (bool, error) {
	affected, err := c.Queries.InsertOptionIfMissing(ctx, queries.InsertOptionIfMissingParams{Name: name, Value: value})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// WithTx runs a function within a transaction.
func (c *Database) WithTx(ctx context.Context, fn func(*queries.Queries) error) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(c.Queries.WithTx(tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	return tx.Commit()
}
