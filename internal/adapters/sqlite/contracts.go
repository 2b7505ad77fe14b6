package sqlite

import (
	"context"

	"github.com/fr0stylo/contentconnector/internal/db/queries"
)

type storeDatabase interface {
	CreatePost(ctx context.Context, params queries.CreatePostParams) (queries.Post, error)
	GetPostByID(ctx context.Context, id int64) (queries.Post, error)
	GetUserByID(ctx context.Context, id int64) (queries.User, error)
	CountPosts(ctx context.Context) (int64, error)
	UpsertPostMeta(ctx context.Context, postID int64, key, value string) error
	ListPostMeta(ctx context.Context, postID int64) ([]queries.ListPostMetaRow, error)

	GetTermBySlug(ctx context.Context, taxonomy, slug string) (queries.Term, error)
	CreateTerm(ctx context.Context, taxonomy, name, slug string) (queries.Term, error)
	ListPostTerms(ctx context.Context, postID int64, taxonomy string) ([]queries.Term, error)
	ListTermsByTaxonomy(ctx context.Context, taxonomy string) ([]queries.Term, error)

	GetOption(ctx context.Context, name string) (queries.Option, error)
	UpsertOption(ctx context.Context, name, value string) error
	InsertOptionIfMissing(ctx context.Context, name, value string) (bool, error)

	WithTx(ctx context.Context, fn func(*queries.Queries) error) error
}
