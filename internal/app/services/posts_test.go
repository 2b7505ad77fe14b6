package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
	portmocks "github.com/fr0stylo/contentconnector/internal/app/ports/mocks"
)

func TestPostQueryService_GetPost(t *testing.T) {
	reader := portmocks.NewMockPostReader(t)
	svc := NewPostQueryService(reader)

	reader.EXPECT().GetPost(mock.Anything, int64(3)).Return(ports.PostDetail{
		ID:   3,
		Meta: map[string]string{MediaURLMetaKey: "https://example.com/x.png"},
	}, nil).Once()

	post, err := svc.GetPost(context.Background(), 3)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if MediaURL(post) != "https://example.com/x.png" {
		t.Fatalf("unexpected media url %q", MediaURL(post))
	}
}

func TestPostQueryService_NotFound(t *testing.T) {
	reader := portmocks.NewMockPostReader(t)
	svc := NewPostQueryService(reader)

	reader.EXPECT().GetPost(mock.Anything, int64(99)).Return(ports.PostDetail{}, ports.ErrNotFound).Once()

	if _, err := svc.GetPost(context.Background(), 99); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := svc.GetPost(context.Background(), 0); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for zero id, got %v", err)
	}
}

func TestPostQueryService_VerifyAuthor(t *testing.T) {
	reader := portmocks.NewMockPostReader(t)
	svc := NewPostQueryService(reader)

	reader.EXPECT().AuthorExists(mock.Anything, int64(1)).Return(true, nil).Once()
	reader.EXPECT().AuthorExists(mock.Anything, int64(2)).Return(false, nil).Once()
	reader.EXPECT().AuthorExists(mock.Anything, int64(3)).Return(false, errors.New("db down")).Once()

	if err := svc.VerifyAuthor(context.Background(), 1); err != nil {
		t.Fatalf("expected seeded author to verify, got %v", err)
	}
	if err := svc.VerifyAuthor(context.Background(), 2); !errors.Is(err, ErrUnknownAuthor) {
		t.Fatalf("expected ErrUnknownAuthor, got %v", err)
	}
	err := svc.VerifyAuthor(context.Background(), 3)
	if err == nil || errors.Is(err, ErrUnknownAuthor) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestPostQueryService_ListTermsAndCount(t *testing.T) {
	reader := portmocks.NewMockPostReader(t)
	svc := NewPostQueryService(reader)

	reader.EXPECT().ListTerms(mock.Anything, ports.TaxonomyTag).Return([]ports.Term{{ID: 1, Name: "go", Slug: "go"}}, nil).Once()
	reader.EXPECT().CountPosts(mock.Anything).Return(int64(7), nil).Once()

	terms, err := svc.ListTerms(context.Background(), ports.TaxonomyTag)
	if err != nil || len(terms) != 1 || terms[0].Slug != "go" {
		t.Fatalf("unexpected terms %+v err=%v", terms, err)
	}
	count, err := svc.CountPosts(context.Background())
	if err != nil || count != 7 {
		t.Fatalf("unexpected count %d err=%v", count, err)
	}
}
