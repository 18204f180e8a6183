package store

import (
	"context"
	"testing"

	"conduitclient/internal/domain"
)

func TestSnapshotsAreIsolated(t *testing.T) {
	t.Parallel()

	gw := &fakeArticleGateway{
		get: func(ctx context.Context, slug string) (domain.Article, error) {
			return testArticle(slug, 2, false), nil
		},
	}
	s := New(nil)
	c := NewArticlesController(s, gw, nil)

	c.FetchOne(context.Background(), "iso")

	snapshot := s.Articles()
	snapshot.Article.FavoritesCount = 99

	if s.Articles().Article.FavoritesCount != 2 {
		t.Fatal("mutating a snapshot leaked into the store")
	}
}

func TestSubscribeSeesReductions(t *testing.T) {
	t.Parallel()

	s := New(nil)
	c := NewArticlesController(s, &fakeArticleGateway{}, nil)

	versions := s.Subscribe()
	before := s.Version()

	c.ClearError()

	select {
	case v := <-versions:
		if v <= before {
			t.Fatalf("version did not advance: %d -> %d", before, v)
		}
	default:
		t.Fatal("subscriber was not notified")
	}
}

func TestSlowSubscriberDoesNotBlockReductions(t *testing.T) {
	t.Parallel()

	s := New(nil)
	c := NewArticlesController(s, &fakeArticleGateway{}, nil)

	_ = s.Subscribe() // never drained

	// Multiple reductions must not stall on the full channel.
	c.ClearError()
	c.ClearSuccess()
	c.ClearError()

	if s.Version() < 3 {
		t.Fatalf("reductions did not proceed: version %d", s.Version())
	}
}
