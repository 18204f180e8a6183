package store

import (
	"context"
	"sync/atomic"

	"conduitclient/internal/domain"
	"conduitclient/internal/ports"
)

// fakeArticleGateway lets tests script each operation; unset operations
// return zero values.
type fakeArticleGateway struct {
	calls int64

	list       func(ctx context.Context, page int) (domain.ArticlePage, error)
	get        func(ctx context.Context, slug string) (domain.Article, error)
	create     func(ctx context.Context, draft domain.ArticleDraft) (domain.Article, error)
	update     func(ctx context.Context, slug string, draft domain.ArticleDraft) (domain.Article, error)
	remove     func(ctx context.Context, slug string) error
	favorite   func(ctx context.Context, slug string) (domain.Article, error)
	unfavorite func(ctx context.Context, slug string) (domain.Article, error)
}

var _ ports.ArticleGateway = (*fakeArticleGateway)(nil)

func (f *fakeArticleGateway) ListArticles(ctx context.Context, page int) (domain.ArticlePage, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.list == nil {
		return domain.ArticlePage{}, nil
	}
	return f.list(ctx, page)
}

func (f *fakeArticleGateway) GetArticle(ctx context.Context, slug string) (domain.Article, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.get == nil {
		return domain.Article{}, nil
	}
	return f.get(ctx, slug)
}

func (f *fakeArticleGateway) CreateArticle(ctx context.Context, draft domain.ArticleDraft) (domain.Article, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.create == nil {
		return domain.Article{}, nil
	}
	return f.create(ctx, draft)
}

func (f *fakeArticleGateway) UpdateArticle(ctx context.Context, slug string, draft domain.ArticleDraft) (domain.Article, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.update == nil {
		return domain.Article{}, nil
	}
	return f.update(ctx, slug, draft)
}

func (f *fakeArticleGateway) DeleteArticle(ctx context.Context, slug string) error {
	atomic.AddInt64(&f.calls, 1)
	if f.remove == nil {
		return nil
	}
	return f.remove(ctx, slug)
}

func (f *fakeArticleGateway) FavoriteArticle(ctx context.Context, slug string) (domain.Article, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.favorite == nil {
		return domain.Article{}, nil
	}
	return f.favorite(ctx, slug)
}

func (f *fakeArticleGateway) UnfavoriteArticle(ctx context.Context, slug string) (domain.Article, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.unfavorite == nil {
		return domain.Article{}, nil
	}
	return f.unfavorite(ctx, slug)
}

// fakeUserGateway scripts the credential flows.
type fakeUserGateway struct {
	calls int64

	register func(ctx context.Context, reg domain.Registration) (domain.User, error)
	login    func(ctx context.Context, creds domain.Credentials) (domain.User, error)
	current  func(ctx context.Context) (domain.User, error)
	update   func(ctx context.Context, upd domain.ProfileUpdate) (domain.User, error)
}

var _ ports.UserGateway = (*fakeUserGateway)(nil)

func (f *fakeUserGateway) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.register == nil {
		return domain.User{}, nil
	}
	return f.register(ctx, reg)
}

func (f *fakeUserGateway) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.login == nil {
		return domain.User{}, nil
	}
	return f.login(ctx, creds)
}

func (f *fakeUserGateway) CurrentUser(ctx context.Context) (domain.User, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.current == nil {
		return domain.User{}, nil
	}
	return f.current(ctx)
}

func (f *fakeUserGateway) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.User, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.update == nil {
		return domain.User{}, nil
	}
	return f.update(ctx, upd)
}
