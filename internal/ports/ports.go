package ports

import (
	"context"

	"conduitclient/internal/domain"
)

// ArticleGateway performs the article operations against the backend.
// Every method issues exactly one network call and returns either a payload
// or an *apierr.Error (callers recover the typed view via apierr.From).
type ArticleGateway interface {
	ListArticles(ctx context.Context, page int) (domain.ArticlePage, error)
	GetArticle(ctx context.Context, slug string) (domain.Article, error)
	CreateArticle(ctx context.Context, draft domain.ArticleDraft) (domain.Article, error)
	UpdateArticle(ctx context.Context, slug string, draft domain.ArticleDraft) (domain.Article, error)
	DeleteArticle(ctx context.Context, slug string) error
	FavoriteArticle(ctx context.Context, slug string) (domain.Article, error)
	UnfavoriteArticle(ctx context.Context, slug string) (domain.Article, error)
}

// UserGateway performs the credential and profile operations.
type UserGateway interface {
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.User, error)
	CurrentUser(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error)
}

// CredentialStore owns the single persisted session token.
type CredentialStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}
