package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"conduitclient/internal/apierr"
	"conduitclient/internal/domain"
	"conduitclient/internal/ports"
)

// ArticlesController owns the list and detail views. Methods are safe for
// concurrent use: each performs its gateway call on the caller's goroutine
// and reduces the result into the store.
type ArticlesController struct {
	store  *Store
	gw     ports.ArticleGateway
	logger *slog.Logger

	mu      sync.Mutex
	nextSeq uint64
	latest  uint64
	pending map[string]uuid.UUID
}

// NewArticlesController wires the gateway into the store.
func NewArticlesController(store *Store, gw ports.ArticleGateway, logger *slog.Logger) *ArticlesController {
	return &ArticlesController{
		store:   store,
		gw:      gw,
		logger:  logger,
		pending: map[string]uuid.UUID{},
	}
}

// beginFetch assigns the next fetch sequence and marks it the latest.
// Only the latest fetch may reduce its terminal result; stale responses are
// dropped instead of overwriting newer state.
func (c *ArticlesController) beginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSeq++
	c.latest = c.nextSeq
	return c.nextSeq
}

func (c *ArticlesController) isLatest(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest == seq
}

// FetchList loads one page of the article list. Starting a fetch clears the
// previously loaded detail and list; success replaces list and total count
// atomically.
func (c *ArticlesController) FetchList(ctx context.Context, page int) {
	seq := c.beginFetch()
	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = true
		a.Err = nil
		a.Article = nil
		a.Articles = nil
	})

	result, err := c.gw.ListArticles(ctx, page)
	if !c.isLatest(seq) {
		c.debug("stale list response dropped", "page", page)
		return
	}

	if err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(a *ArticlesState, _ *UserState) {
			a.Loading = false
			a.Err = failure
			a.Article = nil
		})
		return
	}

	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = false
		a.Err = nil
		a.Article = nil
		a.Articles = result.Articles
		a.ArticlesCount = result.ArticlesCount
	})
}

// FetchOne loads a single article without touching the list.
func (c *ArticlesController) FetchOne(ctx context.Context, slug string) {
	seq := c.beginFetch()
	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = true
		a.Err = nil
	})

	article, err := c.gw.GetArticle(ctx, slug)
	if !c.isLatest(seq) {
		c.debug("stale article response dropped", "slug", slug)
		return
	}

	if err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(a *ArticlesState, _ *UserState) {
			a.Loading = false
			a.Err = failure
		})
		return
	}

	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = false
		a.Article = &article
	})
}

// Create publishes a draft. Success only flips the Success flag, which the
// caller consumes to trigger navigation; list and detail stay untouched.
func (c *ArticlesController) Create(ctx context.Context, draft domain.ArticleDraft) {
	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = true
		a.Err = nil
	})

	if _, err := c.gw.CreateArticle(ctx, draft); err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(a *ArticlesState, _ *UserState) {
			a.Loading = false
			a.Err = failure
		})
		return
	}

	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = false
		a.Success = true
	})
}

// Edit replaces the writable fields of an article; success swaps in the
// server's article as the current detail.
func (c *ArticlesController) Edit(ctx context.Context, slug string, draft domain.ArticleDraft) {
	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = true
		a.Err = nil
	})

	article, err := c.gw.UpdateArticle(ctx, slug, draft)
	if err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(a *ArticlesState, _ *UserState) {
			a.Loading = false
			a.Err = failure
		})
		return
	}

	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = false
		a.Success = true
		a.Article = &article
	})
}

// Remove deletes an article; the deleted entity is not surfaced.
func (c *ArticlesController) Remove(ctx context.Context, slug string) {
	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = true
		a.Err = nil
	})

	if err := c.gw.DeleteArticle(ctx, slug); err != nil {
		failure := apierr.From(err)
		c.store.reduce(func(a *ArticlesState, _ *UserState) {
			a.Loading = false
			a.Err = failure
		})
		return
	}

	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Loading = false
		a.Success = true
	})
}

// Favorite applies the optimistic flip immediately and reconciles against
// the server's authoritative counters when the response arrives.
func (c *ArticlesController) Favorite(ctx context.Context, slug string) {
	c.toggle(ctx, slug, true)
}

// Unfavorite is the inverse optimistic toggle.
func (c *ArticlesController) Unfavorite(ctx context.Context, slug string) {
	c.toggle(ctx, slug, false)
}

func (c *ArticlesController) toggle(ctx context.Context, slug string, favorited bool) {
	token := uuid.New()
	c.mu.Lock()
	c.pending[slug] = token
	c.mu.Unlock()

	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Err = nil
		applyProvisional(a, slug, favorited)
	})

	var (
		article domain.Article
		err     error
	)
	if favorited {
		article, err = c.gw.FavoriteArticle(ctx, slug)
	} else {
		article, err = c.gw.UnfavoriteArticle(ctx, slug)
	}

	c.mu.Lock()
	live := c.pending[slug] == token
	if live {
		delete(c.pending, slug)
	}
	c.mu.Unlock()
	if !live {
		// A newer toggle owns this slug's reconciliation.
		c.debug("out-of-order favorite acknowledgment dropped", "slug", slug)
		return
	}

	if err != nil {
		// The optimistic flip stays in place; the next full fetch reconciles.
		failure := apierr.From(err)
		c.store.reduce(func(a *ArticlesState, _ *UserState) {
			a.Err = failure
		})
		return
	}

	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		applyAuthoritative(a, article)
	})
}

// ClearSuccess resets the navigation trigger; the UI calls it on unmount.
func (c *ArticlesController) ClearSuccess() {
	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Success = false
	})
}

// ClearError dismisses the recorded operation error.
func (c *ArticlesController) ClearError() {
	c.store.reduce(func(a *ArticlesState, _ *UserState) {
		a.Err = nil
	})
}

// applyProvisional flips the favorite flag and moves the count by exactly
// one, floored at zero, on the detail and the matching list entry.
func applyProvisional(a *ArticlesState, slug string, favorited bool) {
	patch := func(article *domain.Article) {
		if article.Slug != slug || article.Favorited == favorited {
			return
		}
		article.Favorited = favorited
		if favorited {
			article.FavoritesCount++
		} else if article.FavoritesCount > 0 {
			article.FavoritesCount--
		}
	}

	if a.Article != nil {
		patch(a.Article)
	}
	for i := range a.Articles {
		patch(&a.Articles[i])
	}
}

// applyAuthoritative overwrites favorited/favoritesCount with the server's
// values on the detail and the matching list entry, leaving every other
// entry untouched.
func applyAuthoritative(a *ArticlesState, article domain.Article) {
	if a.Article != nil && a.Article.Slug == article.Slug {
		a.Article.Favorited = article.Favorited
		a.Article.FavoritesCount = article.FavoritesCount
	}
	for i := range a.Articles {
		if a.Articles[i].Slug == article.Slug {
			a.Articles[i].Favorited = article.Favorited
			a.Articles[i].FavoritesCount = article.FavoritesCount
		}
	}
}

func (c *ArticlesController) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
