package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"conduitclient/internal/apierr"
	"conduitclient/internal/domain"
)

type articleEnvelope struct {
	Article domain.Article `json:"article"`
}

type draftEnvelope struct {
	Article domain.ArticleDraft `json:"article"`
}

// ListArticles fetches one fixed-size page of the article list.
func (c *Client) ListArticles(ctx context.Context, page int) (domain.ArticlePage, error) {
	path := fmt.Sprintf("/articles?limit=%d&offset=%d", domain.PageSize, domain.Offset(page))

	var out domain.ArticlePage
	if err := c.do(ctx, apierr.OpFetchArticles, http.MethodGet, path, nil, &out, authOptional); err != nil {
		return domain.ArticlePage{}, err
	}
	return out, nil
}

// GetArticle fetches a single article by slug.
func (c *Client) GetArticle(ctx context.Context, slug string) (domain.Article, error) {
	var out articleEnvelope
	if err := c.do(ctx, apierr.OpFetchArticle, http.MethodGet, articlePath(slug), nil, &out, authOptional); err != nil {
		return domain.Article{}, err
	}
	return out.Article, nil
}

// CreateArticle publishes a new article from draft fields.
func (c *Client) CreateArticle(ctx context.Context, draft domain.ArticleDraft) (domain.Article, error) {
	var out articleEnvelope
	if err := c.do(ctx, apierr.OpCreateArticle, http.MethodPost, "/articles", draftEnvelope{Article: draft}, &out, authRequired); err != nil {
		return domain.Article{}, err
	}
	return out.Article, nil
}

// UpdateArticle replaces the writable fields of an existing article.
func (c *Client) UpdateArticle(ctx context.Context, slug string, draft domain.ArticleDraft) (domain.Article, error) {
	var out articleEnvelope
	if err := c.do(ctx, apierr.OpEditArticle, http.MethodPut, articlePath(slug), draftEnvelope{Article: draft}, &out, authRequired); err != nil {
		return domain.Article{}, err
	}
	return out.Article, nil
}

// DeleteArticle removes an article; the deleted entity is not returned.
func (c *Client) DeleteArticle(ctx context.Context, slug string) error {
	return c.do(ctx, apierr.OpDeleteArticle, http.MethodDelete, articlePath(slug), nil, nil, authRequired)
}

// FavoriteArticle marks the article favorited for the current user and
// returns the server's authoritative counters.
func (c *Client) FavoriteArticle(ctx context.Context, slug string) (domain.Article, error) {
	var out articleEnvelope
	if err := c.do(ctx, apierr.OpFavoriteArticle, http.MethodPost, articlePath(slug)+"/favorite", struct{}{}, &out, authRequired); err != nil {
		return domain.Article{}, err
	}
	return out.Article, nil
}

// UnfavoriteArticle removes the favorite mark and returns the authoritative
// counters.
func (c *Client) UnfavoriteArticle(ctx context.Context, slug string) (domain.Article, error) {
	var out articleEnvelope
	if err := c.do(ctx, apierr.OpUnfavoriteArticle, http.MethodDelete, articlePath(slug)+"/favorite", nil, &out, authRequired); err != nil {
		return domain.Article{}, err
	}
	return out.Article, nil
}

func articlePath(slug string) string {
	return "/articles/" + url.PathEscape(slug)
}
