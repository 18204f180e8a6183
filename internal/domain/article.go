package domain

import "time"

// PageSize is the fixed number of articles per list page.
const PageSize = 5

// Offset converts a 1-based page number into the backend list offset.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return page*PageSize - PageSize
}

// Author is the nested article author projection, viewer-relative.
type Author struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// Article is a core entity describing a single post as the backend reports it.
// Body is carried verbatim; rendering (including literal \n sequences) belongs
// to the render collaborator, never to this layer.
type Article struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Author    `json:"author"`
}

// ArticlePage is one page of the article list plus the total available count.
type ArticlePage struct {
	Articles      []Article `json:"articles"`
	ArticlesCount int       `json:"articlesCount"`
}

// ArticleDraft carries the writable article fields for create and edit.
type ArticleDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}
