package store

import (
	"log/slog"
	"sync"

	"conduitclient/internal/apierr"
	"conduitclient/internal/domain"
)

// ArticlesState is the article controller's slice of store state: the
// current detail view, one list page, and the operation flags. Success and
// Err are cleared explicitly by the consuming collaborator, never by an
// unrelated action.
type ArticlesState struct {
	Article       *domain.Article
	Articles      []domain.Article
	ArticlesCount int
	Loading       bool
	Success       bool
	Err           *apierr.Error
}

// UserState is the user controller's slice. Err is a single slot keyed by
// the operation tag carried on the error; a newer failure overwrites a
// stale one under a different key.
type UserState struct {
	User    *domain.User
	Loading bool
	Success bool
	Err     *apierr.Error
}

// Store is the injectable state container. All mutation flows through
// reduce under one mutex; readers get copies, and subscribers are notified
// with the new version after every reduction.
type Store struct {
	mu       sync.Mutex
	articles ArticlesState
	user     UserState
	version  uint64
	subs     []chan uint64
	logger   *slog.Logger
}

// New builds an empty store. Tests instantiate isolated stores; there is no
// package-level singleton.
func New(logger *slog.Logger) *Store {
	return &Store{logger: logger}
}

// Articles returns a snapshot of the article slice safe to read without
// racing reductions.
func (s *Store) Articles() ArticlesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneArticles(s.articles)
}

// User returns a snapshot of the user slice.
func (s *Store) User() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.user)
}

// Version returns the monotonically increasing reduction counter.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers a version channel notified after each reduction.
// Notification is non-blocking: a slow subscriber misses intermediate
// versions, never stalls a reduction.
func (s *Store) Subscribe() <-chan uint64 {
	ch := make(chan uint64, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// reduce applies one mutation under the lock and fans out the new version.
func (s *Store) reduce(apply func(articles *ArticlesState, user *UserState)) {
	s.mu.Lock()
	apply(&s.articles, &s.user)
	s.version++
	version := s.version
	subs := s.subs
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- version:
		default:
		}
	}
}

func cloneArticles(state ArticlesState) ArticlesState {
	out := state
	if state.Article != nil {
		article := *state.Article
		out.Article = &article
	}
	if state.Articles != nil {
		out.Articles = make([]domain.Article, len(state.Articles))
		copy(out.Articles, state.Articles)
	}
	return out
}

func cloneUser(state UserState) UserState {
	out := state
	if state.User != nil {
		user := *state.User
		out.User = &user
	}
	return out
}
