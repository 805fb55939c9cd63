package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"github.com/stahnma/gh-repopick/internal/cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultPerPage caps the number of suggestions per query.
const DefaultPerPage = 5

// ErrMalformedResponse is returned when a search item lacks a required field.
var ErrMalformedResponse = errors.New("malformed search response")

// SearchOptions controls a Searcher.
type SearchOptions struct {
	PerPage int
	NoCache bool
}

// Searcher issues repository searches and normalizes the results.
type Searcher struct {
	client Client
	cache  *cache.Cache
	logger *zap.Logger
	opts   SearchOptions
	group  singleflight.Group
}

// NewSearcher creates a Searcher. A nil cache disables caching and a nil
// logger discards diagnostics.
func NewSearcher(client Client, c *cache.Cache, logger *zap.Logger, opts SearchOptions) *Searcher {
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if c == nil {
		opts.NoCache = true
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{client: client, cache: c, logger: logger, opts: opts}
}

// PerPage returns the page size sent to the API.
func (s *Searcher) PerPage() int {
	return s.opts.PerPage
}

// FetchRepositories returns the first page of matches for query. Every
// failure is logged and reported as an empty list.
func (s *Searcher) FetchRepositories(ctx context.Context, query string) []Repo {
	repos, err := s.Search(ctx, query)
	if err != nil {
		s.logger.Warn("fetching repositories failed",
			zap.String("query", strings.TrimSpace(query)),
			zap.Error(err))
		return []Repo{}
	}
	return repos
}

// Search returns the first page of matches for query. An empty or
// whitespace-only query returns an empty list without calling the API.
func (s *Searcher) Search(ctx context.Context, query string) ([]Repo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Repo{}, nil
	}

	cacheKey := fmt.Sprintf("search:%d:%s", s.opts.PerPage, query)
	if !s.opts.NoCache {
		if val, found := s.cache.Get(cacheKey); found {
			s.logger.Debug("cache hit", zap.String("key", cacheKey))
			if repos, ok := val.([]Repo); ok {
				return repos, nil
			}
		}
		s.logger.Debug("cache miss", zap.String("key", cacheKey))
	}

	val, err, _ := s.group.Do(cacheKey, func() (any, error) {
		return s.search(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	repos := val.([]Repo)

	if !s.opts.NoCache {
		s.cache.Set(cacheKey, repos)
	}
	return repos, nil
}

func (s *Searcher) search(ctx context.Context, query string) ([]Repo, error) {
	options := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: s.opts.PerPage}}
	result, _, err := s.client.SearchRepositories(ctx, query, options)
	if err != nil {
		return nil, fmt.Errorf("searching repositories for %q: %w", query, err)
	}
	if result == nil {
		return []Repo{}, nil
	}

	items := result.Repositories
	if len(items) > s.opts.PerPage {
		items = items[:s.opts.PerPage]
	}
	repos := make([]Repo, 0, len(items))
	for i, item := range items {
		repo, ok := repoFromAPI(item)
		if !ok {
			return nil, fmt.Errorf("item %d: %w", i, ErrMalformedResponse)
		}
		repos = append(repos, repo)
	}
	s.logger.Debug("search completed", zap.String("query", query), zap.Int("results", len(repos)))
	return repos, nil
}
