package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements Client for testing.
type mockClient struct {
	searchRepositoriesFn func(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error)
}

func (m *mockClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
	return m.searchRepositoriesFn(ctx, query, opts)
}

// okResponse returns a *gh.Response for a successful single page.
func okResponse() *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: 200},
	}
}

// makeRepository builds a fully populated search item.
func makeRepository(id int64, owner, name string, stars int) *gh.Repository {
	return &gh.Repository{
		ID:              gh.Ptr(id),
		FullName:        gh.Ptr(owner + "/" + name),
		Name:            gh.Ptr(name),
		Owner:           &gh.User{Login: gh.Ptr(owner)},
		StargazersCount: gh.Ptr(stars),
	}
}
