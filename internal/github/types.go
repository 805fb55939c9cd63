package github

import (
	"strconv"

	gh "github.com/google/go-github/v68/github"
)

// Repo is one repository returned by the search API. It is never mutated
// after it has been parsed.
type Repo struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Name     string `json:"name"`
	Owner    string `json:"owner"`
	Stars    int    `json:"stargazers_count"`
}

// Key returns the ID in the decimal string form used for de-duplication.
func (r Repo) Key() string {
	return strconv.FormatInt(r.ID, 10)
}

// repoFromAPI converts a search item, reporting false when a required field
// is absent.
func repoFromAPI(r *gh.Repository) (Repo, bool) {
	if r == nil || r.ID == nil || r.FullName == nil || r.Name == nil ||
		r.Owner == nil || r.Owner.Login == nil || r.StargazersCount == nil {
		return Repo{}, false
	}
	return Repo{
		ID:       r.GetID(),
		FullName: r.GetFullName(),
		Name:     r.GetName(),
		Owner:    r.GetOwner().GetLogin(),
		Stars:    r.GetStargazersCount(),
	}, true
}
