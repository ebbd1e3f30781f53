package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relscan/pkg/domain/interfaces"
	"github.com/m-mizutani/relscan/pkg/domain/types"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a release notes fetcher backed by the GitHub API. The
// token is optional; an unauthenticated client works for public
// repositories within rate limits.
func NewClient(token string) interfaces.ReleaseNotesFetcher {
	githubClient := github.NewClient(nil)
	if token != "" {
		githubClient = githubClient.WithAuthToken(token)
	}
	return &client{githubClient: githubClient}
}

// FetchReleaseNotes returns the release body for owner/repo at tag. A
// missing release and an empty body both map to types.ErrReleaseNotFound.
func (c *client) FetchReleaseNotes(ctx context.Context, owner, repo, tag string) (string, error) {
	release, resp, err := c.githubClient.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", goerr.Wrap(types.ErrReleaseNotFound, "no release for tag",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("tag", tag))
		}
		return "", goerr.Wrap(err, "failed to fetch release",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("tag", tag))
	}

	body := release.GetBody()
	if body == "" {
		return "", goerr.Wrap(types.ErrReleaseNotFound, "release has no body",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("tag", tag))
	}
	return body, nil
}
