// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🐙 GitHubResolver finds releases through the GitHub API
type GitHubResolver struct {
	client *github.Client
}

// GitHubOption configures a GitHubResolver
type GitHubOption func(*githubOptions)

type githubOptions struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// WithHTTPClient sets the HTTP client used for API calls
func WithHTTPClient(c *http.Client) GitHubOption {
	return func(o *githubOptions) {
		o.httpClient = c
	}
}

// WithBaseURL points the resolver at another API endpoint
func WithBaseURL(u string) GitHubOption {
	return func(o *githubOptions) {
		o.baseURL = u
	}
}

// WithToken authenticates API calls. Defaults to $GITHUB_TOKEN.
func WithToken(token string) GitHubOption {
	return func(o *githubOptions) {
		o.token = token
	}
}

// 🏭 NewGitHubResolver creates a resolver
func NewGitHubResolver(opts ...GitHubOption) (*GitHubResolver, error) {
	o := &githubOptions{token: os.Getenv("GITHUB_TOKEN")}
	for _, opt := range opts {
		opt(o)
	}

	client := github.NewClient(o.httpClient)
	if o.token != "" {
		client = client.WithAuthToken(o.token)
	}
	if o.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, errors.Errorf("parsing base URL: %w", err)
		}
		client.BaseURL = base
	}

	return &GitHubResolver{client: client}, nil
}

// 🔍 ParseRepository extracts owner and name from a GitHub repository URL
// in https, scp-like, or bare host/owner/name form
func ParseRepository(repository string) (owner, name string, err error) {
	s := strings.TrimSpace(repository)
	s = strings.TrimSuffix(s, "/")
	s = strings.TrimSuffix(s, ".git")
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimPrefix(s, "git@")
	s = strings.Replace(s, ":", "/", 1)

	parts := strings.Split(s, "/")
	if len(parts) != 3 || parts[0] != "github.com" || parts[1] == "" || parts[2] == "" {
		return "", "", errors.Errorf("invalid GitHub repository URL: %s", repository)
	}
	return parts[1], parts[2], nil
}

// LatestRelease returns the tag of the newest non-draft, non-prerelease
// release
func (r *GitHubResolver) LatestRelease(ctx context.Context, repository string) (string, error) {
	logger := zerolog.Ctx(ctx)

	owner, name, err := ParseRepository(repository)
	if err != nil {
		return "", err
	}

	logger.Debug().Str("owner", owner).Str("repo", name).Msg("getting latest release")

	release, resp, err := r.client.Repositories.GetLatestRelease(ctx, owner, name)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.Errorf("context error: %w", ctx.Err())
		}
		if _, ok := err.(*github.RateLimitError); ok {
			return "", errors.Errorf("rate limit exceeded: %w", err)
		}
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", errors.Errorf("%s/%s has no releases: %w", owner, name, err)
		}
		return "", errors.Errorf("getting latest release from GitHub: %w", err)
	}

	if release.GetTagName() == "" {
		return "", errors.Errorf("latest release of %s/%s has no tag", owner, name)
	}
	return release.GetTagName(), nil
}

// 📋 LatestReleases resolves every repository concurrently. The result is
// keyed by repository.
func LatestReleases(ctx context.Context, r Resolver, repositories []string) (map[string]string, error) {
	tags := make([]string, len(repositories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, repo := range repositories {
		i, repo := i, repo
		g.Go(func() error {
			tag, err := r.LatestRelease(gctx, repo)
			if err != nil {
				return errors.Errorf("%s: %w", repo, err)
			}
			tags[i] = tag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(repositories))
	for i, repo := range repositories {
		out[repo] = tags[i]
	}
	return out, nil
}
