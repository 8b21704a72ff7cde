// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying go-github client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/github-profile-stats/internal/config"
	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching repositories from GitHub.
type Fetcher interface {
	// FetchRepositories walks every page of the account's repositories. It never fails
	// outright: whatever was collected is returned together with the reason the walk stopped.
	FetchRepositories(ctx context.Context, account string) ([]domain.Repository, domain.Termination)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	pageSize   int
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(cfg config.Config, logger *log.Logger) (Fetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gateway configuration: %w", err)
	}
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	restClient := github.NewClient(httpClient)
	if cfg.BaseURL != "" {
		// go-github requires a trailing slash on the base URL.
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL: %w", err)
		}
		restClient.BaseURL = baseURL
	}
	return &GitHubGateway{
		restClient: restClient,
		pageSize:   cfg.PageSize,
		logger:     logger,
	}, nil
}

func (g *GitHubGateway) FetchRepositories(ctx context.Context, account string) ([]domain.Repository, domain.Termination) {
	g.logger.Printf("Fetching repositories of %s using REST API...", account)
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{Page: 1, PerPage: g.pageSize},
	}
	var repos []domain.Repository
	for {
		g.logger.Printf("  Fetching page %d...", opts.Page)
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, account, opts)
		if err != nil {
			termination := classify(resp, err)
			g.logger.Printf("Stopped on page %d: %s (%v)", opts.Page, termination, err)
			return repos, termination
		}
		if len(page) == 0 {
			break
		}
		for _, r := range page {
			repos = append(repos, toDomain(r))
		}
		opts.Page++
	}
	g.logger.Printf("Completed fetching %d repositories.", len(repos))
	return repos, domain.ExhaustedTermination()
}

// classify maps a failed page request onto the reason the walk has to stop.
func classify(resp *github.Response, err error) domain.Termination {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return domain.RateLimitedTermination()
	}
	if isTimeout(err) {
		return domain.TimedOutTermination()
	}
	if resp != nil && resp.Response != nil && resp.StatusCode >= http.StatusMultipleChoices {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return domain.NotFoundTermination()
		case http.StatusForbidden, http.StatusTooManyRequests:
			return domain.RateLimitedTermination()
		default:
			return domain.RemoteErrorTermination(resp.StatusCode)
		}
	}
	return domain.TransportErrorTermination(err.Error())
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func toDomain(r *github.Repository) domain.Repository {
	repo := domain.Repository{
		Owner:      r.GetOwner().GetLogin(),
		Name:       r.GetName(),
		Stars:      max(0, r.GetStargazersCount()),
		Forks:      max(0, r.GetForksCount()),
		Watchers:   max(0, r.GetWatchersCount()),
		OpenIssues: max(0, r.GetOpenIssuesCount()),
		Private:    r.GetPrivate(),
	}
	if r.Language != nil {
		language := r.GetLanguage()
		repo.Language = &language
	}
	if r.PushedAt != nil {
		pushedAt := r.GetPushedAt().Time.UTC()
		repo.PushedAt = &pushedAt
	}
	return repo
}
