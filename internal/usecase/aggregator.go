// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"time"

	"github.com/naka-gawa/github-profile-stats/internal/config"
	"github.com/naka-gawa/github-profile-stats/internal/domain"
	"github.com/naka-gawa/github-profile-stats/internal/gateway"
)

// Aggregator is the use case for building a profile report.
// It orchestrates fetching, aggregation and chart projection.
type Aggregator struct {
	fetcher gateway.Fetcher
	cfg     config.Config
	now     func() time.Time
	logger  *log.Logger
}

// Result is the outcome of one run. Report and Charts are only set when at
// least one repository was fetched.
type Result struct {
	Termination domain.Termination
	Report      *domain.AggregateReport
	Charts      ChartData
}

// HasData reports whether anything was fetched.
func (r Result) HasData() bool {
	return r.Report != nil
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, cfg config.Config, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
}

// Run fetches every repository of account and, if any arrived, aggregates them.
// A fetch that stopped early still yields a report over the partial data.
func (a *Aggregator) Run(ctx context.Context, account string) Result {
	a.logger.Println("Usecase: Starting data aggregation...")

	repos, termination := a.fetcher.FetchRepositories(ctx, account)
	result := Result{Termination: termination}
	if !termination.Complete() {
		a.logger.Printf("Usecase: fetch stopped early (%s) with %d repositories.", termination, len(repos))
	}
	if len(repos) == 0 {
		a.logger.Println("Usecase: No repositories fetched, skipping aggregation.")
		return result
	}

	report, err := Aggregate(repos, a.now(), a.cfg.StaleThresholdDays)
	if err != nil {
		a.logger.Printf("Usecase: aggregation failed: %v", err)
		return result
	}
	result.Report = report
	result.Charts = Project(report, a.cfg.TopStarsLimit)

	a.logger.Println("Usecase: Aggregation complete.")
	return result
}

// Aggregate folds records into a report in a single pass. Calling it with no
// records is a caller error and returns domain.ErrNoRepositories.
func Aggregate(records []domain.Repository, now time.Time, thresholdDays int) (*domain.AggregateReport, error) {
	if len(records) == 0 {
		return nil, domain.ErrNoRepositories
	}
	builder := domain.NewReportBuilder()
	for _, repo := range records {
		builder.Add(repo, domain.IsActive(repo.PushedAt, now, thresholdDays))
	}
	return builder.Build(), nil
}
