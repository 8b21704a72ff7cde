package domain

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// AggregateReport is the summary of every repository fetched for one account.
// Reports are produced by ReportBuilder only and are read-only afterwards. The
// ordered maps are handed out as copies; a zero AggregateReport reads as empty.
type AggregateReport struct {
	Owner           string `json:"owner"`
	TotalRepos      int    `json:"total_repositories"`
	TotalStars      int    `json:"total_stars"`
	TotalForks      int    `json:"total_forks"`
	TotalWatchers   int    `json:"total_watchers"`
	TotalOpenIssues int    `json:"total_open_issues"`
	ActiveRepos     int    `json:"active_repositories"`
	StaleRepos      int    `json:"stale_repositories"`
	PublicRepos     int    `json:"public_repositories"`
	PrivateRepos    int    `json:"private_repositories"`

	languages    *OrderedCounts
	starsPerRepo *OrderedCounts
}

// Languages returns the language histogram in first-seen order.
func (r *AggregateReport) Languages() []Entry {
	return r.languages.Entries()
}

// StarsPerRepo returns one entry per distinct repository name in first-seen order.
func (r *AggregateReport) StarsPerRepo() []Entry {
	return r.starsPerRepo.Entries()
}

// MajorityLanguage returns the most frequent language; the first seen wins ties.
func (r *AggregateReport) MajorityLanguage() Entry {
	e, _ := r.languages.Max()
	return e
}

// MostPopularRepository returns the repository with the most stars; the first seen wins ties.
func (r *AggregateReport) MostPopularRepository() Entry {
	e, _ := r.starsPerRepo.Max()
	return e
}

// StarSummary describes the distribution of stars over distinct repositories.
type StarSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// StarSummary computes mean, median and max stars. It fails on an empty report.
func (r *AggregateReport) StarSummary() (StarSummary, error) {
	data := make(stats.Float64Data, 0, r.starsPerRepo.Len())
	for _, e := range r.starsPerRepo.Entries() {
		data = append(data, float64(e.Value))
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return StarSummary{}, fmt.Errorf("failed to compute mean stars: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return StarSummary{}, fmt.Errorf("failed to compute median stars: %w", err)
	}
	maxStars, err := stats.Max(data)
	if err != nil {
		return StarSummary{}, fmt.Errorf("failed to compute max stars: %w", err)
	}
	return StarSummary{Mean: mean, Median: median, Max: maxStars}, nil
}

// ReportBuilder accumulates repositories into an AggregateReport.
type ReportBuilder struct {
	report *AggregateReport
}

func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{report: &AggregateReport{
		languages:    NewOrderedCounts(),
		starsPerRepo: NewOrderedCounts(),
	}}
}

// Add folds one repository into the report. The owner is taken from the first
// repository only; a repeated name overwrites the earlier star count.
func (b *ReportBuilder) Add(repo Repository, active bool) {
	r := b.report
	if r.TotalRepos == 0 {
		r.Owner = repo.Owner
	}
	r.TotalRepos++
	r.TotalStars += repo.Stars
	r.TotalForks += repo.Forks
	r.TotalWatchers += repo.Watchers
	r.TotalOpenIssues += repo.OpenIssues

	if active {
		r.ActiveRepos++
	} else {
		r.StaleRepos++
	}
	if repo.Private {
		r.PrivateRepos++
	} else {
		r.PublicRepos++
	}

	r.languages.Add(repo.LanguageOrUnknown(), 1)
	r.starsPerRepo.Set(repo.Name, repo.Stars)
}

// Build returns the finished report. The builder must not be used afterwards.
func (b *ReportBuilder) Build() *AggregateReport {
	r := b.report
	b.report = nil
	return r
}
