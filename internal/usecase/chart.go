package usecase

import (
	"sort"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

// Bar is one labeled value of a chart.
type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ChartData holds the four datasets handed to the chart renderer.
type ChartData struct {
	Popularity []Bar `json:"popularity"`
	Status     []Bar `json:"status"`
	Languages  []Bar `json:"languages"`
	TopStars   []Bar `json:"top_stars"`
}

// Project derives the chart datasets from a report. Languages keep their
// first-seen order; TopStars is sorted by stars, descending, keeping first-seen
// order among equal counts, and holds at most limit entries.
func Project(report *domain.AggregateReport, limit int) ChartData {
	return ChartData{
		Popularity: []Bar{
			{Label: "WATCHERS", Value: report.TotalWatchers},
			{Label: "STARS", Value: report.TotalStars},
			{Label: "FORKS", Value: report.TotalForks},
			{Label: "OPEN ISSUES", Value: report.TotalOpenIssues},
		},
		Status: []Bar{
			{Label: "PUBLIC REPOS", Value: report.PublicRepos},
			{Label: "PRIVATE REPOS", Value: report.PrivateRepos},
			{Label: "ACTIVE REPOS", Value: report.ActiveRepos},
			{Label: "STALE REPOS", Value: report.StaleRepos},
		},
		Languages: toBars(report.Languages()),
		TopStars:  topStars(report, limit),
	}
}

func topStars(report *domain.AggregateReport, limit int) []Bar {
	bars := toBars(report.StarsPerRepo())
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Value > bars[j].Value
	})
	n := max(0, min(limit, report.TotalRepos, len(bars)))
	return bars[:n]
}

func toBars(entries []domain.Entry) []Bar {
	bars := make([]Bar, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, Bar{Label: e.Key, Value: e.Value})
	}
	return bars
}
