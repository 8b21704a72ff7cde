package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

func aggregateOrFail(t *testing.T, repos []domain.Repository) *domain.AggregateReport {
	t.Helper()
	report, err := Aggregate(repos, fixedNow, domain.StaleThresholdDays)
	require.NoError(t, err)
	return report
}

func TestProject_FixedViews(t *testing.T) {
	report := aggregateOrFail(t, sampleRepos())

	charts := Project(report, 7)

	assert.Equal(t, []Bar{
		{Label: "WATCHERS", Value: 15},
		{Label: "STARS", Value: 15},
		{Label: "FORKS", Value: 9},
		{Label: "OPEN ISSUES", Value: 5},
	}, charts.Popularity)
	assert.Equal(t, []Bar{
		{Label: "PUBLIC REPOS", Value: 3},
		{Label: "PRIVATE REPOS", Value: 1},
		{Label: "ACTIVE REPOS", Value: 2},
		{Label: "STALE REPOS", Value: 2},
	}, charts.Status)
	assert.Equal(t, []Bar{
		{Label: "Go", Value: 2},
		{Label: "Rust", Value: 1},
		{Label: domain.UnknownLanguage, Value: 1},
	}, charts.Languages)
}

func TestProject_TopStarsIsStable(t *testing.T) {
	stars := []int{5, 1, 9, 9, 3, 0, 2}
	names := []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6"}
	var repos []domain.Repository
	for i, s := range stars {
		repos = append(repos, domain.Repository{Name: names[i], Stars: s})
	}

	charts := Project(aggregateOrFail(t, repos), 7)

	assert.Equal(t, []Bar{
		{Label: "r2", Value: 9},
		{Label: "r3", Value: 9},
		{Label: "r0", Value: 5},
		{Label: "r4", Value: 3},
		{Label: "r6", Value: 2},
		{Label: "r1", Value: 1},
		{Label: "r5", Value: 0},
	}, charts.TopStars)
}

func TestProject_TopStarsLimit(t *testing.T) {
	testCases := []struct {
		name        string
		repos       int
		uniqueNames int
		limit       int
		expectedLen int
	}{
		{name: "fewer repositories than the limit", repos: 3, uniqueNames: 3, limit: 7, expectedLen: 3},
		{name: "exactly the limit", repos: 7, uniqueNames: 7, limit: 7, expectedLen: 7},
		{name: "more repositories than the limit", repos: 25, uniqueNames: 25, limit: 7, expectedLen: 7},
		{name: "duplicate names shrink the star mapping", repos: 6, uniqueNames: 2, limit: 7, expectedLen: 2},
		{name: "zero limit", repos: 4, uniqueNames: 4, limit: 0, expectedLen: 0},
		{name: "negative limit", repos: 4, uniqueNames: 4, limit: -1, expectedLen: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var repos []domain.Repository
			for i := 0; i < tc.repos; i++ {
				repos = append(repos, domain.Repository{Name: fmt.Sprintf("repo-%d", i%tc.uniqueNames), Stars: i})
			}

			var charts ChartData
			require.NotPanics(t, func() { charts = Project(aggregateOrFail(t, repos), tc.limit) })

			assert.Len(t, charts.TopStars, tc.expectedLen)
			for i := 1; i < len(charts.TopStars); i++ {
				assert.GreaterOrEqual(t, charts.TopStars[i-1].Value, charts.TopStars[i].Value)
			}
		})
	}
}

func TestProject_DoesNotMutateReport(t *testing.T) {
	report := aggregateOrFail(t, []domain.Repository{
		{Name: "low", Stars: 1},
		{Name: "high", Stars: 10},
	})

	_ = Project(report, 7)

	assert.Equal(t, []domain.Entry{{Key: "low", Value: 1}, {Key: "high", Value: 10}}, report.StarsPerRepo())
}
