package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/newsdesk/internal/analytics"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	t.Setenv("NEWSDESK_VIDEO_DIR", t.TempDir())

	out, err := execute(t, "routes")
	require.NoError(t, err)

	assert.Contains(t, out, "/api/articles")
	assert.Contains(t, out, "/api/section-tracking")
	assert.Contains(t, out, "/videos")
}

func TestCommandsRequireDatabase(t *testing.T) {
	t.Setenv("NEWSDESK_DATABASE_URL", "")

	for _, args := range [][]string{{"migrate"}, {"seed"}, {"stats", "a1"}} {
		_, err := execute(t, args...)
		assert.ErrorContains(t, err, "NEWSDESK_DATABASE_URL", args[0])
	}
}

func TestStatsNeedsArticleID(t *testing.T) {
	_, err := execute(t, "stats")
	assert.Error(t, err)
}

func TestRenderVisits(t *testing.T) {
	out := renderVisits(analytics.Report{
		TotalVisits:     7,
		UniqueVisitors:  3,
		PeakHours:       []analytics.PeakHour{{Hour: 14, Visits: 4}},
		VisitsByCountry: []analytics.CountryVisits{{Country: "Brazil", Visits: 5}},
	})

	assert.Contains(t, out, "Total visits")
	assert.Contains(t, out, "14h")
	assert.Contains(t, out, "Brazil")
	assert.True(t, strings.HasPrefix(out, "╭"))
}

func TestRenderSections(t *testing.T) {
	out := renderSections(analytics.SectionReport{
		ArticleID: "a1",
		Sections: []analytics.SectionStat{
			{SectionTitle: "Intro", SectionLevel: "H2", UniqueUsers: 2, TotalViews: 5, AverageViewsPerUser: 2.5},
		},
	})

	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "2.50")
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, nil)

	assert.Contains(t, out, "only")
	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestRateLimiterSizedByTrackingClients(t *testing.T) {
	t.Setenv("NEWSDESK_VIDEO_DIR", t.TempDir())
	t.Setenv("NEWSDESK_GEO_CACHE_SIZE", "1024")
	t.Setenv("NEWSDESK_TRACKING_CLIENTS", "0")

	_, err := execute(t, "routes")
	assert.ErrorContains(t, err, "rate limiter")
}
