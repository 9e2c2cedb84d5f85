//go:build !integration

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/newsdesk/internal/store"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &Client{Addr: srv.URL, Client: *srv.Client()}
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		_, _ = w.Write([]byte("pong"))
	})

	s, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pong", s)
}

func TestListArticlesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Saúde", r.URL.Query().Get("category"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"id":"a1","title":"Um","views":2}]`))
	})

	articles, err := c.ListArticles(context.Background(), "Saúde", 3)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "a1", articles[0].ID)
}

func TestTrackSection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var v SectionView
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&v))
		assert.Equal(t, "H2", v.SectionLevel)
		_, _ = w.Write([]byte(`{"success":true,"action":"inserted"}`))
	})

	action, err := c.TrackSection(context.Background(), SectionView{ArticleID: "a1", UserID: "u1", SectionTitle: "Intro", SectionLevel: "H2"})
	require.NoError(t, err)
	assert.Equal(t, store.ActionInserted, action)
}

func TestReports(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/section-statistics/a1":
			_, _ = w.Write([]byte(`{"articleId":"a1","totalSections":1,"sections":[{"sectionTitle":"Intro","sectionLevel":"H2","uniqueUsers":1,"totalViews":2,"averageViewsPerUser":2}]}`))
		case "/api/analytics/a1":
			_, _ = w.Write([]byte(`{"totalVisits":5,"uniqueVisitors":2}`))
		default:
			http.NotFound(w, r)
		}
	})

	sections, err := c.SectionStatistics(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, sections.TotalSections)
	assert.Equal(t, 2, sections.Sections[0].TotalViews)

	report, err := c.Analytics(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 5, report.TotalVisits)
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"Resource not found."}`))
	})

	_, err := c.GetArticle(context.Background(), "missing")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Resource not found.", apiErr.Status)
}
