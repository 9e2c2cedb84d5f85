// Package client is a small Go client for the newsdesk API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyParamoshkin/newsdesk/internal/analytics"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
)

type Client struct {
	http.Client
	Addr string
}

// APIError is a non-2xx answer.
type APIError struct {
	StatusCode int
	Status     string `json:"status"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("newsdesk: %d %s: %s", e.StatusCode, e.Status, e.Message)
	}

	return fmt.Sprintf("newsdesk: %d %s", e.StatusCode, e.Status)
}

// SectionView is the body of a section tracking beacon.
type SectionView struct {
	ArticleID    string `json:"articleId"`
	UserID       string `json:"userId"`
	SectionTitle string `json:"sectionTitle"`
	SectionLevel string `json:"sectionLevel"`
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (c *Client) ListArticles(ctx context.Context, category string, limit int) ([]model.ArticleSummary, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []model.ArticleSummary
	err := c.call(ctx, http.MethodGet, "/api/articles?"+q.Encode(), nil, &out)

	return out, err
}

func (c *Client) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	var out model.Article
	if err := c.call(ctx, http.MethodGet, "/api/articles/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// TrackSection reports one section view and returns whether it was new.
func (c *Client) TrackSection(ctx context.Context, v SectionView) (store.TrackAction, error) {
	var out struct {
		Action store.TrackAction `json:"action"`
	}
	err := c.call(ctx, http.MethodPost, "/api/section-tracking", v, &out)

	return out.Action, err
}

func (c *Client) SectionStatistics(ctx context.Context, articleID string) (*analytics.SectionReport, error) {
	var out analytics.SectionReport
	if err := c.call(ctx, http.MethodGet, "/api/section-statistics/"+url.PathEscape(articleID), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Analytics(ctx context.Context, articleID string) (*analytics.Report, error) {
	var out analytics.Report
	if err := c.call(ctx, http.MethodGet, "/api/analytics/"+url.PathEscape(articleID), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		if apiErr.Status == "" {
			apiErr.Status = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
