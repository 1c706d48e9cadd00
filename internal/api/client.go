// Package api is a small Go client for the estimator HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pefman/eclipse-duel/internal/models"
	"github.com/pefman/eclipse-duel/internal/stats"
)

// Large runs can take a while server-side; keep the client timeout generous.
var httpClient = &http.Client{Timeout: 120 * time.Second}

// Config holds API configuration
type Config struct {
	BaseURL string
}

type Client struct {
	config Config
}

func NewClient(baseURL string) *Client {
	return &Client{
		config: Config{BaseURL: baseURL},
	}
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + path
}

func (c *Client) apiPost(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) apiGet(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Estimate runs an estimation job on the remote service.
func (c *Client) Estimate(ctx context.Context, req models.EstimateRequest) (models.EstimateResponse, error) {
	var resp models.EstimateResponse
	if err := c.apiPost(ctx, "/api/estimate", req, &resp); err != nil {
		return models.EstimateResponse{}, err
	}
	return resp, nil
}

// RecentRuns fetches the service's recent run history.
func (c *Client) RecentRuns(ctx context.Context) ([]stats.Run, error) {
	var runs []stats.Run
	if err := c.apiGet(ctx, "/api/stats/recent", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
