// Package configclient implements the HTTP client for the remote
// configuration service that owns shared parameters.
package configclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diceprojects/auth-system/internal/api/metrics"
	"github.com/diceprojects/auth-system/internal/core/domain"
)

const defaultRequestTimeout = 10 * time.Second

// Client talks to the configuration service's /parameters endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the service at baseURL. A nil httpClient falls
// back to one with a default timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// GetByName fetches a single parameter. A 404 from the service maps to
// domain.ErrParameterNotFound.
func (c *Client) GetByName(ctx context.Context, name string) (*domain.Parameter, error) {
	endpoint := c.baseURL + "/parameters/getParameterName/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var param domain.Parameter
	if err := c.do(req, &param); err != nil {
		metrics.ParameterFetchesTotal.WithLabelValues(name, "error").Inc()
		return nil, fmt.Errorf("get parameter %q: %w", name, err)
	}
	metrics.ParameterFetchesTotal.WithLabelValues(name, "ok").Inc()
	return &param, nil
}

// Save creates or updates a parameter; the service upserts by name.
func (c *Client) Save(ctx context.Context, p *domain.Parameter) (*domain.Parameter, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parameters", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var saved domain.Parameter
	if err := c.do(req, &saved); err != nil {
		return nil, fmt.Errorf("save parameter %q: %w", p.Name, err)
	}
	return &saved, nil
}

// Delete removes a parameter by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	endpoint := c.baseURL + "/parameters/delete/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete parameter %q: %w", id, err)
	}
	return nil
}

// List returns every parameter the service holds.
func (c *Client) List(ctx context.Context) ([]*domain.Parameter, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/parameters/ListAll", nil)
	if err != nil {
		return nil, err
	}

	var params []*domain.Parameter
	if err := c.do(req, &params); err != nil {
		return nil, fmt.Errorf("list parameters: %w", err)
	}
	return params, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrParameterNotFound
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("configuration service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
