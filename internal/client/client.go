package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jmehdipour/jobs-api/internal/model"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status=%d detail=%s", e.Code, e.Detail)
}

// Client talks to the jobs API over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListJobs(ctx context.Context, apiKey string) ([]model.Job, error) {
	var out []model.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/", apiKey, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateJob(ctx context.Context, apiKey, name string, salary float64) (model.Job, error) {
	body := map[string]any{"name": name, "salary": salary}

	var out model.Job
	if err := c.do(ctx, http.MethodPost, "/jobs/", apiKey, body, &out); err != nil {
		return model.Job{}, err
	}
	return out, nil
}

func (c *Client) GetJob(ctx context.Context, apiKey string, id int64) (model.Job, error) {
	var out model.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+strconv.FormatInt(id, 10), apiKey, nil, &out); err != nil {
		return model.Job{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, apiKey string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}

	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		var eb struct {
			Detail string `json:"detail"`
		}
		raw, _ := io.ReadAll(res.Body)
		if json.Unmarshal(raw, &eb) != nil || eb.Detail == "" {
			eb.Detail = strings.TrimSpace(string(raw))
		}
		return &StatusError{Code: res.StatusCode, Detail: eb.Detail}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
