// Package meili is a thin client for the Meilisearch document-import API.
// Searching, ranking and index maintenance stay on the engine's side; this
// client only ships records and settings.
package meili

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dgallion1/docketprep/internal/record"
)

// Client communicates with one Meilisearch index.
type Client struct {
	baseURL    string
	apiKey     string
	index      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, index string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		index:   index,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// TaskRef is the async task handle the engine returns for write operations.
type TaskRef struct {
	TaskUID  int64  `json:"taskUid"`
	IndexUID string `json:"indexUid"`
	Status   string `json:"status"`
	Type     string `json:"type"`
}

// Task is the detailed state of an enqueued task.
type Task struct {
	UID    int64  `json:"uid"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Error  *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Settings mirrors the index settings fields this tool manages.
type Settings struct {
	SearchableAttributes []string `json:"searchableAttributes,omitempty"`
	FilterableAttributes []string `json:"filterableAttributes,omitempty"`
}

// DefaultSettings configures the index for the court-record field set:
// full-text search over content, document id and docket number, with
// filtering on folder, page number and docket number.
func DefaultSettings() Settings {
	return Settings{
		SearchableAttributes: []string{"content", "document_id", "case_number"},
		FilterableAttributes: []string{"folder", "page_number", "case_number"},
	}
}

// AddDocuments imports a batch of records, keyed by the record id.
func (c *Client) AddDocuments(ctx context.Context, records []record.Record) (*TaskRef, error) {
	body, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}

	u := c.baseURL + "/indexes/" + c.index + "/documents?primaryKey=id"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("add documents: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		return nil, responseError("add documents", resp)
	}

	var task TaskRef
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &task, nil
}

// UpdateSettings patches the index settings.
func (c *Client) UpdateSettings(ctx context.Context, s Settings) (*TaskRef, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}

	u := c.baseURL + "/indexes/" + c.index + "/settings"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		return nil, responseError("update settings", resp)
	}

	var task TaskRef
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &task, nil
}

// GetTask retrieves the state of an enqueued task.
func (c *Client) GetTask(ctx context.Context, uid int64) (*Task, error) {
	u := c.baseURL + "/tasks/" + strconv.FormatInt(uid, 10)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("get task", resp)
	}

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &task, nil
}

// WaitForTask polls until the task leaves the queued/processing states.
func (c *Client) WaitForTask(ctx context.Context, uid int64, pollEvery time.Duration) (*Task, error) {
	if pollEvery <= 0 {
		pollEvery = 250 * time.Millisecond
	}
	ticker := time.NewTicker(pollEvery)
	defer ticker.Stop()

	for {
		task, err := c.GetTask(ctx, uid)
		if err != nil {
			return nil, err
		}
		switch task.Status {
		case "succeeded":
			return task, nil
		case "failed", "canceled":
			msg := task.Status
			if task.Error != nil {
				msg = fmt.Sprintf("%s: %s (%s)", task.Status, task.Error.Message, task.Error.Code)
			}
			return task, fmt.Errorf("task %d %s", uid, msg)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) setHeaders(req *http.Request) {
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// responseError turns a non-success response into an error, marking overload
// and server-side statuses as retryable.
func responseError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	err := fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, string(body))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &RetryableError{Status: resp.StatusCode, Err: err}
	}
	return err
}
