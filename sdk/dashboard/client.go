package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the waitline API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithToken sets a pre-issued access token, skipping Login.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// NewClient creates a new waitline API client.
//
// Parameters:
//   - baseURL: The API base URL (e.g., "http://localhost:8080")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the access token currently held by the client.
func (c *Client) Token() string {
	return c.token
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, name, password string) (*RegisterResult, error) {
	url := fmt.Sprintf("%s/auth/register", c.baseURL)

	body := map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	}

	var result RegisterResult
	if err := c.doRequest(ctx, http.MethodPost, url, body, &result); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &result, nil
}

// Login authenticates and stores the issued access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	url := fmt.Sprintf("%s/auth/login", c.baseURL)

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result LoginResult
	if err := c.doRequest(ctx, http.MethodPost, url, body, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	c.token = result.AccessToken
	return &result, nil
}

// Tickets retrieves the caller's tickets, oldest first.
func (c *Client) Tickets(ctx context.Context) ([]Ticket, error) {
	url := fmt.Sprintf("%s/queue", c.baseURL)

	var tickets []Ticket
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &tickets); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// Issue creates a new ticket.
func (c *Client) Issue(ctx context.Context, req IssueRequest) (*Ticket, error) {
	url := fmt.Sprintf("%s/queue", c.baseURL)

	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPost, url, req, &ticket); err != nil {
		return nil, fmt.Errorf("issue ticket: %w", err)
	}
	return &ticket, nil
}

// Update applies a partial update to a ticket.
func (c *Client) Update(ctx context.Context, ticketID uint, req UpdateRequest) (*Ticket, error) {
	url := fmt.Sprintf("%s/queue/%d", c.baseURL, ticketID)

	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPut, url, req, &ticket); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return &ticket, nil
}

// Delete removes a ticket.
func (c *Client) Delete(ctx context.Context, ticketID uint) error {
	url := fmt.Sprintf("%s/queue/%d", c.baseURL, ticketID)

	if err := c.doRequest(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

// Counters retrieves the next per-class display counters.
func (c *Client) Counters(ctx context.Context) (*Counters, error) {
	url := fmt.Sprintf("%s/queue/counters", c.baseURL)

	var counters Counters
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &counters); err != nil {
		return nil, fmt.Errorf("get counters: %w", err)
	}
	return &counters, nil
}

// CallNext claims the next waiting ticket and marks it serving.
// Returns (nil, nil) when the queue has no waiting tickets.
func (c *Client) CallNext(ctx context.Context) (*Ticket, error) {
	url := fmt.Sprintf("%s/queue/next", c.baseURL)

	var ticket Ticket
	found, err := c.doRequestOptional(ctx, http.MethodPost, url, nil, &ticket)
	if err != nil {
		return nil, fmt.Errorf("call next: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &ticket, nil
}

// Reset deletes all of the caller's tickets.
func (c *Client) Reset(ctx context.Context) (*ResetResult, error) {
	url := fmt.Sprintf("%s/queue/reset", c.baseURL)

	var result ResetResult
	if err := c.doRequest(ctx, http.MethodDelete, url, nil, &result); err != nil {
		return nil, fmt.Errorf("reset queue: %w", err)
	}
	return &result, nil
}

// doRequest performs an HTTP request and decodes the response data.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	_, err := c.doRequestOptional(ctx, method, url, body, result)
	return err
}

// doRequestOptional performs an HTTP request; the boolean reports
// whether the response carried a data payload.
func (c *Client) doRequestOptional(ctx context.Context, method, url string, body any, result any) (bool, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}

	var apiResp apiResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &apiResp); err != nil {
			return false, fmt.Errorf("unmarshal response: status=%d body=%s", resp.StatusCode, string(respBody))
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if apiResp.Error != nil {
			return false, fmt.Errorf("api error: status=%d type=%s message=%s", resp.StatusCode, apiResp.Error.Type, apiResp.Error.Message)
		}
		return false, fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if !apiResp.Success {
		return false, fmt.Errorf("api error: %s", apiResp.Message)
	}

	if result == nil || len(apiResp.Data) == 0 || string(apiResp.Data) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(apiResp.Data, result); err != nil {
		return false, fmt.Errorf("unmarshal data: %w", err)
	}

	return true, nil
}
