// Package api is the HTTP client for the news classification service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nickpending/newscheck/internal/config"
	"github.com/nickpending/newscheck/internal/logging"
	"github.com/nickpending/newscheck/internal/news"
)

// maxErrorBody bounds how much of a failed response body is kept for the log
const maxErrorBody = 512

var (
	errNullBody       = errors.New("response body is null")
	errMissingVerdict = errors.New(`response has no "fake" field`)
)

// itemResponse mirrors news.Item but keeps a missing verdict detectable
type itemResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Fake    *bool  `json:"fake"`
}

// Client handles HTTP communication with the classification service
type Client struct {
	baseURL    string
	mlURL      string
	timeout    time.Duration
	httpClient *http.Client
	log        *logging.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the operator log
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout bounds every request; 0 leaves requests unbounded
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMLURL sets the model endpoint base used by Predict and Health
func WithMLURL(mlURL string) Option {
	return func(c *Client) { c.mlURL = strings.TrimRight(mlURL, "/") }
}

// Prediction is the model verdict from POST <ml>/predict
type Prediction struct {
	Prediction  string `json:"prediction"`
	Confidence  string `json:"confidence"`
	Message     string `json:"message"`
	TextPreview string `json:"text_preview"`
}

// Analysis is the detailed model verdict from POST <ml>/analyze
type Analysis struct {
	IsFake          bool    `json:"is_fake"`
	ConfidenceScore float64 `json:"confidence_score"`
	Classification  string  `json:"classification"`
	Message         string  `json:"message"`
	Model           string  `json:"model"`
}

// Health is the model status from GET <ml>/health
type Health struct {
	Status    string `json:"status"`
	Model     string `json:"model"`
	ModelName string `json:"model_name"`
	Task      string `json:"task"`
}

type predictRequest struct {
	Text string `json:"text"`
}

// NewClient creates a client for the news collection at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:    baseURL,
		mlURL:      u.Scheme + "://" + u.Host + "/api/ml",
		httpClient: &http.Client{},
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewClientFromConfig creates a client from loaded configuration
func NewClientFromConfig(cfg *config.Config, log *logging.Logger) (*Client, error) {
	mlURL, err := cfg.GetMLURL()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg.API.BaseURL,
		WithMLURL(mlURL),
		WithTimeout(cfg.GetTimeout()),
		WithLogger(log),
	)
}

// BaseURL returns the news collection endpoint
func (c *Client) BaseURL() string { return c.baseURL }

// MLURL returns the model endpoint base
func (c *Client) MLURL() string { return c.mlURL }

// ListNews fetches every classified item in server order
func (c *Client) ListNews(ctx context.Context) ([]news.Item, error) {
	var items []news.Item
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CheckNews submits content for classification and returns the stored item
func (c *Client) CheckNews(ctx context.Context, sub news.Submission) (news.Item, error) {
	var resp itemResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL, sub, &resp); err != nil {
		return news.Item{}, err
	}
	return resp.item(c.baseURL)
}

// GetNews fetches a single item by id
func (c *Client) GetNews(ctx context.Context, id int64) (news.Item, error) {
	var resp itemResponse
	if err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &resp); err != nil {
		return news.Item{}, err
	}
	return resp.item(c.itemURL(id))
}

// DeleteNews removes a single item by id
func (c *Client) DeleteNews(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

// Predict asks the model endpoint for a verdict on raw text without storing it
func (c *Client) Predict(ctx context.Context, text string) (Prediction, error) {
	var p Prediction
	if err := c.do(ctx, http.MethodPost, c.mlURL+"/predict", predictRequest{Text: text}, &p); err != nil {
		return Prediction{}, err
	}
	return p, nil
}

// Analyze asks the model for a detailed verdict with its raw confidence score
func (c *Client) Analyze(ctx context.Context, text string) (Analysis, error) {
	var a Analysis
	if err := c.do(ctx, http.MethodPost, c.mlURL+"/analyze", predictRequest{Text: text}, &a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

// Health reports the model endpoint status
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, c.mlURL+"/health", nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) itemURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

// do sends one request and decodes a 2xx JSON body into out when out is non-nil
func (c *Client) do(ctx context.Context, method, target string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	entry := c.log.WithRequest(method, target, requestID)
	entry.Debug("sending request")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: target, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	entry.WithField("status", resp.StatusCode).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Debug("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(respBody)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return &StatusError{Method: method, URL: target, Code: resp.StatusCode, Body: snippet}
	}

	if out == nil {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(respBody), []byte("null")) {
		return &ParseError{URL: target, Err: errNullBody}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &ParseError{URL: target, Err: err}
	}
	return nil
}

func (r itemResponse) item(target string) (news.Item, error) {
	if r.Fake == nil {
		return news.Item{}, &ParseError{URL: target, Err: errMissingVerdict}
	}
	return news.Item{ID: r.ID, Title: r.Title, Content: r.Content, Fake: *r.Fake}, nil
}
