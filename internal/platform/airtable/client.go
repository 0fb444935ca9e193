package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.airtable.com/v0"
	httpTimeout    = 15 * time.Second

	// Airtable allows 5 requests/second per base.
	requestsPerSecond = 5

	// Cap on same-page retries after a 429. The provider advises a delay
	// via Retry-After; past the cap the caller sees the 429 instead of an
	// unbounded sleep loop.
	maxRateLimitRetries = 3

	defaultRetryAfter = time.Second
)

// APIError is a non-success response from the provider, preserving the
// upstream status and error code for passthrough at the HTTP boundary.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("airtable: %s (status %d, code %s)", e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("airtable: status %d, code %s", e.StatusCode, e.Code)
}

// Client talks to one Airtable base.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	baseID     string
	limiter    *rate.Limiter
	logger     *zap.Logger

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

type Option func(*Client)

// WithBaseURL points the client at a different endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(apiKey, baseID string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: httpTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		baseID:     baseID,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:     logger,
		sleep:      sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListOptions narrows a table read. The zero value lists everything.
type ListOptions struct {
	FilterByFormula string
	Sort            []SortField
	Fields          []string
	MaxRecords      int
	PageSize        int
	View            string

	// FieldIDKeys asks the provider to key the field bag by stable field
	// ID instead of display name, so reads survive column renames.
	FieldIDKeys bool
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.FilterByFormula != "" {
		q.Set("filterByFormula", o.FilterByFormula)
	}
	for i, s := range o.Sort {
		q.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		q.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
	}
	for _, f := range o.Fields {
		q.Add("fields[]", f)
	}
	if o.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(o.MaxRecords))
	}
	if o.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(o.PageSize))
	}
	if o.View != "" {
		q.Set("view", o.View)
	}
	if o.FieldIDKeys {
		q.Set("returnFieldsByFieldId", "true")
	}
	return q
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

// ListAll pages through a table until the provider stops returning a
// continuation offset, concatenating records in arrival order.
func (c *Client) ListAll(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	var records []Record
	offset := ""
	for {
		page, err := c.listPage(ctx, table, opts, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

func (c *Client) listPage(ctx context.Context, table string, opts ListOptions, offset string) (*listResponse, error) {
	q := opts.values()
	if offset != "" {
		q.Set("offset", offset)
	}
	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.baseID, url.PathEscape(table), q.Encode())

	var page listResponse
	if err := c.get(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetRecord fetches one record by ID.
func (c *Client) GetRecord(ctx context.Context, table, id string) (Record, error) {
	q := url.Values{}
	q.Set("returnFieldsByFieldId", "true")
	endpoint := fmt.Sprintf("%s/%s/%s/%s?%s", c.baseURL, c.baseID, url.PathEscape(table), url.PathEscape(id), q.Encode())

	var rec Record
	if err := c.get(ctx, endpoint, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// get issues one logical request. A 429 is retried against the same URL
// after the advised delay, up to maxRateLimitRetries; any other
// non-success surfaces as *APIError.
func (c *Client) get(ctx context.Context, endpoint string, target any) error {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("airtable request: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			delay := retryAfter(resp)
			resp.Body.Close()
			if attempt >= maxRateLimitRetries {
				return &APIError{StatusCode: http.StatusTooManyRequests, Code: "RATE_LIMIT", Message: "rate limit retries exhausted"}
			}
			c.logger.Warn("airtable rate limited, retrying same page",
				zap.Duration("delay", delay),
				zap.Int("attempt", attempt+1))
			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := decodeAPIError(resp)
			resp.Body.Close()
			return apiErr
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("airtable decode: %w", err)
		}
		return nil
	}
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultRetryAfter
}

// errorBody matches the provider's error envelope. The "error" member is
// either a string code or {type, message}.
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Code: "AIRTABLE_ERROR"}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Error) == 0 {
		return apiErr
	}

	var code string
	if json.Unmarshal(body.Error, &code) == nil {
		apiErr.Code = code
		return apiErr
	}

	var detail struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body.Error, &detail) == nil {
		if detail.Type != "" {
			apiErr.Code = detail.Type
		}
		apiErr.Message = detail.Message
	}
	return apiErr
}
