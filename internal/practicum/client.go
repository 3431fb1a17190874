package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

const maxResponseBodySize = 1 << 20 // 1MB

const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// Client calls the Practicum homework-statuses API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	retryDelay time.Duration
}

// NewClient builds a client authenticated with the given token. The API
// expects "Authorization: OAuth <token>", which the oauth2 transport
// produces when the token type is set explicitly.
func NewClient(token, endpoint string, timeout time.Duration) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "OAuth"})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = timeout

	return &Client{
		httpClient: hc,
		endpoint:   endpoint,
		retryDelay: retryBaseDelay,
	}
}

// HomeworkStatuses fetches homework updates since fromDate (unix seconds).
// A zero or negative cursor is replaced with the current time.
//
// Transport failures are retried with exponential backoff before giving up
// with a *RequestError. Non-200 answers (*APIError) and undecodable bodies
// (*DecodeError) are returned immediately; the caller's loop retries those
// on its own schedule.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (*StatusesResponse, error) {
	if fromDate <= 0 {
		fromDate = time.Now().Unix()
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	var lastErr error
	delay := c.retryDelay
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &RequestError{Err: ctx.Err()}
			case <-time.After(delay):
			}
			delay *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, &RequestError{Err: err}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		return decodeResponse(resp)
	}

	return nil, &RequestError{Err: lastErr}
}

func decodeResponse(resp *http.Response) (*StatusesResponse, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var eb apiErrorBody
		_ = json.Unmarshal(body, &eb)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: eb.Error.Error}
	}

	var out StatusesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &out, nil
}
