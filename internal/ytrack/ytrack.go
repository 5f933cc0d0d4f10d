// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ytrack provides a limited implementation of the YouTrack REST API
// necessary to search, read and update issues.  Responses are returned as
// raw JSON: the set of fields YouTrack includes depends entirely on the
// "fields" request parameter, so the payload is relayed to the caller
// unmodified.
package ytrack

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

	"golang.org/x/time/rate"

	"github.com/rusq/ytmcp/internal/network"
)

//go:generate mockgen -destination=mock_ytrack/mock_ytrack.go . Tracker

// Tracker is the interface with the YouTrack operations required by the MCP
// server.  Its sole purpose is mocking the [Client] in tests.
type Tracker interface {
	// SearchIssues returns issues matching the query, as a raw JSON array.
	SearchIssues(ctx context.Context, p SearchParams) (json.RawMessage, error)
	// GetIssue returns a single issue as a raw JSON object.
	GetIssue(ctx context.Context, issueID string, fields string, customFields string) (json.RawMessage, error)
	// UpdateIssue applies a partial update to the issue and returns the
	// requested projection of the updated issue.
	UpdateIssue(ctx context.Context, issueID string, data map[string]any, fields string) (json.RawMessage, error)
	// AddComment creates a comment on the issue and returns the requested
	// projection of the created comment.
	AddComment(ctx context.Context, issueID string, text string, fields string) (json.RawMessage, error)
	// Projects returns the projects visible to the token user.
	Projects(ctx context.Context) ([]Project, error)
	// Me returns the profile of the token user.
	Me(ctx context.Context) (User, error)
	// BaseURL returns the YouTrack instance URL the client is connected to.
	BaseURL() string
}

// maxErrBodySz limits how much of an error response body is read.
const maxErrBodySz = 64 * 1024

// defRetryAfter is the wait applied when the 429 response carries no usable
// Retry-After header.
const defRetryAfter = 30 * time.Second

var (
	// ErrNoURL is returned when the YouTrack base URL is empty.
	ErrNoURL = errors.New("youtrack url is empty")
	// ErrNoToken is returned when the YouTrack API token is empty.
	ErrNoToken = errors.New("youtrack token is empty")
	// ErrNoIssueID is returned when an operation requiring an issue ID is
	// called with an empty one.
	ErrNoIssueID = errors.New("issue id is empty")
)

// Client is the YouTrack REST API client.  Zero value is not usable, create
// one with [New].
type Client struct {
	cl      *http.Client
	apiPath string // <base-url>/api
	baseURL string
	token   string

	limits    network.Limits
	limSearch *rate.Limiter
	limRead   *rate.Limiter
	limMutate *rate.Limiter
}

// Option is the signature of the Client option-setting function.
type Option func(*Client)

// WithHTTPClient sets the http client to use.  If not given,
// http.DefaultClient is used.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLimits sets the API limits for the client.  If the limits fail
// validation, the default limits are kept.
func WithLimits(l network.Limits) Option {
	return func(c *Client) {
		if l.Validate() == nil {
			c.limits = l
		}
	}
}

// New creates a new YouTrack client for the instance at baseURL (i.e.
// "https://example.youtrack.cloud"), authenticating with the permanent
// token.
func New(baseURL string, token string, opt ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, ErrNoURL
	}
	if token == "" {
		return nil, ErrNoToken
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid youtrack url: %w", err)
	}
	c := &Client{
		cl:      http.DefaultClient,
		apiPath: baseURL + "/api/",
		baseURL: baseURL,
		token:   token,
		limits:  network.DefLimits,
	}
	for _, o := range opt {
		o(c)
	}
	c.limSearch = network.NewLimiter(network.TierSearch, c.limits.Search.Burst, c.limits.Search.Boost)
	c.limRead = network.NewLimiter(network.TierRead, c.limits.Read.Burst, c.limits.Read.Boost)
	c.limMutate = network.NewLimiter(network.TierMutate, c.limits.Mutate.Burst, c.limits.Mutate.Boost)
	return c, nil
}

// BaseURL returns the YouTrack instance URL.
func (cl *Client) BaseURL() string {
	return cl.baseURL
}

// Raw returns the underlying http.Client.
func (cl *Client) Raw() *http.Client {
	return cl.cl
}

// newRequest creates an authenticated request for the API endpoint.  body may
// be nil for requests without a payload.
func (cl *Client) newRequest(ctx context.Context, method string, endpoint string, q url.Values, body any) (*http.Request, error) {
	u := cl.apiPath + endpoint
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(data)
	}
	r, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Authorization", "Bearer "+cl.token)
	r.Header.Set("Accept", "application/json")
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r, nil
}

// do executes the request constructed by mkreq, applying the rate limiter
// and the retry policy.  It returns the raw response body; a 204 No Content
// response yields a nil body and no error.
func (cl *Client) do(ctx context.Context, lim *rate.Limiter, mkreq func() (*http.Request, error)) (json.RawMessage, error) {
	var raw json.RawMessage
	err := network.WithRetry(ctx, lim, cl.limits.Retries, func() error {
		r, err := mkreq()
		if err != nil {
			return err
		}
		resp, err := cl.cl.Do(r)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if err := checkResponse(resp); err != nil {
			return err
		}
		if resp.StatusCode == http.StatusNoContent {
			raw = nil
			return nil
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		raw = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (cl *Client) get(ctx context.Context, lim *rate.Limiter, endpoint string, q url.Values) (json.RawMessage, error) {
	return cl.do(ctx, lim, func() (*http.Request, error) {
		return cl.newRequest(ctx, http.MethodGet, endpoint, q, nil)
	})
}

func (cl *Client) post(ctx context.Context, lim *rate.Limiter, endpoint string, q url.Values, body any) (json.RawMessage, error) {
	return cl.do(ctx, lim, func() (*http.Request, error) {
		return cl.newRequest(ctx, http.MethodPost, endpoint, q, body)
	})
}

// checkResponse converts a non-2xx response into an error.  429 becomes a
// [network.RateLimitedError], a parseable YouTrack error body becomes an
// [APIError], everything else a [network.StatusCodeError].
func checkResponse(resp *http.Response) error {
	if 200 <= resp.StatusCode && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return &network.RateLimitedError{RetryAfter: retryAfter(resp)}
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySz))
	var ae APIError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Err != "" {
		ae.StatusCode = resp.StatusCode
		return &ae
	}
	return &network.StatusCodeError{Code: resp.StatusCode, Status: resp.Status}
}

// retryAfter returns the duration advertised in the Retry-After header, or
// defRetryAfter if the header is absent or unparseable.
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return defRetryAfter
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return defRetryAfter
}

// joinFields appends the custom fields to the fields list.
func joinFields(fields string, custom string) string {
	if custom == "" {
		return fields
	}
	return fields + "," + custom
}
