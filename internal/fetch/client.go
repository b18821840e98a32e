// Package fetch queries the CMS provider-data datastore for one reporting
// year at a time.
package fetch

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
	"unicode/utf8"

	"github.com/gyeh/providerstats/internal/model"
)

// ErrUnknownYear is returned when no dataset id is configured for a year.
var ErrUnknownYear = errors.New("no dataset configured for year")

// Error describes a failed fetch: transport error, timeout, non-2xx
// response or an undecodable body. It is always scoped to one year.
type Error struct {
	Year       int
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch year %d: status=%d body=%s", e.Year, e.StatusCode, snippet(e.Body, 300))
	}
	return fmt.Sprintf("fetch year %d: %s", e.Year, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// snippet returns at most max bytes of b as valid UTF-8, cut on a rune
// boundary.
func snippet(b []byte, max int) string {
	s := strings.ToValidUTF8(strings.TrimSpace(string(b)), "\uFFFD")
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

// Client issues single-attempt queries against the datastore. It does not
// retry; a failure is reported to the caller.
type Client struct {
	BaseURL  string
	Region   string
	Datasets map[int]string
	Timeout  time.Duration
	HTTP     *http.Client
}

// New creates a Client. datasets maps a reporting year to its resource id.
func New(baseURL, region string, datasets map[int]string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Region:   region,
		Datasets: datasets,
		Timeout:  timeout,
		HTTP:     &http.Client{},
	}
}

type queryResponse struct {
	Records []model.RawRecord `json:"records"`
}

// Fetch retrieves up to limit records for year, filtered server-side to the
// client's region. Only the first page (offset 0) is requested.
func (c *Client) Fetch(ctx context.Context, year, limit int) ([]model.RawRecord, error) {
	resourceID, ok := c.Datasets[year]
	if !ok {
		return nil, &Error{Year: year, Err: ErrUnknownYear}
	}

	reqURL, err := c.queryURL(resourceID, limit)
	if err != nil {
		return nil, &Error{Year: year, Err: err}
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &Error{Year: year, URL: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Year: year, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Year: year, URL: reqURL, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Year:       year,
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Body:       body,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var out queryResponse
	if err := dec.Decode(&out); err != nil {
		return nil, &Error{Year: year, URL: reqURL, Err: fmt.Errorf("decode response: %w body=%s", err, snippet(body, 300))}
	}
	return out.Records, nil
}

func (c *Client) queryURL(resourceID string, limit int) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("resource_id", resourceID)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", "0")
	if c.Region != "" {
		q.Set("conditions[0][property]", model.FieldState)
		q.Set("conditions[0][value]", c.Region)
		q.Set("conditions[0][operator]", "=")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
