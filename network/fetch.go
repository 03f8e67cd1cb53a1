package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/catchup-cli/catchup/log"
	"github.com/catchup-cli/catchup/util"
)

// FetchError reports a page that could not be downloaded or decoded.
type FetchError struct {
	URL string
	// StatusCode is set when the server answered with a non-2xx status.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher downloads pages as text or JSON.
// The id passed to each call only labels log lines.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns a Fetcher sending userAgent with every request.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	return &Fetcher{client: client, userAgent: userAgent}
}

// FetchText returns the response body of url.
func (f *Fetcher) FetchText(ctx context.Context, url, id string) (string, error) {
	log.Debugf("%s: downloading webpage %s", id, url)
	body, err := f.get(ctx, url, "text/html,application/xhtml+xml,*/*;q=0.8")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchJSON decodes the response body of url into v.
func (f *Fetcher) FetchJSON(ctx context.Context, url, id string, v any) error {
	log.Debugf("%s: downloading JSON %s", id, url)
	body, err := f.get(ctx, url, "application/json, text/plain, */*")
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &FetchError{URL: url, Err: fmt.Errorf("decode json: %w", err)}
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "zh-HK,zh;q=0.9,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}
