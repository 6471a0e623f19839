package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPSource fetches a document over HTTP, typically from the static
// site's CDN.
type HTTPSource struct {
	client *resty.Client
	url    string
}

// NewHTTPSource creates an HTTP source.
// Parameters:
//   - rawURL: absolute document URL.
//   - timeout: request timeout; zero keeps the client default.
//   - retries: retry count for transient failures.
// Returns:
//   - *HTTPSource: source bound to rawURL.
func NewHTTPSource(rawURL string, timeout time.Duration, retries int) *HTTPSource {
	client := resty.New()
	client.SetHeader("Accept", "application/json, application/octet-stream")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if retries > 0 {
		client.SetRetryCount(retries)
		client.SetRetryWaitTime(500 * time.Millisecond)
	}

	return &HTTPSource{client: client, url: rawURL}
}

func (s *HTTPSource) GetSourceID() string { return "http:" + s.url }

// Name returns the URL path so the extension drives format detection.
func (s *HTTPSource) Name() string {
	u, err := url.Parse(s.url)
	if err != nil {
		return s.url
	}
	return u.Path
}

// Open downloads the whole document.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", s.url, resp.StatusCode())
	}

	return io.NopCloser(bytes.NewReader(resp.Body())), nil
}
