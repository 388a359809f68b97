package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/devhub/internal/utils"
)

const DefaultUserAgent = "devhub"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type DefaultHTTPClient struct{ *http.Client }

// NewHTTPClient returns a client suited for mirror probes: it never follows
// redirects, so a 3xx answer is measured as is, and it does not keep idle
// connections around between benchmark runs.
func NewHTTPClient(timeout time.Duration) *DefaultHTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	return &DefaultHTTPClient{Client: &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}}
}

// Head issues a HEAD request to url and returns the response status code.
// The body is always drained and closed.
func Head(ctx context.Context, c HTTPClient, url, userAgent string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return 0, err
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.Do(req)
	if err != nil {
		return 0, err
	}
	defer utils.Try(resp.Body.Close)

	return resp.StatusCode, nil
}

// IsSuccess reports whether a probe status counts as a live mirror.
func IsSuccess(status int) bool {
	return status >= 200 && status < 400
}

// HeadOK is Head followed by IsSuccess.
func HeadOK(ctx context.Context, c HTTPClient, url, userAgent string) error {
	status, err := Head(ctx, c, url, userAgent)
	if err != nil {
		return err
	}
	if !IsSuccess(status) {
		return fmt.Errorf("unexpected status %d", status)
	}
	return nil
}
