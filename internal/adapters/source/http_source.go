package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
)

// HTTPSource fetches the CSV with a single GET request.
type HTTPSource struct {
	url      string
	client   *http.Client
	maxBytes int64
}

// NewHTTPSource creates an HTTPSource. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client, maxBytes: maxBodyBytes}
}

// WithMaxBytes overrides the body size limit. Larger bodies fail the fetch.
func (s *HTTPSource) WithMaxBytes(n int64) *HTTPSource {
	if n > 0 {
		s.maxBytes = n
	}
	return s
}

// Location returns the URL.
func (s *HTTPSource) Location() string { return s.url }

// Fetch issues the GET. Any transport error, non-2xx status or oversized body is
// ErrSourceUnavailable.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid source url '%s': %v", apperrors.ErrSourceUnavailable, s.url, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s responded with status %d", apperrors.ErrSourceUnavailable, s.url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body from %s: %v", apperrors.ErrSourceUnavailable, s.url, err)
	}
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %s body exceeds %d bytes", apperrors.ErrSourceUnavailable, s.url, s.maxBytes)
	}
	return body, nil
}
