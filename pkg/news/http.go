package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// httpSource is the shared plumbing of the providers that only speak JSON
// over plain HTTP.
type httpSource struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newHTTPSource(name, baseURL, apiKey string) httpSource {
	return httpSource{
		name:       name,
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *httpSource) Name() string {
	return s.name
}

// getJSON issues a GET with query and decodes the JSON body into v.
func (s *httpSource) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	prefix := strings.ToLower(s.name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%s request: %w", prefix, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s fetch: %w", prefix, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s fetch: unexpected status %d", prefix, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%s decode: %w", prefix, err)
	}

	return nil
}
