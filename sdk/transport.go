package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Version segments of the two service roots. Most resource families
// live under /v1; open box and recommendations are served from /beta.
const (
	versionV1   = "/v1"
	versionBeta = "/beta"
)

// httpTransport handles HTTP communication with the Best Buy APIs.
// It owns URL construction (the API key check, format suppression for
// direct lookups, and path escaping) and request execution, wrapping
// every transport-level failure into a ServiceError.
type httpTransport struct {
	// client is the underlying HTTP client
	client *http.Client
	// config holds the SDK configuration, immutable after construction
	config *Config
	// rootV1 and rootBeta are the two fixed roots requests go to
	rootV1   string
	rootBeta string
	// observer for monitoring operations
	observer Observer
}

// newHTTPTransport creates the transport for a validated config.
func newHTTPTransport(config *Config) (*httpTransport, error) {
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL must have a scheme and host")
	}

	root := strings.TrimRight(config.BaseURL, "/")
	return &httpTransport{
		client:   &http.Client{Timeout: config.Timeout},
		config:   config,
		rootV1:   root + versionV1,
		rootBeta: root + versionBeta,
		observer: config.Observer,
	}, nil
}

// buildURL produces the absolute request URL for a path expression.
//
// The API key is checked first: an empty key fails with an
// AuthorizationError before any URL work or network I/O. The effective
// key is then stamped into a copy of the params, and the format
// parameter is forced: empty for direct single-resource lookups ending
// in ".json" (the service rejects format= on those), "json" for
// everything else. Literal spaces in the path are replaced with %20;
// no other path characters are altered.
func (t *httpTransport) buildURL(root, path string, params ResponseParams) (string, error) {
	if t.config.APIKey == "" {
		return "", newAuthorizationError()
	}

	params.apiKey = t.config.APIKey
	if strings.HasSuffix(path, ".json") {
		params.format = ""
	} else {
		params.format = "json"
	}

	return root + strings.ReplaceAll(path, " ", "%20") + "?" + params.queryString(), nil
}

// get builds the URL for the path expression and executes a GET,
// decoding the JSON response into a generic map. params may be nil.
func (t *httpTransport) get(ctx context.Context, root, path string, params *ResponseParams) (map[string]interface{}, error) {
	var p ResponseParams
	if params != nil {
		p = *params
	}

	fullURL, err := t.buildURL(root, path, p)
	if err != nil {
		return nil, err
	}

	t.observer.OnRequestStart(http.MethodGet, fullURL)
	start := time.Now()
	result, err := t.execute(ctx, fullURL)
	t.observer.OnRequestEnd(http.MethodGet, fullURL, time.Since(start), err)

	return result, err
}

// execute performs a single GET request and decodes the body.
// Every failure mode is wrapped uniformly into a ServiceError; the
// underlying cause stays reachable through errors.Unwrap.
func (t *httpTransport) execute(ctx context.Context, fullURL string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		// Only reachable with a malformed URL, which well-formed
		// inputs cannot produce.
		return nil, newServiceError("failed to create request", fullURL, 0, err)
	}

	for key, value := range t.config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, newServiceError("an error occurred when communicating with the service", fullURL, 0, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, newServiceError("failed to read response body", fullURL, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newServiceError(
			fmt.Sprintf("unexpected response status %s", resp.Status),
			fullURL, resp.StatusCode, nil,
		)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, newServiceError("failed to decode response body", fullURL, resp.StatusCode, err)
	}

	return result, nil
}

// close releases idle connections held by the transport.
func (t *httpTransport) close() error {
	t.client.CloseIdleConnections()
	return nil
}
