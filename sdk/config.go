package sdk

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the production host for the Best Buy APIs.
	// Override it with WithBaseURL when pointing the client at a mock
	// server in tests.
	DefaultBaseURL = "https://api.bestbuy.com"

	// EnvAPIKey is the environment variable read by ConfigFromEnv.
	EnvAPIKey = "BBY_API_KEY"

	// userAgent identifies this SDK to the service. It is attached to
	// every request unless the caller sets their own User-Agent header.
	userAgent = "bestbuy-sdk-go/1.0.0"
)

// Config holds the configuration for the Best Buy APIs client.
// Only APIKey is required; everything else has sensible defaults.
//
// Configuration is built using the fluent builder pattern:
//
//	config := sdk.NewConfig("YOUR_API_KEY").
//	    WithTimeout(10 * time.Second).
//	    WithHeader("X-Correlation-ID", "abc123").
//	    WithDebug(true)
//
//	client, err := sdk.NewClient(config)
//
// A Config must be treated as immutable once a client has been created
// from it. The client reads it concurrently from in-flight calls and
// performs no internal synchronization around mutation.
type Config struct {
	// APIKey is your Best Buy developer API key.
	// Register for one at https://developer.bestbuy.com/
	APIKey string

	// BaseURL is the scheme and host requests are sent to.
	// Default: DefaultBaseURL
	BaseURL string

	// Timeout is the HTTP request timeout, covering connection time
	// and reading the response body.
	// Default: 30s
	Timeout time.Duration

	// Debug enables request logging through a logrus-backed observer
	// when no explicit Observer is configured.
	Debug bool

	// Headers are custom headers to include in all requests. A
	// User-Agent header identifying the SDK is always present and may
	// be overridden by a caller-supplied header of the same name.
	Headers map[string]string

	// Observer receives hooks for monitoring requests.
	// If nil, NoopObserver is used (or LogObserver when Debug is set).
	Observer Observer
}

// NewConfig creates a Config for the given API key with all other
// fields at their defaults.
//
// Example:
//
//	client, err := sdk.NewClient(sdk.NewConfig("YOUR_API_KEY"))
func NewConfig(apiKey string) *Config {
	return &Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
		Headers: make(map[string]string),
	}
}

// ConfigFromEnv creates a Config with the API key loaded from the
// BBY_API_KEY environment variable. This is the explicit replacement
// for implicit environment lookups: call it once at startup and pass
// the result to NewClient. The client itself never reads the process
// environment.
//
// Example:
//
//	client, err := sdk.NewClient(sdk.ConfigFromEnv())
func ConfigFromEnv() *Config {
	return NewConfig(os.Getenv(EnvAPIKey))
}

// WithBaseURL sets the scheme and host requests are sent to.
// The URL should not have a trailing slash; the fixed /v1 and /beta
// version segments are appended per endpoint.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout for all operations.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithDebug enables or disables debug request logging.
func (c *Config) WithDebug(debug bool) *Config {
	c.Debug = debug
	return c
}

// WithHeader adds a custom header to be sent with all requests.
//
// Example:
//
//	config := sdk.NewConfig(key).
//	    WithHeader("X-Correlation-ID", "abc123")
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithObserver sets a custom observer for monitoring SDK operations.
//
// Example:
//
//	metrics := &MyMetricsObserver{}
//	config := sdk.NewConfig(key).WithObserver(metrics)
func (c *Config) WithObserver(observer Observer) *Config {
	c.Observer = observer
	return c
}

// Validate fills defaults for missing values. It is called
// automatically by NewClient.
//
// An empty APIKey is deliberately not an error here: per the service
// contract the key is checked at request-build time, where it surfaces
// as an AuthorizationError.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	if _, ok := c.Headers["User-Agent"]; !ok {
		c.Headers["User-Agent"] = userAgent
	}
	if c.Observer == nil {
		if c.Debug {
			c.Observer = NewLogObserver(nil)
		} else {
			c.Observer = &NoopObserver{}
		}
	}
	return nil
}
