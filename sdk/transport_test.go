package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTransport builds a transport against the production host for
// URL-construction tests that never hit the network.
func newTestTransport(t *testing.T, apiKey string) *httpTransport {
	t.Helper()

	config := NewConfig(apiKey)
	require.NoError(t, config.Validate())

	transport, err := newHTTPTransport(config)
	require.NoError(t, err)
	return transport
}

func TestBuildURL_DirectLookupSuppressesFormat(t *testing.T) {
	transport := newTestTransport(t, "testkey")

	url, err := transport.buildURL(transport.rootV1, "/products/123.json", ResponseParams{Show: "all"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.bestbuy.com/v1/products/123.json?apiKey=testkey&show=all", url)
}

func TestBuildURL_CollectionPathCarriesFormat(t *testing.T) {
	transport := newTestTransport(t, "testkey")

	url, err := transport.buildURL(transport.rootBeta, "/openBox(sku in(123,456))", ResponseParams{Show: "all"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.bestbuy.com/beta/openBox(sku%20in(123,456))?apiKey=testkey&format=json&show=all", url)
}

func TestBuildURL_SpacesBecomePercent20(t *testing.T) {
	transport := newTestTransport(t, "testkey")

	url, err := transport.buildURL(transport.rootV1, "/stores(name=eden prairie)", ResponseParams{})
	require.NoError(t, err)
	assert.Equal(t, "https://api.bestbuy.com/v1/stores(name=eden%20prairie)?apiKey=testkey&format=json", url)
}

func TestBuildURL_OnlySpacesAreAltered(t *testing.T) {
	transport := newTestTransport(t, "testkey")

	url, err := transport.buildURL(transport.rootV1, "/products(name=Star*&salePrice<100)", ResponseParams{})
	require.NoError(t, err)
	assert.Equal(t, "https://api.bestbuy.com/v1/products(name=Star*&salePrice<100)?apiKey=testkey&format=json", url)
}

func TestBuildURL_EmptyAPIKey(t *testing.T) {
	transport := newTestTransport(t, "")

	_, err := transport.buildURL(transport.rootV1, "/products", ResponseParams{})
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestBuildURL_FormatForcedRegardlessOfInput(t *testing.T) {
	transport := newTestTransport(t, "testkey")

	// A caller cannot smuggle a format value onto a direct lookup.
	url, err := transport.buildURL(transport.rootV1, "/products/123.json", ResponseParams{format: "xml"})
	require.NoError(t, err)
	assert.NotContains(t, url, "format=")

	url, err = transport.buildURL(transport.rootV1, "/products", ResponseParams{format: "xml"})
	require.NoError(t, err)
	assert.Contains(t, url, "format=json")
}

func TestNewHTTPTransport_InvalidBaseURL(t *testing.T) {
	config := NewConfig("testkey").WithBaseURL("not a url")
	require.NoError(t, config.Validate())

	_, err := newHTTPTransport(config)
	assert.Error(t, err)
}

func TestNewHTTPTransport_TrailingSlashTrimmed(t *testing.T) {
	config := NewConfig("testkey").WithBaseURL("https://api.bestbuy.com/")
	require.NoError(t, config.Validate())

	transport, err := newHTTPTransport(config)
	require.NoError(t, err)
	assert.Equal(t, "https://api.bestbuy.com/v1", transport.rootV1)
	assert.Equal(t, "https://api.bestbuy.com/beta", transport.rootBeta)
}
