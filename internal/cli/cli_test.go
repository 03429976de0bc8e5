package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestBuyAPIs/bestbuy-sdk-go/sdk"
)

func TestSelectorFromArg(t *testing.T) {
	assert.Equal(t, sdk.All(), selectorFromArg(nil))
	assert.Equal(t, sdk.ByID(4312001), selectorFromArg([]string{"4312001"}))
	assert.Equal(t, sdk.ByIDs(611, 482), selectorFromArg([]string{"611,482"}))
	assert.Equal(t, sdk.ByQuery("name=Star*"), selectorFromArg([]string{"name=Star*"}))
	// A list with a non-numeric element falls back to a query.
	assert.Equal(t, sdk.ByQuery("611,abc"), selectorFromArg([]string{"611,abc"}))
}

func TestParseIDList(t *testing.T) {
	ids, ok := parseIDList("1, 2, 3")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, ids)

	_, ok = parseIDList("42")
	assert.False(t, ok, "a single number is ByID territory, not a list")

	_, ok = parseIDList("1,two")
	assert.False(t, ok)
}

func TestRootCmd_HasAllResourceFamilies(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{
		"products", "stores", "categories", "reviews",
		"openbox", "availability", "recommendations", "warranties",
	} {
		assert.True(t, names[want], "missing %s command", want)
	}
}
