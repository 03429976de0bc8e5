package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productPage struct {
	From     int `json:"from"`
	To       int `json:"to"`
	Total    int `json:"total"`
	Products []struct {
		SKU       int     `json:"sku"`
		Name      string  `json:"name"`
		SalePrice float64 `json:"salePrice"`
	} `json:"products"`
}

func TestTypedClient_Products(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"from": 1, "to": 1, "total": 1,
			"products": []map[string]interface{}{
				{"sku": 6354884, "name": "Nest Thermostat", "salePrice": 249.99},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(NewConfig("testkey").WithBaseURL(server.URL))
	require.NoError(t, err)
	defer client.Close()

	typed := NewTypedClient[productPage](client)
	page, err := typed.Products(context.Background(), ByQuery("name=Nest*"), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, 6354884, page.Products[0].SKU)
	assert.Equal(t, "Nest Thermostat", page.Products[0].Name)
	assert.InDelta(t, 249.99, page.Products[0].SalePrice, 0.001)
}

func TestTypedClient_PropagatesErrors(t *testing.T) {
	client, err := NewClient(NewConfig(""))
	require.NoError(t, err)
	defer client.Close()

	typed := NewTypedClient[productPage](client)

	_, err = typed.Products(context.Background(), All(), nil)
	assert.True(t, IsAuthorization(err))

	_, err = typed.Recommendations(context.Background(), AlsoViewed, Global(), nil)
	assert.True(t, IsInvalidArgument(err))
}
