package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBillMarshalJSON(t *testing.T) {
	bill := Bill{
		ID: primitive.NewObjectID(),
		Items: []BillItem{
			{ProductID: 1, Name: "Pencil", UnitPrice: 150, Qty: 2, Subtotal: 300},
		},
		Total: 300,
	}

	data, err := json.Marshal(bill)
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))

	// Cents become decimals on the wire
	assert.Equal(t, 3.00, out["total"])

	items := out["items"].([]interface{})
	item := items[0].(map[string]interface{})
	assert.Equal(t, 1.50, item["unit_price"])
	assert.Equal(t, 3.00, item["subtotal"])
	assert.Equal(t, float64(2), item["qty"])
	assert.Equal(t, "Pencil", item["name"])
}

func TestProductMarshalJSON(t *testing.T) {
	product := Product{
		ID:           42,
		Name:         "Notebook",
		BuyingPrice:  1999,
		SellingPrice: 2500,
		Stock:        7,
	}

	data, err := json.Marshal(product)
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 19.99, out["buying_price"])
	assert.Equal(t, 25.00, out["selling_price"])
	assert.Equal(t, float64(7), out["stock"])
	// Raw cent fields never leak into the payload
	assert.NotContains(t, string(data), "SellingPrice")
}

func TestProductPriceConversions(t *testing.T) {
	var p Product
	p.SetSellingPriceFromDecimal(12.50)

	assert.Equal(t, int64(1250), p.SellingPrice)
	assert.Equal(t, 12.50, p.GetSellingPriceDecimal())
}
