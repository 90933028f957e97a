package entity

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillItem is one billed line: the product's name and unit price are
// snapshotted at billing time, so later product changes never alter the bill.
type BillItem struct {
	ProductID int64  `bson:"productId" json:"product_id"`
	Name      string `bson:"name" json:"name"`
	UnitPrice int64  `bson:"unitPrice" json:"-"` // Stored in cents
	Qty       int    `bson:"qty" json:"qty"`
	Subtotal  int64  `bson:"subtotal" json:"-"` // Stored in cents
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(bi),
		UnitPrice: float64(bi.UnitPrice) / 100,
		Subtotal:  float64(bi.Subtotal) / 100,
	})
}

// Bill is the persisted record of one completed purchase. It is created once
// and never mutated; the rendered receipt is derived from it.
type Bill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items     []BillItem         `bson:"items" json:"items"`
	Total     int64              `bson:"total" json:"-"` // Stored in cents
	CreatedAt time.Time          `bson:"timestamp" json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(b),
		Total: float64(b.Total) / 100,
	})
}

// GetTotalDecimal returns the total as a decimal
func (b *Bill) GetTotalDecimal() float64 {
	return float64(b.Total) / 100
}
