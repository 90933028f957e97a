package entity

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Product represents a product in the inventory. The ID is an external key
// supplied by the shop when the product is registered, not generated here.
type Product struct {
	ID           int64          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	BuyingPrice  int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	SellingPrice int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	Stock        int            `gorm:"not null;default:0" json:"stock"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetBuyingPriceDecimal returns the buying price as a decimal (for display)
func (p *Product) GetBuyingPriceDecimal() float64 {
	return float64(p.BuyingPrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetBuyingPriceFromDecimal sets the buying price from a decimal value
func (p *Product) SetBuyingPriceFromDecimal(price float64) {
	p.BuyingPrice = int64(price * 100)
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		BuyingPrice  float64 `json:"buying_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(p),
		BuyingPrice:  float64(p.BuyingPrice) / 100,
		SellingPrice: float64(p.SellingPrice) / 100,
	})
}
