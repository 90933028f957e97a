package request

// CreateProductRequest represents a product creation request. Prices are
// decimals on the wire and converted to cents before storage.
type CreateProductRequest struct {
	ID           *int64   `json:"id" binding:"required,gt=0"`
	Name         string   `json:"name" binding:"required,min=1,max=255"`
	BuyingPrice  *float64 `json:"buying_price" binding:"required,min=0"`
	SellingPrice *float64 `json:"selling_price" binding:"required,min=0"`
	Stock        *int     `json:"stock" binding:"required,min=0"`
}

// UpdateProductRequest represents a partial product update. Only supplied
// fields are applied.
type UpdateProductRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=255"`
	BuyingPrice  *float64 `json:"buying_price" binding:"omitempty,min=0"`
	SellingPrice *float64 `json:"selling_price" binding:"omitempty,min=0"`
	Stock        *int     `json:"stock" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product list query parameters
type ProductFilterRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Search    string `form:"search" binding:"omitempty,max=255"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=id name stock created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=ASC DESC asc desc"`
}
