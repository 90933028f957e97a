package request

// BillItemRequest represents one line of a bill request
type BillItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Qty       int   `json:"qty" binding:"required,gt=0"`
}

// CreateBillRequest represents a billing request. Email is optional; when
// set the receipt is mailed to it after the bill is persisted.
type CreateBillRequest struct {
	Items []BillItemRequest `json:"items" binding:"required,min=1,dive"`
	Email string            `json:"email" binding:"omitempty,email"`
}

// BillFilterRequest represents bill list query parameters
type BillFilterRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}
