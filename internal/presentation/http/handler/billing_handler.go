package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maligai/backoffice-api/internal/application/service"
	"github.com/maligai/backoffice-api/internal/presentation/http/dto/request"
	"github.com/maligai/backoffice-api/internal/presentation/http/dto/response"
	"github.com/maligai/backoffice-api/pkg/pagination"
)

// BillingHandler handles billing-related HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Create handles a purchase: validates stock, decrements inventory,
// persists the bill and renders its receipt
func (h *BillingHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.BillItemInput{
			ProductID: item.ProductID,
			Qty:       item.Qty,
		})
	}

	result, err := h.billingService.PlaceOrder(c.Request.Context(), &service.PlaceOrderInput{
		Items:       items,
		NotifyEmail: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", result)
}

// List handles listing bills, newest first
func (h *BillingHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	params.Validate()

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles retrieving a single bill
func (h *BillingHandler) Get(c *gin.Context) {
	bill, err := h.billingService.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Receipt re-renders the PDF receipt for a persisted bill
func (h *BillingHandler) Receipt(c *gin.Context) {
	downloadPath, err := h.billingService.RerenderReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt rendered successfully", gin.H{
		"download_path": downloadPath,
	})
}
