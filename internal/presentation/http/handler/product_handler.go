package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maligai/backoffice-api/internal/application/service"
	"github.com/maligai/backoffice-api/internal/presentation/http/dto/request"
	"github.com/maligai/backoffice-api/internal/presentation/http/dto/response"
	"github.com/maligai/backoffice-api/pkg/pagination"
	"github.com/xuri/excelize/v2"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	alertService   *service.StockAlertService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, alertService *service.StockAlertService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		alertService:   alertService,
	}
}

// Create handles product registration
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		ID:           *req.ID,
		Name:         req.Name,
		BuyingPrice:  *req.BuyingPrice,
		SellingPrice: *req.SellingPrice,
		Stock:        *req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// List handles listing products with search, low-stock filtering and sorting
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	params.Validate()

	result, err := h.productService.ListProducts(c.Request.Context(), &service.ListProductsInput{
		Pagination: params,
		Search:     filter.Search,
		LowStock:   filter.LowStock,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles partial product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ID:           id,
		Name:         req.Name,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		Stock:        req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// LowStock handles listing products below the alert threshold
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

// LowStockEmail triggers the low-stock alert sweep on demand
func (h *ProductHandler) LowStockEmail(c *gin.Context) {
	result, err := h.alertService.Sweep(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, gin.H{
		"matched": result.Matched,
		"sent":    result.Sent,
	})
}

// Export streams the full product inventory as an XLSX workbook
func (h *ProductHandler) Export(c *gin.Context) {
	params := pagination.DefaultPagination()
	params.PerPage = exportPageSize

	f := excelize.NewFile()
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	sheet := "Products"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"ID", "Name", "Buying Price", "Selling Price", "Stock"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hdr)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 2
	for {
		result, err := h.productService.ListProducts(c.Request.Context(), &service.ListProductsInput{
			Pagination: params,
			SortBy:     "id",
			SortOrder:  "ASC",
		})
		if err != nil {
			response.Error(c, err)
			return
		}

		for _, p := range result.Items {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Name)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.GetBuyingPriceDecimal())
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.GetSellingPriceDecimal())
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Stock)
			row++
		}

		if params.Page >= result.Pagination.TotalPages {
			break
		}
		params.Page++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		response.InternalServerError(c, "Failed to build export")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

const exportPageSize = 500
