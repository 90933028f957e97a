package service

import (
	"context"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/internal/domain/repository"
	"github.com/maligai/backoffice-api/pkg/apperror"
	"github.com/maligai/backoffice-api/pkg/pagination"
)

// ProductService handles inventory operations
type ProductService struct {
	productRepo    repository.ProductRepository
	stockThreshold int
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, stockThreshold int) *ProductService {
	if stockThreshold <= 0 {
		stockThreshold = 3
	}
	return &ProductService{
		productRepo:    productRepo,
		stockThreshold: stockThreshold,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	ID           int64
	Name         string
	BuyingPrice  float64
	SellingPrice float64
	Stock        int
}

// CreateProduct registers a new product under its external id
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("product lookup failed", err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product with this ID already exists")
	}

	product := &entity.Product{
		ID:    input.ID,
		Name:  input.Name,
		Stock: input.Stock,
	}
	product.SetBuyingPriceFromDecimal(input.BuyingPrice)
	product.SetSellingPriceFromDecimal(input.SellingPrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.NewStoreUnavailableError("product create failed", err)
	}
	return product, nil
}

// GetProduct retrieves a product by id
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("product lookup failed", err)
	}
	if product == nil {
		return nil, apperror.NewProductNotFoundError(id)
	}
	return product, nil
}

// ListProductsInput represents listing parameters
type ListProductsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) (*pagination.PaginatedResult[entity.Product], error) {
	params := &repository.ProductFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}
	if input.LowStock {
		params.LowStockBelow = s.stockThreshold
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("product listing failed", err)
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents a partial product update; nil fields are
// left unchanged.
type UpdateProductInput struct {
	ID           int64
	Name         *string
	BuyingPrice  *float64
	SellingPrice *float64
	Stock        *int
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.BuyingPrice != nil {
		product.SetBuyingPriceFromDecimal(*input.BuyingPrice)
	}
	if input.SellingPrice != nil {
		product.SetSellingPriceFromDecimal(*input.SellingPrice)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewBadRequestError("Stock cannot be negative")
		}
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperror.NewStoreUnavailableError("product update failed", err)
	}
	return product, nil
}

// DeleteProduct deletes a product by id
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperror.NewStoreUnavailableError("product delete failed", err)
	}
	return nil
}

// GetLowStockProducts returns products under the alert threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.GetLowStock(ctx, s.stockThreshold)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("low stock query failed", err)
	}
	return products, nil
}
