package repository

import (
	"context"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/pkg/pagination"
)

// ProductFilterParams holds filtering parameters for listing products.
// LowStockBelow restricts the listing to products under the given stock
// threshold; zero disables the filter.
type ProductFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	LowStockBelow int
	SortBy        string
	SortOrder     string
}

// ProductRepository defines data access for products
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error)

	// AtomicDecrementBatch decrements stock for each product only if enough
	// stock remains, in one transaction. It returns the IDs whose conditional
	// update matched no row; any such ID rolls back the whole batch.
	AtomicDecrementBatch(ctx context.Context, decrements map[int64]int) ([]int64, error)

	// AtomicIncrementBatch restores stock, used to compensate a decrement
	// whose follow-up work failed.
	AtomicIncrementBatch(ctx context.Context, increments map[int64]int) error
}
