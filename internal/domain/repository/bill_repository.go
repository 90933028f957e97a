package repository

import (
	"context"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/pkg/pagination"
)

// BillRepository defines data access for bill records
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id string) (*entity.Bill, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error)
}
