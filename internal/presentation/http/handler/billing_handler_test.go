package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/maligai/backoffice-api/internal/application/service"
	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/internal/domain/repository"
	"github.com/maligai/backoffice-api/internal/presentation/http/handler"
	"github.com/maligai/backoffice-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Fakes ---

type fakeProductRepo struct {
	getByIDsFn  func(ctx context.Context, ids []int64) ([]entity.Product, error)
	decrementFn func(ctx context.Context, decrements map[int64]int) ([]int64, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]entity.Product, error) {
	return f.getByIDsFn(ctx, ids)
}
func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error                { return nil }
func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) AtomicDecrementBatch(ctx context.Context, decrements map[int64]int) ([]int64, error) {
	return f.decrementFn(ctx, decrements)
}
func (f *fakeProductRepo) AtomicIncrementBatch(ctx context.Context, increments map[int64]int) error {
	return nil
}

type fakeBillRepo struct{}

func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error { return nil }
func (f *fakeBillRepo) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	return nil, nil
}
func (f *fakeBillRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	return nil, 0, nil
}

type fakeRenderer struct{}

func (f *fakeRenderer) Render(bill *entity.Bill) (string, error) {
	return "bill_" + bill.ID.Hex() + ".pdf", nil
}

// --- Helpers ---

func setupRouter(productRepo repository.ProductRepository) *gin.Engine {
	svc := service.NewBillingService(&fakeBillRepo{}, productRepo, &fakeRenderer{}, nil, "/tmp/bills")
	h := handler.NewBillingHandler(svc)

	r := gin.New()
	r.POST("/api/v1/billing", h.Create)
	return r
}

func postBilling(r *gin.Engine, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestBillingCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &fakeProductRepo{
			getByIDsFn: func(ctx context.Context, ids []int64) ([]entity.Product, error) {
				return []entity.Product{
					{ID: 1, Name: "Pencil", SellingPrice: 150, Stock: 10},
				}, nil
			},
			decrementFn: func(ctx context.Context, decrements map[int64]int) ([]int64, error) {
				return nil, nil
			},
		}
		r := setupRouter(repo)

		w := postBilling(r, `{"items":[{"productId":1,"qty":2}]}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var out map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, true, out["success"])

		data := out["data"].(map[string]interface{})
		assert.Equal(t, 3.00, data["total"])
		assert.NotEmpty(t, data["download_path"])
	})

	t.Run("InvalidBody", func(t *testing.T) {
		r := setupRouter(&fakeProductRepo{})

		w := postBilling(r, `{"items":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NonPositiveQty", func(t *testing.T) {
		r := setupRouter(&fakeProductRepo{})

		w := postBilling(r, `{"items":[{"productId":1,"qty":0}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		repo := &fakeProductRepo{
			getByIDsFn: func(ctx context.Context, ids []int64) ([]entity.Product, error) {
				return []entity.Product{
					{ID: 1, Name: "Pencil", SellingPrice: 150, Stock: 1},
				}, nil
			},
		}
		r := setupRouter(repo)

		w := postBilling(r, `{"items":[{"productId":1,"qty":5}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, false, out["success"])
		assert.Contains(t, out["message"], "Insufficient stock")
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		repo := &fakeProductRepo{
			getByIDsFn: func(ctx context.Context, ids []int64) ([]entity.Product, error) {
				return []entity.Product{}, nil
			},
		}
		r := setupRouter(repo)

		w := postBilling(r, `{"items":[{"productId":99,"qty":1}]}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
