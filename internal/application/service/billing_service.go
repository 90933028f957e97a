package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/internal/domain/repository"
	"github.com/maligai/backoffice-api/pkg/apperror"
	"github.com/maligai/backoffice-api/pkg/pagination"
)

// ReceiptRenderer renders the receipt artifact for a persisted bill and
// returns the file name under the receipt directory.
type ReceiptRenderer interface {
	Render(bill *entity.Bill) (string, error)
}

// ReceiptMailer delivers a receipt email with the PDF attached
type ReceiptMailer interface {
	SendWithAttachment(to, subject, body, attachmentPath string) error
}

// BillingService orchestrates one purchase: validation, pricing, stock
// commit, bill persistence, receipt rendering and optional notification.
type BillingService struct {
	billRepo    repository.BillRepository
	productRepo repository.ProductRepository
	renderer    ReceiptRenderer
	mailer      ReceiptMailer
	receiptDir  string
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	renderer ReceiptRenderer,
	mailer ReceiptMailer,
	receiptDir string,
) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		productRepo: productRepo,
		renderer:    renderer,
		mailer:      mailer,
		receiptDir:  receiptDir,
	}
}

// BillItemInput represents one requested line of a purchase
type BillItemInput struct {
	ProductID int64
	Qty       int
}

// PlaceOrderInput represents the place order input
type PlaceOrderInput struct {
	Items       []BillItemInput
	NotifyEmail string
}

// BillResult is the outcome of a successful purchase. Warnings carry
// best-effort failures (rendering, notification) that do not void the bill.
type BillResult struct {
	BillID       string            `json:"bill_id"`
	Items        []entity.BillItem `json:"items"`
	Total        float64           `json:"total"`
	DownloadPath string            `json:"download_path,omitempty"`
	Warnings     []string          `json:"warnings,omitempty"`
}

// PlaceOrder runs the billing workflow. Failures up to and including bill
// persistence abort the purchase; stock decremented for a bill that could
// not be persisted is restored by a compensating increment. Rendering and
// notification failures are reported as warnings only.
func (s *BillingService) PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*BillResult, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Quantity for product %d must be positive", item.ProductID))
		}
	}

	// Batch fetch all requested products in one query
	productIDs := make([]int64, 0, len(input.Items))
	seen := make(map[int64]bool, len(input.Items))
	for _, item := range input.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("product lookup failed", err)
	}

	productMap := make(map[int64]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	// Validate and price each line in request order, snapshotting the
	// selling price. Duplicate product ids accumulate into one decrement.
	var total int64
	billItems := make([]entity.BillItem, 0, len(input.Items))
	stockDecrements := make(map[int64]int, len(input.Items))

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewProductNotFoundError(item.ProductID)
		}

		requested := stockDecrements[item.ProductID] + item.Qty
		if requested > product.Stock {
			return nil, apperror.NewInsufficientStockError(
				product.ID, product.Name, product.Stock, requested)
		}
		stockDecrements[item.ProductID] = requested

		subtotal := int64(item.Qty) * product.SellingPrice
		total += subtotal

		billItems = append(billItems, entity.BillItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.SellingPrice,
			Qty:       item.Qty,
			Subtotal:  subtotal,
		})
	}

	// Atomically decrement stock. The conditional update re-checks stock at
	// mutation time, so a concurrent order cannot oversell.
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("stock commit failed", err)
	}
	if len(failedIDs) > 0 {
		id := failedIDs[0]
		if product, exists := productMap[id]; exists {
			return nil, apperror.NewInsufficientStockError(
				id, product.Name, product.Stock, stockDecrements[id])
		}
		return nil, apperror.NewProductNotFoundError(id)
	}

	bill := &entity.Bill{
		Items: billItems,
		Total: total,
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		// Stock was already decremented; restore it so the inventory does
		// not drift against a bill that never existed.
		if restoreErr := s.productRepo.AtomicIncrementBatch(ctx, stockDecrements); restoreErr != nil {
			log.Printf("Warning: failed to restore stock after bill persist failure: %v", restoreErr)
		}
		return nil, apperror.NewStoreUnavailableError("bill persistence failed", err)
	}

	result := &BillResult{
		BillID: bill.ID.Hex(),
		Items:  billItems,
		Total:  bill.GetTotalDecimal(),
	}

	// The purchase is financially final from here on. Rendering and
	// notification run sequentially and failures become warnings.
	fileName, err := s.renderer.Render(bill)
	if err != nil {
		renderErr := apperror.NewArtifactError(err)
		log.Printf("Warning: %s (bill %s)", renderErr.Message, result.BillID)
		result.Warnings = append(result.Warnings, renderErr.Message)
		return result, nil
	}
	result.DownloadPath = "/bills/" + fileName

	if input.NotifyEmail != "" {
		body := fmt.Sprintf("Thank you for your purchase. You can download your bill here: %s", result.DownloadPath)
		err := s.mailer.SendWithAttachment(
			input.NotifyEmail,
			"Your bill",
			body,
			filepath.Join(s.receiptDir, fileName),
		)
		if err != nil {
			notifyErr := apperror.NewNotifyError(err)
			log.Printf("Warning: %s (bill %s)", notifyErr.Message, result.BillID)
			result.Warnings = append(result.Warnings, notifyErr.Message)
		}
	}

	return result, nil
}

// GetBill retrieves a bill by id
func (s *BillingService) GetBill(ctx context.Context, id string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("bill lookup failed", err)
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills, newest first
func (s *BillingService) ListBills(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("bill listing failed", err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// RerenderReceipt regenerates the receipt artifact for a persisted bill and
// returns its download path. The content reflects the stored items and
// total, so re-rendering is idempotent.
func (s *BillingService) RerenderReceipt(ctx context.Context, id string) (string, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return "", err
	}

	fileName, err := s.renderer.Render(bill)
	if err != nil {
		return "", apperror.NewArtifactError(err)
	}
	return "/bills/" + fileName, nil
}
