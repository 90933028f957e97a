package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maligai/backoffice-api/internal/domain/repository"
	"github.com/maligai/backoffice-api/pkg/apperror"
)

// AlertMailer delivers plain-text alert emails
type AlertMailer interface {
	SendText(to, subject, body string) error
}

// StockAlertService runs the low-stock sweep: query products under the
// threshold, format them, and mail the alert recipient.
type StockAlertService struct {
	productRepo repository.ProductRepository
	mailer      AlertMailer
	recipient   string
	threshold   int
}

// NewStockAlertService creates a new stock alert service
func NewStockAlertService(productRepo repository.ProductRepository, mailer AlertMailer, recipient string, threshold int) *StockAlertService {
	if threshold <= 0 {
		threshold = 3
	}
	return &StockAlertService{
		productRepo: productRepo,
		mailer:      mailer,
		recipient:   recipient,
		threshold:   threshold,
	}
}

// SweepResult reports the outcome of one low-stock sweep
type SweepResult struct {
	Matched int    `json:"matched"`
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// Sweep checks for low-stock products and mails an alert if any match.
// An empty matching set is a successful "nothing to report" result, not an
// error, and sends no email.
func (s *StockAlertService) Sweep(ctx context.Context) (*SweepResult, error) {
	products, err := s.productRepo.GetLowStock(ctx, s.threshold)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("low stock query failed", err)
	}

	if len(products) == 0 {
		return &SweepResult{
			Matched: 0,
			Sent:    false,
			Message: "No low-stock products to report",
		}, nil
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s (Stock: %d)", p.Name, p.Stock))
	}

	body := fmt.Sprintf("The following products have stock less than %d:\n\n%s",
		s.threshold, strings.Join(lines, "\n"))

	if err := s.mailer.SendText(s.recipient, "Low Stock Alert", body); err != nil {
		return nil, apperror.NewNotifyError(err)
	}

	return &SweepResult{
		Matched: len(products),
		Sent:    true,
		Message: "Low stock email sent successfully",
	}, nil
}
