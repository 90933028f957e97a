package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAlertMailer struct{ mock.Mock }

func (m *MockAlertMailer) SendText(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("NothingToReport", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		mailer := new(MockAlertMailer)
		svc := NewStockAlertService(productRepo, mailer, "admin@example.com", 3)

		productRepo.On("GetLowStock", ctx, 3).Return([]entity.Product{}, nil).Once()

		result, err := svc.Sweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Matched)
		assert.False(t, result.Sent)
		assert.Equal(t, "No low-stock products to report", result.Message)
		mailer.AssertNotCalled(t, "SendText")
	})

	t.Run("SendsFormattedAlert", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		mailer := new(MockAlertMailer)
		svc := NewStockAlertService(productRepo, mailer, "admin@example.com", 3)

		products := []entity.Product{
			{ID: 1, Name: "Pencil", Stock: 1},
			{ID: 2, Name: "Notebook", Stock: 0},
		}
		productRepo.On("GetLowStock", ctx, 3).Return(products, nil).Once()
		mailer.On("SendText", "admin@example.com", "Low Stock Alert",
			"The following products have stock less than 3:\n\nPencil (Stock: 1)\nNotebook (Stock: 0)").
			Return(nil).Once()

		result, err := svc.Sweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Matched)
		assert.True(t, result.Sent)
		mailer.AssertExpectations(t)
	})

	t.Run("MailFailure", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		mailer := new(MockAlertMailer)
		svc := NewStockAlertService(productRepo, mailer, "admin@example.com", 3)

		productRepo.On("GetLowStock", ctx, 3).Return([]entity.Product{{ID: 1, Name: "Pencil", Stock: 1}}, nil).Once()
		mailer.On("SendText", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp refused")).Once()

		_, err := svc.Sweep(ctx)

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotify))
	})

	t.Run("DefaultThreshold", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		svc := NewStockAlertService(productRepo, nil, "admin@example.com", 0)

		productRepo.On("GetLowStock", ctx, 3).Return([]entity.Product{}, nil).Once()

		_, err := svc.Sweep(ctx)

		assert.NoError(t, err)
		productRepo.AssertExpectations(t)
	})
}
