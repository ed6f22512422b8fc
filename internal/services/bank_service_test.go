package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

func TestBankService_Create_TrimsName(t *testing.T) {
	// Arrange
	mockRepo := new(MockBankRepository)
	bankService := NewBankService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(req *models.CreateBankRequest) bool {
		return req.Name == "HDFC"
	})).Return(&models.Bank{ID: 1, Name: "HDFC"}, nil)

	// Act
	bank, err := bankService.Create(ctx, &models.CreateBankRequest{Name: "  HDFC  "})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), bank.ID)
	mockRepo.AssertExpectations(t)
}

func TestBankService_Create_BlankName(t *testing.T) {
	mockRepo := new(MockBankRepository)
	bankService := NewBankService(mockRepo)

	bank, err := bankService.Create(context.Background(), &models.CreateBankRequest{Name: "   "})

	assert.Nil(t, bank)
	var valErr *errors.ValidationError
	require.True(t, stderrors.As(err, &valErr))
	assert.Equal(t, "name", valErr.Field)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Bağlı transaction varken silme reddedilir ve satır kalır
func TestBankService_Delete_Referenced(t *testing.T) {
	mockRepo := new(MockBankRepository)
	bankService := NewBankService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CountTransactions", ctx, int64(3)).Return(int64(2), nil)

	err := bankService.Delete(ctx, 3)

	var dbErr *errors.DatabaseError
	require.True(t, stderrors.As(err, &dbErr))
	assert.Contains(t, dbErr.PublicMessage(), "2 transaction")
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBankService_Delete_Unreferenced(t *testing.T) {
	mockRepo := new(MockBankRepository)
	bankService := NewBankService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CountTransactions", ctx, int64(3)).Return(int64(0), nil)
	mockRepo.On("Delete", ctx, int64(3)).Return(nil)

	require.NoError(t, bankService.Delete(ctx, 3))
	mockRepo.AssertExpectations(t)
}

func TestBankService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockBankRepository)
	bankService := NewBankService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CountTransactions", ctx, int64(99)).Return(int64(0), nil)
	mockRepo.On("Delete", ctx, int64(99)).Return(errors.NewNotFoundError("Banka", int64(99)))

	err := bankService.Delete(ctx, 99)

	var nfErr *errors.NotFoundError
	assert.True(t, stderrors.As(err, &nfErr))
}
