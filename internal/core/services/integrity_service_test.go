package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func transferLeg(id, group, account, counterparty, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID:         id,
		ContainerID:           1,
		TransferGroupID:       group,
		AccountID:             account,
		CounterpartyAccountID: counterparty,
		Amount:                amount,
		Category:              domain.TransferCategory,
	}
}

func TestIntegrity_VerifyHealthyContainer(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	locks := services.NewContainerLocks()
	svc := services.NewIntegrityService(txRepo, services.WithLocks(locks))
	txRepo.On("ListTransferLegs", mock.Anything, int64(1)).
		Return([]domain.Transaction{transferLeg(1, 1, 10, 20, -500), transferLeg(2, 1, 20, 10, 500)}, nil).Once()

	issues, err := svc.VerifyContainer(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.NoError(t, locks.FenceError(1))
}

func TestIntegrity_VerifyThenReconcile(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	publisher := new(MockEventPublisher)
	locks := services.NewContainerLocks()
	svc := services.NewIntegrityService(txRepo,
		services.WithLocks(locks),
		services.WithNotifier(services.NewChangeNotifier(publisher)),
	)
	legs := []domain.Transaction{
		transferLeg(1, 1, 10, 20, -500),
		transferLeg(2, 1, 20, 10, 500),
		transferLeg(3, 2, 10, 20, -75),
	}
	txRepo.On("ListTransferLegs", mock.Anything, int64(1)).Return(legs, nil).Twice()

	issues, err := svc.VerifyContainer(context.Background(), 1)
	require.ErrorIs(t, err, apperrors.ErrConsistency)
	require.Len(t, issues, 1)
	assert.Equal(t, int64(2), issues[0].TransferGroupID)
	assert.ErrorIs(t, locks.FenceError(1), apperrors.ErrConsistency)

	txRepo.On("DeleteTransactions", mock.Anything, []int64{3}).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Type == domain.EventContainerReconciled && e.ContainerID == 1
	})).Return(nil).Once()

	removed, err := svc.ReconcileContainer(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{3}, removed)
	assert.NoError(t, locks.FenceError(1))
	txRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
