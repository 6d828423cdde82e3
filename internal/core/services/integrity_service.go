package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/utils/accounting"
)

type integrityService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewIntegrityService creates a new integrity service. It needs WithLocks to fence
// inconsistent containers.
func NewIntegrityService(transactionRepo portsrepo.TransactionRepositoryFacade, options ...Option) portssvc.IntegritySvc {
	svc := &integrityService{transactionRepo: transactionRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.IntegritySvc = (*integrityService)(nil)

func (s *integrityService) brokenGroups(ctx context.Context, containerID int64) ([]domain.IntegrityIssue, error) {
	if err := s.requireContainer(ctx, containerID); err != nil {
		return nil, err
	}
	legs, err := s.transactionRepo.ListTransferLegs(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer legs: %w", err)
	}
	return accounting.FindBrokenTransferGroups(legs), nil
}

func (s *integrityService) VerifyContainer(ctx context.Context, containerID int64) ([]domain.IntegrityIssue, error) {
	var issues []domain.IntegrityIssue
	err := s.withRead(containerID, func() error {
		var err error
		issues, err = s.brokenGroups(ctx, containerID)
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			return nil
		}
		reason := fmt.Sprintf("%d broken transfer group(s)", len(issues))
		if s.Locks != nil {
			s.Locks.Fence(containerID, reason)
		}
		return apperrors.ConsistencyError(containerID, reason)
	})
	if err != nil {
		s.LogError(ctx, err, "Container failed verification",
			slog.Int64("container_id", containerID),
			slog.Int("issues", len(issues)))
		return issues, err
	}

	s.LogInfo(ctx, "Container verified", slog.Int64("container_id", containerID))
	return issues, nil
}

func (s *integrityService) ReconcileContainer(ctx context.Context, containerID int64) ([]int64, error) {
	removed := []int64{}
	err := s.withRead(containerID, func() error {
		issues, err := s.brokenGroups(ctx, containerID)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			removed = append(removed, issue.TransactionIDs...)
		}
		if len(removed) > 0 {
			if err := s.transactionRepo.DeleteTransactions(ctx, removed); err != nil {
				return fmt.Errorf("failed to delete broken transfer legs: %w", err)
			}
		}
		if s.Locks != nil {
			s.Locks.Lift(containerID)
		}
		s.notify(ctx, domain.LedgerEvent{
			Type:           domain.EventContainerReconciled,
			ContainerID:    containerID,
			TransactionIDs: removed,
		})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile container", slog.Int64("container_id", containerID))
		return nil, err
	}

	s.LogInfo(ctx, "Container reconciled",
		slog.Int64("container_id", containerID),
		slog.Int("removed", len(removed)))
	return removed, nil
}
