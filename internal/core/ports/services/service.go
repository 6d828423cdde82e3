package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and the CLI.
type ServiceContainer struct {
	Container ContainerSvcFacade
	Account   AccountSvcFacade
	Category  CategorySvcFacade
	Ledger    LedgerSvcFacade
	Transfer  TransferSvc
	Balance   BalanceSvc
	Reporting ReportingService
	Integrity IntegritySvc
	Exchange  DataExchangeSvc
	Settings  SettingsSvcFacade
	Token     TokenSvc
}

// EventPublisher delivers ledger change events to an external broker.
// Implementations must not block the caller beyond their own publish timeout.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
	Close() error
}
