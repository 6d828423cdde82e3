package events

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
)

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ portssvc.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, domain.LedgerEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }

// NewPublisher returns an AMQP publisher when url is set and a NoopPublisher otherwise.
func NewPublisher(url, exchangeName, queueName string) (portssvc.EventPublisher, error) {
	if url == "" {
		return NoopPublisher{}, nil
	}
	return NewAMQPPublisher(url, exchangeName, queueName)
}
