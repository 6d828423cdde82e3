package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/google/uuid"
)

// CacheInvalidator drops derived data of a container. Container id 0 means every container.
type CacheInvalidator interface {
	InvalidateContainer(containerID int64)
}

// ChangeNotifier fans a committed change out to report caches and the event publisher.
type ChangeNotifier struct {
	BaseService
	publisher    portssvc.EventPublisher
	invalidators []CacheInvalidator
}

func NewChangeNotifier(publisher portssvc.EventPublisher, invalidators ...CacheInvalidator) *ChangeNotifier {
	return &ChangeNotifier{publisher: publisher, invalidators: invalidators}
}

// notify invalidates caches synchronously and publishes the event. A publish failure
// is logged only; the write it describes is already committed.
func (n *ChangeNotifier) notify(ctx context.Context, event domain.LedgerEvent) {
	for _, inv := range n.invalidators {
		inv.InvalidateContainer(event.ContainerID)
	}

	if n.publisher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.LogError(ctx, err, "Failed to publish ledger event",
			slog.String("event_id", event.ID),
			slog.String("event_type", string(event.Type)),
			slog.Int64("container_id", event.ContainerID))
		return
	}
	n.LogDebug(ctx, "Ledger event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)))
}
