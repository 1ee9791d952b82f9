// Package notify delivers task notifications to writers. The current
// implementation writes structured log records; a mail or push transport can
// replace it behind the same port without touching the use cases.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// SlogNotifier implements ports.Notifier by emitting structured log records.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier backed by the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

var _ ports.Notifier = (*SlogNotifier)(nil)

// TaskOffered announces a newly offered order to the writer pool.
func (n *SlogNotifier) TaskOffered(ctx context.Context, orderID kernel.UUID) {
	n.logger.InfoContext(ctx, "task offered to writer pool",
		"order_id", orderID.String(),
	)
}

// TaskAssigned tells a writer an order is now theirs.
func (n *SlogNotifier) TaskAssigned(ctx context.Context, orderID, writerID kernel.UUID) {
	n.logger.InfoContext(ctx, "task assigned",
		"order_id", orderID.String(),
		"writer_id", writerID.String(),
	)
}

// DraftReviewed tells the writer the verdict on their draft.
func (n *SlogNotifier) DraftReviewed(
	ctx context.Context,
	orderID, writerID kernel.UUID,
	approved bool,
) {
	n.logger.InfoContext(ctx, "draft reviewed",
		"order_id", orderID.String(),
		"writer_id", writerID.String(),
		"approved", approved,
	)
}
