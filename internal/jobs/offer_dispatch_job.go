package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OfferDispatchJob periodically moves paid orders into the writer pool.
// Runs every ten seconds so a freshly paid order becomes claimable without
// an admin touching it.
type OfferDispatchJob struct {
	handler commands.OfferOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferDispatchJob creates a job that offers paid orders to writers.
func NewOfferDispatchJob(
	handler commands.OfferOrdersCommandHandler,
	logger *slog.Logger,
) *OfferDispatchJob {
	return &OfferDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_dispatch_job"),
	}
}

// Start begins the offer dispatch job on a ten second schedule.
func (j *OfferDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		command := commands.NewOfferOrdersCommand()

		if handleErr := j.handler.Handle(ctx, command); handleErr != nil {
			j.logger.ErrorContext(ctx, "offer dispatch run failed", "error", handleErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "offer dispatch job started")
	return nil
}

// Stop stops the offer dispatch job.
func (j *OfferDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "offer dispatch job stopped")
}
