package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OfferExpiryJob re-enters offers that sat unclaimed past their TTL.
// Runs every minute; the TTL itself lives in the command handler. An expiry
// racing a writer's accept loses by version check, which is the intended
// outcome and not an error.
type OfferExpiryJob struct {
	handler commands.ExpireOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferExpiryJob creates a job that restamps stale offers.
func NewOfferExpiryJob(
	handler commands.ExpireOffersCommandHandler,
	logger *slog.Logger,
) *OfferExpiryJob {
	return &OfferExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_expiry_job"),
	}
}

// Start begins the offer expiry job on a one minute schedule.
func (j *OfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		command := commands.NewExpireOffersCommand()

		if handleErr := j.handler.Handle(ctx, command); handleErr != nil {
			j.logger.ErrorContext(ctx, "offer expiry run failed", "error", handleErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "offer expiry job started")
	return nil
}

// Stop stops the offer expiry job.
func (j *OfferExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "offer expiry job stopped")
}
