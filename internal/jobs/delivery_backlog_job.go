package jobs

import (
	"context"
	"log/slog"

	"fabrication/internal/core/application/usecases/queries"
	"fabrication/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DeliveryBacklogJob reports the delivery backlog on a fixed schedule.
// Runs every minute and logs the number of orders sitting in ForDelivery.
type DeliveryBacklogJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryBacklogJob creates a new job for backlog reporting.
// Uses GetAllOrdersQueryHandler to read the current order statuses.
func NewDeliveryBacklogJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *DeliveryBacklogJob {
	return &DeliveryBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_backlog_job"),
	}
}

// Start begins the backlog job to run at the top of every minute.
func (j *DeliveryBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAllOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery backlog job failed", "error", err)
			return
		}

		backlog := 0
		for _, row := range orders {
			if row.Status == order.ForDelivery.Code() {
				backlog++
			}
		}

		j.logger.InfoContext(ctx, "Delivery backlog", "orders_awaiting_delivery", backlog)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog job.
func (j *DeliveryBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery backlog job stopped")
}
