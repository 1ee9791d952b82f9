package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All construction
// happens here so the rest of the code depends only on interfaces.
type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	collaborators commands.Collaborators
	pricer        services.StaticPricer
	systemActor   kernel.Actor
	logger        *slog.Logger
}

// NewCompositionRoot builds the object graph from the loaded configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	basePay, err := kernel.NewMoney(config.BasePayCents)
	if err != nil {
		return CompositionRoot{}, err
	}
	perUnitBonus, err := kernel.NewMoney(config.PerUnitBonusCents)
	if err != nil {
		return CompositionRoot{}, err
	}
	reworkPenalty, err := kernel.NewMoney(config.ReworkPenaltyCents)
	if err != nil {
		return CompositionRoot{}, err
	}

	systemActor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleSystem)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		collaborators: commands.Collaborators{
			Notifier: notify.NewSlogNotifier(logger),
			Publisher: kafka.NewPublisher(
				[]string{config.KafkaHost},
				config.KafkaStatusEventTopic,
				logger,
			),
		},
		pricer:      services.NewStaticPricer(basePay, perUnitBonus, reworkPenalty),
		systemActor: systemActor,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

// CreateServerHandlers bundles all HTTP-facing command and query handlers.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		CreateOrder:        commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.collaborators),
		ConfirmPayment:     commands.NewConfirmPaymentCommandHandler(c.stockUoWFactory(), c.collaborators),
		AcceptTask:         commands.NewAcceptTaskCommandHandler(c.orderUoWFactory(), c.collaborators),
		DeclineTask:        commands.NewDeclineTaskCommandHandler(c.orderUoWFactory(), c.collaborators),
		UploadDraft:        commands.NewUploadDraftCommandHandler(c.orderUoWFactory(), c.collaborators),
		ApproveOrder:       commands.NewApproveOrderCommandHandler(c.reviewUoWFactory(), c.pricer, c.collaborators),
		RejectOrder:        commands.NewRejectOrderCommandHandler(c.reviewUoWFactory(), c.config.ReworkLimit, c.collaborators),
		ReassignWriter:     commands.NewReassignWriterCommandHandler(c.reviewUoWFactory(), c.collaborators),
		AdvanceFulfillment: commands.NewAdvanceFulfillmentCommandHandler(c.stockUoWFactory(), c.collaborators),
		CancelOrder:        commands.NewCancelOrderCommandHandler(c.stockUoWFactory(), c.collaborators),
		HoldOrder:          commands.NewHoldOrderCommandHandler(c.orderUoWFactory(), c.collaborators),
		ResumeOrder:        commands.NewResumeOrderCommandHandler(c.orderUoWFactory(), c.collaborators),
		RefundOrder:        commands.NewRefundOrderCommandHandler(c.stockUoWFactory(), c.collaborators),

		FetchTasks:        queries.NewFetchTasksQueryHandler(c.gormDB),
		GetPendingQCTasks: queries.NewGetPendingQCTasksQueryHandler(c.gormDB),
		GetWriterEarnings: queries.NewGetWriterEarningsQueryHandler(c.gormDB),
	}
}

// CreateJobManager wires the offer dispatch and expiry jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	offerOrders := commands.NewOfferOrdersCommandHandler(
		c.orderUoWFactory(),
		c.systemActor,
		c.collaborators,
	)
	expireOffers := commands.NewExpireOffersCommandHandler(
		c.orderUoWFactory(),
		c.config.OfferTTL,
		c.systemActor,
		c.collaborators,
	)

	return jobs.NewJobManager(offerOrders, expireOffers, c.logger)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncReviewUoWFactory adapts a closure to the ReviewUoWFactory interface.
type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

// FuncStockUoWFactory adapts a closure to the StockUoWFactory interface.
type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}
