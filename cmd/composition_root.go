package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpin "taproom/internal/adapters/in/http"
	"taproom/internal/adapters/out/kafka"
	"taproom/internal/adapters/out/memory/sessionrepo"
	"taproom/internal/adapters/out/postgres"
	"taproom/internal/adapters/out/whatsapp"
	"taproom/internal/core/application/usecases/commands"
	"taproom/internal/core/application/usecases/queries"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
	"taproom/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	catalog  *catalog.Catalog
	resolver services.PricingResolver
	guard    services.CartGuard
	flow     services.CheckoutFlow
	sessions ports.SessionRepository
	handoff  ports.OrderHandoff
	events   ports.OrderEventPublisher
}

// NewCompositionRoot wires the engine. producer carries order events to the
// event stream; see kafka.NewWriter.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	producer kafka.Producer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	cat, err := catalog.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	table, err := catalog.DefaultPriceTable()
	if err != nil {
		return nil, fmt.Errorf("load price table: %w", err)
	}

	resolver := services.NewPricingResolver(table)
	guard := services.NewCartGuard(cat, resolver)
	recommender := services.NewUpsellRecommender(cat, resolver, services.DefaultAlwaysSuggest()...)
	flow := services.NewCheckoutFlow(guard, recommender, services.NewOrderAssembler(config.Freight))

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	handoff, err := whatsapp.NewHandoff(uowFactory, config.WhatsAppNumbers)
	if err != nil {
		return nil, fmt.Errorf("create order handoff: %w", err)
	}
	events, err := kafka.NewOrderPublisher(producer, config.KafkaOrderSubmittedTopic, logger)
	if err != nil {
		return nil, fmt.Errorf("create order publisher: %w", err)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: uowFactory,
		catalog:    cat,
		resolver:   resolver,
		guard:      guard,
		flow:       flow,
		sessions:   sessionrepo.NewInMemorySessionRepository(time.Now),
		handoff:    handoff,
		events:     events,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// HTTPHandlers returns every use case the HTTP API exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		StartSession:            commands.NewStartSessionCommandHandler(c.sessions),
		SelectLocation:          commands.NewSelectLocationCommandHandler(c.sessions, c.guard),
		AddToCart:               commands.NewAddToCartCommandHandler(c.sessions, c.guard),
		ResolveAddConflict:      commands.NewResolveAddConflictCommandHandler(c.sessions, c.guard),
		RemoveFromCart:          commands.NewRemoveFromCartCommandHandler(c.sessions),
		UpdateQuantity:          commands.NewUpdateQuantityCommandHandler(c.sessions),
		RequestCheckout:         commands.NewRequestCheckoutCommandHandler(c.sessions, c.flow),
		ResolveCheckoutConflict: commands.NewResolveCheckoutConflictCommandHandler(c.sessions, c.flow),
		ResolveUpsell:           commands.NewResolveUpsellCommandHandler(c.sessions, c.flow),
		UpdateCheckoutForm:      commands.NewUpdateCheckoutFormCommandHandler(c.sessions, c.flow),
		SubmitOrder:             commands.NewSubmitOrderCommandHandler(c.sessions, c.flow, c.handoff, c.logger),
		CancelCheckout:          commands.NewCancelCheckoutCommandHandler(c.sessions),
		DismissConfirmation:     commands.NewDismissConfirmationCommandHandler(c.sessions),

		GetCatalog:       queries.NewGetCatalogQueryHandler(c.catalog, c.resolver),
		GetSession:       queries.NewGetSessionQueryHandler(c.sessions),
		GetKegCalculator: queries.NewGetKegCalculatorQueryHandler(c.catalog, c.resolver),
		GetPendingOrders: queries.NewGetPendingOrdersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateExpireSessionsCommandHandler() commands.ExpireSessionsCommandHandler {
	return commands.NewExpireSessionsCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateRelayOrdersCommandHandler() commands.RelayOrdersCommandHandler {
	return commands.NewRelayOrdersCommandHandler(c.orderUoWFactory(), c.events, c.logger)
}

// JobManager builds the background jobs from the configured schedules.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireSessionsCommandHandler(),
		c.CreateRelayOrdersCommandHandler(),
		jobs.Schedules{
			SessionExpiry:  c.config.SessionExpirySchedule,
			SessionTTL:     c.config.SessionTTL,
			OrderRelay:     c.config.OrderRelaySchedule,
			RelayBatchSize: c.config.RelayBatchSize,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
