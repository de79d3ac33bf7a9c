package cmd

import (
	"log/slog"
	"strconv"
	"time"

	httpin "routerorders/internal/adapters/in/http"
	"routerorders/internal/adapters/out/notify"
	"routerorders/internal/adapters/out/postgres"
	"routerorders/internal/core/application/usecases/commands"
	"routerorders/internal/core/application/usecases/queries"
	"routerorders/internal/jobs"
	"routerorders/internal/pkg/ratelimit"

	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	defaultNotifyQueueSize = 256
	defaultNotifyWorkers   = 4

	defaultTrackingRatePerSecond = 5
	defaultTrackingRateBurst     = 10
	trackingLimiterTTL           = 10 * time.Minute
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	mailer     *notify.Mailer
	dispatcher *notify.AsyncDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	mailer := notify.NewMailer(notify.MailerConfig{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		From:     configs.SMTPFrom,
		Username: configs.SMTPUsername,
		Password: configs.SMTPPassword,
	}, logger)

	dispatcher := notify.NewAsyncDispatcher(
		mailer,
		intOrDefault(configs.NotifyQueueSize, defaultNotifyQueueSize),
		intOrDefault(configs.NotifyWorkers, defaultNotifyWorkers),
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		mailer:     mailer,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Close drains the asynchronous notification queue.
func (c *CompositionRoot) Close() {
	c.dispatcher.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTrackingCommandHandler() commands.CreateTrackingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTrackingCommandHandler(f, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusCommandHandler(f, c.mailer, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateModifyOrderCommandHandler() commands.ModifyOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewModifyOrderCommandHandler(f, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateReorderCommandHandler() commands.ReorderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReorderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUntrackedOrdersQueryHandler() queries.GetUntrackedOrdersQueryHandler {
	return queries.NewGetUntrackedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackingLimiter(configs Config) *ratelimit.KeyedLimiter {
	return ratelimit.NewKeyedLimiter(
		rate.Limit(intOrDefault(configs.TrackingRatePerSecond, defaultTrackingRatePerSecond)),
		intOrDefault(configs.TrackingRateBurst, defaultTrackingRateBurst),
		trackingLimiterTTL,
	)
}

func (c *CompositionRoot) CreateHTTPServer(configs Config) *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCreateTrackingCommandHandler(),
		c.CreateUpdateStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateModifyOrderCommandHandler(),
		c.CreateReorderCommandHandler(),
		c.CreateGetTrackingQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateTrackingLimiter(configs),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetUntrackedOrdersQueryHandler(),
		c.CreateCreateTrackingCommandHandler(),
		c.logger,
	)
}

func intOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
