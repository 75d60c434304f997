package main

import (
	"context"
	"log"

	"tour-booking/config"
	"tour-booking/internal/module/booking/handler"
	"tour-booking/internal/module/booking/repositories"
	"tour-booking/internal/module/booking/usecases"
	manifestHandler "tour-booking/internal/module/manifest/handler"
	"tour-booking/internal/pkg/database"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/http"
	log_internal "tour-booking/internal/pkg/log"
	"tour-booking/internal/pkg/messagestream"
	"tour-booking/internal/pkg/middleware"
	"tour-booking/internal/pkg/redis"
	"tour-booking/internal/pkg/scheduler"
	router "tour-booking/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/facebookgo/clock"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"go.elastic.co/apm"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	ctx := context.Background()

	// init tracer
	var tracer *apm.Tracer
	if cfg.Apm.Enabled {
		t, err := apm.NewTracerOptions(apm.TracerOptions{ServiceName: cfg.Apm.ServiceName})
		if err != nil {
			logger.Error(ctx, "Failed to create apm tracer", err)
		} else {
			tracer = t
		}
	}

	// init storage
	var bookingRepo repositories.Repositories
	if cfg.Database.Driver == "postgres" {
		db := database.GetConnection(&cfg.Database)
		database.EnsureSchema(db)
		bookingRepo = repositories.New(db, logger)
	} else {
		bookingRepo = repositories.NewMemory(logger)
	}

	ledger := repositories.NewMemoryLedger()
	if cfg.Booking.LedgerDriver == "redis" {
		redisClient := redis.SetupClient(&cfg.Redis)
		ledger = repositories.NewRedisLedger(redisClient, logger)
	}

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sch := scheduler.Scheduler{Log: logger}
	var enqueuer scheduler.Enqueuer
	var monitoring *asynqmon.HTTPHandler
	if cfg.Scheduler.Enabled {
		enqueuer = sch.InitClient(&cfg.Redis)
		if cfg.Scheduler.Monitoring {
			monitoring = sch.MonitoringHandler(&cfg.Redis)
		}
	}

	bookingUsecase := usecases.New(bookingRepo, ledger, logger, publisher, enqueuer, &cfg.Booking, clock.New())

	validator := helpers.NewValidator()
	bookingHandler := handler.BookingHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}
	manifest := manifestHandler.ManifestHandler{Log: logger}
	middleware := middleware.Middleware{
		Log:    logger,
		Tracer: tracer,
	}

	if cfg.Scheduler.Enabled {
		go sch.StartHandler(
			&cfg.Redis,
			cfg.Scheduler.Concurrency,
			[]string{scheduler.TypeExpirePendingPayment},
			[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.SetPaymentExpired},
		)
	}

	var messageRouters []*message.Router

	consumePaymentQueueRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "pix_payment_received_handler", messagestream.TopicPaymentReceived, subscriber, bookingHandler.ConsumePaymentQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_payment_queue router", err)
	} else {
		messageRouters = append(messageRouters, consumePaymentQueueRouter)
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &manifest, &middleware, monitoring)

	return r, messageRouters

}
