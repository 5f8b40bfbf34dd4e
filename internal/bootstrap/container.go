package bootstrap

import (
	"context"
	"log"

	"returnhub-be/internal/config"
	"returnhub-be/internal/controller"
	"returnhub-be/internal/lifecycle"
	"returnhub-be/internal/pkg/logger"
	"returnhub-be/internal/pkg/mailer"
	"returnhub-be/internal/repository/unitofwork"
	"returnhub-be/internal/service"
	"returnhub-be/pkg/store"

	pktNats "returnhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MerchantController controller.IMerchantController
	ConsumerController controller.IConsumerController
	ReturnController   controller.IReturnController

	// Background Services (Exposed for main.go to run)
	NotifierService service.INotifierService

	// Core Facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	var returnCache *store.ReturnCache
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (list caching disabled)", err)
	} else {
		returnCache = store.NewReturnCache(rdb)
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Topics.ReturnStatusChanged, pubSub)
	notifierService := service.NewNotifierService(
		pubSub,
		cfg.Topics.ReturnStatusChanged,
		emailService,
	)

	merchantService := service.NewMerchantService(uowFactory)
	consumerService := service.NewConsumerService(uowFactory)
	returnService := service.NewReturnService(
		uowFactory,
		lifecycle.NewEngine(),
		publisherService,
		natsPub,
		returnCache,
	)

	// 4. Controllers
	merchantController := controller.NewMerchantController(merchantService)
	consumerController := controller.NewConsumerController(consumerService)
	returnController := controller.NewReturnController(returnService)

	return &Container{
		MerchantController: merchantController,
		ConsumerController: consumerController,
		ReturnController:   returnController,
		NotifierService:    notifierService,
		Logger:             sysLogger,
	}
}
