package bootstrap

import (
	"context"
	"fmt"
	"log"

	"algo-notes-be/internal/config"
	"algo-notes-be/internal/controller"
	"algo-notes-be/internal/model"
	"algo-notes-be/internal/pkg/logger"
	"algo-notes-be/internal/repository/memory"
	"algo-notes-be/internal/repository/mongodb"
	"algo-notes-be/internal/repository/unitofwork"
	"algo-notes-be/internal/service"
	"algo-notes-be/pkg/database"
	pktNats "algo-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController

	// Services (exposed for cmd/notectl)
	NoteService service.INoteService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires the store selected by cfg.Database.Driver, the optional
// Redis list cache, the event bus and the HTTP layer.
func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)

	c := &Container{Logger: sysLogger}
	c.closers = append(c.closers, func() {
		_ = sysLogger.Sync()
		_ = activityLogger.Sync()
	})

	uowFactory, closeStore, err := NewRepositoryFactory(cfg)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, closeStore)

	// Redis
	if cfg.Cache.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Cache.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		uowFactory = unitofwork.WithListCache(uowFactory, rdb, cfg.Cache.TTL, sysLogger)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS
	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Events.Topic,
		activityLogger,
		forwarder,
	)
	c.NoteService = service.NewNoteService(
		uowFactory,
		publisherService,
		sysLogger,
		cfg.Notes.MaxSaveAttempts,
	)

	// 4. Controllers
	c.NoteController = controller.NewNoteController(c.NoteService, sysLogger)

	sysLogger.Info("Bootstrap", "Container ready", map[string]interface{}{
		"driver":       cfg.Database.Driver,
		"log_file":     sysLogger.FilePath(),
		"activity_log": activityLogger.FilePath(),
		"list_cache":   cfg.Cache.RedisURL != "",
		"nats_forward": forwarder != nil,
	})

	return c, nil
}

// NewRepositoryFactory opens the configured document store. The returned func
// releases its connections.
func NewRepositoryFactory(cfg *config.Config) (unitofwork.RepositoryFactory, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		if cfg.Database.Connection == "" {
			return nil, nil, fmt.Errorf("DB_CONNECTION_STRING is not set")
		}
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to GORM DB: %w", err)
		}
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return unitofwork.NewRepositoryFactory(gormDB), closeFn, nil

	case config.DriverMongo:
		if cfg.Database.MongoURI == "" {
			return nil, nil, fmt.Errorf("MONGO_URI is not set")
		}
		client, err := database.NewMongoClient(cfg.Database.MongoURI, cfg.Database.MongoTimeout)
		if err != nil {
			return nil, nil, err
		}
		collection := database.OpenCollection(client, cfg.Database.MongoDatabase, model.NoteCollection)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.MongoTimeout)
		defer cancel()
		if err := mongodb.EnsureIndexes(ctx, collection); err != nil {
			log.Printf("[WARN] Failed to ensure mongo indexes: %v", err)
		}

		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return unitofwork.NewMongoRepositoryFactory(collection, cfg.Database.MongoTimeout), closeFn, nil

	case config.DriverMemory:
		log.Println("[INFO] Using in-memory note store; data is lost on exit")
		return unitofwork.NewStaticRepositoryFactory(memory.NewNoteRepository()), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Database.Driver)
	}
}

// Close releases every resource in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
