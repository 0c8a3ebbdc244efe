package unitofwork

import (
	"context"
	"time"

	"algo-notes-be/internal/pkg/logger"
	"algo-notes-be/internal/repository/cache"
	"algo-notes-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db: db,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived per request; the pooled DB handle is shared.
	return NewUnitOfWork(f.db)
}

type MongoRepositoryFactory struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoRepositoryFactory(collection *mongo.Collection, timeout time.Duration) RepositoryFactory {
	return &MongoRepositoryFactory{
		collection: collection,
		timeout:    timeout,
	}
}

func (f *MongoRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &MongoUnitOfWork{collection: f.collection, timeout: f.timeout}
}

// StaticRepositoryFactory always returns the same repository. Used for the
// in-memory store, whose state lives in the repository itself.
type StaticRepositoryFactory struct {
	notes contract.NoteRepository
}

func NewStaticRepositoryFactory(notes contract.NoteRepository) RepositoryFactory {
	return &StaticRepositoryFactory{notes: notes}
}

func (f *StaticRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &repositoryUnitOfWork{notes: f.notes}
}

type cachedRepositoryFactory struct {
	next   RepositoryFactory
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

// WithListCache wraps every NoteRepository handed out by next in the Redis list cache.
func WithListCache(next RepositoryFactory, rdb *redis.Client, ttl time.Duration, log logger.ILogger) RepositoryFactory {
	return &cachedRepositoryFactory{next: next, rdb: rdb, ttl: ttl, logger: log}
}

func (f *cachedRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	inner := f.next.NewUnitOfWork(ctx).NoteRepository()
	return &repositoryUnitOfWork{
		notes: cache.NewCachedNoteRepository(inner, f.rdb, f.ttl, f.logger),
	}
}
