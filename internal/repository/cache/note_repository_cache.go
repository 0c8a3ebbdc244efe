package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/pkg/logger"
	"algo-notes-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const (
	genKey        = "notes:gen"
	listKeyPrefix = "notes:list:"
)

// listKey names the cached listing for one write generation. Save bumps the
// generation, so a listing computed before a write can only land under a key
// no later reader asks for.
func listKey(gen int64) string {
	return listKeyPrefix + strconv.FormatInt(gen, 10)
}

// CachedNoteRepository serves FindAll from Redis and moves to a fresh cache
// key on every successful Save. Redis errors are logged and fall through to the store.
type CachedNoteRepository struct {
	next   contract.NoteRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewCachedNoteRepository(next contract.NoteRepository, rdb *redis.Client, ttl time.Duration, log logger.ILogger) contract.NoteRepository {
	return &CachedNoteRepository{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: log,
	}
}

func (r *CachedNoteRepository) FindByTopic(ctx context.Context, topic string) (*entity.Note, error) {
	return r.next.FindByTopic(ctx, topic)
}

func (r *CachedNoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	gen, err := r.rdb.Get(ctx, genKey).Int64()
	if err != nil && err != redis.Nil {
		r.logger.Warn("NoteCache", "Failed to read cache generation", map[string]interface{}{"error": err.Error()})
		return r.next.FindAll(ctx)
	}
	key := listKey(gen)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var notes []*entity.Note
		if jsonErr := json.Unmarshal(raw, &notes); jsonErr == nil {
			return notes, nil
		}
	} else if err != redis.Nil {
		r.logger.Warn("NoteCache", "Failed to read notes from cache", map[string]interface{}{"error": err.Error()})
	}

	notes, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(notes); err == nil {
		if err := r.rdb.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("NoteCache", "Failed to write notes to cache", map[string]interface{}{"error": err.Error()})
		}
	}
	return notes, nil
}

func (r *CachedNoteRepository) Save(ctx context.Context, note *entity.Note) error {
	if err := r.next.Save(ctx, note); err != nil {
		return err
	}
	r.Invalidate(ctx)
	return nil
}

func (r *CachedNoteRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

// Invalidate starts a new cache generation. Entries of older generations expire by TTL.
func (r *CachedNoteRepository) Invalidate(ctx context.Context) {
	if err := r.rdb.Incr(ctx, genKey).Err(); err != nil {
		r.logger.Error("NoteCache", "Failed to invalidate notes cache", map[string]interface{}{"error": err.Error()})
	}
}
