package dealcache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"gamedeals/internal/domain/entity"
	"gamedeals/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// RedisStore shares the deal set between instances. Backend errors are
// logged and reported as a miss.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, key string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context) ([]entity.RawDeal, bool) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Warn("redis.Get", slog.String("key", s.key), logx.Error(err))
		}

		return nil, false
	}

	var deals []entity.RawDeal
	if err := json.Unmarshal(data, &deals); err != nil {
		logger(ctx).Warn("json.Unmarshal", slog.String("key", s.key), logx.Error(err))
		return nil, false
	}

	return deals, true
}

func (s *RedisStore) Set(ctx context.Context, deals []entity.RawDeal) {
	data, err := json.Marshal(deals)
	if err != nil {
		logger(ctx).Warn("json.Marshal", logx.Error(err))
		return
	}

	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		logger(ctx).Warn("redis.Set", slog.String("key", s.key), logx.Error(err))
	}
}
