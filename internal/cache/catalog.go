package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

const (
	catalogKey = "clinic:service-catalog"
	catalogTTL = 60 * time.Second
)

// ServiceCatalog is a read-through cache over the service table. The
// catalog is seeded out of band and effectively immutable, so a short
// TTL is the only invalidation needed. With no redis client configured
// every read goes straight to the loader.
type ServiceCatalog struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewServiceCatalog(redisURL string, log *zap.Logger) *ServiceCatalog {
	if redisURL == "" {
		return &ServiceCatalog{log: log}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, catalog cache disabled", zap.Error(err))
		return &ServiceCatalog{log: log}
	}

	return &ServiceCatalog{rdb: redis.NewClient(opt), log: log}
}

func (c *ServiceCatalog) Get(
	ctx context.Context,
	load func(context.Context) ([]models.Service, error),
) ([]models.Service, error) {

	if c.rdb == nil {
		return load(ctx)
	}

	if raw, err := c.rdb.Get(ctx, catalogKey).Result(); err == nil {
		var services []models.Service
		if jsonErr := json.Unmarshal([]byte(raw), &services); jsonErr == nil {
			return services, nil
		}
	} else if err != redis.Nil {
		c.log.Warn("catalog cache read failed", zap.Error(err))
	}

	services, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(services); err == nil {
		if err := c.rdb.Set(ctx, catalogKey, b, catalogTTL).Err(); err != nil {
			c.log.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return services, nil
}
