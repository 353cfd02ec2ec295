package calculation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheTTL = 30 * time.Minute

// Cache stores computed report rows in redis. Misses and redis failures are
// both reported as a miss so the caller recomputes.
type Cache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewCache(rdb *redis.Client, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("calculation.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calculation.cache")
	}
	return &Cache{rdb: rdb, logger: l}
}

func cacheKey(companyID uint, year, month int) string {
	return fmt.Sprintf("calculation:%d:%d:%d", companyID, year, month)
}

func (c *Cache) Get(ctx context.Context, companyID uint, year, month int) ([]CalculationRow, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, cacheKey(companyID, year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("report cache read failed", zap.Uint("company_id", companyID), zap.Error(err))
		}
		return nil, false
	}

	var rows []CalculationRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		c.logger.Warn("report cache payload corrupt", zap.Uint("company_id", companyID), zap.Error(err))
		return nil, false
	}
	return rows, true
}

func (c *Cache) Set(ctx context.Context, companyID uint, year, month int, rows []CalculationRow) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(companyID, year, month), raw, cacheTTL).Err(); err != nil {
		c.logger.Warn("report cache write failed", zap.Uint("company_id", companyID), zap.Error(err))
	}
}

// InvalidateCompany drops every cached report for the company, all filters
// included.
func (c *Cache) InvalidateCompany(ctx context.Context, companyID uint) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	keys, err := c.rdb.Keys(ctx, fmt.Sprintf("calculation:%d:*", companyID)).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
