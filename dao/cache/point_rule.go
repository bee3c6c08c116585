package cache

import (
	"Wayfarer/config"
	"Wayfarer/dao"
	"Wayfarer/models"
	"Wayfarer/pkg/log"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PointRuleCache 规则读缓存, redis 不可用时直接回源
type PointRuleCache struct {
	redis *redis.Client
	repo  dao.PointRuleRepo
	ttl   time.Duration
}

var _ dao.PointRuleRepo = (*PointRuleCache)(nil)

// NewPointRuleRepo 没有 redis 时直接使用数据库
func NewPointRuleRepo(rdb *redis.Client, repo *dao.PointRule, conf *config.Rewards) dao.PointRuleRepo {
	if rdb == nil {
		return repo
	}
	return NewPointRuleCache(rdb, repo, conf.CacheTTL)
}

func NewPointRuleCache(rdb *redis.Client, repo dao.PointRuleRepo, ttl time.Duration) *PointRuleCache {
	return &PointRuleCache{redis: rdb, repo: repo, ttl: ttl}
}

func (c *PointRuleCache) GetByActivity(ctx context.Context, tx *gorm.DB, key models.ActivityKey) (*models.PointRule, error) {
	val, err := c.redis.Get(ctx, c.ruleKey(key)).Bytes()
	if err == nil {
		var rule models.PointRule
		if err := json.Unmarshal(val, &rule); err == nil {
			return &rule, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.L.Warn("point rule cache get failed", zap.String("activity", string(key)), zap.Error(err))
	}

	rule, err := c.repo.GetByActivity(ctx, tx, key)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(rule); err == nil {
		if err := c.redis.Set(ctx, c.ruleKey(key), b, c.ttl).Err(); err != nil {
			log.L.Warn("point rule cache set failed", zap.String("activity", string(key)), zap.Error(err))
		}
	}
	return rule, nil
}

// Invalidate 规则调整后清掉缓存
func (c *PointRuleCache) Invalidate(ctx context.Context, keys ...models.ActivityKey) error {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, c.ruleKey(k))
	}
	return c.redis.Del(ctx, names...).Err()
}

func (c *PointRuleCache) ruleKey(key models.ActivityKey) string {
	return fmt.Sprintf("point:rule:%s", key)
}
