package main

import (
	"Wayfarer/config"
	"Wayfarer/dao"
	"Wayfarer/dao/cache"
	"Wayfarer/models"
	"Wayfarer/pkg/log"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Migrator struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	PointRule *dao.PointRule
}

func (m *Migrator) Run(ctx context.Context) error {
	if err := dao.AutoMigrate(m.DB); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := dao.SeedPointRules(ctx, m.PointRule, m.Config.Rewards.Seed); err != nil {
		return err
	}

	// 规则已更新, 清掉旧缓存
	if m.Redis != nil {
		rules := cache.NewPointRuleCache(m.Redis, m.PointRule, m.Config.Rewards.CacheTTL)
		if err := rules.Invalidate(ctx, models.ActivityKeys...); err != nil {
			log.L.Warn("invalidate point rule cache failed", zap.Error(err))
		}
	}
	log.L.Info("migrate done", zap.Int("rules", len(m.Config.Rewards.Seed)))
	return nil
}
