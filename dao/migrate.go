package dao

import (
	"Wayfarer/config"
	"Wayfarer/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Tables 本服务维护的全部表
func Tables() []any {
	return []any{
		&models.Circuit{},
		&models.CircuitPoi{},
		&models.CustomCircuit{},
		&models.CircuitProgress{},
		&models.PointRule{},
		&models.PointsLog{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables()...)
}

// SeedPointRules 按配置写入积分规则, 未知的 activity key 直接报错
func SeedPointRules(ctx context.Context, repo *PointRule, seeds map[string]config.RuleSeed) error {
	for name := range seeds {
		if !models.ActivityKey(name).Valid() {
			return fmt.Errorf("unknown activity key %q", name)
		}
	}
	for _, key := range models.ActivityKeys {
		seed, ok := seeds[string(key)]
		if !ok {
			continue
		}
		rule := &models.PointRule{
			ActivityKey: key,
			Points:      seed.Points,
			IsActive:    seed.IsActive,
		}
		if err := repo.Upsert(ctx, nil, rule); err != nil {
			return fmt.Errorf("seed point rule %s: %w", key, err)
		}
	}
	return nil
}
