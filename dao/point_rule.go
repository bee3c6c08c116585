package dao

import (
	"Wayfarer/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PointRuleRepo interface {
	// GetByActivity 规则不存在时返回 gorm.ErrRecordNotFound
	GetByActivity(ctx context.Context, tx *gorm.DB, key models.ActivityKey) (*models.PointRule, error)
}

var _ PointRuleRepo = (*PointRule)(nil)

type PointRule struct {
	Repo[models.PointRule]
}

func NewPointRule(db *gorm.DB) *PointRule {
	return &PointRule{
		Repo: NewRepo[models.PointRule](db),
	}
}

func (p *PointRule) GetByActivity(ctx context.Context, tx *gorm.DB, key models.ActivityKey) (*models.PointRule, error) {
	return p.FindByWhere(ctx, tx, "activity_key = ?", key)
}

// Upsert 运维初始化规则用, 业务流程不修改规则
func (p *PointRule) Upsert(ctx context.Context, tx *gorm.DB, rule *models.PointRule) error {
	return p.Conn(ctx, tx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "activity_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"points", "is_active", "updated_at"}),
		}).
		Create(rule).Error
}
