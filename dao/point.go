package dao

import (
	"Wayfarer/models"
	"context"

	"gorm.io/gorm"
)

type PointLogRepo interface {
	// Exists 幂等检查: 同一用户同一活动同一来源只入账一次
	Exists(ctx context.Context, tx *gorm.DB, userID uint64, key models.ActivityKey, sourceID uint64) (bool, error)
	Append(ctx context.Context, tx *gorm.DB, log *models.PointsLog) error
	Sum(ctx context.Context, tx *gorm.DB, userID uint64) (count int64, total int64, err error)
	ListRecords(ctx context.Context, tx *gorm.DB, userID uint64, cursor uint64, limit int) ([]models.PointsLog, error)
}

var _ PointLogRepo = (*PointLog)(nil)

type PointLog struct {
	Repo[models.PointsLog]
}

func NewPointLog(db *gorm.DB) *PointLog {
	return &PointLog{
		Repo: NewRepo[models.PointsLog](db),
	}
}

func (p *PointLog) Exists(ctx context.Context, tx *gorm.DB, userID uint64, key models.ActivityKey, sourceID uint64) (bool, error) {
	return p.IsExist(ctx, tx, "user_id = ? AND activity_key = ? AND source_id = ?", userID, key, sourceID)
}

func (p *PointLog) Append(ctx context.Context, tx *gorm.DB, log *models.PointsLog) error {
	return p.Create(ctx, tx, log)
}

// Sum 余额即全部流水之和
func (p *PointLog) Sum(ctx context.Context, tx *gorm.DB, userID uint64) (int64, int64, error) {
	var res struct {
		Count int64
		Total int64
	}
	err := p.Conn(ctx, tx).
		Model(&models.PointsLog{}).
		Select("COUNT(*) AS count, COALESCE(SUM(points), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&res).Error
	return res.Count, res.Total, err
}

// ListRecords 按 id 倒序的游标分页, cursor 为 0 表示第一页
func (p *PointLog) ListRecords(ctx context.Context, tx *gorm.DB, userID uint64, cursor uint64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := p.Conn(ctx, tx).Where("user_id = ?", userID)

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
