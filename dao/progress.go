package dao

import (
	"Wayfarer/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressKey 定位一条进度记录; Kind 为空时取该路线最近更新的一条
type ProgressKey struct {
	UserID    uint64
	CircuitID uint64
	Kind      models.CircuitKind
}

// ProgressChange RecordVisit 写回的字段
type ProgressChange struct {
	Status             models.ProgressStatus
	CurrentIndex       int
	CompletedWaypoints models.WaypointSet
	CompletedAt        *time.Time
	TotalTimeMinutes   *int64
	UpdatedAt          time.Time
}

type ProgressRepo interface {
	// CreateIfAbsent 唯一键冲突时不写入, created 为 false
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, row *models.CircuitProgress) (created bool, err error)
	Get(ctx context.Context, tx *gorm.DB, key ProgressKey) (*models.CircuitProgress, error)
	// GetForUpdate 行锁, 必须在事务内调用
	GetForUpdate(ctx context.Context, tx *gorm.DB, key ProgressKey) (*models.CircuitProgress, error)
	Update(ctx context.Context, tx *gorm.DB, id uint64, change ProgressChange) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint64) ([]*models.CircuitProgress, error)
}

var _ ProgressRepo = (*Progress)(nil)

type Progress struct {
	Repo[models.CircuitProgress]
}

func NewProgress(db *gorm.DB) *Progress {
	return &Progress{
		Repo: NewRepo[models.CircuitProgress](db),
	}
}

func (p *Progress) CreateIfAbsent(ctx context.Context, tx *gorm.DB, row *models.CircuitProgress) (bool, error) {
	result := p.Conn(ctx, tx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (p *Progress) Get(ctx context.Context, tx *gorm.DB, key ProgressKey) (*models.CircuitProgress, error) {
	return p.find(p.Conn(ctx, tx), key)
}

func (p *Progress) GetForUpdate(ctx context.Context, tx *gorm.DB, key ProgressKey) (*models.CircuitProgress, error) {
	return p.find(p.Conn(ctx, tx).Clauses(clause.Locking{Strength: "UPDATE"}), key)
}

func (p *Progress) find(query *gorm.DB, key ProgressKey) (*models.CircuitProgress, error) {
	query = query.Where("user_id = ? AND circuit_id = ?", key.UserID, key.CircuitID)
	if key.Kind != "" {
		query = query.Where("circuit_kind = ?", key.Kind)
	}

	var row models.CircuitProgress
	err := query.Order("updated_at DESC").Order("id DESC").First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (p *Progress) Update(ctx context.Context, tx *gorm.DB, id uint64, change ProgressChange) error {
	result := p.Conn(ctx, tx).
		Model(&models.CircuitProgress{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              change.Status,
			"current_index":       change.CurrentIndex,
			"completed_waypoints": change.CompletedWaypoints,
			"completed_at":        change.CompletedAt,
			"total_time_minutes":  change.TotalTimeMinutes,
			"updated_at":          change.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser 最近更新的在前
func (p *Progress) ListByUser(ctx context.Context, tx *gorm.DB, userID uint64) ([]*models.CircuitProgress, error) {
	rows := make([]*models.CircuitProgress, 0)
	err := p.Conn(ctx, tx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}
