package dao

import (
	"Wayfarer/models"
	"context"

	"gorm.io/gorm"
)

// CircuitRepo 路线成员关系只读访问, 路线内容由外部系统维护
type CircuitRepo interface {
	GetCircuit(ctx context.Context, tx *gorm.DB, id uint64) (*models.Circuit, error)
	// ListPoiIDs 按 position 排序的途经点
	ListPoiIDs(ctx context.Context, tx *gorm.DB, circuitID uint64) ([]uint64, error)
	GetCustomCircuit(ctx context.Context, tx *gorm.DB, id uint64) (*models.CustomCircuit, error)
}

var _ CircuitRepo = (*Circuit)(nil)

type Circuit struct {
	Repo[models.Circuit]
}

func NewCircuit(db *gorm.DB) *Circuit {
	return &Circuit{
		Repo: NewRepo[models.Circuit](db),
	}
}

func (c *Circuit) GetCircuit(ctx context.Context, tx *gorm.DB, id uint64) (*models.Circuit, error) {
	return c.FindByWhere(ctx, tx, "id = ?", id)
}

func (c *Circuit) ListPoiIDs(ctx context.Context, tx *gorm.DB, circuitID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := c.Conn(ctx, tx).
		Model(&models.CircuitPoi{}).
		Where("circuit_id = ?", circuitID).
		Order("position ASC").
		Order("id ASC").
		Pluck("poi_id", &ids).Error
	return ids, err
}

func (c *Circuit) GetCustomCircuit(ctx context.Context, tx *gorm.DB, id uint64) (*models.CustomCircuit, error) {
	var row models.CustomCircuit
	if err := c.Conn(ctx, tx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
