package models

import (
	"time"

	"gorm.io/datatypes"
)

// CircuitKind 路线类型
type CircuitKind string

const (
	CircuitKindRegular CircuitKind = "REGULAR"
	CircuitKindCustom  CircuitKind = "CUSTOM"
)

func (k CircuitKind) Valid() bool {
	switch k {
	case CircuitKindRegular, CircuitKindCustom:
		return true
	}
	return false
}

// Circuit 官方路线, 途经点由 CircuitPoi 维护
type Circuit struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;size:128;not null;default:''"`
	IsPremium bool      `gorm:"column:is_premium;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Circuit) TableName() string {
	return "circuits"
}

// CircuitPoi 官方路线与途经点的有序关联
type CircuitPoi struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	CircuitID uint64 `gorm:"column:circuit_id;not null;uniqueIndex:uk_circuit_poi,priority:1;index:idx_circuit_position,priority:1"`
	PoiID     uint64 `gorm:"column:poi_id;not null;uniqueIndex:uk_circuit_poi,priority:2"`
	Position  int    `gorm:"column:position;not null;default:0;index:idx_circuit_position,priority:2"`
}

func (CircuitPoi) TableName() string {
	return "circuit_pois"
}

// CustomCircuit 用户自建路线, 途经点直接存成有序 id 列表
type CustomCircuit struct {
	ID        uint64                      `gorm:"primaryKey;column:id"`
	UserID    uint64                      `gorm:"column:user_id;not null;index:idx_custom_circuits_user_id"`
	Name      string                      `gorm:"column:name;size:128;not null;default:''"`
	PoiIDs    datatypes.JSONSlice[uint64] `gorm:"column:poi_ids"`
	CreatedAt time.Time                   `gorm:"column:created_at"`
	UpdatedAt time.Time                   `gorm:"column:updated_at"`
}

func (CustomCircuit) TableName() string {
	return "custom_circuits"
}
