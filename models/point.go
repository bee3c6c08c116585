package models

import "time"

// ActivityKey 积分活动类型, 取值为封闭集合
type ActivityKey string

const (
	ActivityCompleteCircuit        ActivityKey = "COMPLETE_CIRCUIT"
	ActivityCompletePremiumCircuit ActivityKey = "COMPLETE_PREMIUM_CIRCUIT"
)

// ActivityKeys 全部已知活动, 顺序即 migrate 写入顺序
var ActivityKeys = []ActivityKey{
	ActivityCompleteCircuit,
	ActivityCompletePremiumCircuit,
}

func (k ActivityKey) Valid() bool {
	switch k {
	case ActivityCompleteCircuit, ActivityCompletePremiumCircuit:
		return true
	}
	return false
}

// Remark 流水备注
func (k ActivityKey) Remark() string {
	switch k {
	case ActivityCompleteCircuit:
		return "完成路线奖励"
	case ActivityCompletePremiumCircuit:
		return "完成精品路线额外奖励"
	}
	return string(k)
}

// PointRule 积分规则, 引擎只读
type PointRule struct {
	ID          uint64      `gorm:"primaryKey;column:id"`
	ActivityKey ActivityKey `gorm:"column:activity_key;size:64;uniqueIndex"`
	Points      int64       `gorm:"column:points"`
	IsActive    bool        `gorm:"column:is_active;not null"`
	CreatedAt   time.Time   `gorm:"column:created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at"`
}

func (PointRule) TableName() string {
	return "point_rules"
}

// PointsLog 积分流水, 只追加不修改
type PointsLog struct {
	ID          uint64      `gorm:"primaryKey;column:id;autoIncrement:false"`
	UserID      uint64      `gorm:"column:user_id;uniqueIndex:uk_user_activity_source,priority:1;index:idx_point_logs_user_id"`
	ActivityKey ActivityKey `gorm:"column:activity_key;size:64;uniqueIndex:uk_user_activity_source,priority:2"`
	Points      int64       `gorm:"column:points"`
	SourceID    uint64      `gorm:"column:source_id;uniqueIndex:uk_user_activity_source,priority:3"` // 关联的进度记录ID
	Remark      string      `gorm:"column:remark;size:255"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (PointsLog) TableName() string {
	return "point_logs"
}
