package models

import "time"

// ProgressStatus 路线进度状态, 只能前进
type ProgressStatus string

const (
	ProgressStarted    ProgressStatus = "STARTED"
	ProgressInProgress ProgressStatus = "IN_PROGRESS"
	ProgressCompleted  ProgressStatus = "COMPLETED"
)

// Terminal COMPLETED 之后不再有任何状态变更
func (s ProgressStatus) Terminal() bool {
	return s == ProgressCompleted
}

// CircuitProgress 用户在某条路线上的进度, (user_id, circuit_id, circuit_kind) 唯一
type CircuitProgress struct {
	ID                 uint64         `gorm:"primaryKey;column:id;autoIncrement:false"`
	UserID             uint64         `gorm:"column:user_id;not null;uniqueIndex:uk_user_circuit_kind,priority:1;index:idx_user_updated,priority:1"`
	CircuitID          uint64         `gorm:"column:circuit_id;not null;uniqueIndex:uk_user_circuit_kind,priority:2"`
	CircuitKind        CircuitKind    `gorm:"column:circuit_kind;size:16;not null;uniqueIndex:uk_user_circuit_kind,priority:3"`
	Status             ProgressStatus `gorm:"column:status;size:16;not null"`
	CurrentIndex       int            `gorm:"column:current_index;not null;default:0"`
	CompletedWaypoints WaypointSet    `gorm:"column:completed_waypoints"`
	StartedAt          time.Time      `gorm:"column:started_at;not null"`
	CompletedAt        *time.Time     `gorm:"column:completed_at"`
	TotalTimeMinutes   *int64         `gorm:"column:total_time_minutes"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;index:idx_user_updated,priority:2"`
}

func (CircuitProgress) TableName() string {
	return "circuit_progress"
}
