package types

import "time"

// StartProgressReq 开始一条路线
type StartProgressReq struct {
	CircuitID   uint64 `json:"circuit_id"`
	CircuitKind string `json:"circuit_kind"` // REGULAR / CUSTOM
}

// VisitWaypointReq 打卡一个途经点, circuit_kind 可省略
type VisitWaypointReq struct {
	CircuitID   uint64 `json:"circuit_id"`
	WaypointID  uint64 `json:"waypoint_id"`
	CircuitKind string `json:"circuit_kind"`
}

type GetProgressReq struct {
	CircuitKind string `form:"circuit_kind"`
}

// CircuitProgress 对外返回的进度记录
type CircuitProgress struct {
	ID                 uint64     `json:"id"`
	UserID             uint64     `json:"user_id"`
	CircuitID          uint64     `json:"circuit_id"`
	CircuitKind        string     `json:"circuit_kind"`
	CurrentIndex       int        `json:"current_index"`
	CompletedWaypoints []uint64   `json:"completed_waypoints"`
	Status             string     `json:"status"`
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	TotalTimeMinutes   *int64     `json:"total_time_minutes"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// VisitResult 打卡结果, 完成路线时附带本次入账的积分
type VisitResult struct {
	Progress *CircuitProgress `json:"progress"`
	Rewards  []PointRecord    `json:"rewards"`
}
