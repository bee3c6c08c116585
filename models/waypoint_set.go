package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// WaypointSet 已完成途经点的有序集合, 按打卡顺序保存且不含重复
// 只在存储边界序列化为 JSON 数组
type WaypointSet []uint64

func NewWaypointSet(ids ...uint64) WaypointSet {
	s := make(WaypointSet, 0, len(ids))
	for _, id := range ids {
		s, _ = s.Add(id)
	}
	return s
}

func (s WaypointSet) Len() int {
	return len(s)
}

func (s WaypointSet) Contains(id uint64) bool {
	return slices.Contains(s, id)
}

// Add 返回追加后的新集合, 原集合不变; 已存在时 added 为 false
func (s WaypointSet) Add(id uint64) (next WaypointSet, added bool) {
	if s.Contains(id) {
		return s, false
	}
	next = make(WaypointSet, len(s), len(s)+1)
	copy(next, s)
	return append(next, id), true
}

// IDs 拷贝一份给调用方
func (s WaypointSet) IDs() []uint64 {
	out := make([]uint64, len(s))
	copy(out, s)
	return out
}

func (WaypointSet) GormDataType() string {
	return "json"
}

func (s WaypointSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]uint64(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *WaypointSet) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = WaypointSet{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("waypoint set: unsupported type %T", value)
	}
	if len(raw) == 0 {
		*s = WaypointSet{}
		return nil
	}

	var ids []uint64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return fmt.Errorf("waypoint set: %w", err)
	}
	*s = NewWaypointSet(ids...)
	return nil
}
