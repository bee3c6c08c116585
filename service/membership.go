package service

import (
	"Wayfarer/dao"
	"Wayfarer/models"
	"Wayfarer/pkg/response"
	"context"
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// Membership 一条路线当前的途经点
type Membership struct {
	CircuitID   uint64
	Kind        models.CircuitKind
	WaypointIDs []uint64
	IsPremium   bool // 自建路线恒为 false
}

func (m *Membership) Total() int {
	return len(m.WaypointIDs)
}

func (m *Membership) Contains(waypointID uint64) bool {
	return slices.Contains(m.WaypointIDs, waypointID)
}

// MembershipResolver 每次调用都实时读取, 不做快照
type MembershipResolver interface {
	Resolve(ctx context.Context, tx *gorm.DB, circuitID uint64, kind models.CircuitKind) (*Membership, error)
}

var _ MembershipResolver = (*CircuitMembership)(nil)

type CircuitMembership struct {
	CircuitDAO dao.CircuitRepo
}

func (c *CircuitMembership) Resolve(ctx context.Context, tx *gorm.DB, circuitID uint64, kind models.CircuitKind) (*Membership, error) {
	switch kind {
	case models.CircuitKindRegular:
		circuit, err := c.CircuitDAO.GetCircuit(ctx, tx, circuitID)
		if dao.IsNotFound(err) {
			return nil, response.NotFound("路线不存在")
		}
		if err != nil {
			return nil, fmt.Errorf("get circuit %d: %w", circuitID, err)
		}
		ids, err := c.CircuitDAO.ListPoiIDs(ctx, tx, circuitID)
		if err != nil {
			return nil, fmt.Errorf("list circuit %d pois: %w", circuitID, err)
		}
		return &Membership{
			CircuitID:   circuitID,
			Kind:        kind,
			WaypointIDs: ids,
			IsPremium:   circuit.IsPremium,
		}, nil

	case models.CircuitKindCustom:
		custom, err := c.CircuitDAO.GetCustomCircuit(ctx, tx, circuitID)
		if dao.IsNotFound(err) {
			return nil, response.NotFound("自建路线不存在")
		}
		if err != nil {
			return nil, fmt.Errorf("get custom circuit %d: %w", circuitID, err)
		}
		return &Membership{
			CircuitID:   circuitID,
			Kind:        kind,
			WaypointIDs: slices.Clone([]uint64(custom.PoiIDs)),
		}, nil
	}
	return nil, response.Validation("circuit_kind", "路线类型错误")
}
