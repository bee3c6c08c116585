package service

import (
	"Wayfarer/dao"
	"Wayfarer/models"
	"Wayfarer/pkg/response"
	"Wayfarer/pkg/snowflake"
	"Wayfarer/types"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IProgressService = (*ProgressService)(nil)

type IProgressService interface {
	// Start 幂等: 已存在时原样返回, created 为 false
	Start(ctx context.Context, userID, circuitID uint64, kind models.CircuitKind) (progress *types.CircuitProgress, created bool, err error)
	// RecordVisit kind 为空时使用该路线最近更新的记录
	RecordVisit(ctx context.Context, userID, circuitID, waypointID uint64, kind models.CircuitKind) (*types.VisitResult, error)

	// 查询
	GetProgress(ctx context.Context, userID, circuitID uint64, kind models.CircuitKind) (*types.CircuitProgress, error)
	ListProgress(ctx context.Context, userID uint64) ([]*types.CircuitProgress, error)
}

type ProgressService struct {
	DB            *gorm.DB
	ProgressDAO   dao.ProgressRepo
	Membership    MembershipResolver
	RewardService IRewardService
	Logger        *zap.Logger

	Now func() time.Time `wire:"-"`
}

func (s *ProgressService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ProgressService) Start(ctx context.Context, userID, circuitID uint64, kind models.CircuitKind) (*types.CircuitProgress, bool, error) {
	if circuitID == 0 {
		return nil, false, response.Validation("circuit_id", "circuit_id 不能为空")
	}
	if !kind.Valid() {
		return nil, false, response.Validation("circuit_kind", "circuit_kind 只能是 REGULAR 或 CUSTOM")
	}
	key := dao.ProgressKey{UserID: userID, CircuitID: circuitID, Kind: kind}

	existing, err := s.ProgressDAO.Get(ctx, nil, key)
	if err == nil {
		return toProgressDTO(existing), false, nil
	}
	if !dao.IsNotFound(err) {
		return nil, false, response.Internal(fmt.Errorf("get progress: %w", err))
	}

	if _, err := s.Membership.Resolve(ctx, nil, circuitID, kind); err != nil {
		return nil, false, asBizError(err)
	}

	now := s.now()
	row := &models.CircuitProgress{
		ID:                 snowflake.GenID(),
		UserID:             userID,
		CircuitID:          circuitID,
		CircuitKind:        kind,
		Status:             models.ProgressStarted,
		CurrentIndex:       0,
		CompletedWaypoints: models.NewWaypointSet(),
		StartedAt:          now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	created, err := s.ProgressDAO.CreateIfAbsent(ctx, nil, row)
	if err != nil {
		return nil, false, response.Internal(fmt.Errorf("create progress: %w", err))
	}
	if !created {
		// 并发 start 被另一个请求抢先写入
		existing, err := s.ProgressDAO.Get(ctx, nil, key)
		if err != nil {
			return nil, false, response.Internal(fmt.Errorf("get progress: %w", err))
		}
		return toProgressDTO(existing), false, nil
	}

	progressStartedTotal.WithLabelValues(string(kind)).Inc()
	s.Logger.Info("circuit progress started",
		zap.Uint64("user_id", userID),
		zap.Uint64("circuit_id", circuitID),
		zap.String("kind", string(kind)),
		zap.Uint64("progress_id", row.ID),
	)
	return toProgressDTO(row), true, nil
}

func (s *ProgressService) RecordVisit(ctx context.Context, userID, circuitID, waypointID uint64, kind models.CircuitKind) (*types.VisitResult, error) {
	if circuitID == 0 {
		return nil, response.Validation("circuit_id", "circuit_id 不能为空")
	}
	if waypointID == 0 {
		return nil, response.Validation("waypoint_id", "waypoint_id 不能为空")
	}
	if kind != "" && !kind.Valid() {
		return nil, response.Validation("circuit_kind", "circuit_kind 只能是 REGULAR 或 CUSTOM")
	}
	key := dao.ProgressKey{UserID: userID, CircuitID: circuitID, Kind: kind}

	result := &types.VisitResult{Rewards: make([]types.PointRecord, 0)}
	completedNow := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.ProgressDAO.GetForUpdate(ctx, tx, key)
		if dao.IsNotFound(err) {
			return response.NotFound("尚未开始该路线")
		}
		if err != nil {
			return response.Internal(fmt.Errorf("lock progress: %w", err))
		}

		if row.Status.Terminal() {
			return response.Conflict("路线已完成")
		}

		membership, err := s.Membership.Resolve(ctx, tx, row.CircuitID, row.CircuitKind)
		if err != nil {
			return asBizError(err)
		}

		completed := row.CompletedWaypoints
		if completed.Contains(waypointID) {
			// 重复打卡不计数; 路线删减后已打卡数可能已达标, 此时补判完成
			if completed.Len() < membership.Total() {
				result.Progress = toProgressDTO(row)
				return nil
			}
		} else {
			if !membership.Contains(waypointID) {
				return response.Validation("waypoint_id", "途经点不属于该路线")
			}
			completed, _ = completed.Add(waypointID)
		}

		now := s.now()
		transition := DetectCompletion(row.Status, row.StartedAt, completed.Len(), membership.Total(), now)

		change := dao.ProgressChange{
			Status:             transition.Status,
			CurrentIndex:       completed.Len(),
			CompletedWaypoints: completed,
			CompletedAt:        transition.CompletedAt,
			TotalTimeMinutes:   transition.TotalTimeMinutes,
			UpdatedAt:          now,
		}
		if err := s.ProgressDAO.Update(ctx, tx, row.ID, change); err != nil {
			return response.Internal(fmt.Errorf("update progress: %w", err))
		}
		applyChange(row, change)

		if transition.Completed {
			completedNow = true
			for _, entry := range s.RewardService.AwardCompletion(ctx, tx, row, membership) {
				result.Rewards = append(result.Rewards, toPointRecord(entry))
			}
		}
		result.Progress = toProgressDTO(row)
		return nil
	})
	if err != nil {
		return nil, asBizError(err)
	}

	if completedNow {
		circuitCompletedTotal.WithLabelValues(result.Progress.CircuitKind).Inc()
		s.Logger.Info("circuit completed",
			zap.Uint64("user_id", userID),
			zap.Uint64("circuit_id", circuitID),
			zap.Uint64("progress_id", result.Progress.ID),
			zap.Int("rewards", len(result.Rewards)),
		)
	}
	return result, nil
}

func (s *ProgressService) GetProgress(ctx context.Context, userID, circuitID uint64, kind models.CircuitKind) (*types.CircuitProgress, error) {
	if circuitID == 0 {
		return nil, response.Validation("circuit_id", "circuit_id 不能为空")
	}
	if kind != "" && !kind.Valid() {
		return nil, response.Validation("circuit_kind", "circuit_kind 只能是 REGULAR 或 CUSTOM")
	}
	row, err := s.ProgressDAO.Get(ctx, nil, dao.ProgressKey{UserID: userID, CircuitID: circuitID, Kind: kind})
	if dao.IsNotFound(err) {
		return nil, response.NotFound("尚未开始该路线")
	}
	if err != nil {
		return nil, response.Internal(fmt.Errorf("get progress: %w", err))
	}
	return toProgressDTO(row), nil
}

func (s *ProgressService) ListProgress(ctx context.Context, userID uint64) ([]*types.CircuitProgress, error) {
	rows, err := s.ProgressDAO.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, response.Internal(fmt.Errorf("list progress: %w", err))
	}
	out := make([]*types.CircuitProgress, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProgressDTO(row))
	}
	return out, nil
}

func applyChange(row *models.CircuitProgress, change dao.ProgressChange) {
	row.Status = change.Status
	row.CurrentIndex = change.CurrentIndex
	row.CompletedWaypoints = change.CompletedWaypoints
	row.CompletedAt = change.CompletedAt
	row.TotalTimeMinutes = change.TotalTimeMinutes
	row.UpdatedAt = change.UpdatedAt
}

// asBizError 非业务错误统一按内部错误处理
func asBizError(err error) error {
	var be *response.BizError
	if errors.As(err, &be) {
		return be
	}
	return response.Internal(err)
}

func toProgressDTO(row *models.CircuitProgress) *types.CircuitProgress {
	return &types.CircuitProgress{
		ID:                 row.ID,
		UserID:             row.UserID,
		CircuitID:          row.CircuitID,
		CircuitKind:        string(row.CircuitKind),
		CurrentIndex:       row.CurrentIndex,
		CompletedWaypoints: row.CompletedWaypoints.IDs(),
		Status:             string(row.Status),
		StartedAt:          row.StartedAt,
		CompletedAt:        row.CompletedAt,
		TotalTimeMinutes:   row.TotalTimeMinutes,
		UpdatedAt:          row.UpdatedAt,
	}
}
