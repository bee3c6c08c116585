package service

import (
	"Wayfarer/dao"
	"Wayfarer/models"
	"Wayfarer/pkg/response"
	"Wayfarer/pkg/snowflake"
	"Wayfarer/types"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RewardEvaluationWarning 积分发放失败, 只记录日志不返回给调用方
type RewardEvaluationWarning struct {
	UserID   uint64
	SourceID uint64
	Activity models.ActivityKey
	Err      error
}

func (w *RewardEvaluationWarning) Error() string {
	return fmt.Sprintf("reward %s for user %d source %d: %v", w.Activity, w.UserID, w.SourceID, w.Err)
}

func (w *RewardEvaluationWarning) Unwrap() error {
	return w.Err
}

var _ IRewardService = (*RewardService)(nil)

type IRewardService interface {
	// Award 规则缺失、停用或已入账时返回 nil, nil
	Award(ctx context.Context, tx *gorm.DB, userID uint64, activity models.ActivityKey, sourceID uint64) (*models.PointsLog, error)
	// AwardCompletion 完成路线时发放积分, 失败只告警
	AwardCompletion(ctx context.Context, tx *gorm.DB, progress *models.CircuitProgress, membership *Membership) []models.PointsLog

	// 查询
	GetAccount(ctx context.Context, userID uint64) (*types.PointsAccount, error)
	ListPointRecords(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ListPointsRecord, error)
}

type RewardService struct {
	DB       *gorm.DB
	RuleRepo dao.PointRuleRepo
	LogRepo  dao.PointLogRepo
	Logger   *zap.Logger

	Now func() time.Time `wire:"-"`
}

func (s *RewardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CompletionActivities 完成路线触发的活动: 官方精品路线额外奖励一次
func CompletionActivities(kind models.CircuitKind, premium bool) []models.ActivityKey {
	activities := []models.ActivityKey{models.ActivityCompleteCircuit}
	if kind == models.CircuitKindRegular && premium {
		activities = append(activities, models.ActivityCompletePremiumCircuit)
	}
	return activities
}

func (s *RewardService) Award(ctx context.Context, tx *gorm.DB, userID uint64, activity models.ActivityKey, sourceID uint64) (*models.PointsLog, error) {
	if !activity.Valid() {
		return nil, fmt.Errorf("unknown activity %q", activity)
	}
	logger := s.Logger.With(
		zap.Uint64("user_id", userID),
		zap.String("activity", string(activity)),
		zap.Uint64("source_id", sourceID),
	)

	rule, err := s.RuleRepo.GetByActivity(ctx, tx, activity)
	if dao.IsNotFound(err) {
		logger.Info("point rule missing, skip award")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询积分规则失败: %w", err)
	}
	if !rule.IsActive {
		logger.Info("point rule inactive, skip award")
		return nil, nil
	}

	// 幂等检查
	exists, err := s.LogRepo.Exists(ctx, tx, userID, activity, sourceID)
	if err != nil {
		return nil, fmt.Errorf("检查积分变动记录失败: %w", err)
	}
	if exists {
		logger.Info("points already awarded")
		return nil, nil
	}

	entry := &models.PointsLog{
		ID:          snowflake.GenID(),
		UserID:      userID,
		ActivityKey: activity,
		Points:      rule.Points,
		SourceID:    sourceID,
		Remark:      activity.Remark(),
		CreatedAt:   s.now(),
	}
	if err := s.LogRepo.Append(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("记录积分变动日志失败: %w", err)
	}

	rewardPointsTotal.WithLabelValues(string(activity)).Add(float64(rule.Points))
	logger.Info("points awarded", zap.Int64("points", rule.Points))
	return entry, nil
}

func (s *RewardService) AwardCompletion(ctx context.Context, tx *gorm.DB, progress *models.CircuitProgress, membership *Membership) []models.PointsLog {
	awarded := make([]models.PointsLog, 0, 2)

	for _, activity := range CompletionActivities(progress.CircuitKind, membership.IsPremium) {
		var entry *models.PointsLog
		// 每个活动单独一个 savepoint, 失败只回滚自己
		err := tx.Transaction(func(sp *gorm.DB) error {
			var err error
			entry, err = s.Award(ctx, sp, progress.UserID, activity, progress.ID)
			return err
		})
		if err != nil {
			warn := &RewardEvaluationWarning{
				UserID:   progress.UserID,
				SourceID: progress.ID,
				Activity: activity,
				Err:      err,
			}
			rewardFailuresTotal.WithLabelValues(string(activity)).Inc()
			s.Logger.Warn("reward evaluation failed", zap.Error(warn))
			continue
		}
		if entry != nil {
			awarded = append(awarded, *entry)
		}
	}
	return awarded
}

func (s *RewardService) GetAccount(ctx context.Context, userID uint64) (*types.PointsAccount, error) {
	count, total, err := s.LogRepo.Sum(ctx, nil, userID)
	if err != nil {
		return nil, response.Internal(fmt.Errorf("统计积分流水失败: %w", err))
	}
	return &types.PointsAccount{
		Balance:    total,
		EntryCount: count,
	}, nil
}

func (s *RewardService) ListPointRecords(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ListPointsRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	logs, err := s.LogRepo.ListRecords(ctx, nil, userID, cursor, limit+1)
	if err != nil {
		return nil, response.Internal(fmt.Errorf("查询积分流水失败: %w", err))
	}

	resp := &types.ListPointsRecord{
		Records: make([]types.PointRecord, 0, len(logs)),
		HasMore: false,
	}

	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = logs[len(logs)-1].ID
	}

	for _, l := range logs {
		resp.Records = append(resp.Records, toPointRecord(l))
	}
	return resp, nil
}

func toPointRecord(l models.PointsLog) types.PointRecord {
	return types.PointRecord{
		ID:          l.ID,
		ActivityKey: string(l.ActivityKey),
		Amount:      l.Points,
		SourceID:    l.SourceID,
		Description: l.Remark,
		CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
