package service

import (
	"Wayfarer/dao"
	"Wayfarer/models"
	"Wayfarer/pkg/testutil"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

var t0 = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type env struct {
	db       *gorm.DB
	clock    *fakeClock
	logs     *observer.ObservedLogs
	progress *ProgressService
	reward   *RewardService
	logRepo  *dao.PointLog
	circuits *dao.Circuit
}

type envOption func(*env)

func withLogRepo(repo dao.PointLogRepo) envOption {
	return func(e *env) { e.reward.LogRepo = repo }
}

func withProgressRepo(repo dao.ProgressRepo) envOption {
	return func(e *env) { e.progress.ProgressDAO = repo }
}

func newEnv(t *testing.T, opts ...envOption) *env {
	t.Helper()

	db := testutil.DB(t, dao.Tables()...)
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	clock := &fakeClock{now: t0}

	e := &env{
		db:       db,
		clock:    clock,
		logs:     logs,
		logRepo:  dao.NewPointLog(db),
		circuits: dao.NewCircuit(db),
	}
	e.reward = &RewardService{
		DB:       db,
		RuleRepo: dao.NewPointRule(db),
		LogRepo:  e.logRepo,
		Logger:   logger,
		Now:      clock.Now,
	}
	e.progress = &ProgressService{
		DB:            db,
		ProgressDAO:   dao.NewProgress(db),
		Membership:    &CircuitMembership{CircuitDAO: e.circuits},
		RewardService: e.reward,
		Logger:        logger,
		Now:           clock.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *env) seedCircuit(t *testing.T, id uint64, premium bool, pois ...uint64) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Circuit{ID: id, Name: "circuit", IsPremium: premium}).Error)
	for i, poi := range pois {
		require.NoError(t, e.db.Create(&models.CircuitPoi{CircuitID: id, PoiID: poi, Position: i}).Error)
	}
}

func (e *env) seedCustomCircuit(t *testing.T, id, owner uint64, pois ...uint64) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.CustomCircuit{ID: id, UserID: owner, Name: "mine", PoiIDs: pois}).Error)
}

func (e *env) seedRule(t *testing.T, key models.ActivityKey, points int64, active bool) {
	t.Helper()
	require.NoError(t, dao.NewPointRule(e.db).Upsert(t.Context(), nil, &models.PointRule{
		ActivityKey: key,
		Points:      points,
		IsActive:    active,
	}))
}

func (e *env) seedDefaultRules(t *testing.T) {
	t.Helper()
	e.seedRule(t, models.ActivityCompleteCircuit, 50, true)
	e.seedRule(t, models.ActivityCompletePremiumCircuit, 100, true)
}

func (e *env) ledger(t *testing.T, userID uint64) []models.PointsLog {
	t.Helper()
	var rows []models.PointsLog
	require.NoError(t, e.db.Where("user_id = ?", userID).Order("activity_key ASC").Find(&rows).Error)
	return rows
}

func (e *env) progressRow(t *testing.T, userID, circuitID uint64, kind models.CircuitKind) *models.CircuitProgress {
	t.Helper()
	row, err := dao.NewProgress(e.db).Get(t.Context(), nil, dao.ProgressKey{UserID: userID, CircuitID: circuitID, Kind: kind})
	require.NoError(t, err)
	return row
}
