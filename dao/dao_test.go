package dao

import (
	"Wayfarer/config"
	"Wayfarer/models"
	"Wayfarer/pkg/testutil"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressRow(id, userID, circuitID uint64, kind models.CircuitKind, at time.Time) *models.CircuitProgress {
	return &models.CircuitProgress{
		ID:                 id,
		UserID:             userID,
		CircuitID:          circuitID,
		CircuitKind:        kind,
		Status:             models.ProgressStarted,
		CompletedWaypoints: models.NewWaypointSet(),
		StartedAt:          at,
		CreatedAt:          at,
		UpdatedAt:          at,
	}
}

func TestProgress_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t, Tables()...)
	repo := NewProgress(db)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	created, err := repo.CreateIfAbsent(ctx, nil, newProgressRow(1, 7, 100, models.CircuitKindRegular, now))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, nil, newProgressRow(2, 7, 100, models.CircuitKindRegular, now.Add(time.Hour)))
	require.NoError(t, err)
	assert.False(t, created)

	// 同一路线 id 的自建路线是另一条记录
	created, err = repo.CreateIfAbsent(ctx, nil, newProgressRow(3, 7, 100, models.CircuitKindCustom, now))
	require.NoError(t, err)
	assert.True(t, created)

	row, err := repo.Get(ctx, nil, ProgressKey{UserID: 7, CircuitID: 100, Kind: models.CircuitKindRegular})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), row.ID)
	assert.True(t, row.StartedAt.Equal(now))
	assert.Equal(t, 0, row.CompletedWaypoints.Len())
}

func TestProgress_GetMissing(t *testing.T) {
	repo := NewProgress(testutil.DB(t, Tables()...))

	_, err := repo.Get(context.Background(), nil, ProgressKey{UserID: 1, CircuitID: 2})
	assert.True(t, IsNotFound(err))
}

func TestProgress_UpdateAndLatest(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t, Tables()...)
	repo := NewProgress(db)
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := repo.CreateIfAbsent(ctx, nil, newProgressRow(1, 7, 100, models.CircuitKindRegular, t0))
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(ctx, nil, newProgressRow(2, 7, 100, models.CircuitKindCustom, t0))
	require.NoError(t, err)

	completedAt := t0.Add(42 * time.Minute)
	minutes := int64(42)
	err = db.Transaction(func(tx *gorm.DB) error {
		row, err := repo.GetForUpdate(ctx, tx, ProgressKey{UserID: 7, CircuitID: 100, Kind: models.CircuitKindRegular})
		if err != nil {
			return err
		}
		set, _ := row.CompletedWaypoints.Add(11)
		return repo.Update(ctx, tx, row.ID, ProgressChange{
			Status:             models.ProgressCompleted,
			CurrentIndex:       set.Len(),
			CompletedWaypoints: set,
			CompletedAt:        &completedAt,
			TotalTimeMinutes:   &minutes,
			UpdatedAt:          completedAt,
		})
	})
	require.NoError(t, err)

	// 不指定类型时取最近更新的一条
	latest, err := repo.Get(ctx, nil, ProgressKey{UserID: 7, CircuitID: 100})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), latest.ID)
	assert.Equal(t, models.ProgressCompleted, latest.Status)
	assert.Equal(t, []uint64{11}, latest.CompletedWaypoints.IDs())
	assert.Equal(t, 1, latest.CurrentIndex)
	require.NotNil(t, latest.CompletedAt)
	assert.True(t, latest.CompletedAt.Equal(completedAt))
	require.NotNil(t, latest.TotalTimeMinutes)
	assert.Equal(t, int64(42), *latest.TotalTimeMinutes)

	err = repo.Update(ctx, nil, 999, ProgressChange{Status: models.ProgressInProgress, UpdatedAt: t0})
	assert.True(t, IsNotFound(err))
}

func TestProgress_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewProgress(testutil.DB(t, Tables()...))
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, circuitID := range []uint64{10, 20, 30} {
		_, err := repo.CreateIfAbsent(ctx, nil, newProgressRow(uint64(i+1), 7, circuitID, models.CircuitKindRegular, t0.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := repo.CreateIfAbsent(ctx, nil, newProgressRow(9, 8, 10, models.CircuitKindRegular, t0))
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, nil, 1, ProgressChange{
		Status:             models.ProgressInProgress,
		CurrentIndex:       1,
		CompletedWaypoints: models.NewWaypointSet(5),
		UpdatedAt:          t0.Add(time.Hour),
	}))

	rows, err := repo.ListByUser(ctx, nil, 7)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []uint64{10, 30, 20}, []uint64{rows[0].CircuitID, rows[1].CircuitID, rows[2].CircuitID})

	rows, err = repo.ListByUser(ctx, nil, 404)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCircuit_Membership(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t, Tables()...)
	repo := NewCircuit(db)

	require.NoError(t, db.Create(&models.Circuit{ID: 1, Name: "old town", IsPremium: true}).Error)
	require.NoError(t, db.Create([]models.CircuitPoi{
		{ID: 1, CircuitID: 1, PoiID: 300, Position: 2},
		{ID: 2, CircuitID: 1, PoiID: 100, Position: 0},
		{ID: 3, CircuitID: 1, PoiID: 200, Position: 1},
		{ID: 4, CircuitID: 2, PoiID: 900, Position: 0},
	}).Error)
	require.NoError(t, db.Create(&models.CustomCircuit{ID: 5, UserID: 7, Name: "mine", PoiIDs: []uint64{9, 8, 7}}).Error)

	circuit, err := repo.GetCircuit(ctx, nil, 1)
	require.NoError(t, err)
	assert.True(t, circuit.IsPremium)

	ids, err := repo.ListPoiIDs(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{100, 200, 300}, ids)

	custom, err := repo.GetCustomCircuit(ctx, nil, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{9, 8, 7}, []uint64(custom.PoiIDs))

	_, err = repo.GetCircuit(ctx, nil, 404)
	assert.True(t, IsNotFound(err))
	_, err = repo.GetCustomCircuit(ctx, nil, 404)
	assert.True(t, IsNotFound(err))
}

func TestPointLog_LedgerQueries(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t, Tables()...)
	repo := NewPointLog(db)

	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, repo.Append(ctx, nil, &models.PointsLog{
			ID:          i,
			UserID:      7,
			ActivityKey: models.ActivityCompleteCircuit,
			Points:      10,
			SourceID:    i * 100,
		}))
	}

	exists, err := repo.Exists(ctx, nil, 7, models.ActivityCompleteCircuit, 300)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, nil, 7, models.ActivityCompletePremiumCircuit, 300)
	require.NoError(t, err)
	assert.False(t, exists)

	// 唯一索引兜底重复入账
	err = repo.Append(ctx, nil, &models.PointsLog{ID: 99, UserID: 7, ActivityKey: models.ActivityCompleteCircuit, Points: 10, SourceID: 300})
	assert.Error(t, err)

	count, total, err := repo.Sum(ctx, nil, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Equal(t, int64(50), total)

	count, total, err = repo.Sum(ctx, nil, 8)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, total)

	page, err := repo.ListRecords(ctx, nil, 7, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(5), page[0].ID)
	assert.Equal(t, uint64(4), page[1].ID)

	page, err = repo.ListRecords(ctx, nil, 7, 4, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, uint64(3), page[0].ID)
}

func TestSeedPointRules(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t, Tables()...)
	repo := NewPointRule(db)

	require.NoError(t, SeedPointRules(ctx, repo, map[string]config.RuleSeed{
		"COMPLETE_CIRCUIT":         {Points: 50, IsActive: true},
		"COMPLETE_PREMIUM_CIRCUIT": {Points: 100, IsActive: false},
	}))
	// 再次执行覆盖数值
	require.NoError(t, SeedPointRules(ctx, repo, map[string]config.RuleSeed{
		"COMPLETE_CIRCUIT": {Points: 60, IsActive: true},
	}))

	rule, err := repo.GetByActivity(ctx, nil, models.ActivityCompleteCircuit)
	require.NoError(t, err)
	assert.Equal(t, int64(60), rule.Points)
	assert.True(t, rule.IsActive)

	premium, err := repo.GetByActivity(ctx, nil, models.ActivityCompletePremiumCircuit)
	require.NoError(t, err)
	assert.False(t, premium.IsActive)

	err = SeedPointRules(ctx, repo, map[string]config.RuleSeed{"VISIT_POI": {Points: 1}})
	assert.Error(t, err)
}
