package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaypointSet_Add(t *testing.T) {
	s := NewWaypointSet()

	s1, added := s.Add(3)
	assert.True(t, added)
	s2, added := s1.Add(1)
	assert.True(t, added)
	s3, added := s2.Add(3)
	assert.False(t, added)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []uint64{3, 1}, s3.IDs())
	assert.True(t, s3.Contains(1))
	assert.False(t, s3.Contains(2))
}

func TestWaypointSet_AddDoesNotAlias(t *testing.T) {
	base := make(WaypointSet, 1, 8)
	base[0] = 1

	a, _ := base.Add(2)
	b, _ := base.Add(3)

	assert.Equal(t, []uint64{1, 2}, a.IDs())
	assert.Equal(t, []uint64{1, 3}, b.IDs())
}

func TestNewWaypointSet_Dedup(t *testing.T) {
	assert.Equal(t, []uint64{5, 2, 9}, NewWaypointSet(5, 2, 5, 9, 2).IDs())
}

func TestWaypointSet_ValueScan(t *testing.T) {
	v, err := NewWaypointSet(10, 20).Value()
	require.NoError(t, err)
	assert.Equal(t, "[10,20]", v)

	var nilSet WaypointSet
	v, err = nilSet.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var s WaypointSet
	require.NoError(t, s.Scan([]byte("[7,8,7]")))
	assert.Equal(t, []uint64{7, 8}, s.IDs())

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, 0, s.Len())

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("{"))
}

func TestEnums(t *testing.T) {
	assert.True(t, CircuitKindRegular.Valid())
	assert.True(t, CircuitKindCustom.Valid())
	assert.False(t, CircuitKind("regular").Valid())

	for _, k := range ActivityKeys {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, ActivityKey("VISIT_POI").Valid())

	assert.True(t, ProgressCompleted.Terminal())
	assert.False(t, ProgressInProgress.Terminal())
}
