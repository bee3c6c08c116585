package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  debug: true\n"))
	require.NoError(t, err)

	assert.True(t, conf.Debug())
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 5*time.Minute, conf.Rewards.CacheTTL)
	assert.Equal(t, int64(50), conf.Rewards.Seed["COMPLETE_CIRCUIT"].Points)
	assert.False(t, conf.Redis.Enabled())
}

func TestParse_Rewards(t *testing.T) {
	content := `
server:
  http: 9000
redis:
  address: 10.0.0.2
  port: 6380
rewards:
  cache_ttl: 30s
  seed:
    COMPLETE_CIRCUIT:
      points: 7
      is_active: false
`
	conf, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, 9000, conf.Server.Http)
	assert.True(t, conf.Redis.Enabled())
	assert.Equal(t, 30*time.Second, conf.Rewards.CacheTTL)
	require.Len(t, conf.Rewards.Seed, 1)
	assert.Equal(t, RuleSeed{Points: 7, IsActive: false}, conf.Rewards.Seed["COMPLETE_CIRCUIT"])
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("server: [1, 2"))
	assert.Error(t, err)
}

func TestMySQL_Dsn(t *testing.T) {
	m := &MySQL{Host: "db", Port: 3306, UserName: "u", Password: "p", Database: "wayfarer"}
	assert.Equal(t, "u:p@tcp(db:3306)/wayfarer?charset=utf8mb4&parseTime=True&loc=Local", m.Dsn())
}
