package config

import "time"

// Rewards 积分规则相关配置
type Rewards struct {
	// CacheTTL 规则缓存时间, 0 表示使用默认值
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
	// Seed migrate 时写入的默认规则, key 为 activity key
	Seed map[string]RuleSeed `json:"seed" yaml:"seed"`
}

type RuleSeed struct {
	Points   int64 `json:"points" yaml:"points"`
	IsActive bool  `json:"is_active" yaml:"is_active"`
}

func (r *Rewards) applyDefaults() {
	if r.CacheTTL <= 0 {
		r.CacheTTL = 5 * time.Minute
	}
	if len(r.Seed) == 0 {
		r.Seed = map[string]RuleSeed{
			"COMPLETE_CIRCUIT":         {Points: 50, IsActive: true},
			"COMPLETE_PREMIUM_CIRCUIT": {Points: 100, IsActive: true},
		}
	}
}

func ProvideRewardsConfig(cfg *Config) *Rewards {
	return cfg.Rewards
}
