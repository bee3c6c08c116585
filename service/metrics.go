package service

import "github.com/prometheus/client_golang/prometheus"

var (
	progressStartedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_circuit_progress_started_total",
			Help: "Circuit progress records created",
		},
		[]string{"kind"},
	)

	circuitCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_circuit_completed_total",
			Help: "Circuit progress records that reached COMPLETED",
		},
		[]string{"kind"},
	)

	rewardPointsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_reward_points_awarded_total",
			Help: "Points appended to the ledger",
		},
		[]string{"activity"},
	)

	// 积分失败不影响进度提交, 只能靠这个指标发现
	rewardFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_reward_evaluation_failures_total",
			Help: "Reward evaluations that failed and were skipped",
		},
		[]string{"activity"},
	)
)

func init() {
	prometheus.MustRegister(progressStartedTotal, circuitCompletedTotal, rewardPointsTotal, rewardFailuresTotal)
}
