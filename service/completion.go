package service

import (
	"Wayfarer/models"
	"math"
	"time"
)

// Transition 一次打卡之后的状态
type Transition struct {
	Status           models.ProgressStatus
	CompletedAt      *time.Time
	TotalTimeMinutes *int64
	// Completed 仅在本次打卡进入 COMPLETED 时为 true
	Completed bool
}

// DetectCompletion completed >= total 即完成, 途经点在开始后被删减时同样成立
// 已完成的记录原样返回
func DetectCompletion(current models.ProgressStatus, startedAt time.Time, completed, total int, now time.Time) Transition {
	if current.Terminal() {
		return Transition{Status: current}
	}

	if completed >= total {
		completedAt := now
		minutes := ElapsedMinutes(startedAt, completedAt)
		return Transition{
			Status:           models.ProgressCompleted,
			CompletedAt:      &completedAt,
			TotalTimeMinutes: &minutes,
			Completed:        true,
		}
	}

	return Transition{Status: models.ProgressInProgress}
}

// ElapsedMinutes 按毫秒差四舍五入到分钟
func ElapsedMinutes(start, end time.Time) int64 {
	ms := end.Sub(start).Milliseconds()
	return int64(math.Round(float64(ms) / 60000))
}
