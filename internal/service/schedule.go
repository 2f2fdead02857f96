package service

import (
	"math"
	"time"

	"learnpath_backend/internal/model"
)

const (
	baseHoursPerWeek       = 10
	sessionDurationMinutes = 120
)

// EstimateSchedule 把适配后的模块换算为总时长、每周学习计划和预计完成日期。
// now 由调用方注入，便于测试。
func EstimateSchedule(adapted []model.GoalModule, profile *model.LearnerProfile, now time.Time) model.ScheduleEstimate {
	var totalHours float64
	var free, premium []model.ModuleResource
	for _, module := range adapted {
		totalHours += module.Duration
		for _, res := range module.Resources {
			if res.IsPremium {
				premium = append(premium, res)
			} else {
				free = append(free, res)
			}
		}
	}

	hoursPerWeek := int(math.Round(baseHoursPerWeek * engagementMultiplier(profile.Assessments)))
	if hoursPerWeek < 1 {
		hoursPerWeek = 1
	}

	weeksNeeded := int(math.Ceil(totalHours / float64(hoursPerWeek)))

	intensity := sessionIntensity(profile.Assessments)
	sessionCount := (hoursPerWeek + 1) / 2 // ceil(hoursPerWeek / 2)
	sessions := make([]model.ScheduleSession, sessionCount)
	for i := range sessions {
		sessionType := "learning"
		if i%2 == 1 {
			sessionType = "practice"
		}
		sessions[i] = model.ScheduleSession{
			Type:            sessionType,
			DurationMinutes: sessionDurationMinutes,
			Intensity:       intensity,
		}
	}

	return model.ScheduleEstimate{
		EstimatedTimeHours: totalHours,
		FreeResources:      free,
		PremiumResources:   premium,
		WeeksNeeded:        weeksNeeded,
		HoursPerWeek:       hoursPerWeek,
		Sessions:           sessions,
		CompletionDate:     now.AddDate(0, 0, weeksNeeded*7),
	}
}

// engagementMultiplier 从历史测评时间点的规律性推导投入系数。
// regularity = 1/(1+stddev/mean)，>0.8 得 1.2，<0.4 得 0.8，其余 1。
// 少于两个间隔视为历史不足，返回 1。
func engagementMultiplier(assessments []model.AssessmentRecord) float64 {
	if len(assessments) < 3 {
		return 1
	}

	gaps := make([]float64, 0, len(assessments)-1)
	for i := 1; i < len(assessments); i++ {
		gap := assessments[i].CompletedAt.Sub(assessments[i-1].CompletedAt).Hours()
		gaps = append(gaps, gap)
	}

	var sum float64
	for _, g := range gaps {
		sum += g
	}
	mean := sum / float64(len(gaps))
	if mean <= 0 {
		return 1
	}

	var variance float64
	for _, g := range gaps {
		variance += (g - mean) * (g - mean)
	}
	stddev := math.Sqrt(variance / float64(len(gaps)))

	regularity := 1 / (1 + stddev/mean)
	switch {
	case regularity > 0.8:
		return 1.2
	case regularity < 0.4:
		return 0.8
	default:
		return 1
	}
}

// sessionIntensity 最近 3 次测评均分：>85 high，<60 low，其余 medium
func sessionIntensity(assessments []model.AssessmentRecord) string {
	if len(assessments) == 0 {
		return "medium"
	}

	start := len(assessments) - 3
	if start < 0 {
		start = 0
	}
	recent := assessments[start:]

	var sum float64
	for _, a := range recent {
		sum += float64(a.Score)
	}
	avg := sum / float64(len(recent))

	switch {
	case avg > 85:
		return "high"
	case avg < 60:
		return "low"
	default:
		return "medium"
	}
}
