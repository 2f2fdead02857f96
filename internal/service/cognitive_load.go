package service

import (
	"math"

	"learnpath_backend/internal/model"
)

type LearningSpeed string

const (
	SpeedFast   LearningSpeed = "fast"
	SpeedMedium LearningSpeed = "medium"
	SpeedSlow   LearningSpeed = "slow"
)

const (
	PracticeLow    = "low"
	PracticeMedium = "medium"
	PracticeHigh   = "high"
)

// 默认留存率：没有任何分类出现过两次测评时的兜底值
const defaultRetentionRate = 0.7

type CognitiveLoad struct {
	ContentPerStep        int           `json:"contentPerStep"`
	PracticeFrequency     string        `json:"practiceFrequency"`
	BreakFrequencyMinutes int           `json:"breakFrequencyMinutes"`
	LearningSpeed         LearningSpeed `json:"learningSpeed"`
	RetentionRate         float64       `json:"retentionRate"`
}

var contentBaseAmounts = map[LearningSpeed]float64{
	SpeedFast:   5,
	SpeedMedium: 3,
	SpeedSlow:   2,
}

var breakFrequencies = map[LearningSpeed]int{
	SpeedFast:   45,
	SpeedMedium: 30,
	SpeedSlow:   20,
}

// EstimateCognitiveLoad 从测评历史推导学习者的节奏参数。
// 历史不足时按文档化的默认值优雅降级（medium 速度、0.7 留存），不报错。
func EstimateCognitiveLoad(profile *model.LearnerProfile) CognitiveLoad {
	speed := estimateLearningSpeed(profile.Assessments)
	retention := estimateRetentionRate(profile.Assessments)

	practice := PracticeLow
	if retention < 0.6 {
		practice = PracticeHigh
	} else if retention < 0.8 {
		practice = PracticeMedium
	}

	return CognitiveLoad{
		ContentPerStep:        int(math.Round(contentBaseAmounts[speed] * retention)),
		PracticeFrequency:     practice,
		BreakFrequencyMinutes: breakFrequencies[speed],
		LearningSpeed:         speed,
		RetentionRate:         retention,
	}
}

// estimateLearningSpeed 每次测评取 总耗时/得分，再对全部测评取均值。
// 均值 <30 为 fast，>60 为 slow，否则 medium。
func estimateLearningSpeed(assessments []model.AssessmentRecord) LearningSpeed {
	var ratioSum float64
	var counted int
	for _, a := range assessments {
		if a.Score <= 0 {
			continue
		}
		var timeTotal float64
		for _, resp := range a.Responses {
			timeTotal += resp.TimeSpent
		}
		ratioSum += timeTotal / float64(a.Score)
		counted++
	}

	if counted == 0 {
		return SpeedMedium
	}

	avg := ratioSum / float64(counted)
	switch {
	case avg < 30:
		return SpeedFast
	case avg > 60:
		return SpeedSlow
	default:
		return SpeedMedium
	}
}

// estimateRetentionRate 对每个出现过至少两次的分类，取最近两次得分之比
// （最近 / 次近），再对所有这样的比值取平均。
func estimateRetentionRate(assessments []model.AssessmentRecord) float64 {
	byCategory := make(map[string][]model.AssessmentRecord)
	for _, a := range assessments {
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}

	var ratioSum float64
	var counted int
	for _, history := range byCategory {
		if len(history) < 2 {
			continue
		}
		recent := history[len(history)-1]
		previous := history[len(history)-2]
		if previous.Score <= 0 {
			continue
		}
		ratioSum += float64(recent.Score) / float64(previous.Score)
		counted++
	}

	if counted == 0 {
		return defaultRetentionRate
	}
	return ratioSum / float64(counted)
}
