package service

import (
	"fmt"
	"math"
	"sort"

	"learnpath_backend/internal/model"
)

// 每个难度的答题计时阈值（秒）。比阈值快加分，比阈值慢扣分但不清零。
var answerTimeThresholds = map[model.Difficulty]float64{
	model.DifficultyBasic:        45,
	model.DifficultyIntermediate: 60,
	model.DifficultyAdvanced:     90,
}

var difficultyMultipliers = map[model.Difficulty]float64{
	model.DifficultyBasic:        1.0,
	model.DifficultyIntermediate: 1.3,
	model.DifficultyAdvanced:     1.6,
}

type QuestionScore struct {
	Score            float64 `json:"score"`
	CorrectnessScore float64 `json:"correctnessScore"`
	TimeEfficiency   float64 `json:"timeEfficiency"`
	DifficultyBonus  float64 `json:"difficultyBonus"`
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ScoreQuestion 计算单题得分：正确性占 70%，答题速度占 20%，难度加成占 10%。
// +0.5 把阈值点的时间效率重定到 0.5 而不是 0。
func ScoreQuestion(question model.QuizQuestion, response model.AssessmentResponse) QuestionScore {
	correct := false
	if response.SelectedOption >= 0 && response.SelectedOption < len(question.Options) {
		correct = question.Options[response.SelectedOption].IsCorrect
	}

	correctness := 0.0
	if correct {
		correctness = 1.0
	}

	threshold, ok := answerTimeThresholds[question.Difficulty]
	if !ok {
		threshold = answerTimeThresholds[model.DifficultyIntermediate]
	}
	timeEfficiency := clamp01((threshold-response.TimeSpent)/threshold + 0.5)

	multiplier, ok := difficultyMultipliers[question.Difficulty]
	if !ok {
		multiplier = 1.0
	}
	bonus := 0.0
	if correct {
		bonus = multiplier - 1
	}

	score := 100 * (0.7*correctness + 0.2*timeEfficiency + 0.1*bonus)
	score = math.Max(0, math.Min(100, score))

	return QuestionScore{
		Score:            score,
		CorrectnessScore: correctness,
		TimeEfficiency:   timeEfficiency,
		DifficultyBonus:  bonus,
	}
}

// ScoreOverall 按难度系数加权的总分；没有任何可匹配的作答时返回 0
func ScoreOverall(questions []model.QuizQuestion, responses []model.AssessmentResponse) int {
	byID := make(map[string]model.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var weightedSum, weightTotal float64
	for _, resp := range responses {
		q, ok := byID[resp.QuestionID]
		if !ok {
			continue
		}
		weight := difficultyMultipliers[q.Difficulty]
		if weight == 0 {
			weight = 1.0
		}
		weightedSum += ScoreQuestion(q, resp).Score * weight
		weightTotal += weight
	}

	if weightTotal == 0 {
		return 0
	}

	overall := int(math.Round(weightedSum / weightTotal))
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}
	return overall
}

type CategoryStats struct {
	TotalQuestions int              `json:"totalQuestions"`
	CorrectAnswers int              `json:"correctAnswers"`
	Accuracy       float64          `json:"accuracy"` // percent
	AverageTime    float64          `json:"averageTime"`
	AverageScore   float64          `json:"averageScore"`
	Level          model.SkillLevel `json:"level"`
}

// ScoreByCategory 按题目分类聚合统计并给出等级评定
func ScoreByCategory(questions []model.QuizQuestion, responses []model.AssessmentResponse) map[string]*CategoryStats {
	byID := make(map[string]model.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	type accumulator struct {
		total    int
		correct  int
		timeSum  float64
		scoreSum float64
	}
	acc := make(map[string]*accumulator)

	for _, resp := range responses {
		q, ok := byID[resp.QuestionID]
		if !ok {
			continue
		}
		a := acc[q.Category]
		if a == nil {
			a = &accumulator{}
			acc[q.Category] = a
		}
		result := ScoreQuestion(q, resp)
		a.total++
		if result.CorrectnessScore > 0 {
			a.correct++
		}
		a.timeSum += resp.TimeSpent
		a.scoreSum += result.Score
	}

	stats := make(map[string]*CategoryStats, len(acc))
	for category, a := range acc {
		avgScore := a.scoreSum / float64(a.total)
		stats[category] = &CategoryStats{
			TotalQuestions: a.total,
			CorrectAnswers: a.correct,
			Accuracy:       100 * float64(a.correct) / float64(a.total),
			AverageTime:    a.timeSum / float64(a.total),
			AverageScore:   avgScore,
			Level:          levelForScore(avgScore),
		}
	}
	return stats
}

func levelForScore(avgScore float64) model.SkillLevel {
	switch {
	case avgScore >= 85:
		return model.LevelExpert
	case avgScore >= 70:
		return model.LevelAdvanced
	case avgScore >= 50:
		return model.LevelIntermediate
	default:
		return model.LevelBeginner
	}
}

// RecommendationsFromStats 从分类统计生成学习建议；同一分类可能产出多条
func RecommendationsFromStats(stats map[string]*CategoryStats) []model.StudyRecommendation {
	categories := make([]string, 0, len(stats))
	for c := range stats {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var recs []model.StudyRecommendation
	for _, category := range categories {
		s := stats[category]
		switch {
		case s.Accuracy < 60:
			recs = append(recs, model.StudyRecommendation{
				Type:     "review",
				Category: category,
				Priority: "high",
				Message:  fmt.Sprintf("Accuracy in %s is %.0f%%. Revisit the fundamentals before moving on.", category, s.Accuracy),
			})
		case s.Accuracy < 80:
			recs = append(recs, model.StudyRecommendation{
				Type:     "practice",
				Category: category,
				Priority: "medium",
				Message:  fmt.Sprintf("You are getting there in %s. More practice will solidify it.", category),
			})
		}

		if s.AverageTime > answerTimeThresholds[model.DifficultyIntermediate] {
			recs = append(recs, model.StudyRecommendation{
				Type:     "speed",
				Category: category,
				Priority: "medium",
				Message:  fmt.Sprintf("Answers in %s take %.0fs on average. Timed drills can help.", category, s.AverageTime),
			})
		}
	}
	return recs
}
