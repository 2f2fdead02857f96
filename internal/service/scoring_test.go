package service

import (
	"testing"

	"learnpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicQuestion(id string) model.QuizQuestion {
	return model.QuizQuestion{
		ID:       id,
		Category: "programming",
		Text:     "q",
		Options: []model.QuestionOption{
			{Text: "wrong", IsCorrect: false},
			{Text: "right", IsCorrect: true},
		},
		Difficulty: model.DifficultyBasic,
	}
}

func TestScoreQuestion_CorrectAndFast(t *testing.T) {
	q := basicQuestion("q1")

	result := ScoreQuestion(q, model.AssessmentResponse{
		QuestionID:     "q1",
		SelectedOption: 1,
		TimeSpent:      20,
	})

	// 20s 远快于 45s 阈值，时间效率封顶为 1
	assert.InDelta(t, 1.0, result.TimeEfficiency, 1e-9)
	assert.InDelta(t, 90.0, result.Score, 1e-9)
	assert.Equal(t, 1.0, result.CorrectnessScore)
	assert.Equal(t, 0.0, result.DifficultyBonus)
}

func TestScoreQuestion_IncorrectAndSlow(t *testing.T) {
	q := basicQuestion("q1")
	q.Difficulty = model.DifficultyAdvanced

	result := ScoreQuestion(q, model.AssessmentResponse{
		QuestionID:     "q1",
		SelectedOption: 0,
		TimeSpent:      120,
	})

	// (90-120)/90 + 0.5 = 1/6：慢于阈值仍保留部分时间分
	assert.InDelta(t, 1.0/6.0, result.TimeEfficiency, 1e-9)
	assert.InDelta(t, 100.0/30.0, result.Score, 1e-9)
	assert.Equal(t, 0.0, result.CorrectnessScore)
	assert.Equal(t, 0.0, result.DifficultyBonus)
}

func TestScoreQuestion_AtThreshold(t *testing.T) {
	q := basicQuestion("q1")
	q.Difficulty = model.DifficultyIntermediate

	result := ScoreQuestion(q, model.AssessmentResponse{
		QuestionID:     "q1",
		SelectedOption: 1,
		TimeSpent:      60,
	})

	assert.InDelta(t, 0.5, result.TimeEfficiency, 1e-9)
	assert.InDelta(t, 0.3, result.DifficultyBonus, 1e-9)
	assert.InDelta(t, 83.0, result.Score, 1e-9)
}

func TestScoreQuestion_SlowerNeverScoresHigher(t *testing.T) {
	q := basicQuestion("q1")

	prev := 101.0
	for _, spent := range []float64{0, 10, 22.5, 45, 60, 90, 180, 600} {
		result := ScoreQuestion(q, model.AssessmentResponse{
			QuestionID:     "q1",
			SelectedOption: 1,
			TimeSpent:      spent,
		})
		assert.LessOrEqual(t, result.Score, prev, "time %.1fs", spent)
		prev = result.Score
	}
}

func TestScoreQuestion_OutOfRangeSelectionIsIncorrect(t *testing.T) {
	q := basicQuestion("q1")

	for _, selected := range []int{-1, 2, 99} {
		result := ScoreQuestion(q, model.AssessmentResponse{
			QuestionID:     "q1",
			SelectedOption: selected,
			TimeSpent:      10,
		})
		assert.Equal(t, 0.0, result.CorrectnessScore)
	}
}

func TestScoreQuestion_BoundsHold(t *testing.T) {
	q := basicQuestion("q1")
	q.Difficulty = model.DifficultyAdvanced

	for _, spent := range []float64{0, 45, 90, 100000} {
		for _, selected := range []int{0, 1} {
			result := ScoreQuestion(q, model.AssessmentResponse{QuestionID: "q1", SelectedOption: selected, TimeSpent: spent})
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 100.0)
			assert.GreaterOrEqual(t, result.TimeEfficiency, 0.0)
			assert.LessOrEqual(t, result.TimeEfficiency, 1.0)
		}
	}
}

func TestScoreOverall_WeightsByDifficulty(t *testing.T) {
	easy := basicQuestion("easy")
	hard := basicQuestion("hard")
	hard.Difficulty = model.DifficultyAdvanced

	questions := []model.QuizQuestion{easy, hard}
	responses := []model.AssessmentResponse{
		{QuestionID: "easy", SelectedOption: 1, TimeSpent: 20},
		{QuestionID: "hard", SelectedOption: 0, TimeSpent: 120},
	}

	// (90*1.0 + 3.333*1.6) / (1.0+1.6) = 36.67 → 37
	assert.Equal(t, 37, ScoreOverall(questions, responses))
}

func TestScoreOverall_NoMatchingResponses(t *testing.T) {
	questions := []model.QuizQuestion{basicQuestion("q1")}

	assert.Equal(t, 0, ScoreOverall(questions, nil))
	assert.Equal(t, 0, ScoreOverall(questions, []model.AssessmentResponse{
		{QuestionID: "unknown", SelectedOption: 1, TimeSpent: 10},
	}))
}

func TestScoreByCategory_AggregatesAndGrades(t *testing.T) {
	q1 := basicQuestion("q1")
	q2 := basicQuestion("q2")
	q3 := basicQuestion("q3")
	q3.Category = "math"

	questions := []model.QuizQuestion{q1, q2, q3}
	responses := []model.AssessmentResponse{
		{QuestionID: "q1", SelectedOption: 1, TimeSpent: 20},
		{QuestionID: "q2", SelectedOption: 0, TimeSpent: 20},
		{QuestionID: "q3", SelectedOption: 1, TimeSpent: 20},
	}

	stats := ScoreByCategory(questions, responses)
	require.Len(t, stats, 2)

	prog := stats["programming"]
	require.NotNil(t, prog)
	assert.Equal(t, 2, prog.TotalQuestions)
	assert.Equal(t, 1, prog.CorrectAnswers)
	assert.InDelta(t, 50.0, prog.Accuracy, 1e-9)
	assert.InDelta(t, 20.0, prog.AverageTime, 1e-9)
	// (90 + 20) / 2 = 55 → intermediate
	assert.Equal(t, model.LevelIntermediate, prog.Level)

	math := stats["math"]
	require.NotNil(t, math)
	assert.Equal(t, model.LevelExpert, math.Level)
}

func TestLevelForScore_Cutoffs(t *testing.T) {
	assert.Equal(t, model.LevelExpert, levelForScore(85))
	assert.Equal(t, model.LevelAdvanced, levelForScore(84.9))
	assert.Equal(t, model.LevelAdvanced, levelForScore(70))
	assert.Equal(t, model.LevelIntermediate, levelForScore(69.9))
	assert.Equal(t, model.LevelIntermediate, levelForScore(50))
	assert.Equal(t, model.LevelBeginner, levelForScore(49.9))
}

func TestRecommendationsFromStats(t *testing.T) {
	stats := map[string]*CategoryStats{
		"algorithms":  {Accuracy: 40, AverageTime: 30},
		"math":        {Accuracy: 75, AverageTime: 30},
		"programming": {Accuracy: 90, AverageTime: 70},
	}

	recs := RecommendationsFromStats(stats)
	require.Len(t, recs, 3)

	// 分类按字母序遍历，输出确定
	assert.Equal(t, "review", recs[0].Type)
	assert.Equal(t, "algorithms", recs[0].Category)
	assert.Equal(t, "high", recs[0].Priority)

	assert.Equal(t, "practice", recs[1].Type)
	assert.Equal(t, "math", recs[1].Category)

	assert.Equal(t, "speed", recs[2].Type)
	assert.Equal(t, "programming", recs[2].Category)
}
