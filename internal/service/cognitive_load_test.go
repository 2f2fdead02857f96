package service

import (
	"testing"

	"learnpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

// assessmentWithRatio 构造一次得分为 score、总耗时为 score*ratio 秒的测评
func assessmentWithRatio(category string, score int, ratio float64) model.AssessmentRecord {
	return model.AssessmentRecord{
		Category: category,
		Score:    score,
		Responses: []model.AssessmentResponse{
			{QuestionID: "q", TimeSpent: float64(score) * ratio},
		},
	}
}

func TestEstimateCognitiveLoad_NoHistoryUsesDefaults(t *testing.T) {
	load := EstimateCognitiveLoad(model.DefaultProfile(1))

	assert.Equal(t, SpeedMedium, load.LearningSpeed)
	assert.InDelta(t, 0.7, load.RetentionRate, 1e-9)
	// round(3 * 0.7) = 2
	assert.Equal(t, 2, load.ContentPerStep)
	assert.Equal(t, PracticeMedium, load.PracticeFrequency)
	assert.Equal(t, 30, load.BreakFrequencyMinutes)
}

func TestEstimateLearningSpeed(t *testing.T) {
	fast := []model.AssessmentRecord{assessmentWithRatio("programming", 80, 20)}
	slow := []model.AssessmentRecord{assessmentWithRatio("programming", 80, 70)}
	medium := []model.AssessmentRecord{assessmentWithRatio("programming", 80, 45)}

	assert.Equal(t, SpeedFast, estimateLearningSpeed(fast))
	assert.Equal(t, SpeedSlow, estimateLearningSpeed(slow))
	assert.Equal(t, SpeedMedium, estimateLearningSpeed(medium))
}

func TestEstimateLearningSpeed_SkipsZeroScores(t *testing.T) {
	history := []model.AssessmentRecord{
		{Category: "programming", Score: 0, Responses: []model.AssessmentResponse{{TimeSpent: 100000}}},
	}
	assert.Equal(t, SpeedMedium, estimateLearningSpeed(history))
}

func TestEstimateRetentionRate_ImprovingScores(t *testing.T) {
	history := []model.AssessmentRecord{
		assessmentWithRatio("math", 60, 45),
		assessmentWithRatio("math", 90, 45),
	}
	assert.InDelta(t, 1.5, estimateRetentionRate(history), 1e-9)
}

func TestEstimateRetentionRate_AveragesAcrossCategories(t *testing.T) {
	history := []model.AssessmentRecord{
		assessmentWithRatio("math", 100, 45),
		assessmentWithRatio("math", 50, 45), // 0.5
		assessmentWithRatio("programming", 50, 45),
		assessmentWithRatio("programming", 75, 45), // 1.5
		assessmentWithRatio("algorithms", 80, 45),  // 单次出现，不参与
	}
	assert.InDelta(t, 1.0, estimateRetentionRate(history), 1e-9)
}

func TestEstimateRetentionRate_SingleOccurrencesFallBack(t *testing.T) {
	history := []model.AssessmentRecord{
		assessmentWithRatio("math", 90, 45),
		assessmentWithRatio("programming", 80, 45),
	}
	assert.InDelta(t, 0.7, estimateRetentionRate(history), 1e-9)
}

func TestEstimateCognitiveLoad_LowRetentionRaisesPractice(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.Assessments = []model.AssessmentRecord{
		assessmentWithRatio("math", 100, 20),
		assessmentWithRatio("math", 50, 20), // 留存 0.5
	}

	load := EstimateCognitiveLoad(profile)
	assert.Equal(t, SpeedFast, load.LearningSpeed)
	assert.Equal(t, PracticeHigh, load.PracticeFrequency)
	assert.Equal(t, 45, load.BreakFrequencyMinutes)
	// round(5 * 0.5) = 3，math.Round 半数远离零
	assert.Equal(t, 3, load.ContentPerStep)
}

func TestEstimateCognitiveLoad_HighRetentionLowersPractice(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.Assessments = []model.AssessmentRecord{
		assessmentWithRatio("math", 80, 45),
		assessmentWithRatio("math", 80, 45), // 留存 1.0
	}

	load := EstimateCognitiveLoad(profile)
	assert.Equal(t, PracticeLow, load.PracticeFrequency)
	assert.Equal(t, 3, load.ContentPerStep)
}
