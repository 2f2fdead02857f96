package service

import (
	"testing"
	"time"

	"learnpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assessmentsAtInterval(count int, interval time.Duration, score int) []model.AssessmentRecord {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	records := make([]model.AssessmentRecord, count)
	for i := range records {
		records[i] = model.AssessmentRecord{
			Category:    "programming",
			Score:       score,
			CompletedAt: base.Add(time.Duration(i) * interval),
		}
	}
	return records
}

func TestEstimateSchedule_DefaultsWithoutHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	modules := []model.GoalModule{
		{Duration: 12},
		{Duration: 13},
	}

	estimate := EstimateSchedule(modules, model.DefaultProfile(1), now)

	assert.Equal(t, 25.0, estimate.EstimatedTimeHours)
	assert.Equal(t, 10, estimate.HoursPerWeek)
	assert.Equal(t, 3, estimate.WeeksNeeded) // ceil(25/10)
	assert.Equal(t, now.AddDate(0, 0, 21), estimate.CompletionDate)

	require.Len(t, estimate.Sessions, 5) // ceil(10/2)
	for i, session := range estimate.Sessions {
		assert.Equal(t, 120, session.DurationMinutes)
		if i%2 == 0 {
			assert.Equal(t, "learning", session.Type)
		} else {
			assert.Equal(t, "practice", session.Type)
		}
		assert.Equal(t, "medium", session.Intensity)
	}
}

func TestEstimateSchedule_SplitsFreeAndPremiumResources(t *testing.T) {
	modules := []model.GoalModule{
		{Duration: 5, Resources: []model.ModuleResource{
			{ID: "f1"},
			{ID: "p1", IsPremium: true},
			{ID: "f2"},
		}},
	}

	estimate := EstimateSchedule(modules, model.DefaultProfile(1), time.Now())
	assert.Len(t, estimate.FreeResources, 2)
	require.Len(t, estimate.PremiumResources, 1)
	assert.Equal(t, "p1", estimate.PremiumResources[0].ID)
}

func TestEngagementMultiplier_RegularCadenceBoosts(t *testing.T) {
	// 间隔完全一致，stddev = 0，regularity = 1
	history := assessmentsAtInterval(5, 48*time.Hour, 80)
	assert.Equal(t, 1.2, engagementMultiplier(history))
}

func TestEngagementMultiplier_ErraticCadencePenalizes(t *testing.T) {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	history := []model.AssessmentRecord{
		{CompletedAt: base},
		{CompletedAt: base.Add(1 * time.Hour)},
		{CompletedAt: base.Add(2 * time.Hour)},
		{CompletedAt: base.Add(3 * time.Hour)},
		{CompletedAt: base.Add(5000 * time.Hour)},
	}
	assert.Equal(t, 0.8, engagementMultiplier(history))
}

func TestEngagementMultiplier_TooLittleHistory(t *testing.T) {
	assert.Equal(t, 1.0, engagementMultiplier(nil))
	assert.Equal(t, 1.0, engagementMultiplier(assessmentsAtInterval(2, time.Hour, 80)))
}

func TestEstimateSchedule_RegularLearnerGetsMoreHours(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.Assessments = assessmentsAtInterval(4, 24*time.Hour, 80)

	estimate := EstimateSchedule([]model.GoalModule{{Duration: 24}}, profile, time.Now())
	assert.Equal(t, 12, estimate.HoursPerWeek) // round(10 * 1.2)
	assert.Equal(t, 2, estimate.WeeksNeeded)   // ceil(24/12)
	assert.Len(t, estimate.Sessions, 6)
}

func TestSessionIntensity(t *testing.T) {
	assert.Equal(t, "medium", sessionIntensity(nil))
	assert.Equal(t, "high", sessionIntensity(assessmentsAtInterval(3, time.Hour, 90)))
	assert.Equal(t, "low", sessionIntensity(assessmentsAtInterval(3, time.Hour, 50)))

	// 只看最近 3 次，更早的低分不参与
	history := append(assessmentsAtInterval(3, time.Hour, 10), assessmentsAtInterval(3, time.Hour, 90)...)
	assert.Equal(t, "high", sessionIntensity(history))
}
