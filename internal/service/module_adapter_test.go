package service

import (
	"testing"

	"learnpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptDuration_BeginnerWithStrongHistory(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.Preferences.MathLevel = model.LevelBeginner
	profile.Assessments = []model.AssessmentRecord{
		{Category: "algorithms", Score: 90},
	}

	module := model.GoalModule{Category: "algorithms", Duration: 20}

	// 20 * 1.3 (beginner) * 0.8 (均分 >85) = 20.8，四舍五入为 21
	assert.Equal(t, 21.0, adaptDuration(module, profile))
}

func TestAdaptDuration_NoHistoryKeepsPerformanceNeutral(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.Preferences.MathLevel = model.LevelIntermediate

	module := model.GoalModule{Category: "algorithms", Duration: 20}
	assert.Equal(t, 20.0, adaptDuration(module, profile))
}

func TestAdaptDuration_WeakHistorySlowsDown(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.Preferences.MathLevel = model.LevelAdvanced
	profile.Assessments = []model.AssessmentRecord{
		{Category: "math", Score: 40},
		{Category: "math", Score: 50},
	}

	module := model.GoalModule{Category: "math", Duration: 10}

	// 10 * 0.8 (advanced) * 1.2 (均分 <60) = 9.6，四舍五入为 10
	assert.Equal(t, 10.0, adaptDuration(module, profile))
}

func TestAdaptResources_FiltersByLearningStyle(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.LearningStyle = model.StyleVisual

	resources := []model.ModuleResource{
		{ID: "v", Type: model.ResourceVideo},
		{ID: "b", Type: model.ResourceBook},
		{ID: "a", Type: model.ResourceArticle},
		{ID: "u", Type: model.ResourceUseCase},
	}

	adapted := adaptResources(resources, profile, CognitiveLoad{ContentPerStep: 10})
	require.Len(t, adapted, 2)
	for _, res := range adapted {
		assert.Contains(t, []model.ResourceType{model.ResourceVideo, model.ResourceArticle}, res.Type)
	}
}

func TestAdaptResources_TruncatesBeforeSorting(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.LearningStyle = model.StyleReading

	// 先截断再排序：首选类型 article 在截断窗口之外时不会被救回
	resources := []model.ModuleResource{
		{ID: "b1", Type: model.ResourceBook},
		{ID: "b2", Type: model.ResourceBook},
		{ID: "a1", Type: model.ResourceArticle},
	}

	adapted := adaptResources(resources, profile, CognitiveLoad{ContentPerStep: 2})
	require.Len(t, adapted, 2)
	assert.Equal(t, "b1", adapted[0].ID)
	assert.Equal(t, "b2", adapted[1].ID)
}

func TestAdaptResources_PreferredTypeSortsFirst(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.LearningStyle = model.StyleKinesthetic

	resources := []model.ModuleResource{
		{ID: "c", Type: model.ResourceCourse},
		{ID: "u", Type: model.ResourceUseCase},
	}

	adapted := adaptResources(resources, profile, CognitiveLoad{ContentPerStep: 10})
	require.Len(t, adapted, 2)
	// kinesthetic 的首选类型是 use_case，+3 排到最前
	assert.Equal(t, "u", adapted[0].ID)
}

func TestAdaptResources_StableOrderForEqualRelevance(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.LearningStyle = model.StyleVisual

	resources := []model.ModuleResource{
		{ID: "v1", Type: model.ResourceVideo},
		{ID: "v2", Type: model.ResourceVideo},
		{ID: "v3", Type: model.ResourceVideo},
	}

	adapted := adaptResources(resources, profile, CognitiveLoad{ContentPerStep: 10})
	require.Len(t, adapted, 3)
	assert.Equal(t, "v1", adapted[0].ID)
	assert.Equal(t, "v2", adapted[1].ID)
	assert.Equal(t, "v3", adapted[2].ID)
}

func TestAdaptModules_DoesNotMutateInput(t *testing.T) {
	profile := model.DefaultProfile(1)
	modules := []model.GoalModule{
		{Title: "m0", Category: "programming", Duration: 10, Resources: []model.ModuleResource{
			{ID: "v", Type: model.ResourceVideo},
			{ID: "b", Type: model.ResourceBook},
		}},
	}

	adapted := AdaptModules(modules, profile, CognitiveLoad{ContentPerStep: 10})

	require.Len(t, adapted, 1)
	assert.Len(t, adapted[0].Resources, 1)
	// 原始模块不受影响
	assert.Len(t, modules[0].Resources, 2)
	assert.Equal(t, 10.0, modules[0].Duration)
	assert.Equal(t, 13.0, adapted[0].Duration)
}

func TestResourceRelevance_LevelMatchAddsTwo(t *testing.T) {
	profile := model.DefaultProfile(1)
	profile.LearningStyle = model.StyleVisual
	profile.Preferences.MathLevel = model.LevelIntermediate

	preferredAndMatched := model.ModuleResource{Type: model.ResourceVideo, Level: model.LevelIntermediate}
	matchedOnly := model.ModuleResource{Type: model.ResourceArticle, Level: model.LevelIntermediate}
	neither := model.ModuleResource{Type: model.ResourceArticle, Level: model.LevelExpert}

	assert.Equal(t, 5, resourceRelevance(preferredAndMatched, profile))
	assert.Equal(t, 2, resourceRelevance(matchedOnly, profile))
	assert.Equal(t, 0, resourceRelevance(neither, profile))
}
