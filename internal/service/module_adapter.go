package service

import (
	"math"
	"sort"

	"learnpath_backend/internal/model"
)

// 学习风格兼容的资源类型；列表首项是该风格下最偏好的类型
var styleResourceTypes = map[model.LearningStyle][]model.ResourceType{
	model.StyleVisual:      {model.ResourceVideo, model.ResourceArticle},
	model.StyleAuditory:    {model.ResourceVideo, model.ResourceCourse},
	model.StyleReading:     {model.ResourceArticle, model.ResourceBook},
	model.StyleKinesthetic: {model.ResourceUseCase, model.ResourceCourse},
}

var mathLevelDurationFactors = map[model.SkillLevel]float64{
	model.LevelBeginner:     1.3,
	model.LevelIntermediate: 1,
	model.LevelAdvanced:     0.8,
}

// AdaptModules 按学习者档案和认知负载重塑模块列表：
// 调整时长，并按学习风格过滤、按认知负载截断、按相关度排序资源。
// 输入不被修改，返回独立副本。
func AdaptModules(modules []model.GoalModule, profile *model.LearnerProfile, load CognitiveLoad) []model.GoalModule {
	adapted := make([]model.GoalModule, len(modules))
	for i, module := range modules {
		adapted[i] = module
		adapted[i].Duration = adaptDuration(module, profile)
		adapted[i].Resources = adaptResources(module.Resources, profile, load)
	}
	return adapted
}

func adaptDuration(module model.GoalModule, profile *model.LearnerProfile) float64 {
	factor, ok := mathLevelDurationFactors[profile.Preferences.MathLevel]
	if !ok {
		factor = 1
	}

	// 该分类的历史均分：>85 加速，<60 放慢
	performance := 1.0
	if avg, ok := categoryAverageScore(profile.Assessments, module.Category); ok {
		if avg > 85 {
			performance = 0.8
		} else if avg < 60 {
			performance = 1.2
		}
	}

	return math.Round(module.Duration * factor * performance)
}

func categoryAverageScore(assessments []model.AssessmentRecord, category string) (float64, bool) {
	var sum float64
	var count int
	for _, a := range assessments {
		if a.Category == category {
			sum += float64(a.Score)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// adaptResources 先过滤风格兼容类型，再截断到 contentPerStep，最后按相关度稳定降序
func adaptResources(resources []model.ModuleResource, profile *model.LearnerProfile, load CognitiveLoad) []model.ModuleResource {
	compatible := styleResourceTypes[profile.LearningStyle]

	filtered := make([]model.ModuleResource, 0, len(resources))
	for _, res := range resources {
		if len(compatible) == 0 || containsType(compatible, res.Type) {
			filtered = append(filtered, res)
		}
	}

	if load.ContentPerStep > 0 && len(filtered) > load.ContentPerStep {
		filtered = filtered[:load.ContentPerStep]
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return resourceRelevance(filtered[i], profile) > resourceRelevance(filtered[j], profile)
	})
	return filtered
}

// resourceRelevance 风格首选类型 +3，等级匹配 +2
func resourceRelevance(res model.ModuleResource, profile *model.LearnerProfile) int {
	score := 0
	if preferred := styleResourceTypes[profile.LearningStyle]; len(preferred) > 0 && res.Type == preferred[0] {
		score += 3
	}
	if res.Level == profile.Preferences.MathLevel {
		score += 2
	}
	return score
}

func containsType(types []model.ResourceType, t model.ResourceType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
