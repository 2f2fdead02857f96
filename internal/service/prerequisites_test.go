package service

import (
	"testing"

	"learnpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWithLevels(math, programming model.SkillLevel) *model.LearnerProfile {
	p := model.DefaultProfile(1)
	p.Preferences.MathLevel = math
	p.Preferences.ProgrammingLevel = programming
	return p
}

func TestCheckPrerequisites_EqualLevelIsMet(t *testing.T) {
	profile := profileWithLevels(model.LevelIntermediate, model.LevelBeginner)
	goal := &model.LearningGoal{
		Prerequisites: []model.PrerequisiteGroup{
			{Category: model.PrereqMath, Skills: []model.SkillRequirement{
				{Name: "linear algebra", Level: model.LevelIntermediate},
			}},
		},
	}

	report := CheckPrerequisites(profile, goal)
	assert.Len(t, report.Met, 1)
	assert.Empty(t, report.Missing)
}

func TestCheckPrerequisites_OneLevelBelowIsMissing(t *testing.T) {
	profile := profileWithLevels(model.LevelBeginner, model.LevelIntermediate)
	goal := &model.LearningGoal{
		Prerequisites: []model.PrerequisiteGroup{
			{Category: model.PrereqMath, Skills: []model.SkillRequirement{
				{Name: "calculus", Level: model.LevelIntermediate},
			}},
			{Category: model.PrereqProgramming, Skills: []model.SkillRequirement{
				{Name: "python", Level: model.LevelIntermediate},
			}},
		},
	}

	report := CheckPrerequisites(profile, goal)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, model.PrereqMath, report.Missing[0].Category)
	require.Len(t, report.Met, 1)
	assert.Equal(t, model.PrereqProgramming, report.Met[0].Category)
}

func TestCheckPrerequisites_GroupFailsOnAnySkill(t *testing.T) {
	profile := profileWithLevels(model.LevelAdvanced, model.LevelBeginner)
	goal := &model.LearningGoal{
		Prerequisites: []model.PrerequisiteGroup{
			{Category: model.PrereqMath, Skills: []model.SkillRequirement{
				{Name: "statistics", Level: model.LevelBeginner},
				{Name: "calculus", Level: model.LevelExpert},
			}},
		},
	}

	report := CheckPrerequisites(profile, goal)
	assert.Len(t, report.Missing, 1)
	assert.Empty(t, report.Met)
}

func TestCheckPrerequisites_TheoryAndToolsPassThrough(t *testing.T) {
	// 档案上没有 theory/tools 字段，这两类先修直接记为满足
	profile := profileWithLevels(model.LevelBeginner, model.LevelBeginner)
	goal := &model.LearningGoal{
		Prerequisites: []model.PrerequisiteGroup{
			{Category: model.PrereqTheory, Skills: []model.SkillRequirement{
				{Name: "complexity", Level: model.LevelExpert},
			}},
			{Category: model.PrereqTools, Skills: []model.SkillRequirement{
				{Name: "git", Level: model.LevelExpert},
			}},
		},
	}

	report := CheckPrerequisites(profile, goal)
	assert.Len(t, report.Met, 2)
	assert.Empty(t, report.Missing)
}

func TestCheckPrerequisites_NoPrerequisites(t *testing.T) {
	report := CheckPrerequisites(model.DefaultProfile(1), &model.LearningGoal{})
	assert.Empty(t, report.Met)
	assert.Empty(t, report.Missing)
}
