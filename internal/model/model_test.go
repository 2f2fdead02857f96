package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillLevelRank_Ordering(t *testing.T) {
	assert.Less(t, LevelBeginner.Rank(), LevelIntermediate.Rank())
	assert.Less(t, LevelIntermediate.Rank(), LevelAdvanced.Rank())
	assert.Less(t, LevelAdvanced.Rank(), LevelExpert.Rank())
	assert.Equal(t, 0, SkillLevel("unknown").Rank())
}

func TestGoalLevelNext(t *testing.T) {
	assert.Equal(t, GoalIntermediate, GoalBeginner.Next())
	assert.Equal(t, GoalAdvanced, GoalIntermediate.Next())
	// 最高级没有后继，原地保持
	assert.Equal(t, GoalAdvanced, GoalAdvanced.Next())
}

func TestPathwayActiveKey(t *testing.T) {
	assert.Equal(t, "u1:g2", PathwayActiveKey(1, 2))
	assert.NotEqual(t, PathwayActiveKey(12, 3), PathwayActiveKey(1, 23))
}

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile(5)
	assert.Equal(t, uint(5), profile.UserID)
	assert.Equal(t, StyleVisual, profile.LearningStyle)
	assert.Equal(t, LevelBeginner, profile.Preferences.MathLevel)
	assert.Equal(t, LevelBeginner, profile.Preferences.ProgrammingLevel)
	assert.Equal(t, "programming", profile.Preferences.PreferredDomain)
	assert.NotNil(t, profile.Assessments)
}
