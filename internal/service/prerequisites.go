package service

import (
	"learnpath_backend/internal/model"
)

type PrerequisiteReport struct {
	Met     []model.PrerequisiteGroup `json:"met"`
	Missing []model.PrerequisiteGroup `json:"missing"`
}

// CheckPrerequisites 将学习者声明的技能等级与目标的先修要求逐组比较。
// math 组对照 mathLevel，programming 组对照 programmingLevel；
// theory/tools 组没有对应的档案字段，目前直接放行（历史遗留，勿补校验）。
func CheckPrerequisites(profile *model.LearnerProfile, goal *model.LearningGoal) PrerequisiteReport {
	report := PrerequisiteReport{
		Met:     []model.PrerequisiteGroup{},
		Missing: []model.PrerequisiteGroup{},
	}

	for _, group := range goal.Prerequisites {
		var learnerLevel model.SkillLevel
		switch group.Category {
		case model.PrereqMath:
			learnerLevel = profile.Preferences.MathLevel
		case model.PrereqProgramming:
			learnerLevel = profile.Preferences.ProgrammingLevel
		default:
			report.Met = append(report.Met, group)
			continue
		}

		if groupSatisfied(learnerLevel, group) {
			report.Met = append(report.Met, group)
		} else {
			report.Missing = append(report.Missing, group)
		}
	}
	return report
}

// groupSatisfied 学习者等级必须不低于组内每一项要求
func groupSatisfied(learnerLevel model.SkillLevel, group model.PrerequisiteGroup) bool {
	for _, skill := range group.Skills {
		if learnerLevel.Rank() < skill.Level.Rank() {
			return false
		}
	}
	return true
}
