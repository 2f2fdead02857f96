package service

import (
	"learnpath_backend/internal/model"
)

// DashboardService 汇总学习者首页数据。每次查看都会为活跃路径
// 重建当前模块的自适应建议。
type DashboardService struct {
	Profiles *ProfileService
	Pathways *PathwayService
	Goals    *GoalService
}

func NewDashboardService(profiles *ProfileService, pathways *PathwayService, goals *GoalService) *DashboardService {
	return &DashboardService{
		Profiles: profiles,
		Pathways: pathways,
		Goals:    goals,
	}
}

type PathwaySummary struct {
	ID                      string                         `json:"id"`
	GoalID                  uint                           `json:"goalId"`
	GoalTitle               string                         `json:"goalTitle"`
	Status                  model.PathwayStatus            `json:"status"`
	Progress                int                            `json:"progress"`
	CurrentModule           int                            `json:"currentModule"`
	EstimatedCompletionDate string                         `json:"estimatedCompletionDate"`
	Recommendations         []model.AdaptiveRecommendation `json:"recommendations"`
}

type Dashboard struct {
	Profile      *model.LearnerProfile `json:"profile"`
	Pathways     []PathwaySummary      `json:"pathways"`
	LastCategory string                `json:"lastAssessedCategory,omitempty"`
}

func (s *DashboardService) GetUserDashboard(userID uint) (*Dashboard, error) {
	profile, err := s.Profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	pathways, err := s.Pathways.ListUserPathways(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]PathwaySummary, 0, len(pathways))
	for i := range pathways {
		pathway := &pathways[i]

		// 已完成路径只读展示，不再重建建议
		if pathway.Status == model.PathwayActive {
			if err := s.Pathways.GenerateRecommendations(pathway); err != nil {
				return nil, err
			}
		}

		title := ""
		if goal, err := s.Goals.GetGoal(pathway.GoalID); err == nil {
			title = goal.Title
		}

		summaries = append(summaries, PathwaySummary{
			ID:                      pathway.ID,
			GoalID:                  pathway.GoalID,
			GoalTitle:               title,
			Status:                  pathway.Status,
			Progress:                pathway.Progress,
			CurrentModule:           pathway.CurrentModule,
			EstimatedCompletionDate: pathway.EstimatedCompletionDate.Format("2006-01-02"),
			Recommendations:         pathway.AdaptiveRecommendations,
		})
	}

	dashboard := &Dashboard{
		Profile:  profile,
		Pathways: summaries,
	}
	if n := len(profile.Assessments); n > 0 {
		dashboard.LastCategory = profile.Assessments[n-1].Category
	}
	return dashboard, nil
}
