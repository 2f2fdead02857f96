package service

import (
	"errors"
	"fmt"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

type ProfileService struct {
	Repo     *repository.ProfileRepository
	GoalRepo *repository.GoalRepository
}

func NewProfileService(repo *repository.ProfileRepository, goalRepo *repository.GoalRepository) *ProfileService {
	return &ProfileService{Repo: repo, GoalRepo: goalRepo}
}

// GetOrCreate 首次访问时用默认值建档；每个用户恰好一份档案
func (s *ProfileService) GetOrCreate(userID uint) (*model.LearnerProfile, error) {
	profile, err := s.Repo.FindByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, util.ErrProfileNotFound) {
		return nil, err
	}

	profile = model.DefaultProfile(userID)
	if err := s.Repo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

type UpdatePreferencesRequest struct {
	LearningStyle    model.LearningStyle `json:"learningStyle" binding:"required,oneof=visual auditory reading kinesthetic"`
	MathLevel        model.SkillLevel    `json:"mathLevel" binding:"required,oneof=beginner intermediate advanced expert"`
	ProgrammingLevel model.SkillLevel    `json:"programmingLevel" binding:"required,oneof=beginner intermediate advanced expert"`
	PreferredDomain  string              `json:"preferredDomain" binding:"required"`
}

func (s *ProfileService) UpdatePreferences(userID uint, req UpdatePreferencesRequest) (*model.LearnerProfile, error) {
	if !containsString(model.ProfileDomains, req.PreferredDomain) {
		return nil, fmt.Errorf("unknown preferred domain: %s", req.PreferredDomain)
	}

	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	profile.LearningStyle = req.LearningStyle
	profile.Preferences = model.Preferences{
		MathLevel:        req.MathLevel,
		ProgrammingLevel: req.ProgrammingLevel,
		PreferredDomain:  req.PreferredDomain,
	}

	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetGoal 记录学习者当前选定的目标
func (s *ProfileService) SetGoal(userID, goalID uint) (*model.LearnerProfile, error) {
	if _, err := s.GoalRepo.FindByID(goalID); err != nil {
		return nil, err
	}

	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	profile.GoalID = &goalID
	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AppendAssessment 测评历史只追加，从不原地修改
func (s *ProfileService) AppendAssessment(userID uint, record model.AssessmentRecord) (*model.LearnerProfile, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	profile.Assessments = append(profile.Assessments, record)
	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func containsString(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
