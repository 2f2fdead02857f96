package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const goalCacheTTL = 24 * time.Hour

// GoalService 课程目录。目标读多写少，单个目标读用 Redis 缓存
type GoalService struct {
	Repo  *repository.GoalRepository
	Redis *redis.Client
}

func NewGoalService(repo *repository.GoalRepository, rdb *redis.Client) *GoalService {
	return &GoalService{Repo: repo, Redis: rdb}
}

func goalCacheKey(id uint) string {
	return fmt.Sprintf("goal:%d", id)
}

func (s *GoalService) GetGoal(id uint) (*model.LearningGoal, error) {
	ctx := context.Background()
	key := goalCacheKey(id)

	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var goal model.LearningGoal
			if err := json.Unmarshal([]byte(val), &goal); err == nil {
				return &goal, nil
			}
		}
	}

	goal, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(goal); err == nil {
			s.Redis.Set(ctx, key, data, goalCacheTTL)
		}
	}
	return goal, nil
}

func (s *GoalService) ListGoals(category string, level model.GoalLevel, page, limit int) ([]model.LearningGoal, int64, error) {
	return s.Repo.List(category, level, page, limit)
}

type GoalRequest struct {
	Title             string                    `json:"title" binding:"required"`
	Description       string                    `json:"description"`
	Category          string                    `json:"category" binding:"required"`
	Level             model.GoalLevel           `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	EstimatedDuration string                    `json:"estimatedDuration"`
	Prerequisites     []model.PrerequisiteGroup `json:"prerequisites"`
	Modules           []model.GoalModule        `json:"modules" binding:"required,min=1"`
}

func (s *GoalService) validate(req GoalRequest) error {
	if !containsString(model.GoalCategories, req.Category) {
		return fmt.Errorf("unknown goal category: %s", req.Category)
	}
	for _, group := range req.Prerequisites {
		switch group.Category {
		case model.PrereqMath, model.PrereqProgramming, model.PrereqTheory, model.PrereqTools:
		default:
			return fmt.Errorf("unknown prerequisite category: %s", group.Category)
		}
	}
	for i, module := range req.Modules {
		if module.Duration <= 0 {
			return fmt.Errorf("module %d has non-positive duration", i)
		}
		for _, res := range module.Resources {
			switch res.Type {
			case model.ResourceArticle, model.ResourceVideo, model.ResourceCourse, model.ResourceBook, model.ResourceUseCase:
			default:
				return fmt.Errorf("module %d has resource with unknown type %q", i, res.Type)
			}
		}
	}
	return nil
}

func (s *GoalService) CreateGoal(creatorID uint, req GoalRequest) (*model.LearningGoal, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	goal := &model.LearningGoal{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Level:             req.Level,
		EstimatedDuration: req.EstimatedDuration,
		Prerequisites:     req.Prerequisites,
		Modules:           withResourceIDs(req.Modules),
		CreatorID:         creatorID,
	}
	if err := s.Repo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) UpdateGoal(id uint, req GoalRequest) (*model.LearningGoal, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	goal, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Category = req.Category
	goal.Level = req.Level
	goal.EstimatedDuration = req.EstimatedDuration
	goal.Prerequisites = req.Prerequisites
	goal.Modules = withResourceIDs(req.Modules)

	if err := s.Repo.Update(goal); err != nil {
		return nil, err
	}
	s.invalidate(id)
	return goal, nil
}

func (s *GoalService) DeleteGoal(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *GoalService) invalidate(id uint) {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), goalCacheKey(id))
	}
}

// withResourceIDs 给缺失 ID 的资源补上 UUID，进度跟踪依赖稳定的资源 ID
func withResourceIDs(modules []model.GoalModule) []model.GoalModule {
	for i := range modules {
		for j := range modules[i].Resources {
			if modules[i].Resources[j].ID == "" {
				modules[i].Resources[j].ID = model.GenerateUUID()
			}
		}
	}
	return modules
}
