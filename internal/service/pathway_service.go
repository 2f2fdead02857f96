package service

import (
	"fmt"
	"math"
	"time"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/monitoring"
)

// 路径核心只依赖这三个数据访问契约，由 gorm 仓储实现，测试用内存假件替换。

type ProfileStore interface {
	FindByUserID(userID uint) (*model.LearnerProfile, error)
}

type GoalStore interface {
	FindByID(id uint) (*model.LearningGoal, error)
	FindByCategoryAndLevel(category string, level model.GoalLevel, excludeID uint, limit int) ([]model.LearningGoal, error)
}

type PathwayStore interface {
	Insert(pathway *model.Pathway) error
	FindByID(id string) (*model.Pathway, error)
	FindByUser(userID uint) ([]model.Pathway, error)
	FindActive(userID, goalID uint) (*model.Pathway, error)
	Save(pathway *model.Pathway) error
}

// 乐观锁冲突时的重放次数
const saveRetries = 3

type PathwayService struct {
	Profiles ProfileStore
	Goals    GoalStore
	Pathways PathwayStore

	now func() time.Time
}

func NewPathwayService(profiles ProfileStore, goals GoalStore, pathways PathwayStore) *PathwayService {
	return &PathwayService{
		Profiles: profiles,
		Goals:    goals,
		Pathways: pathways,
		now:      time.Now,
	}
}

// GeneratePathway 为 {user, goal} 生成个性化学习路径：
// 先修检查 → 认知负载 → 模块适配 → 日程估算，然后落库。
// 已存在未完成路径时返回 ErrPathwayConflict。
func (s *PathwayService) GeneratePathway(userID, goalID uint) (*model.Pathway, error) {
	profile, err := s.Profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	goal, err := s.Goals.FindByID(goalID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.Pathways.FindActive(userID, goalID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, util.ErrPathwayConflict
	}

	now := s.now()
	prereqs := CheckPrerequisites(profile, goal)
	load := EstimateCognitiveLoad(profile)
	adapted := AdaptModules(goal.Modules, profile, load)
	schedule := EstimateSchedule(adapted, profile, now)

	pathway := &model.Pathway{
		UUIDBase:                model.UUIDBase{ID: model.GenerateUUID()},
		UserID:                  userID,
		GoalID:                  goalID,
		ActiveKey:               model.PathwayActiveKey(userID, goalID),
		Status:                  model.PathwayActive,
		Modules:                 adapted,
		ModuleProgress:          buildModuleProgress(adapted),
		Schedule:                schedule,
		AdaptiveRecommendations: initialRecommendations(prereqs, profile, load),
		EstimatedCompletionDate: schedule.CompletionDate,
		StartedAt:               now,
		LastAccessedAt:          now,
		Version:                 1,
	}

	if err := s.Pathways.Insert(pathway); err != nil {
		return nil, err
	}

	monitoring.PathwaysGenerated.Inc()
	return pathway, nil
}

// buildModuleProgress 模块 0 解锁，其余全部锁定，资源与测验均未完成
func buildModuleProgress(modules []model.GoalModule) []model.ModuleProgress {
	progress := make([]model.ModuleProgress, len(modules))
	for i, module := range modules {
		resources := make([]model.ResourceProgress, len(module.Resources))
		for j, res := range module.Resources {
			resources[j] = model.ResourceProgress{ResourceID: res.ID}
		}
		progress[i] = model.ModuleProgress{
			ModuleIndex: i,
			Locked:      i != 0,
			Resources:   resources,
		}
	}
	return progress
}

func initialRecommendations(prereqs PrerequisiteReport, profile *model.LearnerProfile, load CognitiveLoad) []model.AdaptiveRecommendation {
	recs := []model.AdaptiveRecommendation{}

	for _, group := range prereqs.Missing {
		recs = append(recs, model.AdaptiveRecommendation{
			Type:        model.RecReview,
			Description: fmt.Sprintf("Brush up on %s before starting: your current level is below the goal's requirements.", group.Category),
			Priority:    model.PriorityHigh,
			Status:      "pending",
		})
	}

	recs = append(recs, model.AdaptiveRecommendation{
		Type:        model.RecResource,
		Description: fmt.Sprintf("Resources are ordered for %s learners; start each module from the top.", profile.LearningStyle),
		Priority:    model.PriorityMedium,
		Status:      "pending",
	})

	if load.PracticeFrequency == PracticeHigh {
		recs = append(recs, model.AdaptiveRecommendation{
			Type:        model.RecPractice,
			Description: "Your recent scores dip between sessions. Schedule a short practice after every study block.",
			Priority:    model.PriorityHigh,
			Status:      "pending",
		})
	}

	return recs
}

// UpdateProgress 重新计算进度并推进解锁状态。
// 在已完成的路径上调用会返回 ErrPathwayCompleted（硬错误，不做静默忽略）。
func (s *PathwayService) UpdateProgress(pathway *model.Pathway) error {
	if pathway.Status == model.PathwayCompleted {
		return util.ErrPathwayCompleted
	}

	now := s.now()
	total := len(pathway.ModuleProgress)
	completed := 0
	for _, mp := range pathway.ModuleProgress {
		if mp.Completed {
			completed++
		}
	}

	if total > 0 {
		pathway.Progress = int(math.Round(100 * float64(completed) / float64(total)))
	}

	// 线性外推：按每进度点耗时估算剩余时间
	if pathway.Progress > 0 && pathway.Progress < 100 {
		elapsed := now.Sub(pathway.StartedAt)
		if elapsed > 0 {
			perPoint := elapsed / time.Duration(pathway.Progress)
			pathway.EstimatedCompletionDate = now.Add(perPoint * time.Duration(100-pathway.Progress))
		}
	}

	cm := pathway.CurrentModule
	if cm >= 0 && cm < total && pathway.ModuleProgress[cm].Completed {
		if cm == total-1 && pathway.Progress == 100 {
			pathway.Status = model.PathwayCompleted
			pathway.EstimatedCompletionDate = now
			// 释放活跃路径占位，之后同一目标可重新开始
			pathway.ActiveKey = pathway.ID
			if err := s.suggestNextGoals(pathway); err != nil {
				return err
			}
		} else if cm+1 < total {
			pathway.ModuleProgress[cm+1].Locked = false
			pathway.CurrentModule = cm + 1
		}
	}

	pathway.LastAccessedAt = now
	if err := s.Pathways.Save(pathway); err != nil {
		return err
	}

	monitoring.PathwayProgressUpdates.Inc()
	return nil
}

// suggestNextGoals 同分类、高一级的目标，至多 3 个，排除当前目标
func (s *PathwayService) suggestNextGoals(pathway *model.Pathway) error {
	goal, err := s.Goals.FindByID(pathway.GoalID)
	if err != nil {
		return err
	}

	candidates, err := s.Goals.FindByCategoryAndLevel(goal.Category, goal.Level.Next(), goal.ID, 3)
	if err != nil {
		return err
	}

	suggestions := make([]model.NextGoalSuggestion, 0, len(candidates))
	for _, candidate := range candidates {
		suggestions = append(suggestions, model.NextGoalSuggestion{
			GoalID: candidate.ID,
			Title:  candidate.Title,
			Level:  candidate.Level,
		})
	}
	pathway.NextGoalSuggestions = suggestions
	return nil
}

// CompleteResource 标记资源完成并推进进度，乐观锁冲突时重读重放
func (s *PathwayService) CompleteResource(pathwayID string, moduleIndex int, resourceID string) (*model.Pathway, error) {
	return s.applyProgress(pathwayID, func(pathway *model.Pathway) error {
		mp, err := unlockedModule(pathway, moduleIndex)
		if err != nil {
			return err
		}

		for i := range mp.Resources {
			if mp.Resources[i].ResourceID == resourceID {
				if !mp.Resources[i].Completed {
					completedAt := s.now()
					mp.Resources[i].Completed = true
					mp.Resources[i].CompletedAt = &completedAt
				}
				refreshModuleCompletion(mp)
				return nil
			}
		}
		return fmt.Errorf("resource %s not found in module %d", resourceID, moduleIndex)
	})
}

// CompleteQuiz 记录模块测验结果并推进进度
func (s *PathwayService) CompleteQuiz(pathwayID string, moduleIndex int, score int) (*model.Pathway, error) {
	return s.applyProgress(pathwayID, func(pathway *model.Pathway) error {
		mp, err := unlockedModule(pathway, moduleIndex)
		if err != nil {
			return err
		}

		completedAt := s.now()
		mp.Quiz = model.QuizProgress{
			Completed:   true,
			Score:       score,
			CompletedAt: &completedAt,
		}
		refreshModuleCompletion(mp)
		return nil
	})
}

// applyProgress 读-改-写一个进度事件。进度事件必须按发生顺序串行生效，
// 版本冲突意味着有并发写入，重读后重放该事件。
func (s *PathwayService) applyProgress(pathwayID string, mutate func(*model.Pathway) error) (*model.Pathway, error) {
	var lastErr error
	for attempt := 0; attempt < saveRetries; attempt++ {
		pathway, err := s.Pathways.FindByID(pathwayID)
		if err != nil {
			return nil, err
		}
		if pathway.Status == model.PathwayCompleted {
			return nil, util.ErrPathwayCompleted
		}

		if err := mutate(pathway); err != nil {
			return nil, err
		}

		err = s.UpdateProgress(pathway)
		if err == nil {
			return pathway, nil
		}
		if err != util.ErrVersionConflict {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func unlockedModule(pathway *model.Pathway, moduleIndex int) (*model.ModuleProgress, error) {
	if moduleIndex < 0 || moduleIndex >= len(pathway.ModuleProgress) {
		return nil, fmt.Errorf("module index %d out of range", moduleIndex)
	}
	mp := &pathway.ModuleProgress[moduleIndex]
	if mp.Locked {
		return nil, util.ErrModuleLocked
	}
	return mp, nil
}

// refreshModuleCompletion 资源全部完成且测验通过后，模块记为完成
func refreshModuleCompletion(mp *model.ModuleProgress) {
	for _, res := range mp.Resources {
		if !res.Completed {
			mp.Completed = false
			return
		}
	}
	mp.Completed = mp.Quiz.Completed
}

// GenerateRecommendations 清空并重建当前模块的自适应建议（整体重建，不做增量修补）
func (s *PathwayService) GenerateRecommendations(pathway *model.Pathway) error {
	recs := []model.AdaptiveRecommendation{}

	cm := pathway.CurrentModule
	if cm >= 0 && cm < len(pathway.ModuleProgress) && cm < len(pathway.Modules) {
		mp := pathway.ModuleProgress[cm]
		module := pathway.Modules[cm]

		remaining := 0
		for _, res := range mp.Resources {
			if !res.Completed {
				remaining++
			}
		}
		if remaining > 0 {
			recs = append(recs, model.AdaptiveRecommendation{
				Type:        model.RecPractice,
				Description: fmt.Sprintf("Work through the %d remaining resources in %q.", remaining, module.Title),
				Priority:    model.PriorityHigh,
				Status:      "pending",
			})
		}

		if !mp.Quiz.Completed {
			recs = append(recs, model.AdaptiveRecommendation{
				Type:        model.RecPractice,
				Description: fmt.Sprintf("Take the quiz for %q to validate the module.", module.Title),
				Priority:    model.PriorityHigh,
				Status:      "pending",
			})
		} else if mp.Quiz.Score < 70 {
			recs = append(recs, model.AdaptiveRecommendation{
				Type:        model.RecReview,
				Description: fmt.Sprintf("Your quiz score for %q was %d. Review the material before moving on.", module.Title, mp.Quiz.Score),
				Priority:    model.PriorityMedium,
				Status:      "pending",
			})
		}
	}

	pathway.AdaptiveRecommendations = recs
	pathway.LastAccessedAt = s.now()
	return s.Pathways.Save(pathway)
}

// Pause 暂停一条活跃路径；active ⇄ paused 之外的流转都被拒绝
func (s *PathwayService) Pause(pathwayID string) (*model.Pathway, error) {
	return s.transition(pathwayID, model.PathwayActive, model.PathwayPaused)
}

// Resume 恢复一条已暂停的路径
func (s *PathwayService) Resume(pathwayID string) (*model.Pathway, error) {
	return s.transition(pathwayID, model.PathwayPaused, model.PathwayActive)
}

func (s *PathwayService) transition(pathwayID string, from, to model.PathwayStatus) (*model.Pathway, error) {
	pathway, err := s.Pathways.FindByID(pathwayID)
	if err != nil {
		return nil, err
	}
	if pathway.Status == model.PathwayCompleted {
		return nil, util.ErrPathwayCompleted
	}
	if pathway.Status != from {
		return nil, fmt.Errorf("cannot change pathway status from %s to %s", pathway.Status, to)
	}

	pathway.Status = to
	pathway.LastAccessedAt = s.now()
	if err := s.Pathways.Save(pathway); err != nil {
		return nil, err
	}
	return pathway, nil
}

func (s *PathwayService) GetPathway(pathwayID string) (*model.Pathway, error) {
	return s.Pathways.FindByID(pathwayID)
}

func (s *PathwayService) ListUserPathways(userID uint) ([]model.Pathway, error) {
	return s.Pathways.FindByUser(userID)
}
