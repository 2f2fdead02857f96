package service

import (
	"math/rand"
	"sync"
	"time"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/pkg/monitoring"
)

// AssessmentService 发放测评题目并评分。打乱顺序只影响呈现，
// 不承诺任何排序保证；随机源可注入，测试里传固定种子即可复现。
type AssessmentService struct {
	Bank     *repository.QuestionBankRepository
	Profiles *ProfileService

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewAssessmentService(bank *repository.QuestionBankRepository, profiles *ProfileService, rng *rand.Rand) *AssessmentService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AssessmentService{
		Bank:     bank,
		Profiles: profiles,
		rng:      rng,
		now:      time.Now,
	}
}

func (s *AssessmentService) Categories() []string {
	return s.Bank.Categories()
}

// QuizView 发给前端的题目视图，不包含正确答案与解析
type QuizView struct {
	ID         string           `json:"id"`
	Text       string           `json:"text"`
	Options    []string         `json:"options"`
	Difficulty model.Difficulty `json:"difficulty"`
}

// GetQuiz 返回某分类下至多 count 道题，题目与选项均已打乱
func (s *AssessmentService) GetQuiz(category string, count int) ([]QuizView, error) {
	questions, err := s.Bank.ByCategory(category)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if count > 0 && len(questions) > count {
		questions = questions[:count]
	}

	views := make([]QuizView, len(questions))
	for i, q := range questions {
		options := make([]string, len(q.Options))
		perm := s.rng.Perm(len(q.Options))
		for j, p := range perm {
			options[j] = q.Options[p].Text
		}
		views[i] = QuizView{
			ID:         q.ID,
			Text:       q.Text,
			Options:    options,
			Difficulty: q.Difficulty,
		}
	}
	s.mu.Unlock()

	return views, nil
}

type SubmitAssessmentRequest struct {
	Category  string              `json:"category" binding:"required"`
	Responses []SubmittedResponse `json:"responses" binding:"required,min=1"`
}

type SubmittedResponse struct {
	QuestionID     string  `json:"questionId" binding:"required"`
	SelectedOption string  `json:"selectedOption" binding:"required"`
	TimeSpent      float64 `json:"timeSpent" binding:"min=0"`
}

type AssessmentResult struct {
	Score           int                         `json:"score"`
	CategoryStats   map[string]*CategoryStats   `json:"categoryStats"`
	Recommendations []model.StudyRecommendation `json:"recommendations"`
}

// Submit 对一次提交评分，并把结果追加到学习者的测评历史
func (s *AssessmentService) Submit(userID uint, req SubmitAssessmentRequest) (*AssessmentResult, error) {
	questions, err := s.Bank.ByCategory(req.Category)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	// 提交携带的是选项文本（呈现顺序被打乱过），映射回题库下标
	responses := make([]model.AssessmentResponse, 0, len(req.Responses))
	for _, submitted := range req.Responses {
		q, ok := byID[submitted.QuestionID]
		if !ok {
			continue
		}
		selected := -1
		for i, option := range q.Options {
			if option.Text == submitted.SelectedOption {
				selected = i
				break
			}
		}
		responses = append(responses, model.AssessmentResponse{
			QuestionID:     submitted.QuestionID,
			SelectedOption: selected,
			TimeSpent:      submitted.TimeSpent,
			Category:       q.Category,
			Difficulty:     q.Difficulty,
		})
	}

	score := ScoreOverall(questions, responses)
	stats := ScoreByCategory(questions, responses)
	recommendations := RecommendationsFromStats(stats)

	record := model.AssessmentRecord{
		Category:        req.Category,
		Score:           score,
		Responses:       responses,
		Recommendations: recommendations,
		CompletedAt:     s.now(),
	}
	if _, err := s.Profiles.AppendAssessment(userID, record); err != nil {
		return nil, err
	}

	monitoring.AssessmentsSubmitted.WithLabelValues(req.Category).Inc()

	return &AssessmentResult{
		Score:           score,
		CategoryStats:   stats,
		Recommendations: recommendations,
	}, nil
}
