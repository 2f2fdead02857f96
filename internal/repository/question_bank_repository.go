package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/util"
)

// QuestionBankRepository 静态题库。每个分类一个 JSON 文件，启动时载入内存，
// 运行期间只读。
type QuestionBankRepository struct {
	mu    sync.RWMutex
	banks map[string][]model.QuizQuestion
}

func NewQuestionBankRepository() *QuestionBankRepository {
	return &QuestionBankRepository{
		banks: make(map[string][]model.QuizQuestion),
	}
}

// LoadDir 读取目录下所有 *.json 题库文件，文件名（去扩展名）即分类名
func (r *QuestionBankRepository) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	loaded := make(map[string][]model.QuizQuestion)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}

		var questions []model.QuizQuestion
		if err := json.Unmarshal(data, &questions); err != nil {
			return err
		}

		category := strings.TrimSuffix(entry.Name(), ".json")
		for i := range questions {
			questions[i].Category = category
			if questions[i].ID == "" {
				questions[i].ID = model.GenerateUUID()
			}
		}
		loaded[category] = questions
	}

	r.mu.Lock()
	r.banks = loaded
	r.mu.Unlock()
	return nil
}

func (r *QuestionBankRepository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]string, 0, len(r.banks))
	for c := range r.banks {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// ByCategory 返回分类题目的副本，调用方可安全打乱顺序
func (r *QuestionBankRepository) ByCategory(category string) ([]model.QuizQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions, ok := r.banks[category]
	if !ok {
		return nil, util.ErrCategoryNotFound
	}

	out := make([]model.QuizQuestion, len(questions))
	copy(out, questions)
	return out, nil
}
