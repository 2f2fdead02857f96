package service

import (
	"math/rand"
	"testing"

	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestBank(t *testing.T) *repository.QuestionBankRepository {
	t.Helper()
	bank := repository.NewQuestionBankRepository()
	require.NoError(t, bank.LoadDir("testdata/questionbank"))
	return bank
}

func TestGetQuiz_DeterministicWithFixedSeed(t *testing.T) {
	bank := loadTestBank(t)

	first := NewAssessmentService(bank, nil, rand.New(rand.NewSource(7)))
	second := NewAssessmentService(bank, nil, rand.New(rand.NewSource(7)))

	quizA, err := first.GetQuiz("programming", 3)
	require.NoError(t, err)
	quizB, err := second.GetQuiz("programming", 3)
	require.NoError(t, err)

	assert.Equal(t, quizA, quizB)
}

func TestGetQuiz_TruncatesToCount(t *testing.T) {
	service := NewAssessmentService(loadTestBank(t), nil, rand.New(rand.NewSource(1)))

	quiz, err := service.GetQuiz("programming", 2)
	require.NoError(t, err)
	assert.Len(t, quiz, 2)

	all, err := service.GetQuiz("programming", 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetQuiz_OptionsArePermutationWithoutAnswers(t *testing.T) {
	service := NewAssessmentService(loadTestBank(t), nil, rand.New(rand.NewSource(3)))

	quiz, err := service.GetQuiz("programming", 10)
	require.NoError(t, err)

	byID := map[string][]string{
		"q1": {"a", "b", "c"},
		"q2": {"d", "e"},
		"q3": {"f", "g"},
	}
	for _, view := range quiz {
		expected, ok := byID[view.ID]
		require.True(t, ok, "unexpected question %s", view.ID)
		assert.ElementsMatch(t, expected, view.Options)
	}
}

func TestGetQuiz_UnknownCategory(t *testing.T) {
	service := NewAssessmentService(loadTestBank(t), nil, nil)

	_, err := service.GetQuiz("history", 5)
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestGetQuiz_DoesNotMutateBankOrder(t *testing.T) {
	bank := loadTestBank(t)
	service := NewAssessmentService(bank, nil, rand.New(rand.NewSource(9)))

	_, err := service.GetQuiz("programming", 3)
	require.NoError(t, err)

	// 题库本体顺序不受打乱影响
	questions, err := bank.ByCategory("programming")
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "q2", questions[1].ID)
	assert.Equal(t, "q3", questions[2].ID)
}
