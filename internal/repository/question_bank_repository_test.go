package repository

import (
	"testing"

	"learnpath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir_FilenameBecomesCategory(t *testing.T) {
	bank := NewQuestionBankRepository()
	require.NoError(t, bank.LoadDir("testdata/questionbank"))

	assert.Equal(t, []string{"math", "programming"}, bank.Categories())

	questions, err := bank.ByCategory("programming")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, "programming", q.Category)
	}
}

func TestLoadDir_AssignsMissingIDs(t *testing.T) {
	bank := NewQuestionBankRepository()
	require.NoError(t, bank.LoadDir("testdata/questionbank"))

	questions, err := bank.ByCategory("math")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	// 题库文件里没写 id，载入时回填 UUID
	assert.NotEmpty(t, questions[0].ID)
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	bank := NewQuestionBankRepository()
	assert.Error(t, bank.LoadDir("testdata/does-not-exist"))
}

func TestByCategory_UnknownCategory(t *testing.T) {
	bank := NewQuestionBankRepository()
	require.NoError(t, bank.LoadDir("testdata/questionbank"))

	_, err := bank.ByCategory("history")
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestByCategory_ReturnsIndependentCopy(t *testing.T) {
	bank := NewQuestionBankRepository()
	require.NoError(t, bank.LoadDir("testdata/questionbank"))

	first, err := bank.ByCategory("programming")
	require.NoError(t, err)
	first[0].Text = "mutated"

	second, err := bank.ByCategory("programming")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Text)
}
