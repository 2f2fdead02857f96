package model

// Difficulty 题目难度，决定计时阈值与难度加成
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type QuestionOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuizQuestion 静态题库中的题目，只读数据，核心逻辑从不修改它
type QuizQuestion struct {
	ID          string           `json:"id"`
	Category    string           `json:"category"`
	Text        string           `json:"text"`
	Options     []QuestionOption `json:"options"`
	Difficulty  Difficulty       `json:"difficulty"`
	Explanation string           `json:"explanation"`
}
