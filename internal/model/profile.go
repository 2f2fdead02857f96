package model

import "time"

type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleReading     LearningStyle = "reading"
	StyleKinesthetic LearningStyle = "kinesthetic"
)

// SkillLevel 有序技能等级，用于先修条件比较
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

var skillLevelRank = map[SkillLevel]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

// Rank returns the position of the level on the ordered scale; unknown levels rank 0.
func (l SkillLevel) Rank() int {
	return skillLevelRank[l]
}

// PreferredDomain 与 LearningGoal.Category 是两套独立校验的枚举，
// 历史数据两边取值并不一致（例如 data_science 只出现在 Goal 侧），不要合并。
var ProfileDomains = []string{"programming", "math", "algorithms", "web_development", "machine_learning"}

type Preferences struct {
	MathLevel        SkillLevel `json:"mathLevel"`
	ProgrammingLevel SkillLevel `json:"programmingLevel"`
	PreferredDomain  string     `json:"preferredDomain"`
}

// AssessmentResponse 学习者对单个题目的作答记录
type AssessmentResponse struct {
	QuestionID     string     `json:"questionId"`
	SelectedOption int        `json:"selectedOption"`
	TimeSpent      float64    `json:"timeSpent"` // seconds
	Category       string     `json:"category"`
	Difficulty     Difficulty `json:"difficulty"`
}

type StudyRecommendation struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// AssessmentRecord 一次测评的完整历史记录，只追加，从不原地修改
type AssessmentRecord struct {
	Category        string                `json:"category"`
	Score           int                   `json:"score"`
	Responses       []AssessmentResponse  `json:"responses"`
	Recommendations []StudyRecommendation `json:"recommendations"`
	CompletedAt     time.Time             `json:"completedAt"`
}

// swagger:model LearnerProfile
type LearnerProfile struct {
	BaseModel
	UserID        uint               `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	LearningStyle LearningStyle      `gorm:"size:20;default:'visual'" json:"learningStyle"`
	Preferences   Preferences        `gorm:"serializer:json;type:json" json:"preferences"`
	Assessments   []AssessmentRecord `gorm:"serializer:json;type:json" json:"assessments"`
	GoalID        *uint              `gorm:"type:bigint unsigned" json:"goalId,omitempty"`
}

func (LearnerProfile) TableName() string {
	return "learner_profiles"
}

// DefaultProfile 首次访问时创建的档案默认值
func DefaultProfile(userID uint) *LearnerProfile {
	return &LearnerProfile{
		UserID:        userID,
		LearningStyle: StyleVisual,
		Preferences: Preferences{
			MathLevel:        LevelBeginner,
			ProgrammingLevel: LevelBeginner,
			PreferredDomain:  "programming",
		},
		Assessments: []AssessmentRecord{},
	}
}
