package model

type GoalLevel string

const (
	GoalBeginner     GoalLevel = "beginner"
	GoalIntermediate GoalLevel = "intermediate"
	GoalAdvanced     GoalLevel = "advanced"
)

// Next 返回推荐后继目标的等级；advanced 已是最高级，原地保持
func (l GoalLevel) Next() GoalLevel {
	switch l {
	case GoalBeginner:
		return GoalIntermediate
	case GoalIntermediate:
		return GoalAdvanced
	default:
		return GoalAdvanced
	}
}

// GoalCategories 目标侧的学科枚举，独立于 LearnerProfile.PreferredDomain
var GoalCategories = []string{"programming", "math", "algorithms", "web_development", "machine_learning", "data_science"}

type ResourceType string

const (
	ResourceArticle ResourceType = "article"
	ResourceVideo   ResourceType = "video"
	ResourceCourse  ResourceType = "course"
	ResourceBook    ResourceType = "book"
	ResourceUseCase ResourceType = "use_case"
)

type ModuleResource struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	URL       string       `json:"url"`
	Type      ResourceType `json:"type"`
	Level     SkillLevel   `json:"level"`
	Duration  float64      `json:"duration"` // hours
	IsPremium bool         `json:"isPremium"`
}

type SkillRequirement struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

const (
	PrereqMath        = "math"
	PrereqProgramming = "programming"
	PrereqTheory      = "theory"
	PrereqTools       = "tools"
)

type PrerequisiteGroup struct {
	Category string             `json:"category"`
	Skills   []SkillRequirement `json:"skills"`
}

// GoalModule 课程单元。模块顺序即解锁依赖链：第 i 个模块只有在第 i-1 个完成后才可解锁。
type GoalModule struct {
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	Duration           float64            `json:"duration"` // hours
	Skills             []SkillRequirement `json:"skills"`
	Resources          []ModuleResource   `json:"resources"`
	ValidationCriteria []string           `json:"validationCriteria"`
}

// swagger:model LearningGoal
type LearningGoal struct {
	BaseModel
	Title             string              `gorm:"size:255;not null" json:"title"`
	Description       string              `gorm:"type:text" json:"description"`
	Category          string              `gorm:"size:50;index" json:"category"`
	Level             GoalLevel           `gorm:"size:20;index" json:"level"`
	EstimatedDuration string              `gorm:"size:50" json:"estimatedDuration"`
	Prerequisites     []PrerequisiteGroup `gorm:"serializer:json;type:json" json:"prerequisites"`
	Modules           []GoalModule        `gorm:"serializer:json;type:json" json:"modules"`
	CreatorID         uint                `gorm:"index;type:bigint unsigned" json:"creatorId"`
}

func (LearningGoal) TableName() string {
	return "learning_goals"
}
