package model

import (
	"fmt"
	"time"
)

type PathwayStatus string

const (
	PathwayActive    PathwayStatus = "active"
	PathwayPaused    PathwayStatus = "paused"
	PathwayCompleted PathwayStatus = "completed"
)

type RecommendationType string

const (
	RecResource RecommendationType = "resource"
	RecPractice RecommendationType = "practice"
	RecReview   RecommendationType = "review"
)

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

type AdaptiveRecommendation struct {
	Type        RecommendationType     `json:"type"`
	Description string                 `json:"description"`
	Priority    RecommendationPriority `json:"priority"`
	Status      string                 `json:"status"` // pending, completed, skipped
}

type ResourceProgress struct {
	ResourceID  string     `json:"resourceId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type QuizProgress struct {
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ModuleProgress 单个模块的进度。moduleProgress[0] 永远不锁定；
// 第 i 项的 Locked 只在第 i-1 项 Completed 之后才会翻为 false。
type ModuleProgress struct {
	ModuleIndex int                `json:"moduleIndex"`
	Completed   bool               `json:"completed"`
	Locked      bool               `json:"locked"`
	Resources   []ResourceProgress `json:"resources"`
	Quiz        QuizProgress       `json:"quiz"`
}

type NextGoalSuggestion struct {
	GoalID uint      `json:"goalId"`
	Title  string    `json:"title"`
	Level  GoalLevel `json:"level"`
}

type ScheduleSession struct {
	Type            string `json:"type"` // learning, practice
	DurationMinutes int    `json:"durationMinutes"`
	Intensity       string `json:"intensity"` // high, medium, low
}

type ScheduleEstimate struct {
	EstimatedTimeHours float64           `json:"estimatedTimeHours"`
	FreeResources      []ModuleResource  `json:"freeResources"`
	PremiumResources   []ModuleResource  `json:"premiumResources"`
	WeeksNeeded        int               `json:"weeksNeeded"`
	HoursPerWeek       int               `json:"hoursPerWeek"`
	Sessions           []ScheduleSession `json:"sessions"`
	CompletionDate     time.Time         `json:"completionDate"`
}

// swagger:model Pathway
type Pathway struct {
	UUIDBase
	UserID                  uint                     `gorm:"index;type:bigint unsigned" json:"userId"`
	GoalID                  uint                     `gorm:"index;type:bigint unsigned" json:"goalId"`
	ActiveKey               string                   `gorm:"uniqueIndex;size:64" json:"-"`
	Status                  PathwayStatus            `gorm:"size:20;default:'active'" json:"status"`
	Progress                int                      `gorm:"default:0" json:"progress"`
	CurrentModule           int                      `gorm:"default:0" json:"currentModule"`
	Modules                 []GoalModule             `gorm:"serializer:json;type:json" json:"modules"` // adapted snapshot
	ModuleProgress          []ModuleProgress         `gorm:"serializer:json;type:json" json:"moduleProgress"`
	Schedule                ScheduleEstimate         `gorm:"serializer:json;type:json" json:"schedule"`
	AdaptiveRecommendations []AdaptiveRecommendation `gorm:"serializer:json;type:json" json:"adaptiveRecommendations"`
	NextGoalSuggestions     []NextGoalSuggestion     `gorm:"serializer:json;type:json" json:"nextGoalSuggestions"`
	EstimatedCompletionDate time.Time                `json:"estimatedCompletionDate"`
	StartedAt               time.Time                `json:"startedAt"`
	LastAccessedAt          time.Time                `json:"lastAccessedAt"`
	Version                 int                      `gorm:"default:1" json:"-"`
}

func (Pathway) TableName() string {
	return "pathways"
}

// PathwayActiveKey 活跃路径的唯一键。同一 {user, goal} 同时只允许一条未完成路径，
// 由该列上的唯一索引兜底；路径完成后该键改写为路径自身 ID 以释放占位。
func PathwayActiveKey(userID, goalID uint) string {
	return fmt.Sprintf("u%d:g%d", userID, goalID)
}
