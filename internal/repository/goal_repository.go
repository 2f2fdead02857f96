package repository

import (
	"errors"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/util"

	"gorm.io/gorm"
)

// GoalRepository 处理学习目标（课程目录）的数据访问

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.LearningGoal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) Update(goal *model.LearningGoal) error {
	return r.DB.Model(goal).
		Select("Title", "Description", "Category", "Level", "EstimatedDuration", "Prerequisites", "Modules").
		Updates(goal).Error
}

func (r *GoalRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LearningGoal{}, id).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.LearningGoal, error) {
	var goal model.LearningGoal
	err := r.DB.First(&goal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) List(category string, level model.GoalLevel, page, limit int) ([]model.LearningGoal, int64, error) {
	var goals []model.LearningGoal
	var total int64

	query := r.DB.Model(&model.LearningGoal{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if level != "" {
		query = query.Where("level = ?", level)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&goals).Error
	return goals, total, err
}

// FindByCategoryAndLevel 用于后继目标推荐，排除当前目标
func (r *GoalRepository) FindByCategoryAndLevel(category string, level model.GoalLevel, excludeID uint, limit int) ([]model.LearningGoal, error) {
	var goals []model.LearningGoal
	err := r.DB.Where("category = ? AND level = ? AND id <> ?", category, level, excludeID).
		Limit(limit).
		Find(&goals).Error
	return goals, err
}
