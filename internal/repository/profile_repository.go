package repository

import (
	"errors"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/util"

	"gorm.io/gorm"
)

// ProfileRepository 处理学习者档案的数据访问

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Create(profile *model.LearnerProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.LearnerProfile, error) {
	var profile model.LearnerProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update 全量保存档案。测评历史只追加，追加逻辑在 service 层完成后整体落库。
func (r *ProfileRepository) Update(profile *model.LearnerProfile) error {
	return r.DB.Model(profile).
		Select("LearningStyle", "Preferences", "Assessments", "GoalID").
		Updates(profile).Error
}
