package repository

import (
	"errors"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/util"

	"gorm.io/gorm"
)

// PathwayRepository 处理学习路径的数据访问。
// 同一 {user, goal} 的活跃路径唯一性由 active_key 唯一索引保证；
// 并发进度更新通过 version 乐观锁串行化。

type PathwayRepository struct {
	DB *gorm.DB
}

func NewPathwayRepository(db *gorm.DB) *PathwayRepository {
	return &PathwayRepository{DB: db}
}

// Insert 创建路径。若该 {user, goal} 已存在活跃路径，返回 ErrPathwayConflict。
func (r *PathwayRepository) Insert(pathway *model.Pathway) error {
	err := r.DB.Create(pathway).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrPathwayConflict
	}
	return err
}

func (r *PathwayRepository) FindByID(id string) (*model.Pathway, error) {
	var pathway model.Pathway
	err := r.DB.Where("id = ?", id).First(&pathway).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPathwayNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pathway, nil
}

func (r *PathwayRepository) FindByUser(userID uint) ([]model.Pathway, error) {
	var pathways []model.Pathway
	err := r.DB.Where("user_id = ?", userID).Order("started_at DESC").Find(&pathways).Error
	return pathways, err
}

// FindActive 查找某 {user, goal} 的未完成路径，不存在时返回 nil
func (r *PathwayRepository) FindActive(userID, goalID uint) (*model.Pathway, error) {
	var pathway model.Pathway
	err := r.DB.Where("active_key = ?", model.PathwayActiveKey(userID, goalID)).First(&pathway).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pathway, nil
}

// Save 带乐观锁的全量保存。版本不匹配说明有并发写入，调用方需重读重放。
func (r *PathwayRepository) Save(pathway *model.Pathway) error {
	current := pathway.Version
	pathway.Version = current + 1

	res := r.DB.Model(&model.Pathway{}).
		Where("id = ? AND version = ?", pathway.ID, current).
		Select("ActiveKey", "Status", "Progress", "CurrentModule", "ModuleProgress",
			"AdaptiveRecommendations", "NextGoalSuggestions", "EstimatedCompletionDate",
			"LastAccessedAt", "Version").
		Updates(pathway)
	if res.Error != nil {
		pathway.Version = current
		return res.Error
	}
	if res.RowsAffected == 0 {
		pathway.Version = current
		return util.ErrVersionConflict
	}
	return nil
}
