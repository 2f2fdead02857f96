package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrPermissionDenied = errors.New("permission denied")

	ErrProfileNotFound  = errors.New("learner profile not found")
	ErrGoalNotFound     = errors.New("learning goal not found")
	ErrPathwayNotFound  = errors.New("pathway not found")
	ErrModuleLocked     = errors.New("module is locked")
	ErrPathwayConflict  = errors.New("an active pathway already exists for this goal")
	ErrPathwayCompleted = errors.New("pathway already completed")
	ErrVersionConflict  = errors.New("pathway was modified concurrently")
	ErrCategoryNotFound = errors.New("question category not found")
)
