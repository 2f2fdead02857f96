// 学习目标资源补全脚本
//
// 为历史数据中缺少 ID 或时长的模块资源补齐默认值：
// 缺失的资源 ID 用 UUID 回填，时长为 0 的资源按类型给出保守估计。
//
// 用法: go run scripts/enrich_resources.go

package main

import (
	"log"
	"os"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"learnpath_backend/pkg/database"
	"learnpath_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

// 按资源类型的默认时长（小时）
var defaultDurations = map[model.ResourceType]float64{
	model.ResourceVideo:   0.5,
	model.ResourceArticle: 0.5,
	model.ResourceBook:    8,
	model.ResourceCourse:  4,
	model.ResourceUseCase: 1,
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var goals []model.LearningGoal
	if err := db.Find(&goals).Error; err != nil {
		log.Fatalf("读取学习目标失败: %v", err)
	}

	updated := 0
	for i := range goals {
		goal := &goals[i]
		changed := false

		for m := range goal.Modules {
			for r := range goal.Modules[m].Resources {
				res := &goal.Modules[m].Resources[r]
				if res.ID == "" {
					res.ID = model.GenerateUUID()
					changed = true
				}
				if res.Duration <= 0 {
					if d, ok := defaultDurations[res.Type]; ok {
						res.Duration = d
						changed = true
					}
				}
			}
		}

		if changed {
			if err := db.Save(goal).Error; err != nil {
				log.Fatalf("保存学习目标 %d 失败: %v", goal.ID, err)
			}
			updated++
		}
	}

	log.Printf("完成！共更新 %d/%d 个学习目标", updated, len(goals))
}
