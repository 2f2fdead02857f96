// @title LearnPath 后端 API
// @version 1.0
// @description LearnPath 自适应学习路径平台的后端服务器。
// @termsOfService http://swagger.io/terms/

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"learnpath_backend/internal/app"
	"learnpath_backend/internal/config"
	"learnpath_backend/pkg/configwatcher"
	"learnpath_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置文件热加载
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		newCfg.ForceMigrate = cfg.ForceMigrate
		newCfg.MigrateOnly = cfg.MigrateOnly
		application.ApplyConfig(newCfg)
	})

	application.Run()
}
