package main

import (
	"flag"
	"log"
	"phone_addiction_backend/internal/app"
	"phone_addiction_backend/internal/config"
	"phone_addiction_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只补齐数据库表结构，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 表结构补齐在 NewApp 中完成
	if cfg.MigrateOnly {
		log.Println("Schema is up to date, exiting")
		return
	}

	application.Run()
}
