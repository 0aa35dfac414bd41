package database

import (
	"fmt"
	"phone_addiction_backend/internal/config"
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/util"
	"phone_addiction_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case util.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	case util.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=true&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case util.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Driver))

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}

	logger.Log.Info("Database migration completed")
	return db, nil
}

// EnsureSchema 表不存在时创建；logs 表已存在时只补齐缺失的列（默认 NULL），不改动已有数据
func EnsureSchema(db *gorm.DB) error {
	m := db.Migrator()

	for _, table := range []interface{}{&model.User{}, &model.Log{}} {
		if m.HasTable(table) {
			continue
		}
		if err := m.CreateTable(table); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, field := range model.LogOptionalColumns {
		if m.HasColumn(&model.Log{}, field) {
			continue
		}
		logger.Log.Info("[AUTO-MIGRATE] adding column to logs table", zap.String("field", field))
		if err := m.AddColumn(&model.Log{}, field); err != nil {
			return fmt.Errorf("add column %s: %w", field, err)
		}
	}

	return nil
}
