package repository

import (
	"phone_addiction_backend/internal/model"

	"gorm.io/gorm"
)

// LogRepository 按用户划分、只追加的提交记录存储
type LogRepository struct {
	DB *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{DB: db}
}

// Append 单行插入，依赖数据库自身的原子性
func (r *LogRepository) Append(log *model.Log) (uint, error) {
	if err := r.DB.Create(log).Error; err != nil {
		return 0, storageErr(err)
	}
	return log.ID, nil
}

// ListForUser 按 id 倒序返回，没有记录时返回空切片
func (r *LogRepository) ListForUser(userID uint) ([]model.Log, error) {
	logs := []model.Log{}
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&logs).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return logs, nil
}
