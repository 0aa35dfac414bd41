package repository

import (
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create 用户名唯一约束区分大小写，冲突时返回 ErrDuplicateUsername
func (r *UserRepository) Create(user *model.User) error {
	if err := r.DB.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return util.ErrDuplicateUsername
		}
		return storageErr(err)
	}
	return nil
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, storageErr(err)
}

// FindByUsername 精确匹配
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, storageErr(err)
}

// FindByUsernameFold 忽略大小写匹配，存在多条时取 id 最小的一条
func (r *UserRepository) FindByUsernameFold(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("LOWER(username) = LOWER(?)", username).Order("id ASC").First(&user).Error
	return &user, storageErr(err)
}

func (r *UserRepository) UpdatePassword(userID uint, password string) error {
	return storageErr(r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", password).
		Error)
}
