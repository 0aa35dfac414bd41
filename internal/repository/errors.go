package repository

import (
	"errors"
	"fmt"
	"phone_addiction_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

// storageErr 将驱动层错误统一包装为 ErrStorageUnavailable，记录不存在除外
func storageErr(err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate")
}
