package service

import (
	"errors"
	"fmt"
	"phone_addiction_backend/internal/config"
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/repository"
	"phone_addiction_backend/internal/util"
	"phone_addiction_backend/pkg/logger"
	"phone_addiction_backend/pkg/monitoring"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register 用户名按存储时的大小写判断是否重复
func (s *AuthService) Register(username, password string) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, util.ErrMissingFields
	}

	_, err := s.UserRepo.FindByUsername(username)
	if err == nil {
		return 0, util.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &model.User{Username: username, Password: hashed}
	if err := s.UserRepo.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Authenticate 忽略大小写查找用户。明文旧密码校验通过后会先升级为 bcrypt 再返回成功。
func (s *AuthService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.UserRepo.FindByUsernameFold(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.LoginsTotal.WithLabelValues("not_found").Inc()
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	ok, err := util.CheckPassword(user.Password, password)
	if err != nil {
		logger.Log.Warn("Stored credential could not be verified", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	if !ok {
		monitoring.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, util.ErrInvalidCredentials
	}

	if util.DetectCredential(user.Password) == util.CredentialPlaintext {
		hashed, err := util.HashPassword(password)
		if err != nil {
			return nil, err
		}
		if err := s.UserRepo.UpdatePassword(user.ID, hashed); err != nil {
			return nil, fmt.Errorf("upgrade legacy credential: %w", err)
		}
		user.Password = hashed
		logger.Log.Info("Upgraded legacy plaintext credential", zap.Uint("user_id", user.ID))
	}

	monitoring.LoginsTotal.WithLabelValues("success").Inc()
	return user, nil
}

// Login 认证并签发会话令牌
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	user, err := s.Authenticate(username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
