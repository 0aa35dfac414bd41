package controller

import (
	"errors"
	"net/http"
	"phone_addiction_backend/internal/config"
	"phone_addiction_backend/internal/service"
	"phone_addiction_backend/internal/util"
	"phone_addiction_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService *service.AuthService
	Tokens      service.TokenStore
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, tokens service.TokenStore, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Tokens:      tokens,
		Cfg:         cfg,
	}
}

// CredentialsRequest 支持表单与 JSON
type CredentialsRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

var credentialFields = gin.H{"fields": []string{"username", "password"}}

// RegisterForm GET /register
func (c *AuthController) RegisterForm(ctx *gin.Context) {
	util.Success(ctx, credentialFields)
}

// Register POST /register
func (c *AuthController) Register(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.AuthService.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingFields):
			util.BadRequest(ctx, "All fields are required.")
		case errors.Is(err, util.ErrDuplicateUsername):
			util.Conflict(ctx, "Username already exists.")
		case errors.Is(err, util.ErrStorageUnavailable):
			util.LogStorageError(ctx, err)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": id, "message": "Registration successful. Please login."})
}

// LoginForm GET /login
func (c *AuthController) LoginForm(ctx *gin.Context) {
	util.Success(ctx, credentialFields)
}

// Login POST /login，未知用户与密码错误返回同一提示
func (c *AuthController) Login(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrInvalidCredentials):
			util.Unauthorized(ctx, "Invalid credentials.")
		case errors.Is(err, util.ErrStorageUnavailable):
			util.LogStorageError(ctx, err)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Cfg.JWT.CookieName, token, int(c.Cfg.JWT.ExpireTime.Seconds()), "/", "", c.Cfg.Server.Mode == "release", true)

	util.Success(ctx, gin.H{
		"token":    token,
		"id":       user.ID,
		"username": user.Username,
		"message":  "Login successful.",
	})
}

// Logout GET /logout，注销当前令牌并清除 Cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		if err := c.Tokens.Revoke(ctx.Request.Context(), claims.ID, claims.TTL()); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		logger.Log.Debug("Session revoked", zap.Uint("user_id", claims.UserID))
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Cfg.JWT.CookieName, "", -1, "/", "", c.Cfg.Server.Mode == "release", true)
	util.Success(ctx, gin.H{"message": "Logged out successfully."})
}
