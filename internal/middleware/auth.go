package middleware

import (
	"errors"
	"phone_addiction_backend/internal/config"
	"phone_addiction_backend/internal/service"
	"phone_addiction_backend/internal/util"
	"phone_addiction_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenFromRequest 优先读取 Bearer 令牌，其余 Authorization 方案忽略，回退到会话 Cookie
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func resolveClaims(c *gin.Context, cfg *config.Config, tokens service.TokenStore) (*util.Claims, error) {
	tokenString := TokenFromRequest(c, cfg.JWT.CookieName)
	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, util.ErrTokenRevoked
	}
	return claims, nil
}

func AuthMiddleware(cfg *config.Config, tokens service.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := resolveClaims(c, cfg, tokens)
		if err != nil {
			logger.Log.Debug("Rejected session", zap.Error(err), zap.String("path", c.FullPath()))
			util.Unauthorized(c, "Please login first.")
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, claims)
		c.Next()
	}
}

// TryAuthMiddleware 可选认证，令牌无效时按游客处理
func TryAuthMiddleware(cfg *config.Config, tokens service.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := resolveClaims(c, cfg, tokens); err == nil {
			c.Set(util.ContextUserKey, claims)
		}
		c.Next()
	}
}
