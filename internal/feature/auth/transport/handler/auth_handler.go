// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"loginform/internal/feature/auth/domain/entity"
	"loginform/internal/feature/auth/transport/http/dto"
	"loginform/internal/feature/auth/usecase"
	jwtmw "loginform/internal/platform/jwt"
)

// レスポンスメッセージ。
const (
	msgRegistered         = "User registered successfully"
	msgLoginSuccessful    = "Login successful"
	msgAuthenticated      = "Authenticated"
	errMissingCredentials = "Email and password are required"
	errUserExists         = "User already exists"
	errWeakPassword       = "Password must be at least 8 characters long"
	errInvalidCredentials = "Invalid credentials"
	errInvalidToken       = "invalid token"
	errInternal           = "internal server error"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - 必須フィールド欠落・重複・弱いパスワードは400を返却
// - 成功時は201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: errMissingCredentials})
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusCreated, dto.MessageRes{Message: msgRegistered})
	case errors.Is(err, usecase.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: errMissingCredentials})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("register rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: errUserExists})
	case errors.Is(err, usecase.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: errWeakPassword})
	default:
		slog.Error("register failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: errInternal})
	}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 必須フィールド欠落時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はアクセストークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: errMissingCredentials})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, dto.LoginRes{Message: msgLoginSuccessful, AccessToken: token})
	case errors.Is(err, usecase.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: errMissingCredentials})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		// ユーザー列挙攻撃を防止するため、詳細は公開しない
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: errInvalidCredentials})
	default:
		slog.Error("login failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: errInternal})
	}
}

// Profile は認証済みユーザーのプロフィールを返します。
// jwtmw.AuthRequiredミドルウェアの後段で使用します。
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: errInvalidToken})
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: errInvalidToken})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: errInternal})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileRes{Message: msgAuthenticated, Email: user.Email})
}
