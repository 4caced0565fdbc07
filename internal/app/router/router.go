// Package router builds the gin engines for both binaries.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "loginform/internal/feature/auth/transport/handler"
	formhandler "loginform/internal/feature/loginform/transport/handler"
	"loginform/internal/platform/http/handler"
	jwtmw "loginform/internal/platform/jwt"
)

// NewWebRouter はログインページを配信するルーターを生成します。
func NewWebRouter(form *formhandler.FormHandler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(formhandler.Templates())

	// 導通確認用
	r.GET("/healthz", handler.Health("loginform-web"))
	// ログインページ
	r.GET("/", form.Show)
	r.POST("/", form.Submit)
	// 同じフォームコントローラーのJSON版
	r.POST("/api/login", form.SubmitJSON)

	return r
}

// NewAuthRouter は認証APIのルーターを生成します。
func NewAuthRouter(auth *authhandler.AuthHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 認証不要
	r.GET("/healthz", handler.Health("loginform-auth"))
	r.POST("/register", auth.Register)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)

	// 認証必須のルート
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired(jwtSecret))
	{
		authed.GET("/profile", auth.Profile)
	}

	return r
}
