package router

import (
	accounthandler "account_backend/internal/feature/account/transport/handler"
	platformhandler "account_backend/internal/platform/http/handler"
	"account_backend/internal/platform/token"

	"github.com/gin-gonic/gin"
)

func NewRouter(accounts *accounthandler.AccountHandler, verifier token.Verifier) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// ログイン（セッショントークン発行）
	r.POST("/login", accounts.Login)

	// 認証必須のルート
	// token.AuthRequired ミドルウェアを適用
	// → リクエストヘッダーにセッショントークンが必要になる
	auth := r.Group("/")
	auth.Use(token.AuthRequired(verifier))
	{
		auth.POST("/users", accounts.CreateUser)
		auth.GET("/users/:id", accounts.GetUser)
		auth.GET("/users", accounts.ListUsers)
	}

	return r
}
