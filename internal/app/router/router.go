package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"heritage_backend/internal/app/views"
	authhandler "heritage_backend/internal/feature/auth/transport/handler"
	heritagehandler "heritage_backend/internal/feature/heritage/transport/handler"
	"heritage_backend/internal/platform/http/handler"
	"heritage_backend/internal/platform/session"
)

func NewRouter(authHandler *authhandler.AuthHandler, heritage *heritagehandler.HeritageHandler,
	sessions *session.Manager, mapsDir string) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(views.Content, "templates/*.html")))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.GET("/inscription", authHandler.ShowRegister)
	r.POST("/inscription", authHandler.Register)
	// ログイン（セッション発行）
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	// ログアウト
	r.GET("/logout", authHandler.Logout)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// session.AuthRequired() ミドルウェアを適用
	// → セッションクッキーが必要になり、未認証は/loginへリダイレクト
	auth.Use(session.AuthRequired(sessions))
	{
		auth.GET("/", heritage.Index)
		auth.GET("/ajouter", heritage.ShowAdd)
		auth.POST("/ajouter", heritage.Add)
		auth.GET("/itineraire", heritage.Directions)
		// 生成済み地図ドキュメントの配信（ファイルサーバの保護のみ）
		auth.StaticFS("/maps", http.Dir(mapsDir))
	}

	return r
}
