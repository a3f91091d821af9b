// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"heritage_backend/internal/feature/auth/domain/entity"
	"heritage_backend/internal/platform/session"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定された表示名とパスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, name, password string) error
	// Login はユーザーを認証し、成功時にユーザーを返します。
	Login(ctx context.Context, name, password string) (*entity.User, error)
}

// SessionIssuer abstracts issuing and clearing browser sessions.
type SessionIssuer interface {
	// Issue creates a session for the user and sets the signed cookie.
	Issue(c *gin.Context, user *entity.User) error
	// Clear revokes the request's session and drops the cookie.
	Clear(c *gin.Context)
}

// AuthHandler は登録・ログイン・ログアウトのフォームリクエストを処理します。
type AuthHandler struct {
	auth     AuthUsecase
	sessions SessionIssuer
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewAuthHandler(auth AuthUsecase, sessions SessionIssuer) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// ShowRegister は登録フォームを表示します。
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "inscription.html", gin.H{
		"Flashes": session.PopFlashes(c),
	})
}

// Register はフォーム送信からユーザーを作成し、ログインページへリダイレクトします。
func (h *AuthHandler) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("nom_utilisateur"))
	password := c.PostForm("mot_de_passe")

	if name == "" {
		session.SetFlash(c, session.FlashError, "Le nom d'utilisateur est obligatoire.")
		c.Redirect(http.StatusSeeOther, "/inscription")
		return
	}

	if err := h.auth.Signup(c.Request.Context(), name, password); err != nil {
		// 実際のエラーは公開しない（ログのみ）
		slog.Warn("signup failed", "error", err, "name", name, "remote_addr", c.ClientIP())
		session.SetFlash(c, session.FlashError, "Inscription impossible. Le mot de passe doit contenir au moins 8 caractères.")
		c.Redirect(http.StatusSeeOther, "/inscription")
		return
	}

	slog.Info("user signup successful", "name", name, "remote_addr", c.ClientIP())
	session.SetFlash(c, session.FlashSuccess, "Compte créé. Vous pouvez vous connecter.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin はログインフォームを表示します。
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": session.PopFlashes(c),
	})
}

// Login はユーザーを認証し、セッションを発行します。
// 失敗時は未知ユーザーとパスワード誤りを区別しない汎用メッセージを返します。
func (h *AuthHandler) Login(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("nom_utilisateur"))
	password := c.PostForm("mot_de_passe")

	user, err := h.auth.Login(c.Request.Context(), name, password)
	if err != nil {
		slog.Warn("login failed", "name", name, "remote_addr", c.ClientIP())
		session.SetFlash(c, session.FlashError, "Identifiants incorrects.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.sessions.Issue(c, user); err != nil {
		slog.Error("session issue failed", "error", err, "user_id", user.ID)
		session.SetFlash(c, session.FlashError, "Connexion impossible pour le moment. Réessaie plus tard.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	session.SetFlash(c, session.FlashSuccess, "Connecté.")
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout はセッションを無効化してログインページへ戻します。
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	session.SetFlash(c, session.FlashSuccess, "Déconnecté avec succès.")
	c.Redirect(http.StatusSeeOther, "/login")
}
