package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"heritage_backend/internal/feature/auth/domain/entity"
	"heritage_backend/internal/feature/auth/usecase"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "hp_session"

	// ContextUserID is the gin context key holding the authenticated user's ID.
	ContextUserID = "userID"
	// ContextUserName is the gin context key holding the authenticated user's display name.
	ContextUserName = "userName"

	// LoginPath is where unauthenticated requests are redirected.
	LoginPath = "/login"
)

// SessionRepository abstracts the session store.
// Following Go convention: interfaces are defined by the consumer (Manager), not the provider.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error
	// FindByID retrieves a session by its ID.
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	// Revoke marks a session as revoked.
	Revoke(ctx context.Context, id string) error
}

// Manager issues, resolves and clears browser sessions through the cookie and
// the session store. Handlers never touch ambient state: identity always flows
// through the request context set by AuthRequired.
type Manager struct {
	sessions SessionRepository
	codec    *TokenCodec
	ttl      time.Duration
}

// NewManager creates a session manager.
func NewManager(sessions SessionRepository, codec *TokenCodec, ttl time.Duration) *Manager {
	return &Manager{sessions: sessions, codec: codec, ttl: ttl}
}

// Issue creates a session for the user and sets the signed cookie.
func (m *Manager) Issue(c *gin.Context, user *entity.User) error {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.sessions.Create(c.Request.Context(), session); err != nil {
		return err
	}

	token, err := m.codec.Sign(session.ID, session.ExpiresAt)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Resolve returns the valid session for the request, or ErrSessionNotFound.
func (m *Manager) Resolve(c *gin.Context) (*entity.Session, error) {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return nil, usecase.ErrSessionNotFound
	}

	sid, err := m.codec.Parse(token)
	if err != nil {
		return nil, usecase.ErrSessionNotFound
	}

	session, err := m.sessions.FindByID(c.Request.Context(), sid)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, usecase.ErrSessionNotFound
	}
	return session, nil
}

// Clear revokes the request's session (if any) and drops the cookie.
func (m *Manager) Clear(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil {
		if sid, err := m.codec.Parse(token); err == nil {
			// Best effort: a missing record just means there is nothing to revoke.
			_ = m.sessions.Revoke(c.Request.Context(), sid)
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// AuthRequired returns a Gin middleware that restricts access to
// authenticated users. Anonymous requests are redirected to the login page;
// on success the user's ID and display name are stored in the request context.
func AuthRequired(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.Resolve(c)
		if err != nil {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUserName, session.UserName)
		c.Next()
	}
}
