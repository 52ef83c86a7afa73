// Package services bridges the store into the session concept: login,
// logout and the per-request current identity.
package services

import (
	"errors"
	"net/http"

	"github.com/Lucifer06sai/saiflix/config"
	"github.com/Lucifer06sai/saiflix/models"
	"github.com/Lucifer06sai/saiflix/store"

	"github.com/gorilla/sessions"
)

const sessionName = "saiflix-session"

var (
	// ErrInvalidCredentials covers every login failure. Callers must not be
	// able to tell a wrong password from an unknown or inactive account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession means the request carries no usable session identity.
	ErrNoSession = errors.New("no session identity")
)

type AuthService struct {
	store    *store.Store
	sessions *sessions.CookieStore
}

func NewAuthService(st *store.Store, cfg *config.Config) *AuthService {
	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &AuthService{
		store:    st,
		sessions: cookieStore,
	}
}

// Login validates the credentials, stamps last-login and establishes the
// session identity. Returns ErrInvalidCredentials for every failure mode.
func (a *AuthService) Login(w http.ResponseWriter, r *http.Request, username, password string) (models.SessionUser, error) {
	user, ok := a.store.ValidateLogin(username, password)
	if !ok {
		return models.SessionUser{}, ErrInvalidCredentials
	}

	a.store.UpdateUserLastLogin(user.ID)

	// Get returns a fresh session even when an old cookie fails to decode,
	// so the error is not fatal here.
	session, _ := a.sessions.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		return models.SessionUser{}, err
	}

	return user.SessionIdentity(), nil
}

// Logout clears the session identity. Idempotent: logging out without a
// session is not an error.
func (a *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := a.sessions.Get(r, sessionName)
	if err != nil {
		return
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	session.Save(r, w)
}

// CurrentUser resolves the request's session identity against the store.
func (a *AuthService) CurrentUser(r *http.Request) (models.SessionUser, error) {
	session, err := a.sessions.Get(r, sessionName)
	if err != nil {
		return models.SessionUser{}, ErrNoSession
	}

	raw, ok := session.Values["user_id"]
	if !ok {
		return models.SessionUser{}, ErrNoSession
	}

	var userID int
	switch v := raw.(type) {
	case int:
		userID = v
	case int64:
		userID = int(v)
	default:
		return models.SessionUser{}, ErrNoSession
	}

	user, ok := a.store.UserByID(userID)
	if !ok {
		return models.SessionUser{}, ErrNoSession
	}

	return user.SessionIdentity(), nil
}
