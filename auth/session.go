package auth

import (
	"blog/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	userIdKey = "id"

	// Cookie lifetime when the user ticks "remember me". Without it the
	// cookie expires with the browser session.
	rememberMaxAge = 30 * 86400
)

// Flash notice severities.
const (
	SeverityError   = "error"
	SeveritySuccess = "success"
)

type Flash struct {
	Severity string
	Message  string
}

type Session struct {
	sessions.Session
	store *models.Store
}

func LoadSession(c *gin.Context, store *models.Store) *Session {
	return &Session{
		Session: sessions.Default(c),
		store:   store,
	}
}

// LoginUser records the user id in the session. Only the id is stored; the
// user record itself is re-fetched on every request.
func (s *Session) LoginUser(user *models.User, remember bool) {
	s.Set(userIdKey, user.ID)
	if remember {
		s.Options(sessions.Options{Path: "/", MaxAge: rememberMaxAge})
	} else {
		s.Options(sessions.Options{Path: "/", MaxAge: 0})
	}
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

// User resolves the logged-in user, re-fetching by the stored id so checks
// always see current database state. A zero ID means no valid session.
func (s *Session) User() models.User {
	id := s.Get(userIdKey)
	if id == nil {
		return models.User{}
	}
	uid, ok := id.(uint64)
	if !ok {
		return models.User{}
	}
	user, err := s.store.GetUserByID(uid)
	if err != nil {
		return models.User{}
	}
	return user
}

// Notify queues a one-shot flash notice for the next rendered page.
func (s *Session) Notify(severity, message string) {
	s.AddFlash(message, severity)
	s.Save()
}

// Notices drains the pending flash notices, errors first.
func (s *Session) Notices() []Flash {
	notices := []Flash{}
	for _, severity := range []string{SeverityError, SeveritySuccess} {
		for _, f := range s.Flashes(severity) {
			if message, ok := f.(string); ok {
				notices = append(notices, Flash{Severity: severity, Message: message})
			}
		}
	}
	if len(notices) > 0 {
		s.Save()
	}
	return notices
}
