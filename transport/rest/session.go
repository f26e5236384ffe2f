package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "user_session"

// sessionID returns the id from the session cookie, issuing a new id when the
// request has none or carries a malformed one. The cookie is written on every
// request so it expires together with the stored match.
func (that *handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	id := ""
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			id = cookie.Value
		}
	}

	if id == "" {
		id = uuid.NewString()
		that.logger.Debug("session cookie not found, new one created", "sessionID", id)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(that.sessionTTL),
		MaxAge:   int(that.sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
