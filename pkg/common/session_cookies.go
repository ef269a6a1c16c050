package common

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/petsisters/sitter-finder/pkg/tracking"
)

const sessionCookieName = "sid"

func cookieDomain(r *http.Request) string {
	host := strings.TrimPrefix(r.Host, ".")
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionId,
		Domain:   cookieDomain(r),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   2592000,
		Path:     "/",
	})
}

// HandleSessionCookie resolves the visitor's session id, minting and
// setting a fresh one when the cookie is missing. New sessions are
// reported to tracking when configured.
func HandleSessionCookie(trk tracking.Tracking, w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err == nil && c.Value != "" {
		return c.Value
	}
	sessionId := uuid.NewString()
	if trk != nil {
		go func() {
			_ = trk.TrackSession(sessionId, r)
		}()
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
