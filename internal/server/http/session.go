package http

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
)

// issueSession sets the session cookie for subject. Without remember the
// cookie lives only as long as the browser session; the token expires
// after the configured TTL either way.
func (s *Server) issueSession(w http.ResponseWriter, subject string, remember bool) error {
	token, err := auth.GenerateToken(subject, auth.AudienceSession, s.session.Secret, s.session.TTL)
	if err != nil {
		return err
	}

	c := &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		c.Expires = time.Now().Add(s.session.TTL)
	}
	http.SetCookie(w, c)
	return nil
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionSubject returns the signed-in subject, or "" when there is no
// valid session.
func (s *Server) sessionSubject(r *http.Request) string {
	c, err := r.Cookie(common.SessionCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	sub, err := auth.GetSubjectFromToken(c.Value, auth.AudienceSession, s.session.Secret)
	if err != nil {
		return ""
	}
	return sub
}
