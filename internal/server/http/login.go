package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/idgateway/internal/common"
)

type loginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	RememberLogin bool   `json:"rememberLogin"`
	ReturnURL     string `json:"returnUrl"`
}

// handleLoginPage answers with the login decision, or redirects straight to
// the external challenge when a single external provider is the only way in.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	returnURL := r.URL.Query().Get("returnUrl")

	d, err := s.deps.Login.Resolve(r.Context(), returnURL)
	if err != nil {
		s.logger.Error(r.Context(), "resolve login", "error", err)
		writeError(w, http.StatusServiceUnavailable, "login temporarily unavailable")
		return
	}

	if d.IsExternalOnly() {
		q := url.Values{}
		q.Set("scheme", d.ExternalLoginScheme())
		if returnURL != "" {
			q.Set("returnUrl", returnURL)
		}
		http.Redirect(w, r, "/external/challenge?"+q.Encode(), http.StatusFound)
		return
	}

	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := s.deps.Login.Resolve(ctx, req.ReturnURL)
	if err != nil {
		s.logger.Error(ctx, "resolve login", "error", err)
		writeError(w, http.StatusServiceUnavailable, "login temporarily unavailable")
		return
	}
	if !d.AllowLocal {
		writeError(w, http.StatusForbidden, "local login is not allowed")
		return
	}

	if req.ReturnURL != "" {
		ok, err := s.deps.Login.IsValidReturnRef(ctx, req.ReturnURL)
		if err != nil {
			s.logger.Error(ctx, "check return url", "error", err)
			writeError(w, http.StatusServiceUnavailable, "login temporarily unavailable")
			return
		}
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid return URL")
			return
		}
	}

	user, v, err := s.deps.Login.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, "authenticate", "error", err)
		writeError(w, http.StatusServiceUnavailable, "login temporarily unavailable")
		return
	}
	if !v.OK() {
		writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: v.Errors, ReturnURL: req.ReturnURL})
		return
	}

	if err := s.issueSession(w, user.ID, req.RememberLogin && d.AllowRemember); err != nil {
		s.logger.Error(ctx, "issue session", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(ctx, "user signed in", "user_id", user.ID)

	if req.ReturnURL == "" {
		writeJSON(w, http.StatusOK, signedInResponse{Subject: user.ID})
		return
	}
	http.Redirect(w, r, req.ReturnURL, http.StatusFound)
}

// handleLogout always clears the session. It returns to the client's
// post-logout URI when the engine recorded one for logoutId.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sub := s.sessionSubject(r); sub != "" {
		s.logger.Info(ctx, "user signed out", "user_id", sub)
	}
	s.clearSession(w)

	target := "/"
	if id := r.URL.Query().Get("logoutId"); id != "" {
		lc, err := s.deps.Interactions.RedeemLogout(ctx, id)
		switch {
		case err == nil:
			if lc.PostLogoutRedirectURI != "" {
				target = lc.PostLogoutRedirectURI
			}
		case errors.Is(err, common.ErrorNotFound):
		default:
			s.logger.Warn(ctx, "redeem logout context", "error", err)
		}
	}

	http.Redirect(w, r, target, http.StatusFound)
}
