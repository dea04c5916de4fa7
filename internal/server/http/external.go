package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/server/interaction"
)

func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scheme := r.URL.Query().Get("scheme")
	returnURL := r.URL.Query().Get("returnUrl")

	p, err := s.deps.Providers.Provider(scheme)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown scheme")
		return
	}

	if returnURL != "" {
		ok, err := s.deps.Login.IsValidReturnRef(ctx, returnURL)
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

	state, err := s.deps.Interactions.PutExternalState(ctx, interaction.ExternalState{Scheme: scheme, ReturnURL: returnURL})
	if err != nil {
		s.logger.Error(ctx, "store external state", "error", err)
		writeError(w, http.StatusServiceUnavailable, "login temporarily unavailable")
		return
	}

	http.Redirect(w, r, p.LoginURL(state), http.StatusFound)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scheme := r.PathValue("scheme")
	q := r.URL.Query()

	if e := q.Get("error"); e != "" {
		s.logger.Warn(ctx, "external provider returned an error", "scheme", scheme, "error", e)
		writeError(w, http.StatusUnauthorized, "external login failed")
		return
	}

	st, err := s.deps.Interactions.RedeemExternalState(ctx, q.Get("state"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusBadRequest, "invalid state")
			return
		}
		s.logger.Error(ctx, "redeem external state", "error", err)
		writeError(w, http.StatusServiceUnavailable, "login temporarily unavailable")
		return
	}
	if st.Scheme != scheme {
		writeError(w, http.StatusBadRequest, "invalid state")
		return
	}

	p, err := s.deps.Providers.Provider(scheme)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown scheme")
		return
	}

	code := q.Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing code")
		return
	}

	id, err := p.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn(ctx, "external code exchange", "scheme", scheme, "error", err)
		writeError(w, statusFor(err), "external login failed")
		return
	}

	user, err := s.deps.External.SignIn(ctx, scheme, id)
	if err != nil {
		s.logger.Warn(ctx, "external sign-in", "scheme", scheme, "error", err)
		writeError(w, statusFor(err), "external login failed")
		return
	}

	if err := s.issueSession(w, user.ID, false); err != nil {
		s.logger.Error(ctx, "issue session", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	target := st.ReturnURL
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusFound)
}
