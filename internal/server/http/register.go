package http

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/idgateway/internal/server/services"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, registrationResponse{Errors: []string{"invalid request body"}})
		return
	}

	user, v, err := s.deps.Registration.Register(ctx, in)
	if err != nil {
		s.logger.Error(ctx, "register", "error", err)
		writeError(w, statusFor(err), "registration failed")
		return
	}
	if !v.OK() {
		writeJSON(w, http.StatusBadRequest, registrationResponse{Errors: v.Messages()})
		return
	}

	if err := s.issueSession(w, user.ID, false); err != nil {
		s.logger.Error(ctx, "issue session", "error", err)
	}

	writeJSON(w, http.StatusCreated, registrationResponse{IsSuccessfulRegistration: true})
}
