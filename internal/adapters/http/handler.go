// Package httpadapter exposes the bot over HTTP: the Twilio messaging
// webhook plus a health endpoint. Inbound messages arrive form-encoded
// (Body/From/ProfileName); replies go back as TwiML.
package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thalaconnect/bloodbot/internal/app/conversation"
	"github.com/thalaconnect/bloodbot/internal/domain"
	"github.com/thalaconnect/bloodbot/internal/observability"
)

type Server struct {
	svc *conversation.Service
}

func NewServer(svc *conversation.Service) http.Handler {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withLogging)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/webhook", s.handleWebhook)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "unable to parse form data", http.StatusBadRequest)
		return
	}

	from := r.FormValue("From")
	if from == "" {
		http.Error(w, "From is required", http.StatusBadRequest)
		return
	}

	profileName := r.FormValue("ProfileName")
	if profileName == "" {
		profileName = "Friend"
	}

	in := conversation.TurnInput{
		From:        domain.ConversationID(from),
		ProfileName: profileName,
		Body:        r.FormValue("Body"),
	}

	log := observability.LoggerFromContext(r.Context())
	log.Info("inbound message", "from", from, "profile_name", profileName)

	out := s.svc.HandleTurn(r.Context(), in)

	writeTwiML(w, out.Reply)
}
