package http

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "github.com/ydx-lana/assessad/internal/auth/middleware"
	"github.com/ydx-lana/assessad/internal/session"
)

// sessionFor resolves the caller's live session from the token subject.
func sessionFor(m *session.Manager, r *http.Request) (*session.Session, error) {
	ctx := r.Context()
	return m.Session(ctx, authmw.SubjectFromContext(ctx), authmw.UsernameFromContext(ctx))
}

// writeSessionError maps session errors onto HTTP statuses. Contract
// violations are the caller's fault; persistence failures are retryable.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrMediaNotAcked),
		errors.Is(err, session.ErrAlreadyAnswered),
		errors.Is(err, session.ErrItemIncomplete):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, session.ErrUnknownQuestion),
		errors.Is(err, session.ErrInvalidRating):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, session.ErrPersistence):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GET /session
func SessionViewHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessionFor(m, r)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(s.View())
	}
}

// POST /session/media-ack
func MediaAckHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessionFor(m, r)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		s.AcknowledgeMedia()
		_ = json.NewEncoder(w).Encode(s.View())
	}
}

// POST /session/answers  { "question_id": 3, "rating": 4 }
func SubmitAnswerHandler(m *session.Manager) http.HandlerFunc {
	type resp struct {
		Feedback session.Feedback `json:"feedback"`
		View     session.View     `json:"view"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuestionID int `json:"question_id"`
			Rating     int `json:"rating"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := sessionFor(m, r)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		fb, err := s.SubmitAnswer(r.Context(), req.QuestionID, req.Rating)
		if err != nil && !errors.Is(err, session.ErrPersistence) {
			writeSessionError(w, err)
			return
		}
		// On ErrPersistence the answer is scored and locked in; report the
		// feedback and let the next request retry the write.
		_ = json.NewEncoder(w).Encode(resp{Feedback: fb, View: s.View()})
	}
}

// POST /session/advance
func AdvanceHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessionFor(m, r)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		if err := s.Advance(r.Context()); err != nil {
			writeSessionError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(s.View())
	}
}

// POST /session/signout
func SignOutHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.Drop(authmw.SubjectFromContext(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}
}
