package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizgate/quizgate/internal/bank"
	"github.com/quizgate/quizgate/internal/quiz"
)

// CreateSessionHandler starts a quiz attempt: re-reads the bank, derives a
// working set per the requested mode/limit, and returns the session ID with
// the first question. The bank is read fresh on every session so file edits
// and re-imports take effect without a restart.
func CreateSessionHandler(src bank.Source, store *quiz.Store, defaultMode quiz.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mode  string `json:"mode"`
			Limit int    `json:"limit"`
		}
		// An empty body means defaults; malformed JSON does not.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "bad json", 400)
			return
		}
		qs, err := loadBank(r.Context(), src)
		if err != nil {
			http.Error(w, "question bank unavailable", http.StatusServiceUnavailable)
			return
		}
		mode := defaultMode
		if req.Mode != "" {
			mode = quiz.ParseMode(req.Mode)
		}
		limit := req.Limit
		if limit < 0 {
			limit = 0
		}
		id, sess, err := store.Create(qs, mode, limit)
		if err != nil {
			// Only ErrNoQuestions can happen here: the bank parsed to
			// nothing, which is a data problem, not a session.
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, sessionView(id, sess))
	}
}

// GetSessionHandler returns the current state of a session.
func GetSessionHandler(store *quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, store, func(id string, s *quiz.Session) (any, error) {
			return sessionView(id, s), nil
		})
	}
}

// AnswerHandler records the chosen option for the active question.
func AnswerHandler(store *quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Option string `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		withSession(w, r, store, func(id string, s *quiz.Session) (any, error) {
			if err := s.Select(req.Option); err != nil {
				return nil, err
			}
			return sessionView(id, s), nil
		})
	}
}

// ConfirmHandler scores the selection and reveals the correct answer.
func ConfirmHandler(store *quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, store, func(id string, s *quiz.Session) (any, error) {
			if _, err := s.Confirm(); err != nil {
				return nil, err
			}
			return sessionView(id, s), nil
		})
	}
}

// AdvanceHandler moves to the next question or finishes the session.
func AdvanceHandler(store *quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, store, func(id string, s *quiz.Session) (any, error) {
			if err := s.Advance(); err != nil {
				return nil, err
			}
			return sessionView(id, s), nil
		})
	}
}

// ResetSessionHandler restarts the attempt over a freshly re-read, freshly
// shuffled bank, keeping the session ID.
func ResetSessionHandler(src bank.Source, store *quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := loadBank(r.Context(), src)
		if err != nil {
			http.Error(w, "question bank unavailable", http.StatusServiceUnavailable)
			return
		}
		withSession(w, r, store, func(id string, s *quiz.Session) (any, error) {
			if err := s.ResetWith(qs); err != nil {
				return nil, err
			}
			return sessionView(id, s), nil
		})
	}
}

// DeleteSessionHandler discards a session (the "navigate away" path).
func DeleteSessionHandler(store *quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Delete(chi.URLParam(r, "sessionID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func withSession(w http.ResponseWriter, r *http.Request, store *quiz.Store, fn func(string, *quiz.Session) (any, error)) {
	id := chi.URLParam(r, "sessionID")
	var out any
	err := store.With(id, func(s *quiz.Session) error {
		v, err := fn(id, s)
		out = v
		return err
	})
	switch {
	case err == nil:
		writeJSON(w, out)
	case errors.Is(err, quiz.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, quiz.ErrNoQuestions):
		// A reset against a bank that now parses to nothing.
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		// Engine guard violations: wrong state for the requested action.
		http.Error(w, err.Error(), http.StatusConflict)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
