package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/quizgate/quizgate/internal/bank"
	"github.com/quizgate/quizgate/internal/quiz"
)

// QuestionsHandler serves the parsed bank as {"questions":[...]}. On any
// source failure the body is an empty list with a 500, never a crash, so the
// client can show its "cannot load" screen.
func QuestionsHandler(src bank.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		qs, err := loadBank(r.Context(), src)
		if err != nil {
			log.Printf("question bank unavailable: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(questionsResponse{Questions: []quiz.Question{}})
			return
		}
		_ = json.NewEncoder(w).Encode(questionsResponse{Questions: qs})
	}
}

type questionsResponse struct {
	Questions []quiz.Question `json:"questions"`
}

// loadBank fetches and parses the bank, logging data-quality diagnostics.
// Diagnostics never block a load.
func loadBank(ctx context.Context, src bank.Source) ([]quiz.Question, error) {
	text, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	qs, diags := quiz.Parse(text)
	for _, d := range diags {
		log.Printf("question bank line %d (%s): %s", d.Line, d.Kind, d.Detail)
	}
	return qs, nil
}
