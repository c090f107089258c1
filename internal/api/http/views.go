package http

import "github.com/quizgate/quizgate/internal/quiz"

type questionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type resultView struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

type summaryView struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type view struct {
	SessionID string        `json:"session_id"`
	Mode      quiz.Mode     `json:"mode"`
	Index     int           `json:"index"` // 0-based position in the working set
	Total     int           `json:"total"`
	Score     int           `json:"score"`
	Finished  bool          `json:"finished"`
	Question  *questionView `json:"question,omitempty"`
	Selected  string        `json:"selected,omitempty"`
	Result    *resultView   `json:"result,omitempty"`
	Summary   *summaryView  `json:"summary,omitempty"`
}

// sessionView renders client-facing session state. The correct answer is
// only present once the current question's result is shown; until then the
// client sees prompt and options alone.
func sessionView(id string, s *quiz.Session) view {
	v := view{
		SessionID: id,
		Mode:      s.Mode(),
		Index:     s.Index(),
		Total:     s.Total(),
		Score:     s.Score(),
		Finished:  s.Finished(),
	}
	if sel, ok := s.Selected(); ok {
		v.Selected = sel
	}
	if cur, ok := s.Current(); ok {
		v.Question = &questionView{Prompt: cur.Prompt, Options: cur.Options}
		if s.ResultShown() {
			log := s.Answers()
			v.Result = &resultView{Correct: log[len(log)-1], Answer: cur.Answer}
		}
	}
	if s.Finished() {
		v.Summary = &summaryView{Score: s.Score(), Total: s.Total(), Percentage: s.Percentage()}
	}
	return v
}
