package quiz

import (
	"errors"
	"math"
	"math/rand"
	"strings"
)

var (
	ErrNoQuestions      = errors.New("no questions available")
	ErrFinished         = errors.New("session already finished")
	ErrNoSelection      = errors.New("no answer selected")
	ErrAlreadyConfirmed = errors.New("answer already confirmed")
	ErrResultShown      = errors.New("result already shown, advance first")
	ErrNoResult         = errors.New("no result shown yet")
)

// Session drives one quiz attempt over a working set derived from the loaded
// bank. Each question walks Unanswered -> Answered -> ResultShown; advancing
// past the last question finishes the session. All state changes go through
// the methods below, there is no partial mutation for a UI to drift against.
type Session struct {
	mode  Mode
	limit int
	rng   *rand.Rand

	source []Question // ground truth for resets, never reordered

	ws          []Question
	cur         int
	selected    string
	hasSelected bool
	resultShown bool
	answers     []bool
	score       int
	finished    bool
}

// NewSession derives a working set from qs per mode and limit and starts at
// question zero. A zero-question quiz is rejected; the caller surfaces that
// as a bank problem, not a session.
func NewSession(qs []Question, mode Mode, limit int, rng *rand.Rand) (*Session, error) {
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}
	if limit < 0 {
		limit = 0
	}
	s := &Session{
		mode:   mode,
		limit:  limit,
		rng:    rng,
		source: qs,
	}
	s.restart(qs)
	return s, nil
}

func (s *Session) restart(src []Question) {
	s.source = src
	s.ws = BuildWorkingSet(src, s.mode, s.limit, s.rng)
	s.cur = 0
	s.selected = ""
	s.hasSelected = false
	s.resultShown = false
	s.answers = make([]bool, 0, len(s.ws))
	s.score = 0
	s.finished = false
}

// Select records the option chosen for the active question. It does not
// score; Confirm does.
func (s *Session) Select(option string) error {
	if s.finished {
		return ErrFinished
	}
	if s.resultShown {
		return ErrResultShown
	}
	s.selected = trim(option)
	s.hasSelected = true
	return nil
}

// Confirm scores the current selection against the correct answer by exact
// string equality and shows the result. Calling it again before Advance is
// rejected, so a double click cannot double-count.
func (s *Session) Confirm() (bool, error) {
	if s.finished {
		return false, ErrFinished
	}
	if s.resultShown {
		return false, ErrAlreadyConfirmed
	}
	if !s.hasSelected {
		return false, ErrNoSelection
	}
	correct := s.selected == trim(s.ws[s.cur].Answer)
	s.answers = append(s.answers, correct)
	if correct {
		s.score++
	}
	s.resultShown = true
	return correct, nil
}

// Advance moves to the next question, or finishes the session when the
// current question was the last. Only valid while a result is shown.
func (s *Session) Advance() error {
	if s.finished {
		return ErrFinished
	}
	if !s.resultShown {
		return ErrNoResult
	}
	if s.cur == len(s.ws)-1 {
		s.finished = true
		return nil
	}
	s.cur++
	s.selected = ""
	s.hasSelected = false
	s.resultShown = false
	return nil
}

// Reset starts the attempt over with a freshly derived (and, in the shuffle
// modes, freshly shuffled) working set from the questions last loaded.
func (s *Session) Reset() {
	s.restart(s.source)
}

// ResetWith is Reset over a re-read bank, for callers that reload the source
// on every retry.
func (s *Session) ResetWith(qs []Question) error {
	if len(qs) == 0 {
		return ErrNoQuestions
	}
	s.restart(qs)
	return nil
}

// Current returns the active question. The second result is false once the
// session is finished.
func (s *Session) Current() (Question, bool) {
	if s.finished {
		return Question{}, false
	}
	return s.ws[s.cur], true
}

func (s *Session) Mode() Mode        { return s.mode }
func (s *Session) Index() int        { return s.cur }
func (s *Session) Total() int        { return len(s.ws) }
func (s *Session) Score() int        { return s.score }
func (s *Session) Finished() bool    { return s.finished }
func (s *Session) ResultShown() bool { return s.resultShown }

// Answers is a copy of the per-question correctness log.
func (s *Session) Answers() []bool {
	out := make([]bool, len(s.answers))
	copy(out, s.answers)
	return out
}

// Selected reports the currently chosen option, if any.
func (s *Session) Selected() (string, bool) {
	return s.selected, s.hasSelected
}

// Percentage is the final (or running) score as a whole percent of the
// working set, rounded half away from zero. The working set is never empty
// while a Session exists.
func (s *Session) Percentage() int {
	return int(math.Round(100 * float64(s.score) / float64(len(s.ws))))
}

// trim applies the same whitespace discipline the parser applies to fields,
// so a client echoing an option back with stray padding still matches.
func trim(s string) string { return strings.TrimSpace(s) }
