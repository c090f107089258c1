package quiz

import "strings"

// Question is one record of the bank: a prompt, its answer options, and the
// text of the correct option. Answer is matched by string equality, never by
// position, so shuffling Options does not invalidate it.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// DiagnosticKind classifies a non-fatal data-quality finding.
type DiagnosticKind string

const (
	// The stated correct answer does not appear among the options. The
	// record is kept but is unwinnable.
	DiagAnswerMissing DiagnosticKind = "answer_missing"
	// Two options share the same text; equality-based scoring cannot tell
	// them apart. Kept as-is, never deduplicated.
	DiagDuplicateOption DiagnosticKind = "duplicate_option"
)

// Diagnostic is a logged-only signal attached to a parsed record. It never
// alters control flow.
type Diagnostic struct {
	Line     int            `json:"line"` // 1-based line number in the source
	Kind     DiagnosticKind `json:"kind"`
	Question string         `json:"question"`
	Detail   string         `json:"detail,omitempty"`
}

// Mode selects what gets shuffled when the working set is derived.
type Mode string

const (
	ModeSequential     Mode = "sequential"
	ModeShuffle        Mode = "shuffle-questions"
	ModeShuffleOptions Mode = "shuffle-questions-and-options"
)

// ParseMode normalizes external input to a Mode. Unrecognized values fall
// back to sequential rather than failing. The legacy web client's names are
// accepted too.
func ParseMode(s string) Mode {
	switch Mode(strings.TrimSpace(s)) {
	case ModeShuffle:
		return ModeShuffle
	case ModeShuffleOptions:
		return ModeShuffleOptions
	case "random":
		return ModeShuffle
	case "super-random":
		return ModeShuffleOptions
	default:
		return ModeSequential
	}
}
