package quiz

import (
	"fmt"
	"strings"
)

// Parse converts the raw semicolon-delimited bank text into questions.
// Each line is "prompt;option;...;option;answer": first field is the prompt,
// last is the correct answer, everything between is the option list. Lines
// with fewer than three fields are dropped silently. Records whose answer is
// absent from the options, or whose options repeat, are kept and reported as
// diagnostics.
//
// Parse is pure: it reads text, returns records in input-line order, and
// touches nothing else.
func Parse(text string) ([]Question, []Diagnostic) {
	text = strings.ReplaceAll(text, "\r", "")
	lines := strings.Split(text, "\n")

	var qs []Question
	var diags []Diagnostic
	for i, line := range lines {
		parts := strings.Split(line, ";")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 3 {
			continue
		}
		q := Question{
			Prompt:  parts[0],
			Options: parts[1 : len(parts)-1],
			Answer:  parts[len(parts)-1],
		}
		if !contains(q.Options, q.Answer) {
			diags = append(diags, Diagnostic{
				Line:     i + 1,
				Kind:     DiagAnswerMissing,
				Question: q.Prompt,
				Detail:   fmt.Sprintf("answer %q not among %d options", q.Answer, len(q.Options)),
			})
		}
		if dup, ok := firstDuplicate(q.Options); ok {
			diags = append(diags, Diagnostic{
				Line:     i + 1,
				Kind:     DiagDuplicateOption,
				Question: q.Prompt,
				Detail:   fmt.Sprintf("option %q appears more than once", dup),
			})
		}
		qs = append(qs, q)
	}
	return qs, diags
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

func firstDuplicate(ss []string) (string, bool) {
	seen := make(map[string]bool, len(ss))
	for _, s := range ss {
		if seen[s] {
			return s, true
		}
		seen[s] = true
	}
	return "", false
}
