package quiz_test

import (
	"reflect"
	"testing"

	"github.com/quizgate/quizgate/internal/quiz"
)

func TestParseLine(t *testing.T) {
	qs, diags := quiz.Parse("Q;A;B;C;B")
	if len(qs) != 1 {
		t.Fatalf("got %d records, want 1", len(qs))
	}
	want := quiz.Question{Prompt: "Q", Options: []string{"A", "B", "C"}, Answer: "B"}
	if !reflect.DeepEqual(qs[0], want) {
		t.Errorf("got %+v, want %+v", qs[0], want)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %+v", diags)
	}
}

func TestParseTrimsFieldsAndCarriageReturns(t *testing.T) {
	qs, _ := quiz.Parse(" Q ; A ;B ; A \r\n")
	if len(qs) != 1 {
		t.Fatalf("got %d records, want 1", len(qs))
	}
	want := quiz.Question{Prompt: "Q", Options: []string{"A", "B"}, Answer: "A"}
	if !reflect.DeepEqual(qs[0], want) {
		t.Errorf("got %+v, want %+v", qs[0], want)
	}
}

func TestParseDropsMalformedLinesKeepsOrder(t *testing.T) {
	text := "Q1;A;B;A\n" +
		"just a note\n" + // 1 field
		"Q2;yes\n" + // 2 fields
		"Q3;X;Y;Z;Y\n" +
		"\n" + // blank
		"Q4;1;2;3;4;4\n"
	qs, _ := quiz.Parse(text)
	if len(qs) != 3 {
		t.Fatalf("got %d records, want 3", len(qs))
	}
	prompts := []string{qs[0].Prompt, qs[1].Prompt, qs[2].Prompt}
	if !reflect.DeepEqual(prompts, []string{"Q1", "Q3", "Q4"}) {
		t.Errorf("order wrong: %v", prompts)
	}
	if !reflect.DeepEqual(qs[2].Options, []string{"1", "2", "3", "4"}) {
		t.Errorf("multi-option record parsed wrong: %+v", qs[2])
	}
}

func TestParseTrailingNewline(t *testing.T) {
	qs, _ := quiz.Parse("Q;A;B;A\n")
	if len(qs) != 1 {
		t.Fatalf("trailing newline produced %d records, want 1", len(qs))
	}
}

func TestParseAnswerMissingDiagnostic(t *testing.T) {
	qs, diags := quiz.Parse("Q;A;B;C;D")
	if len(qs) != 1 {
		t.Fatalf("record with bad answer must still be kept, got %d", len(qs))
	}
	if qs[0].Answer != "D" {
		t.Errorf("answer rewritten to %q, must stay as-is", qs[0].Answer)
	}
	if len(diags) != 1 || diags[0].Kind != quiz.DiagAnswerMissing {
		t.Fatalf("want one answer_missing diagnostic, got %+v", diags)
	}
	if diags[0].Line != 1 {
		t.Errorf("diagnostic line = %d, want 1", diags[0].Line)
	}
}

func TestParseDuplicateOptionDiagnostic(t *testing.T) {
	qs, diags := quiz.Parse("Q;A;A;B;A")
	if len(qs) != 1 {
		t.Fatalf("got %d records, want 1", len(qs))
	}
	// Options are never deduplicated.
	if !reflect.DeepEqual(qs[0].Options, []string{"A", "A", "B"}) {
		t.Errorf("options %v, want duplicates preserved", qs[0].Options)
	}
	if len(diags) != 1 || diags[0].Kind != quiz.DiagDuplicateOption {
		t.Fatalf("want one duplicate_option diagnostic, got %+v", diags)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if qs, _ := quiz.Parse(""); len(qs) != 0 {
		t.Errorf("empty input produced %d records", len(qs))
	}
}
