package bank_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quizgate/quizgate/internal/bank"
)

func TestFileSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	const text = "Q1;A;B;A\nQ2;C;D;D\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := bank.FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != text {
		t.Errorf("Load returned %q, want %q", got, text)
	}
}

func TestFileSourceReloadsOnEachLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	if err := os.WriteFile(path, []byte("Q1;A;B;A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := bank.FileSource{Path: path}
	if _, err := src.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("Q2;C;D;D\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != "Q2;C;D;D\n" {
		t.Errorf("second Load returned stale content %q", got)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := bank.FileSource{Path: filepath.Join(t.TempDir(), "absent.csv")}.Load(context.Background())
	if err == nil {
		t.Fatal("missing file did not error")
	}
}
