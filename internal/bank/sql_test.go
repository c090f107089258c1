package bank_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quizgate/quizgate/internal/bank"
	"github.com/quizgate/quizgate/internal/db"
	"github.com/quizgate/quizgate/internal/quiz"
)

func openTestDB(t *testing.T) *bank.SQLSource {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "bank.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return &bank.SQLSource{DB: dbh}
}

func TestImportAndLoadRoundTrip(t *testing.T) {
	src := openTestDB(t)
	ctx := context.Background()

	const text = "Q1;A;B;A\r\nQ2;C;D;D\n\nmalformed line\n"
	n, err := bank.Import(ctx, src.DB, text)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	// Blank line skipped, malformed line stored verbatim.
	if n != 3 {
		t.Fatalf("imported %d lines, want 3", n)
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	qs, _ := quiz.Parse(loaded)
	if len(qs) != 2 {
		t.Fatalf("parsed %d questions from DB bank, want 2", len(qs))
	}
	if qs[0].Prompt != "Q1" || qs[1].Prompt != "Q2" {
		t.Errorf("import order lost: %+v", qs)
	}
}

func TestImportReplacesExistingBank(t *testing.T) {
	src := openTestDB(t)
	ctx := context.Background()

	if _, err := bank.Import(ctx, src.DB, "Q1;A;B;A\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := bank.Import(ctx, src.DB, "Q9;X;Y;X\n"); err != nil {
		t.Fatal(err)
	}
	loaded, err := src.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	qs, _ := quiz.Parse(loaded)
	if len(qs) != 1 || qs[0].Prompt != "Q9" {
		t.Fatalf("re-import did not replace the bank: %+v", qs)
	}
}

func TestSQLSourceEmptyBank(t *testing.T) {
	src := openTestDB(t)
	loaded, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on empty bank: %v", err)
	}
	if qs, _ := quiz.Parse(loaded); len(qs) != 0 {
		t.Errorf("empty bank parsed to %d questions", len(qs))
	}
}
