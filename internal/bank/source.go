// Package bank retrieves the raw question text the quiz runs over. The text
// stays in its delimited line form until it reaches the parser; sources only
// fetch bytes.
package bank

import (
	"context"
	"fmt"
	"os"
)

// Source yields the raw delimited question text. A failed Load means the
// quiz cannot start; callers surface that and never see a partial bank.
type Source interface {
	Load(ctx context.Context) (string, error)
}

// FileSource reads the bank from a local file on every Load, so edits to the
// file show up on the next session without a restart.
type FileSource struct {
	Path string
}

func (f FileSource) Load(_ context.Context) (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read question file %s: %w", f.Path, err)
	}
	return string(b), nil
}
