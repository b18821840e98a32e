package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/providerstats/internal/model"
)

// LineSource implements pgx.CopyFromSource over a slice of service lines,
// stamping every row with the run that produced it.
type LineSource struct {
	runID uuid.UUID
	lines []model.ServiceLine
	idx   int
}

// NewLineSource creates a CopyFromSource for lines.
func NewLineSource(runID uuid.UUID, lines []model.ServiceLine) *LineSource {
	return &LineSource{runID: runID, lines: lines, idx: -1}
}

// Next advances to the next line. Returns false after the last one.
func (s *LineSource) Next() bool {
	s.idx++
	return s.idx < len(s.lines)
}

// Values returns the current line's values in COPY column order.
func (s *LineSource) Values() ([]any, error) {
	return s.lines[s.idx].CopyValues(s.runID), nil
}

// Err always returns nil; the slice cannot fail mid-iteration.
func (s *LineSource) Err() error {
	return nil
}

// Compile-time check that LineSource satisfies the interface.
var _ pgx.CopyFromSource = (*LineSource)(nil)
