package id

import (
	"fmt"
	"strconv"
	"time"

	"github.com/roro-dev/roro/internal/model"
)

// Generator allocates record IDs from the wall clock. IDs are Unix
// milliseconds, bumped past the last issued ID when the clock has not
// advanced, so they stay strictly increasing within a process.
type Generator struct {
	last int64
}

// NewGenerator returns a Generator that never issues an ID at or below floor.
func NewGenerator(floor int64) *Generator {
	return &Generator{last: floor}
}

// Next returns a fresh ID for a record created at now.
func (g *Generator) Next(now time.Time) int64 {
	next := now.UnixMilli()
	if next <= g.last {
		next = g.last + 1
	}
	g.last = next
	return next
}

// MaxID returns the largest record ID, or 0 for no records.
func MaxID(records []model.Record) int64 {
	var maxID int64
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID
}

// Parse parses a record ID as printed by Format.
func Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record ID %q: %w", s, err)
	}
	return v, nil
}

// Format renders a record ID.
func Format(id int64) string {
	return strconv.FormatInt(id, 10)
}
