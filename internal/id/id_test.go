package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roro-dev/roro/internal/model"
)

func TestNext_UsesClock(t *testing.T) {
	g := NewGenerator(0)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.UnixMilli(), g.Next(now))
}

func TestNext_SameInstant(t *testing.T) {
	g := NewGenerator(0)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := g.Next(now)
	second := g.Next(now)
	third := g.Next(now)

	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestNext_ClockBehindFloor(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	floor := now.Add(time.Hour).UnixMilli()
	g := NewGenerator(floor)

	assert.Equal(t, floor+1, g.Next(now))
}

func TestMaxID(t *testing.T) {
	assert.Equal(t, int64(0), MaxID(nil))

	records := []model.Record{{ID: 3}, {ID: 9}, {ID: 4}}
	assert.Equal(t, int64(9), MaxID(records))
}

func TestParseFormat(t *testing.T) {
	tests := []int64{0, 1, 1714564800000}
	for _, tt := range tests {
		got, err := Parse(Format(tt))
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}
}

func TestParse_Errors(t *testing.T) {
	badInputs := []string{
		"",
		"abc",
		"12.5",
		"1e3",
	}
	for _, input := range badInputs {
		_, err := Parse(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}
