package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionSetClamps(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want int
	}{
		{"inside", 2, 5, 2},
		{"past end", 9, 5, 4},
		{"negative", -3, 5, 0},
		{"empty scene", 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			s.Set(tt.i, tt.n)
			assert.Equal(t, tt.want, s.Index())
		})
	}
}

func TestSelectionAfterDelete(t *testing.T) {
	var s Selection
	s.Set(3, 5)
	s.Deleted(4)
	assert.Equal(t, 2, s.Index())

	s.Set(0, 4)
	s.Deleted(3)
	assert.Equal(t, 0, s.Index(), "never goes below zero")

	s.Set(0, 1)
	s.Deleted(0)
	assert.Equal(t, 0, s.Index())
}

func TestSelectionAddedAndClamp(t *testing.T) {
	var s Selection
	s.Added(3)
	assert.Equal(t, 2, s.Index())

	s.Clamp(1)
	assert.Equal(t, 0, s.Index())
}

func TestCycleTag(t *testing.T) {
	tags := []string{"plastic", "wood", "glass"}
	assert.Equal(t, "wood", CycleTag(tags, "plastic", 1))
	assert.Equal(t, "plastic", CycleTag(tags, "glass", 1))
	assert.Equal(t, "glass", CycleTag(tags, "plastic", -1))
	assert.Equal(t, "plastic", CycleTag(tags, "", 1), "unknown tag starts at the first")
	assert.Equal(t, "x", CycleTag(nil, "x", 1))
}
