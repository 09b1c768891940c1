package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venom-editor/input"
)

func TestCursorInBounds(t *testing.T) {
	size := input.Point{X: 800, Y: 600}
	tests := []struct {
		name string
		p    input.Point
		want bool
	}{
		{"origin", input.Point{}, true},
		{"center", input.Point{X: 400, Y: 300}, true},
		{"right edge", input.Point{X: 800, Y: 10}, false},
		{"bottom edge", input.Point{X: 10, Y: 600}, false},
		{"left of window", input.Point{X: -1, Y: 10}, false},
		{"above window", input.Point{X: 10, Y: -5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cursorInBounds(tt.p, size))
		})
	}
}

func TestCursorInsideTracksFlag(t *testing.T) {
	w := &Window{}
	assert.False(t, w.CursorInside())
	w.inside = true
	assert.True(t, w.CursorInside())
}
