package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neonrun/internal/core"
)

func TestCollide(t *testing.T) {
	player := core.NewRectF(10, 10, 30, 40)

	tests := []struct {
		name      string
		obstacles []Obstacle
		wantHit   bool
		wantX     float64
	}{
		{
			name:      "overlapping",
			obstacles: []Obstacle{{X: 35, Y: 30, W: 20, H: 30}},
			wantHit:   true,
			wantX:     35,
		},
		{
			name:      "one unit gap past right edge",
			obstacles: []Obstacle{{X: 41, Y: 10, W: 5, H: 5}},
			wantHit:   false,
		},
		{
			name:      "edge touching is not a hit",
			obstacles: []Obstacle{{X: 40, Y: 10, W: 5, H: 5}},
			wantHit:   false,
		},
		{
			name:      "no obstacles",
			obstacles: nil,
			wantHit:   false,
		},
		{
			name: "first hit in arrival order wins",
			obstacles: []Obstacle{
				{X: 100, Y: 10, W: 5, H: 5},
				{X: 20, Y: 20, W: 5, H: 5},
				{X: 15, Y: 15, W: 5, H: 5},
			},
			wantHit: true,
			wantX:   20,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, hit := Collide(player, tc.obstacles)
			assert.Equal(t, tc.wantHit, hit)
			if tc.wantHit {
				assert.Equal(t, tc.wantX, o.X)
			}
		})
	}
}
