package racer

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
)

func testWorld() World {
	return NewWorld(config.DefaultRacerConfig())
}

func TestWorldLimits(t *testing.T) {
	w := testWorld()
	if w.Left != 250 || w.Right != 1030 {
		t.Errorf("corridor = [%g, %g], expected [250, 1030]", w.Left, w.Right)
	}
	if w.Bottom != -50 || w.Top != 770 {
		t.Errorf("wrap limits = [%g, %g], expected [-50, 770]", w.Bottom, w.Top)
	}
}

func TestPlayerClampedToCorridor(t *testing.T) {
	w := testWorld()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name           string
		dx, dy         float64
		wantX, wantY   float64
		wantDX, wantDY float64
		startX, startY float64
	}{
		{"left wall", -10, 0, 250, 360, 0, 0, 255, 360},
		{"right wall", 10, 0, 1030, 360, 0, 0, 1025, 360},
		{"bottom wall", 0, -10, 640, 1, 0, 0, 640, 5},
		{"top wall", 0, 10, 640, 719, 0, 0, 640, 715},
		{"free move", 3, -3, 643, 357, 3, -3, 640, 360},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Entity{Kind: KindPlayer, X: tc.startX, Y: tc.startY, DX: tc.dx, DY: tc.dy, MaxSpeed: 5}
			p.Update(w, rng)
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("position = (%g, %g), expected (%g, %g)", p.X, p.Y, tc.wantX, tc.wantY)
			}
			if p.DX != tc.wantDX || p.DY != tc.wantDY {
				t.Errorf("velocity = (%g, %g), expected (%g, %g)", p.DX, p.DY, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestPlayerBoundsHoldForAnyVelocity(t *testing.T) {
	w := testWorld()
	rng := rand.New(rand.NewSource(7))
	p := &Entity{Kind: KindPlayer, X: 640, Y: 360, MaxSpeed: 5}

	for i := 0; i < 5000; i++ {
		p.DX = (rng.Float64() - 0.5) * 400
		p.DY = (rng.Float64() - 0.5) * 400
		p.Speed = rng.Float64() * 20
		p.Update(w, rng)

		if p.X < w.Left || p.X > w.Right || p.Y < 1 || p.Y > w.Height-1 {
			t.Fatalf("tick %d: player escaped to (%g, %g)", i, p.X, p.Y)
		}
	}
}

func TestPlayerNitrous(t *testing.T) {
	w := testWorld()
	p := &Entity{Kind: KindPlayer, X: 640, Y: 300, Speed: 12, MaxSpeed: 5}
	p.Update(w, nil)

	if p.Speed != 5 {
		t.Errorf("speed should be capped at 5, got %g", p.Speed)
	}
	if p.Y != 305 {
		t.Errorf("nitrous should push the car up by 5, got y=%g", p.Y)
	}
}

func TestPlayerRespawnCountdown(t *testing.T) {
	w := testWorld()
	p := &Entity{Kind: KindPlayer, X: 640, Y: 360, Respawning: 2}

	p.Update(w, nil)
	p.Update(w, nil)
	p.Update(w, nil)
	if p.Respawning != 0 {
		t.Errorf("respawning should stop at 0, got %d", p.Respawning)
	}
}

func TestCompetitorWrapsVertically(t *testing.T) {
	w := testWorld()
	rng := rand.New(rand.NewSource(1))

	up := &Entity{Kind: KindCompetitor, X: 640, Y: 768, DY: 5}
	up.Update(w, rng)
	if up.Y != w.Bottom {
		t.Errorf("competitor leaving the top should re-enter at %g, got %g", w.Bottom, up.Y)
	}

	down := &Entity{Kind: KindCompetitor, X: 640, Y: -48, DY: -5}
	down.Update(w, rng)
	if down.Y != w.Top {
		t.Errorf("competitor leaving the bottom should re-enter at %g, got %g", w.Top, down.Y)
	}
}

func TestCompetitorTurnsBackAtEdges(t *testing.T) {
	w := testWorld()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		left := &Entity{Kind: KindCompetitor, X: 252, Y: 300, DX: -4, MaxSpeed: 4}
		left.Update(w, rng)
		if left.X != w.Left || left.DX < 0 || left.DX > 4 {
			t.Fatalf("left edge: x=%g dx=%g", left.X, left.DX)
		}

		right := &Entity{Kind: KindCompetitor, X: 1028, Y: 300, DX: 4, MaxSpeed: 4}
		right.Update(w, rng)
		if right.X != w.Right || right.DX > 0 || right.DX < -4 {
			t.Fatalf("right edge: x=%g dx=%g", right.X, right.DX)
		}
	}
}

func TestCoinFallsAndRecycles(t *testing.T) {
	w := testWorld()
	rng := rand.New(rand.NewSource(5))

	c := &Entity{Kind: KindCoin, X: 640, Y: 100, DY: -30, Width: 128, Height: 128, Scale: 0.2}
	c.Update(w, rng)
	if c.Y != 99 {
		t.Errorf("coin should fall by the fall speed regardless of velocity, got y=%g", c.Y)
	}

	// Box is 25.6 tall; top edge drops below 0 once y < -12.8
	c.Y = -12
	c.Update(w, rng)
	if c.Y < w.Height || c.Y > w.Top {
		t.Errorf("recycled coin y=%g should be in [%g, %g]", c.Y, w.Height, w.Top)
	}
	if c.X < w.Left || c.X > w.Right {
		t.Errorf("recycled coin x=%g should be in the corridor", c.X)
	}
}

func TestBounds(t *testing.T) {
	e := &Entity{X: 100, Y: 200, Width: 400, Height: 640, Scale: 0.25}
	b := e.Bounds()
	if b.W != 100 || b.H != 160 {
		t.Errorf("bounds size = %gx%g, expected 100x160", b.W, b.H)
	}
	if b.Left() != 50 || b.Bottom() != 120 {
		t.Errorf("bounds origin = (%g, %g), expected (50, 120)", b.Left(), b.Bottom())
	}
}
