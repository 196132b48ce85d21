package game

import (
	"math"
	"testing"
)

func TestIntegrateAppliesGravityThenPosition(t *testing.T) {
	a := NewActor()
	a.Integrate()
	if a.VY != Gravity {
		t.Fatalf("velocity after 1 tick = %v, want %v", a.VY, Gravity)
	}
	if a.Y != Gravity {
		t.Fatalf("position after 1 tick = %v, want %v (velocity applied before position)", a.Y, Gravity)
	}

	a.Integrate()
	if a.VY != 2*Gravity {
		t.Fatalf("velocity after 2 ticks = %v, want %v", a.VY, 2*Gravity)
	}
	if math.Abs(a.Y-3*Gravity) > 1e-12 {
		t.Fatalf("position after 2 ticks = %v, want %v", a.Y, 3*Gravity)
	}
}

func TestFlapOverwritesVelocity(t *testing.T) {
	for _, prior := range []float64{0, -3.5, -0.001, FlapImpulse, 2.0, 100} {
		a := Actor{VY: prior}
		a.Flap()
		if a.VY != FlapImpulse {
			t.Fatalf("flap with prior velocity %v left %v, want %v", prior, a.VY, FlapImpulse)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	cases := []struct {
		y    float64
		want bool
	}{
		{0, false},
		{BoundY - 0.01, false},
		{-BoundY + 0.01, false},
		{BoundY + 0.01, true},
		{-BoundY - 0.01, true},
	}
	for _, c := range cases {
		a := Actor{Y: c.y}
		if got := a.OutOfBounds(); got != c.want {
			t.Fatalf("OutOfBounds at y=%v = %v, want %v", c.y, got, c.want)
		}
	}
}
