package game

import "testing"

func TestPairGeometryInvariant(t *testing.T) {
	for _, gap := range []float64{InitialGap, 2.0, MinGap} {
		s := NewGameSession(42, nil)
		s.Gap = gap
		for i := 0; i < 1000; i++ {
			p := s.createPair(10)
			if p.GapCenter < -GapCenterRange || p.GapCenter > GapCenterRange {
				t.Fatalf("gap centre %v outside ±%v", p.GapCenter, GapCenterRange)
			}
			top := p.TopHeight()
			bottom := p.BottomHeight()
			if top < 0 || bottom < 0 {
				t.Fatalf("negative segment height: top=%v bottom=%v (centre=%v gap=%v)", top, bottom, p.GapCenter, gap)
			}
			if sum := top + p.Gap + bottom; !almostEq(sum, Span) {
				t.Fatalf("top+gap+bottom = %v, want %v", sum, Span)
			}
			if p.Scored {
				t.Fatalf("new pair spawned already scored")
			}
		}
	}
}

func TestPairUsesCurrentGap(t *testing.T) {
	s := NewGameSession(7, nil)
	s.Gap = 1.8
	p := s.createPair(10)
	if p.Gap != 1.8 {
		t.Fatalf("pair gap = %v, want the session's current 1.8", p.Gap)
	}
}

func TestResetPipesSpawnsThreeEvenlySpaced(t *testing.T) {
	s := NewGameSession(3, nil)
	s.Pairs = append(s.Pairs, ObstaclePair{X: -2, Scored: true})
	s.resetPipes()

	if len(s.Pairs) != InitialPipes {
		t.Fatalf("pairs after reset = %d, want %d", len(s.Pairs), InitialPipes)
	}
	for i, p := range s.Pairs {
		want := SpawnDistance/2 + float64(i)*PipeSpacing
		if p.X != want {
			t.Fatalf("pair %d at x=%v, want %v", i, p.X, want)
		}
		if p.Scored {
			t.Fatalf("pair %d spawned scored", i)
		}
	}
}

func TestPairBoundsMatchHeights(t *testing.T) {
	p := ObstaclePair{X: 2, GapCenter: 0.5, Gap: 2.0}
	top := p.TopBounds()
	bottom := p.BottomBounds()

	if !almostEq(top.Y1-top.Y0, p.TopHeight()) {
		t.Fatalf("top bounds height %v != TopHeight %v", top.Y1-top.Y0, p.TopHeight())
	}
	if !almostEq(bottom.Y1-bottom.Y0, p.BottomHeight()) {
		t.Fatalf("bottom bounds height %v != BottomHeight %v", bottom.Y1-bottom.Y0, p.BottomHeight())
	}
	if !almostEq(top.Y0-bottom.Y1, p.Gap) {
		t.Fatalf("vertical distance between segments = %v, want gap %v", top.Y0-bottom.Y1, p.Gap)
	}
	if !almostEq(top.X1-top.X0, PipeWidth) || !almostEq(bottom.X1-bottom.X0, PipeWidth) {
		t.Fatalf("segment widths %v/%v, want %v", top.X1-top.X0, bottom.X1-bottom.X0, PipeWidth)
	}
}
