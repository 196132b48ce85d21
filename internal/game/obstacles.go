package game

// ObstaclePair is two vertically opposed pipe segments with a gap between
// them, acting as a single obstacle. Pairs scroll left at the session
// speed and are recycled once fully off screen.
type ObstaclePair struct {
	X         float64
	GapCenter float64
	Gap       float64
	Scored    bool
}

// TopHeight returns the height of the upper segment. The segment runs
// from the gap's top edge up to +Span/2.
func (p *ObstaclePair) TopHeight() float64 {
	return Span/2 - p.GapCenter - p.Gap/2
}

// BottomHeight returns the height of the lower segment. Invariant:
// TopHeight + Gap + BottomHeight == Span.
func (p *ObstaclePair) BottomHeight() float64 {
	return Span - p.TopHeight() - p.Gap
}

func (p *ObstaclePair) TopBounds() RectF {
	return RectF{
		X0: p.X - PipeWidth/2,
		Y0: p.GapCenter + p.Gap/2,
		X1: p.X + PipeWidth/2,
		Y1: Span / 2,
	}
}

func (p *ObstaclePair) BottomBounds() RectF {
	return RectF{
		X0: p.X - PipeWidth/2,
		Y0: -Span / 2,
		X1: p.X + PipeWidth/2,
		Y1: p.GapCenter - p.Gap/2,
	}
}

// createPair builds a fresh pair at the given spawn x. The gap centre is
// sampled from ±GapCenterRange, which with Gap <= InitialGap keeps both
// segment heights positive.
func (s *GameSession) createPair(x float64) ObstaclePair {
	return ObstaclePair{
		X:         x,
		GapCenter: s.rng.RangeF(-GapCenterRange, GapCenterRange),
		Gap:       s.Gap,
	}
}

// resetPipes drops every pair and spawns the initial evenly spaced set.
func (s *GameSession) resetPipes() {
	s.Pairs = s.Pairs[:0]
	for i := 0; i < InitialPipes; i++ {
		s.Pairs = append(s.Pairs, s.createPair(SpawnDistance/2+float64(i)*PipeSpacing))
	}
}
