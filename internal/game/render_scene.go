package game

// Rail geometry: thin bars marking the vertical bounds.
const (
	railLength    = 26.0
	railThickness = 0.3
)

// renderScene draws the world from session state. This is the only place
// game state turns into visuals; the session itself never touches GL.
func renderScene(r *Renderer, s *GameSession) {
	// Bound rails at ±BoundY.
	r.DrawBox(0, BoundY+railThickness/2, 0, railLength, railThickness, PipeDepth, Palette.Rail)
	r.DrawBox(0, -BoundY-railThickness/2, 0, railLength, railThickness, PipeDepth, Palette.Rail)

	for i := range s.Pairs {
		p := &s.Pairs[i]
		drawPipeSegment(r, p.X, p.GapCenter+p.Gap/2, Span/2)
		drawPipeSegment(r, p.X, -Span/2, p.GapCenter-p.Gap/2)
	}

	drawBird(r, &s.Actor)
}

// drawPipeSegment draws one pipe body from y0 to y1 plus a slightly wider
// lip at the gap-facing end.
func drawPipeSegment(r *Renderer, x, y0, y1 float64) {
	h := y1 - y0
	if h <= 0 {
		return
	}
	r.DrawBox(x, (y0+y1)/2, 0, PipeWidth, h, PipeDepth, Palette.Pipe)

	// Lip sits at the gap-facing end: the bottom of the top segment,
	// the top of the bottom segment.
	const lipH = 0.25
	lipY := y1 - lipH/2
	if y1 >= Span/2 {
		lipY = y0 + lipH/2
	}
	r.DrawBox(x, lipY, 0, PipeWidth*1.18, lipH, PipeDepth*1.18, Palette.PipeRim)
}

// drawBird draws the bird tilted by its vertical velocity, beak forward.
func drawBird(r *Renderer, a *Actor) {
	tilt := clampF(a.VY*9.0, -0.7, 0.8)
	r.DrawBoxTilted(BirdX, a.Y, 0, BirdSize, BirdSize, BirdSize, tilt, Palette.Bird)
	r.DrawBoxTilted(BirdX+BirdSize*0.55, a.Y+BirdSize*0.1, 0, 0.3, 0.16, 0.3, tilt, Palette.BirdBeak)
}
