package game

// RectF is an axis-aligned rectangle in the x/y play plane.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

// CollidesWith reports whether the bird's box overlaps either segment of
// the pair. Boxes are derived from the same centre/extent values the
// renderer draws with, so the visual and logical hit shapes agree.
func (p *ObstaclePair) CollidesWith(a *Actor) bool {
	bird := a.Bounds()
	return bird.Intersects(p.TopBounds()) || bird.Intersects(p.BottomBounds())
}
