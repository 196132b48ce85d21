package game

// Actor is the player-controlled bird. X stays fixed at BirdX; only the
// vertical position and velocity change.
type Actor struct {
	Y  float64
	VY float64
}

func NewActor() Actor {
	return Actor{}
}

// Integrate advances one tick of constant-acceleration kinematics:
// velocity first, then position.
func (a *Actor) Integrate() {
	a.VY += Gravity
	a.Y += a.VY
}

// Flap overwrites the vertical velocity with the fixed impulse. Rapid
// flapping therefore caps the climb rate instead of stacking.
func (a *Actor) Flap() {
	a.VY = FlapImpulse
}

// OutOfBounds reports whether the bird left the playable band.
func (a *Actor) OutOfBounds() bool {
	return a.Y > BoundY || a.Y < -BoundY
}

// Bounds returns the bird's axis-aligned box in the play plane.
func (a *Actor) Bounds() RectF {
	h := BirdSize * 0.5
	return RectF{X0: BirdX - h, Y0: a.Y - h, X1: BirdX + h, Y1: a.Y + h}
}
