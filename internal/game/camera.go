package game

import "github.com/go-gl/mathgl/mgl32"

// Camera sits on the +z axis looking at the play plane. Position is fixed
// for the whole run; only screen shake moves it.
type Camera struct {
	X, Y, Z float64

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

func NewCamera() Camera {
	return Camera{Z: CameraDistance}
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// View returns the look-at matrix with shake applied.
func (c *Camera) View() mgl32.Mat4 {
	eye := mgl32.Vec3{float32(c.X + c.ShakeX), float32(c.Y + c.ShakeY), float32(c.Z)}
	centre := mgl32.Vec3{float32(c.X + c.ShakeX), float32(c.Y + c.ShakeY), 0}
	return mgl32.LookAtV(eye, centre, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the framebuffer size.
func Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(fbW) / float32(fbH)
	return mgl32.Perspective(mgl32.DegToRad(CameraFov), aspect, 0.1, 100.0)
}
