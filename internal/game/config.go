package game

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Playfield (in world units). The obstacle field spans Span vertically,
// centred on y=0; the bird dies when |y| exceeds BoundY.
const (
	Span   = 8.0
	BoundY = 4.0
)

// Bird physics. Deltas are per frame, not per second — one tick per
// rendered frame, vsync-paced.
const (
	Gravity     = -0.0045
	FlapImpulse = 0.09
	BirdX       = 0.0
	BirdSize    = 0.7
)

// Obstacle layout.
const (
	PipeWidth     = 1.0
	PipeDepth     = 1.0
	PipeSpacing   = 6.0
	SpawnDistance = 20.0
	InitialPipes  = 3
	MaxPipes      = 5

	// Gap centres are sampled uniformly from ±GapCenterRange; together
	// with the gap bounds this keeps both segment heights positive.
	GapCenterRange = 1.5
)

// Difficulty ramp. Speed steps up every ScorePerLevel points, the gap
// narrows every second level until it hits MinGap.
const (
	BaseSpeed      = 0.05
	SpeedIncrement = 0.01
	ScorePerLevel  = 10
	InitialGap     = 2.5
	MinGap         = 1.5
	GapDecrement   = 0.1
)

// Camera.
const (
	CameraDistance = 13.0
	CameraFov      = 45.0 // degrees
)

// Particles.
const (
	MaxParticles      = 2000
	MaxParticleRender = 4000
)

// Font atlas layout (generated at runtime from the built-in 5x7 font,
// ASCII 32-127 in a 16x6 grid).
const (
	FontGlyphW = 5
	FontGlyphH = 7
	FontCellW  = 6
	FontCellH  = 8
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols // 96
	FontAtlasH = FontCellH * FontRows // 48
)
