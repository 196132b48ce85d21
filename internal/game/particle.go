package game

type ParticleKind uint8

const (
	ParticleFeather ParticleKind = iota
	ParticleSpark
	ParticleDebris
)

// Particle lives in world space on the play plane, with a small z jitter
// so bursts read as 3D puffs.
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem is a fixed-capacity pool with circular overwrite when
// full. Purely decorative; it updates in every state so the terminal
// frame keeps moving.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int
}

func NewParticleSystem(max int, seed uint64) *ParticleSystem {
	return &ParticleSystem{
		Max: max,
		P:   make([]Particle, 0, max),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx = (ps.ovrIdx + 1) % ps.Max
}

// SpawnFlapPuff emits a few feathers below the bird on each flap.
func (ps *ParticleSystem) SpawnFlapPuff(y float64) {
	for i := 0; i < 6; i++ {
		ps.add(Particle{
			X:       BirdX + ps.rng.RangeF(-0.2, 0.2),
			Y:       y - 0.3,
			Z:       ps.rng.RangeF(-0.2, 0.2),
			VX:      ps.rng.RangeF(-1.2, -0.4),
			VY:      ps.rng.RangeF(-1.5, -0.5),
			VZ:      ps.rng.RangeF(-0.4, 0.4),
			Size:    ps.rng.RangeF(0.06, 0.14),
			Life:    ps.rng.RangeF(0.3, 0.6),
			MaxLife: 0.6,
			Col:     Palette.Feather,
			Kind:    ParticleFeather,
		})
	}
}

// SpawnScoreSparkle emits a ring of sparks at a passed gap.
func (ps *ParticleSystem) SpawnScoreSparkle(x, y float64) {
	for i := 0; i < 12; i++ {
		ps.add(Particle{
			X:       x,
			Y:       y,
			Z:       ps.rng.RangeF(-0.3, 0.3),
			VX:      ps.rng.RangeF(-2.0, 2.0),
			VY:      ps.rng.RangeF(-2.0, 2.0),
			VZ:      ps.rng.RangeF(-1.0, 1.0),
			Size:    ps.rng.RangeF(0.05, 0.12),
			Life:    ps.rng.RangeF(0.4, 0.8),
			MaxLife: 0.8,
			Col:     Palette.Spark,
			Kind:    ParticleSpark,
		})
	}
}

// SpawnCrashBurst emits debris where the bird died.
func (ps *ParticleSystem) SpawnCrashBurst(y float64) {
	for i := 0; i < 40; i++ {
		col := Palette.Debris
		if i%3 == 0 {
			col = Palette.Bird
		}
		ps.add(Particle{
			X:       BirdX,
			Y:       clampF(y, -BoundY, BoundY),
			Z:       ps.rng.RangeF(-0.4, 0.4),
			VX:      ps.rng.RangeF(-3.5, 3.5),
			VY:      ps.rng.RangeF(-1.0, 4.0),
			VZ:      ps.rng.RangeF(-2.0, 2.0),
			Size:    ps.rng.RangeF(0.08, 0.2),
			Life:    ps.rng.RangeF(0.6, 1.4),
			MaxLife: 1.4,
			Col:     col,
			Kind:    ParticleDebris,
		})
	}
}

// Update integrates and expires particles. dt is wall-clock seconds here,
// unlike the per-frame game tick — decoration may be framerate-honest.
func (ps *ParticleSystem) Update(dt float64) {
	const particleGravity = -6.0
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		if p.Kind != ParticleSpark {
			p.VY += particleGravity * dt
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Z += p.VZ * dt
		kept = append(kept, p)
	}
	ps.P = kept
	if ps.ovrIdx >= len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData fills buf with sprite records: [x, y, z, size, r, g, b, a]
// per particle. Alpha fades with remaining life.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		alpha := float32(p.Life / p.MaxLife)
		if alpha > 1 {
			alpha = 1
		}
		cr, cg, cb := p.Col.Vec3()
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Z),
			float32(p.Size), cr, cg, cb, alpha,
		)
	}
	return buf
}
