package game

type GameState int

const (
	StateNotStarted GameState = iota // waiting for the first flap
	StateRunning                     // main gameplay
	StateOver                        // bird hit a pipe or left the bounds
)

// TickInput is the discrete input consumed once per tick: at most one
// flap and one restart, applied before physics integration.
type TickInput struct {
	Flap    bool
	Restart bool
}

// GameSession owns the bird, the ordered pair list (spawn order equals
// left-to-right spatial order) and the score/difficulty counters. All
// mutation happens in Step; nothing here touches GL or audio.
type GameSession struct {
	State GameState
	Score int
	Level int
	Speed float64
	Gap   float64

	Actor Actor
	Pairs []ObstaclePair

	rng *Rand
	bus *EventBus
}

func NewGameSession(seed uint64, bus *EventBus) *GameSession {
	s := &GameSession{
		rng: NewRand(splitmix64(seed ^ 0xF1A99B12D)),
		bus: bus,
	}
	s.Reset()
	return s
}

// Reset restores the initial run: counters, actor and the starting set of
// three evenly spaced pairs.
func (s *GameSession) Reset() {
	s.State = StateNotStarted
	s.Score = 0
	s.Level = 1
	s.Speed = BaseSpeed
	s.Gap = InitialGap
	s.Actor = NewActor()
	s.resetPipes()
}

func (s *GameSession) emit(e Event) {
	if s.bus != nil {
		s.bus.Emit(e)
	}
}

// Step advances one tick. Only Running evaluates the transition function;
// NotStarted waits for a flap, Over waits for a restart.
func (s *GameSession) Step(in TickInput) {
	switch s.State {
	case StateNotStarted:
		if in.Flap {
			s.State = StateRunning
			s.Actor.Flap()
			s.emit(Event{Type: EventStarted})
			s.emit(Event{Type: EventFlapped, Y: s.Actor.Y})
		}

	case StateOver:
		if in.Restart {
			s.Reset()
		}

	case StateRunning:
		if in.Flap {
			s.Actor.Flap()
			s.emit(Event{Type: EventFlapped, Y: s.Actor.Y})
		}
		s.Actor.Integrate()

		for i := range s.Pairs {
			s.Pairs[i].X -= s.Speed
		}

		// Out-of-bounds and pipe hits both end the run; the tick stops
		// immediately so nothing mutates after the terminal transition.
		if s.hit() {
			s.State = StateOver
			s.emit(Event{Type: EventGameOver, Y: s.Actor.Y, Data: s.Score})
			return
		}

		s.scorePassed()
		s.removeOffscreen()
		s.spawnAhead()
	}
}

func (s *GameSession) hit() bool {
	if s.Actor.OutOfBounds() {
		return true
	}
	for i := range s.Pairs {
		if s.Pairs[i].CollidesWith(&s.Actor) {
			return true
		}
	}
	return false
}

// scorePassed marks pairs whose trailing edge passed the bird and bumps
// the score once per pair. The Scored flag makes the transition
// idempotent across ticks.
func (s *GameSession) scorePassed() {
	for i := range s.Pairs {
		p := &s.Pairs[i]
		if p.Scored || p.X > BirdX-PipeWidth/2 {
			continue
		}
		p.Scored = true
		s.Score++
		s.emit(Event{Type: EventScored, X: p.X, Y: p.GapCenter, Data: s.Score})
		s.updateDifficulty()
	}
}

func (s *GameSession) removeOffscreen() {
	kept := s.Pairs[:0]
	for _, p := range s.Pairs {
		if p.X >= -SpawnDistance/2-PipeWidth {
			kept = append(kept, p)
		}
	}
	s.Pairs = kept
}

// spawnAhead tops the field back up. Pairs are appended at strictly
// increasing x, preserving spawn order == spatial order.
func (s *GameSession) spawnAhead() {
	if len(s.Pairs) >= MaxPipes {
		return
	}
	if len(s.Pairs) == 0 {
		s.Pairs = append(s.Pairs, s.createPair(SpawnDistance/2))
		return
	}
	rightmost := s.Pairs[len(s.Pairs)-1].X
	if rightmost < SpawnDistance/2-PipeSpacing {
		s.Pairs = append(s.Pairs, s.createPair(rightmost+PipeSpacing))
	}
}
