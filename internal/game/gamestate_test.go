package game

import "testing"

func TestFirstFlapStartsRun(t *testing.T) {
	s := NewGameSession(1, nil)
	s.Step(TickInput{})
	if s.State != StateNotStarted {
		t.Fatalf("state after empty tick = %v, want NotStarted", s.State)
	}
	s.Step(TickInput{Flap: true})
	if s.State != StateRunning {
		t.Fatalf("state after first flap = %v, want Running", s.State)
	}
	if s.Actor.VY != FlapImpulse {
		t.Fatalf("velocity after first flap = %v, want %v", s.Actor.VY, FlapImpulse)
	}
}

func TestFlapIgnoredWhenOver(t *testing.T) {
	s := NewGameSession(1, nil)
	s.State = StateOver
	s.Actor.Y = 2.5
	s.Step(TickInput{Flap: true})
	if s.State != StateOver {
		t.Fatalf("flap while Over moved state to %v", s.State)
	}
	if s.Actor.Y != 2.5 || s.Actor.VY != 0 {
		t.Fatalf("flap while Over mutated the actor: y=%v vy=%v", s.Actor.Y, s.Actor.VY)
	}
}

func TestRestartIgnoredUnlessOver(t *testing.T) {
	s := NewGameSession(1, nil)
	s.Step(TickInput{Flap: true})
	s.Score = 5
	s.Step(TickInput{Restart: true})
	if s.State != StateRunning || s.Score != 5 {
		t.Fatalf("restart while Running reset the session: state=%v score=%d", s.State, s.Score)
	}
}

func TestScorePassedExactlyOncePerPair(t *testing.T) {
	bus := NewEventBus()
	scored := 0
	bus.Subscribe(EventScored, func(Event) { scored++ })

	s := NewGameSession(1, bus)
	s.Pairs = []ObstaclePair{{X: -PipeWidth/2 - 0.01, Gap: InitialGap}}
	s.scorePassed()
	if s.Score != 1 || !s.Pairs[0].Scored {
		t.Fatalf("first pass: score=%d scored=%v, want 1/true", s.Score, s.Pairs[0].Scored)
	}
	s.scorePassed()
	s.scorePassed()
	if s.Score != 1 || scored != 1 {
		t.Fatalf("repeat passes re-scored the pair: score=%d events=%d", s.Score, scored)
	}
}

func TestScorePassedBoundary(t *testing.T) {
	s := NewGameSession(1, nil)
	s.Pairs = []ObstaclePair{{X: -PipeWidth/2 + 0.01, Gap: InitialGap}}
	s.scorePassed()
	if s.Score != 0 {
		t.Fatalf("pair short of the boundary scored: score=%d", s.Score)
	}
}

func TestRemoveOffscreen(t *testing.T) {
	s := NewGameSession(1, nil)
	limit := -SpawnDistance/2 - PipeWidth
	s.Pairs = []ObstaclePair{
		{X: limit - 0.1},
		{X: limit + 0.1},
		{X: 5},
	}
	s.removeOffscreen()
	if len(s.Pairs) != 2 {
		t.Fatalf("pairs after removal = %d, want 2", len(s.Pairs))
	}
	if s.Pairs[0].X != limit+0.1 || s.Pairs[1].X != 5 {
		t.Fatalf("removal kept the wrong pairs: %+v", s.Pairs)
	}
}

func TestSpawnAhead(t *testing.T) {
	s := NewGameSession(1, nil)

	// No pairs: spawn at the default start position.
	s.Pairs = s.Pairs[:0]
	s.spawnAhead()
	if len(s.Pairs) != 1 || s.Pairs[0].X != SpawnDistance/2 {
		t.Fatalf("spawn into empty field: %+v", s.Pairs)
	}

	// Rightmost below the threshold: append one pair at spacing.
	s.Pairs = []ObstaclePair{{X: 1.0}}
	s.spawnAhead()
	if len(s.Pairs) != 2 || s.Pairs[1].X != 1.0+PipeSpacing {
		t.Fatalf("spawn behind threshold: %+v", s.Pairs)
	}

	// Rightmost at/above the threshold: no spawn.
	s.Pairs = []ObstaclePair{{X: SpawnDistance/2 - PipeSpacing + 0.01}}
	s.spawnAhead()
	if len(s.Pairs) != 1 {
		t.Fatalf("spawned with rightmost above threshold: %+v", s.Pairs)
	}

	// Field full: no spawn regardless of position.
	s.Pairs = make([]ObstaclePair, MaxPipes)
	s.spawnAhead()
	if len(s.Pairs) != MaxPipes {
		t.Fatalf("spawned past the %d-pair cap", MaxPipes)
	}
}

func TestFallingOutOfBoundsEndsRunOnce(t *testing.T) {
	bus := NewEventBus()
	overs := 0
	bus.Subscribe(EventGameOver, func(Event) { overs++ })

	s := NewGameSession(1, bus)
	s.Step(TickInput{Flap: true})
	for i := 0; i < 5000 && s.State == StateRunning; i++ {
		s.Step(TickInput{})
	}
	if s.State != StateOver {
		t.Fatalf("bird never left the bounds while falling")
	}
	if overs != 1 {
		t.Fatalf("game-over events = %d, want exactly 1", overs)
	}

	// Further ticks without restart mutate nothing.
	y := s.Actor.Y
	pairs := len(s.Pairs)
	for i := 0; i < 10; i++ {
		s.Step(TickInput{Flap: true})
	}
	if overs != 1 || s.Actor.Y != y || len(s.Pairs) != pairs {
		t.Fatalf("ticks after Over kept mutating: events=%d y=%v pairs=%d", overs, s.Actor.Y, len(s.Pairs))
	}
}

func TestHitShortCircuitsTick(t *testing.T) {
	s := NewGameSession(1, nil)
	s.State = StateRunning
	// First pair is a wall across the bird, second would score this tick.
	s.Pairs = []ObstaclePair{
		{X: -PipeWidth/2 - 0.01 + s.Speed, Gap: InitialGap},
		{X: BirdX, GapCenter: -3, Gap: 1},
	}
	s.Step(TickInput{})
	if s.State != StateOver {
		t.Fatalf("state = %v, want Over", s.State)
	}
	if s.Score != 0 || s.Pairs[0].Scored {
		t.Fatalf("tick kept mutating after the hit: score=%d scored=%v", s.Score, s.Pairs[0].Scored)
	}
	if len(s.Pairs) != 2 {
		t.Fatalf("pair list changed after the hit: %d pairs", len(s.Pairs))
	}
}

func TestRestartResetsEverything(t *testing.T) {
	s := NewGameSession(1, nil)
	s.State = StateOver
	s.Score = 37
	s.Level = 4
	s.Speed = 0.08
	s.Gap = 2.3
	s.Actor = Actor{Y: -2.2, VY: -0.5}
	s.Pairs = []ObstaclePair{{X: 1, Scored: true}}

	s.Step(TickInput{Restart: true})

	if s.State != StateNotStarted {
		t.Fatalf("state after restart = %v, want NotStarted", s.State)
	}
	if s.Score != 0 || s.Level != 1 || s.Speed != BaseSpeed || s.Gap != InitialGap {
		t.Fatalf("counters not reset: score=%d level=%d speed=%v gap=%v", s.Score, s.Level, s.Speed, s.Gap)
	}
	if s.Actor.Y != 0 || s.Actor.VY != 0 {
		t.Fatalf("actor not reset: %+v", s.Actor)
	}
	if len(s.Pairs) != InitialPipes {
		t.Fatalf("pairs after restart = %d, want %d", len(s.Pairs), InitialPipes)
	}
	for i, p := range s.Pairs {
		if want := SpawnDistance/2 + float64(i)*PipeSpacing; p.X != want || p.Scored {
			t.Fatalf("pair %d after restart: x=%v scored=%v, want x=%v unscored", i, p.X, p.Scored, want)
		}
	}
}

// TestLongRunProperties plays a scripted run with pipe gaps widened out of
// the bird's way, checking the per-tick invariants hold over thousands of
// ticks of scoring, removal and respawning.
func TestLongRunProperties(t *testing.T) {
	bus := NewEventBus()
	scoreEvents := 0
	bus.Subscribe(EventScored, func(Event) { scoreEvents++ })

	s := NewGameSession(99, bus)
	defuse := func() {
		for i := range s.Pairs {
			s.Pairs[i].GapCenter = 0
			s.Pairs[i].Gap = 7.0
		}
	}
	defuse()

	s.Step(TickInput{Flap: true})
	prevScore := 0
	for tick := 0; tick < 4000; tick++ {
		// A flap every 39 ticks exactly cancels gravity's drift over the
		// cycle, keeping the bird oscillating near y=0 indefinitely.
		in := TickInput{Flap: tick%39 == 0}
		s.Step(in)
		defuse()

		if s.State != StateRunning {
			t.Fatalf("tick %d: run ended unexpectedly (state=%v, y=%v)", tick, s.State, s.Actor.Y)
		}
		if s.Score < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", tick, prevScore, s.Score)
		}
		if s.Score > prevScore+1 {
			t.Fatalf("tick %d: score jumped %d -> %d", tick, prevScore, s.Score)
		}
		prevScore = s.Score
		if len(s.Pairs) > MaxPipes {
			t.Fatalf("tick %d: %d pairs exceeds cap %d", tick, len(s.Pairs), MaxPipes)
		}
		for i := 1; i < len(s.Pairs); i++ {
			if s.Pairs[i].X <= s.Pairs[i-1].X {
				t.Fatalf("tick %d: pair order not spatial: %v >= %v", tick, s.Pairs[i-1].X, s.Pairs[i].X)
			}
		}
	}

	if s.Score == 0 {
		t.Fatalf("no pairs scored over the whole run")
	}
	if scoreEvents != s.Score {
		t.Fatalf("score events = %d, score = %d", scoreEvents, s.Score)
	}
	if want := s.Score/ScorePerLevel + 1; s.Level != want {
		t.Fatalf("level = %d, want %d for score %d", s.Level, want, s.Score)
	}
}
