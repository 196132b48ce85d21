package game

import (
	"math"
	"testing"
)

func almostEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLevelFromScore(t *testing.T) {
	cases := []struct {
		score, level int
	}{
		{0, 1}, {9, 1}, {10, 2}, {19, 2}, {20, 3}, {99, 10}, {100, 11},
	}
	for _, c := range cases {
		s := NewGameSession(1, nil)
		s.Score = c.score
		s.updateDifficulty()
		if s.Level != c.level {
			t.Fatalf("score %d: level = %d, want %d", c.score, s.Level, c.level)
		}
	}
}

func TestSpeedStepsPerLevel(t *testing.T) {
	s := NewGameSession(1, nil)
	for score := 0; score <= 100; score++ {
		s.Score = score
		prev := s.Speed
		s.updateDifficulty()
		want := BaseSpeed + float64(s.Level-1)*SpeedIncrement
		if !almostEq(s.Speed, want) {
			t.Fatalf("score %d: speed = %v, want %v", score, s.Speed, want)
		}
		if s.Speed < prev {
			t.Fatalf("score %d: speed decreased from %v to %v", score, prev, s.Speed)
		}
	}
}

func TestGapNarrowsOnEvenLevelsOnly(t *testing.T) {
	s := NewGameSession(1, nil)

	// Walk the score up one point at a time so no level is skipped.
	wantGap := InitialGap
	for score := 0; score <= 300; score++ {
		s.Score = score
		prevLevel := s.Level
		s.updateDifficulty()
		if s.Level != prevLevel && s.Level%2 == 0 {
			wantGap = math.Max(MinGap, InitialGap-float64(s.Level/2)*GapDecrement)
		}
		if !almostEq(s.Gap, wantGap) {
			t.Fatalf("score %d (level %d): gap = %v, want %v", score, s.Level, s.Gap, wantGap)
		}
		if s.Gap < MinGap {
			t.Fatalf("score %d: gap %v below floor %v", score, s.Gap, MinGap)
		}
	}

	// Level 2 -> 2.4, level 4 -> 2.3 per the constants.
	s2 := NewGameSession(1, nil)
	s2.Score = 10
	s2.updateDifficulty()
	if !almostEq(s2.Gap, 2.4) {
		t.Fatalf("level 2 gap = %v, want 2.4", s2.Gap)
	}
	s2.Score = 30
	s2.updateDifficulty() // level 4
	if !almostEq(s2.Gap, 2.3) {
		t.Fatalf("level 4 gap = %v, want 2.3", s2.Gap)
	}
}

func TestGapFlooredAtMinimum(t *testing.T) {
	s := NewGameSession(1, nil)
	for score := 0; score <= 1000; score++ {
		s.Score = score
		s.updateDifficulty()
	}
	if !almostEq(s.Gap, MinGap) {
		t.Fatalf("gap after long run = %v, want floor %v", s.Gap, MinGap)
	}
}

func TestNoLevelChangeNoUpdate(t *testing.T) {
	bus := NewEventBus()
	levelUps := 0
	bus.Subscribe(EventLevelUp, func(Event) { levelUps++ })

	s := NewGameSession(1, bus)
	for i := 0; i < 9; i++ {
		s.Score = i
		s.updateDifficulty()
	}
	if levelUps != 0 {
		t.Fatalf("got %d level-up events below the first boundary, want 0", levelUps)
	}
	s.Score = 10
	s.updateDifficulty()
	s.updateDifficulty()
	if levelUps != 1 {
		t.Fatalf("got %d level-up events at the boundary, want exactly 1", levelUps)
	}
}
