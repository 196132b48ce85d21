package game

import "math"

// updateDifficulty recomputes level, speed and gap from the score. Called
// exactly once per newly scored pair, so speed and gap are step functions
// of the level, never interpolated. The gap narrows only on even levels
// and is floored at MinGap.
func (s *GameSession) updateDifficulty() {
	level := s.Score/ScorePerLevel + 1
	if level == s.Level {
		return
	}
	s.Level = level
	s.Speed = BaseSpeed + float64(level-1)*SpeedIncrement
	if level%2 == 0 {
		s.Gap = math.Max(MinGap, InitialGap-float64(level/2)*GapDecrement)
	}
	s.emit(Event{Type: EventLevelUp, Data: level})
}
