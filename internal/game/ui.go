package game

import "fmt"

// RenderHUD draws the score/level text and the state overlays using the
// font atlas.
func RenderHUD(r *Renderer, session *GameSession, fbW, fbH int) {
	white := RGB{R: 255, G: 255, B: 255}
	yellow := RGB{R: 255, G: 255, B: 100}
	green := RGB{R: 100, G: 255, B: 100}
	red := RGB{R: 255, G: 80, B: 80}

	switch session.State {
	case StateNotStarted:
		title := "FLAP"
		titleScale := float32(6.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-120, titleScale, yellow)

		msg := "Press SPACE to flap"
		r.DrawString(msg, fbW/2-TextWidth(msg, 2.0)/2, fbH/2+20, 2.0, white)

		hint := "Thread the gaps. Don't touch anything."
		r.DrawString(hint, fbW/2-TextWidth(hint, 1.2)/2, fbH/2+70, 1.2, green)

	case StateRunning:
		scoreStr := fmt.Sprintf("%d", session.Score)
		scoreScale := float32(5.0)
		r.DrawString(scoreStr, fbW/2-TextWidth(scoreStr, scoreScale)/2, 24, scoreScale, white)

		levelStr := fmt.Sprintf("Level %d", session.Level)
		r.DrawString(levelStr, 10, 10, 1.5, green)

	case StateOver:
		msg1 := "GAME OVER"
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 4.0)/2, fbH/2-100, 4.0, red)

		msg2 := fmt.Sprintf("Score: %d   Level: %d", session.Score, session.Level)
		r.DrawString(msg2, fbW/2-TextWidth(msg2, 2.0)/2, fbH/2-20, 2.0, yellow)

		msg3 := "Press ENTER to restart"
		r.DrawString(msg3, fbW/2-TextWidth(msg3, 1.5)/2, fbH/2+40, 1.5, white)
	}

	r.FlushText(fbW, fbH)
}
