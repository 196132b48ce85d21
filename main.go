package main

import "flappy/internal/game"

func main() {
	game.RunDesktop()
}
