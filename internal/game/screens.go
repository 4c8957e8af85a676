package game

// Screen text placement shared by the title and game-over screens.
const (
	screenTitleY  = 18
	screenPromptY = 40
	blinkInterval = 500 // ms
)

// blinkVisible is the on-phase of the 500ms prompt blink.
func blinkVisible(now uint64) bool {
	return now%(2*blinkInterval) < blinkInterval
}

// RenderTitle draws the title screen: black background, the game name, and
// the blinking start prompt.
func RenderTitle(fb *Framebuffer, now uint64) {
	fb.Clear()
	fb.DrawText(CenteredX("MINI DOOM"), screenTitleY, "MINI DOOM")
	if blinkVisible(now) {
		fb.DrawText(CenteredX("PRESS FIRE"), screenPromptY, "PRESS FIRE")
	}
}

// RenderGameOver draws the game-over screen.
func RenderGameOver(fb *Framebuffer, now uint64) {
	fb.Clear()
	fb.DrawText(CenteredX("YOU DIED"), screenTitleY, "YOU DIED")
	if blinkVisible(now) {
		fb.DrawText(CenteredX("PRESS FIRE"), screenPromptY, "PRESS FIRE")
	}
}

// ShouldStartGame decides the TITLE -> PLAYING transition. Pure: the caller
// owns fire edge detection.
func ShouldStartGame(fireEdge bool) bool {
	return fireEdge
}

// ShouldRestartGame decides the GAME_OVER -> PLAYING transition. Pure, same
// contract as ShouldStartGame.
func ShouldRestartGame(fireEdge bool) bool {
	return fireEdge
}
