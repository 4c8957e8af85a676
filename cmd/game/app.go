package main

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/Garsondee/Mini-Doom/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// errQuit cleanly exits the program when returned from Update.
var errQuit = errors.New("quit game")

// frameDisplay receives blitted framebuffers from the core and keeps an RGBA
// expansion ready for the draw pass.
type frameDisplay struct {
	pix [game.FBWidth * game.FBHeight * 4]byte
}

func (d *frameDisplay) Blit(fb *game.Framebuffer) error {
	for y := 0; y < game.FBHeight; y++ {
		for x := 0; x < game.FBWidth; x++ {
			var v byte
			if fb.Pixel(x, y) {
				v = 0xFF
			}
			i := (y*game.FBWidth + x) * 4
			d.pix[i+0] = v
			d.pix[i+1] = v
			d.pix[i+2] = v
			d.pix[i+3] = 0xFF
		}
	}
	return nil
}

// app runs the game mode: keyboard in, scaled panel out.
type app struct {
	core  *game.Game
	disp  *frameDisplay
	fbImg *ebiten.Image
	scale int
	debug bool
	start time.Time
}

func newApp(scale int, mute, debug bool) *app {
	a := &app{
		disp:  &frameDisplay{},
		fbImg: ebiten.NewImage(game.FBWidth, game.FBHeight),
		scale: scale,
		debug: debug,
		start: time.Now(),
	}
	opts := []game.GameOption{}
	if !mute {
		opts = append(opts, game.WithBeeper(newToneBeeper()))
	}
	a.core = game.NewGame(
		a.disp,
		game.InputFunc(readButtons),
		game.ClockFunc(func() uint64 { return uint64(time.Since(a.start).Milliseconds()) }),
		opts...,
	)
	return a
}

// readButtons maps the keyboard onto the 5-bit mask the core consumes.
func readButtons() uint8 {
	var mask uint8
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		mask |= game.ButtonUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		mask |= game.ButtonDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		mask |= game.ButtonLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		mask |= game.ButtonRight
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyZ) {
		mask |= game.ButtonFire
	}
	return mask
}

func (a *app) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}
	// The core paces itself to 20Hz; extra Update calls are cheap no-ops.
	a.core.Step()
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	a.fbImg.WritePixels(a.disp.pix[:])
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(a.scale), float64(a.scale))
	screen.DrawImage(a.fbImg, &op)

	if a.debug {
		msg := fmt.Sprintf("T=%d %s wave=%d hp=%d ammo=%d",
			a.core.Tick(), a.core.State(), a.core.Wave(), a.core.Health(), a.core.Ammo())
		text.Draw(screen, msg, basicfont.Face7x13, 4, 16, color.RGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF})
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.FBWidth * a.scale, game.FBHeight * a.scale
}

// selfTest cycles the validation patterns on the panel, two seconds each,
// with the expected result printed above.
type selfTest struct {
	fb      game.Framebuffer
	fbImg   *ebiten.Image
	log     *game.EventLog
	scale   int
	frame   int
	pattern game.TestPattern
	pix     [game.FBWidth * game.FBHeight * 4]byte
}

func newSelfTest(scale int) *selfTest {
	return &selfTest{
		fbImg: ebiten.NewImage(game.FBWidth, game.FBHeight),
		log:   game.NewEventLog(),
		scale: scale,
	}
}

func (s *selfTest) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}
	s.frame++
	next := game.TestPattern(s.frame / 120 % int(game.PatternCount))
	if next != s.pattern || s.frame == 1 {
		s.pattern = next
		game.RunTestPattern(&s.fb, s.pattern, 0, s.log, s.frame)
	}
	if s.pattern == game.PatternScrolling && s.frame%8 == 0 {
		game.RenderTestPattern(&s.fb, s.pattern, s.frame/8)
	}
	return nil
}

func (s *selfTest) Draw(screen *ebiten.Image) {
	for y := 0; y < game.FBHeight; y++ {
		for x := 0; x < game.FBWidth; x++ {
			var v byte
			if s.fb.Pixel(x, y) {
				v = 0xFF
			}
			i := (y*game.FBWidth + x) * 4
			s.pix[i+0] = v
			s.pix[i+1] = v
			s.pix[i+2] = v
			s.pix[i+3] = 0xFF
		}
	}
	s.fbImg.WritePixels(s.pix[:])
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(s.scale), float64(s.scale))
	screen.DrawImage(s.fbImg, &op)

	msg := fmt.Sprintf("%d/%d %s", s.pattern+1, game.PatternCount, game.PatternExpected(s.pattern))
	text.Draw(screen, msg, basicfont.Face7x13, 4, 16, color.RGBA{R: 0x00, G: 0xFF, B: 0x80, A: 0xFF})
}

func (s *selfTest) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.FBWidth * s.scale, game.FBHeight * s.scale
}
