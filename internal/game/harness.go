package game

import (
	"io"
	"math"
)

// HeadlessSim drives a real Game with a fake clock and a scripted input
// source. It is used by the package tests and by cmd/headless-report; it has
// no display and no audio. By default the sim starts mid-game in PLAYING
// with the wave controller parked in ACTIVE and no enemies, so scenarios
// place exactly the sprites they want; WithAutoWaves restores the normal
// wave progression.
type HeadlessSim struct {
	Game *Game

	nowMS   uint64
	buttons uint8
}

// SimOption is a builder function applied during construction.
type SimOption func(*HeadlessSim)

// WithPlayerAt poses the player at (x,y) facing along (dx,dy). The facing
// vector is normalized; the camera plane follows it.
func WithPlayerAt(x, y, dx, dy float64) SimOption {
	return func(s *HeadlessSim) {
		p := &s.Game.player
		p.X, p.Y = x, y
		n := math.Hypot(dx, dy)
		if n == 0 {
			dx, dy, n = 1, 0, 1
		}
		p.DirX, p.DirY = dx/n, dy/n
		p.PlaneX = -p.DirY * cameraPlaneHalf
		p.PlaneY = p.DirX * cameraPlaneHalf
	}
}

// WithEnemyAt seats one idle enemy at (x,y) and raises the wave's kill
// count to match. Fails silently past the table capacity the same way a
// live spawn would.
func WithEnemyAt(x, y float64) SimOption {
	return func(s *HeadlessSim) {
		g := s.Game
		g.registerManualEnemy(x, y)
	}
}

// WithHealth overrides the starting health.
func WithHealth(h uint8) SimOption {
	return func(s *HeadlessSim) { s.Game.player.Health = h }
}

// WithAmmo overrides the starting ammo.
func WithAmmo(a uint8) SimOption {
	return func(s *HeadlessSim) { s.Game.player.Ammo = a }
}

// WithLevel swaps the map.
func WithLevel(l *Level) SimOption {
	return func(s *HeadlessSim) { s.Game.level = l }
}

// WithAutoWaves restores the normal wave progression: the controller starts
// idle and wave 1 spawns on the first tick.
func WithAutoWaves() SimOption {
	return func(s *HeadlessSim) { s.Game.flow.Reset() }
}

// WithTitleScreen starts the sim on the title screen instead of mid-game.
func WithTitleScreen() SimOption {
	return func(s *HeadlessSim) { s.Game.state = StateTitle }
}

// WithLogSink echoes log lines to w as they are recorded.
func WithLogSink(w io.Writer) SimOption {
	return func(s *HeadlessSim) { s.Game.log.SetSink(w) }
}

// NewHeadlessSim builds the sim and applies the options in order.
func NewHeadlessSim(opts ...SimOption) *HeadlessSim {
	s := &HeadlessSim{nowMS: 1000}
	s.Game = NewGame(
		NullDisplay{},
		InputFunc(func() uint8 { return s.buttons }),
		ClockFunc(func() uint64 { return s.nowMS }),
	)
	// Default scenario posture: already playing, wave parked in ACTIVE with
	// zero required kills until enemies are placed.
	s.Game.state = StatePlaying
	s.Game.flow.state = WaveActive
	s.Game.flow.wave = 1
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// registerManualEnemy is the harness-side spawn: same seating as a live
// spawn but at an explicit position, and the wave owes one more kill.
func (g *Game) registerManualEnemy(x, y float64) {
	slot := -1
	for i := 1; i < MaxSprites; i++ {
		if !g.sprites[i].Active {
			slot = i
			break
		}
	}
	if slot == -1 {
		g.log.Logf(g.tick, TagSprite, "Sprite table full, dropping spawn")
		return
	}
	g.sprites[slot] = Sprite{
		X: x, Y: y,
		Kind:      SpriteEnemy,
		TextureID: SpriteTexEnemyIdle,
		Active:    true,
		State:     EnemyAlive,
		EnemyID:   g.nextEnemyID,
		AI:        AIIdle,
	}
	g.nextEnemyID++
	g.flow.enemiesRemaining++
}

// SetButtons replaces the current button mask.
func (s *HeadlessSim) SetButtons(mask uint8) { s.buttons = mask }

// Press adds buttons to the current mask.
func (s *HeadlessSim) Press(mask uint8) { s.buttons |= mask }

// Release removes buttons from the current mask.
func (s *HeadlessSim) Release(mask uint8) { s.buttons &^= mask }

// Tick advances the fake clock one tick period and runs one frame.
func (s *HeadlessSim) Tick() {
	s.nowMS += tickPeriodMS
	s.Game.Step()
}

// RunTicks runs n consecutive ticks with the current buttons.
func (s *HeadlessSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// RunMS runs enough whole ticks to cover ms of game time.
func (s *HeadlessSim) RunMS(ms uint64) {
	for t := uint64(0); t < ms; t += tickPeriodMS {
		s.Tick()
	}
}

// FireOnce presses FIRE for exactly one tick and releases it, producing a
// clean edge.
func (s *HeadlessSim) FireOnce() {
	s.Press(ButtonFire)
	s.Tick()
	s.Release(ButtonFire)
}

// NowMS returns the fake clock.
func (s *HeadlessSim) NowMS() uint64 { return s.nowMS }

// Enemy returns enemy slot i (0..2) of the sprite table.
func (s *HeadlessSim) Enemy(i int) *Sprite { return &s.Game.sprites[1+i] }

// Framebuffer returns the live framebuffer.
func (s *HeadlessSim) Framebuffer() *Framebuffer { return &s.Game.fb }

// Depth returns the live depth buffer.
func (s *HeadlessSim) Depth() *DepthBuffer { return &s.Game.depth }

// Overlays returns the live overlay flags. They are cleared at the end of
// every rendered frame, so mid-test reads see only what the current frame
// raised.
func (s *HeadlessSim) Overlays() *Overlays { return &s.Game.ov }

// LastFrameOverlays returns the flags the most recent frame rendered and
// consumed.
func (s *HeadlessSim) LastFrameOverlays() Overlays { return s.Game.lastOv }
