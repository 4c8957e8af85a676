package game

import "strings"

// Frame pacing.
const tickPeriodMS = 50 // 20 Hz target

// GameState is the top-level screen state.
type GameState uint8

const (
	StateTitle GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "?"
}

// spawnPoints are the world positions waves draw enemies from, visited round
// robin. All sit on open floor of the default map, away from the player
// start.
var spawnPoints = [...][2]float64{
	{10.5, 10.5},
	{30.5, 20.5},
	{50.5, 10.5},
	{20.5, 40.5},
	{44.5, 44.5},
	{10.5, 50.5},
}

// Game owns every piece of mutable state: player, sprite table, depth
// buffer, framebuffer, wave controller, overlay flags and the event log.
// The render passes receive views of this state and never keep their own.
// One Game is one instance; tests run many side by side.
type Game struct {
	fb    Framebuffer
	depth DepthBuffer
	level *Level

	player  Player
	sprites [MaxSprites]Sprite

	flow   FlowController
	ov     Overlays
	lastOv Overlays // what the just-rendered frame consumed, for inspection

	state    GameState
	prevFire bool // previous frame's FIRE bit, for edge detection
	fireHeld bool

	tick        int
	lastTickMS  uint64
	haveTicked  bool
	spawnCursor int
	nextEnemyID uint8

	display Display
	input   InputSource
	clock   Clock
	beeper  Beeper
	log     *EventLog

	// Throttle anchors for the once-per-second screen render logs.
	titleLogMS    uint64
	gameOverLogMS uint64
}

// GameOption adjusts a Game at construction.
type GameOption func(*Game)

// WithBeeper installs an audio transducer for the feedback beeps.
func WithBeeper(b Beeper) GameOption {
	return func(g *Game) { g.beeper = b }
}

// WithEventLog shares an externally owned event log.
func WithEventLog(l *EventLog) GameOption {
	return func(g *Game) { g.log = l }
}

// NewGame wires the core to its external adapters and starts on the title
// screen. There is no second init: constructing the Game is the lifecycle.
func NewGame(display Display, input InputSource, clock Clock, opts ...GameOption) *Game {
	g := &Game{
		display: display,
		input:   input,
		clock:   clock,
		beeper:  NopBeeper{},
		log:     NewEventLog(),
		level:   DefaultLevel,
		state:   StateTitle,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.flow.log = g.log
	g.flow.ov = &g.ov
	g.flow.tick = &g.tick
	g.player = NewPlayer()
	g.initSprites()
	g.log.Logf(0, TagGame, "Initialized")
	return g
}

// initSprites clears the table and seats the weapon in slot 0. Enemy slots
// 1..3 start inactive.
func (g *Game) initSprites() {
	for i := range g.sprites {
		g.sprites[i] = Sprite{}
	}
	g.sprites[0] = Sprite{
		Kind:      SpriteWeapon,
		TextureID: SpriteTexWeaponIdle,
		Active:    true,
	}
	g.spawnCursor = 0
	g.nextEnemyID = 1
}

// Log exposes the event log for frontends and tests.
func (g *Game) Log() *EventLog { return g.log }

// State returns the current top-level state.
func (g *Game) State() GameState { return g.state }

// Tick returns the number of ticks run so far.
func (g *Game) Tick() int { return g.tick }

// Health returns the player's health.
func (g *Game) Health() uint8 { return g.player.Health }

// Ammo returns the player's remaining rounds.
func (g *Game) Ammo() uint8 { return g.player.Ammo }

// Wave returns the current wave number.
func (g *Game) Wave() uint8 { return g.flow.Wave() }

// EnemiesRemaining returns kills left in the active wave.
func (g *Game) EnemiesRemaining() uint8 { return g.flow.EnemiesRemaining() }

// FramebufferSnapshot copies the current framebuffer.
func (g *Game) FramebufferSnapshot() Framebuffer { return g.fb }

// DumpFramebuffer renders the framebuffer as 64 rows of '#'/'.' characters,
// for headless reports and debugging.
func (g *Game) DumpFramebuffer() string {
	var b strings.Builder
	b.Grow((FBWidth + 1) * FBHeight)
	for y := 0; y < FBHeight; y++ {
		for x := 0; x < FBWidth; x++ {
			if g.fb.Pixel(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Step runs at most one frame. It returns true when a frame was rendered
// and blitted, false when the call was inside the current 50ms budget. A
// late frame runs immediately with no catch-up: the tick rate degrades
// instead of bursting.
func (g *Game) Step() bool {
	now := g.clock.NowMS()
	if g.haveTicked && now-g.lastTickMS < tickPeriodMS {
		return false
	}
	g.lastTickMS = now
	g.haveTicked = true
	g.runFrame(now)
	if err := g.display.Blit(&g.fb); err != nil {
		g.log.Logf(g.tick, TagGame, "Blit failed: %v", err)
	}
	return true
}

// runFrame executes one full tick: input, simulation, render pipeline.
func (g *Game) runFrame(now uint64) {
	g.tick++
	buttons := g.input.Read()
	g.fireHeld = buttons&ButtonFire != 0
	fireEdge := g.fireHeld && !g.prevFire

	switch g.state {
	case StateTitle:
		RenderTitle(&g.fb, now)
		if now-g.titleLogMS >= 1000 {
			g.titleLogMS = now
			g.log.Logf(g.tick, TagTitle, "Rendering title screen")
		}
		if ShouldStartGame(fireEdge) {
			g.startPlaying(now)
		}

	case StateGameOver:
		RenderGameOver(&g.fb, now)
		if now-g.gameOverLogMS >= 1000 {
			g.gameOverLogMS = now
			g.log.Logf(g.tick, TagGameOver, "Rendering game over screen")
		}
		if ShouldRestartGame(fireEdge) {
			g.startPlaying(now)
		}

	case StatePlaying:
		g.advanceTick(now, buttons, fireEdge)
		if g.player.Health == 0 {
			g.state = StateGameOver
			g.ov.ClearFrameFlags()
			g.beeper.Beep(80, 200)
			g.log.Logf(g.tick, TagGameOver, "Player died on wave %d", g.flow.Wave())
			RenderGameOver(&g.fb, now)
		} else {
			g.renderPlayingFrame(now)
		}
	}

	g.prevFire = g.fireHeld
}

// advanceTick is the simulation half of the frame: player movement, wave
// flow, the HIT countdown, enemy AI, then combat. AI runs before combat so
// this frame's kill still renders in its HIT pose.
func (g *Game) advanceTick(now uint64, buttons uint8, fireEdge bool) {
	if buttons&ButtonUp != 0 {
		g.player.Move(g.level, 1)
	}
	if buttons&ButtonDown != 0 {
		g.player.Move(g.level, -1)
	}
	if buttons&ButtonLeft != 0 {
		g.player.Rotate(-playerRotStep)
	}
	if buttons&ButtonRight != 0 {
		g.player.Rotate(playerRotStep)
	}

	g.flow.Update(now)
	if g.flow.ShouldSpawnWave() {
		g.spawnWave(now)
	}

	g.decayHitSprites(now)
	g.updateEnemyAI(now)

	if fireEdge {
		g.handleFire(now)
	}
}

// renderPlayingFrame runs the render half of the pipeline in its normative
// order, then consumes the one-frame overlay flags.
func (g *Game) renderPlayingFrame(now uint64) {
	g.fb.Clear()
	RenderWorld(&g.fb, &g.depth, g.level, g.player.View(), g.ov.ShakeX, g.ov.ShakeY)
	g.renderSprites()
	RenderHUD(&g.fb, g.player.Health, g.player.Ammo, now)
	g.flow.Render(&g.fb, now)
	RenderFeedback(&g.fb, &g.ov)
	RenderGameFeel(&g.fb, &g.ov, g.player.Health, now)
	g.lastOv = g.ov
	g.ov.ClearFrameFlags()
}

// renderSprites draws visible enemies back to front under depth occlusion,
// then the weapon on top of everything.
func (g *Game) renderSprites() {
	view := g.player.View()

	type visible struct {
		idx  int
		col  int
		dist float64
	}
	var list [maxEnemies]visible
	n := 0
	for i := range g.sprites {
		s := &g.sprites[i]
		if !s.Active || s.Kind != SpriteEnemy || s.State == EnemyDead {
			continue
		}
		col, dist, ok := projectSprite(view, s.X, s.Y)
		if !ok || col < 0 || col >= FBWidth {
			continue
		}
		list[n] = visible{idx: i, col: col, dist: dist}
		n++
	}

	// Painter's order: farthest first. Bubble sort is fine for three.
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if list[j].dist < list[j+1].dist {
				list[j], list[j+1] = list[j+1], list[j]
			}
		}
	}

	for i := 0; i < n; i++ {
		s := &g.sprites[list[i].idx]
		switch s.State {
		case EnemyAlive:
			drawWorldSprite(&g.fb, &g.depth, &SpriteTextures[SpriteTexEnemyIdle],
				list[i].col, spriteCenterY, list[i].dist, false)
		case EnemyHit:
			// Downward recoil plus a one-frame white flood.
			drawWorldSprite(&g.fb, &g.depth, &SpriteTextures[SpriteTexEnemyHit],
				list[i].col, spriteCenterY+hitRecoilY, list[i].dist, true)
		}
	}

	weaponTex := &SpriteTextures[SpriteTexWeaponIdle]
	if g.fireHeld {
		weaponTex = &SpriteTextures[SpriteTexWeaponFire]
	}
	drawWeapon(&g.fb, weaponTex, g.ov.WeaponFlash)
}

// spawnWave places the initial cohort, up to the sprite table's enemy
// capacity; the rest trickle in as replacements after kills.
func (g *Game) spawnWave(now uint64) {
	count := int(g.flow.EnemiesRemaining())
	if count > maxEnemies {
		count = maxEnemies
	}
	g.beeper.Beep(660, 30)
	for i := 0; i < count; i++ {
		g.spawnEnemy(now)
	}
}

// maybeSpawnReplacement tops the table back up while the wave still owes
// more kills than there are live enemies.
func (g *Game) maybeSpawnReplacement(now uint64) {
	if g.flow.State() != WaveActive {
		return
	}
	if int(g.flow.EnemiesRemaining()) > g.liveEnemyCount() {
		g.spawnEnemy(now)
	}
}

func (g *Game) liveEnemyCount() int {
	n := 0
	for i := range g.sprites {
		s := &g.sprites[i]
		if s.Active && s.Kind == SpriteEnemy && s.State != EnemyDead {
			n++
		}
	}
	return n
}

// spawnEnemy seats one enemy at the next spawn point. A full table drops the
// spawn with a log line and the game continues.
func (g *Game) spawnEnemy(now uint64) {
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
	p := spawnPoints[g.spawnCursor%len(spawnPoints)]
	g.spawnCursor++
	g.sprites[slot] = Sprite{
		X: p[0], Y: p[1],
		Kind:      SpriteEnemy,
		TextureID: SpriteTexEnemyIdle,
		Active:    true,
		State:     EnemyAlive,
		EnemyID:   g.nextEnemyID,
		AI:        AIIdle,
	}
	g.log.Logf(g.tick, TagSprite, "Spawned enemy %d at (%.1f,%.1f)", g.nextEnemyID, p[0], p[1])
	g.nextEnemyID++
}

// startPlaying resets the whole game state and enters PLAYING. Used for
// both the title start and the game-over restart.
func (g *Game) startPlaying(now uint64) {
	g.player.Reset()
	g.initSprites()
	g.flow.Reset()
	g.ov.Reset()
	g.state = StatePlaying
	g.log.Logf(g.tick, TagGame, "Game state reset")
}
