package game

import "fmt"

// Wave timing.
const (
	waveStartTextMS   = 1000
	waveClearTextMS   = 1000
	waveCooldownMS    = 2000
	clearBlinkPhaseMS = 250 // two blinks over the clear second
)

// WaveState is the wave controller's state.
type WaveState uint8

const (
	WaveIdle WaveState = iota
	WaveActivePendingSpawn
	WaveActive
	WaveClear
	WaveCooldown
)

func (s WaveState) String() string {
	switch s {
	case WaveIdle:
		return "idle"
	case WaveActivePendingSpawn:
		return "pending-spawn"
	case WaveActive:
		return "active"
	case WaveClear:
		return "clear"
	case WaveCooldown:
		return "cooldown"
	}
	return "?"
}

// FlowController is the wave progression state machine. It owns no sprites:
// it counts kills, gates spawning through ShouldSpawnWave, and draws the
// "WAVE N" / "CLEAR" overlay text. The game state machine wires the shared
// log, overlay flags and tick counter at construction.
type FlowController struct {
	state            WaveState
	wave             uint8
	enemiesRemaining uint8
	spawnPending     bool

	stateStartMS    uint64
	waveTextStartMS uint64

	log  *EventLog
	ov   *Overlays
	tick *int
}

// Reset returns the controller to idle with no wave, as on game (re)start.
func (f *FlowController) Reset() {
	f.state = WaveIdle
	f.wave = 0
	f.enemiesRemaining = 0
	f.spawnPending = false
	f.stateStartMS = 0
	f.waveTextStartMS = 0
}

// State returns the current wave state.
func (f *FlowController) State() WaveState { return f.state }

// Wave returns the current wave number, 0 before the first wave.
func (f *FlowController) Wave() uint8 { return f.wave }

// EnemiesRemaining returns how many kills are left in the active wave.
func (f *FlowController) EnemiesRemaining() uint8 { return f.enemiesRemaining }

// EnemyCountForWave returns the cohort size: 3 on wave 1, growing by one per
// wave. Wave 0 has no enemies.
func (f *FlowController) EnemyCountForWave() uint8 {
	if f.wave == 0 {
		return 0
	}
	return 2 + f.wave
}

// StartWave arms wave n: spawn gate raised, overlay text stamped.
func (f *FlowController) StartWave(n uint8, now uint64) {
	f.wave = n
	f.state = WaveActivePendingSpawn
	f.spawnPending = true
	f.stateStartMS = now
	f.waveTextStartMS = now
	f.ov.WaveStart = true
	f.log.Logf(*f.tick, TagFlow, "Wave %d started", f.wave)
}

// Update drives the timer-based transitions. Kill-based transitions happen
// in NotifyEnemyKilled and the spawn gate in ShouldSpawnWave.
func (f *FlowController) Update(now uint64) {
	switch f.state {
	case WaveIdle:
		if f.wave == 0 {
			f.StartWave(1, now)
		}

	case WaveActivePendingSpawn:
		// Waiting for the adapter to consume the spawn gate.

	case WaveActive:
		// Waiting for kill notifications.

	case WaveClear:
		if now-f.stateStartMS >= waveClearTextMS {
			f.state = WaveCooldown
			f.stateStartMS = now
			f.log.Logf(*f.tick, TagFlow, "Cooldown...")
		}

	case WaveCooldown:
		if now-f.stateStartMS >= waveCooldownMS {
			f.StartWave(f.wave+1, now)
		}
	}
}

// NotifyEnemyKilled decrements the wave counter; only meaningful while the
// wave is active. Hitting zero enters CLEAR and raises its overlay.
func (f *FlowController) NotifyEnemyKilled(now uint64) {
	if f.state != WaveActive {
		return
	}
	if f.enemiesRemaining > 0 {
		f.enemiesRemaining--
	}
	f.log.Logf(*f.tick, TagFlow, "Enemy killed (remaining: %d)", f.enemiesRemaining)
	if f.enemiesRemaining == 0 {
		f.state = WaveClear
		f.stateStartMS = now
		f.ov.WaveClear = true
		f.log.Logf(*f.tick, TagFlow, "Wave %d cleared", f.wave)
	}
}

// ShouldSpawnWave is the one-shot spawn gate: the first call after StartWave
// consumes the pending flag, sets the cohort counter and activates the wave.
func (f *FlowController) ShouldSpawnWave() bool {
	if !f.spawnPending {
		return false
	}
	f.spawnPending = false
	f.enemiesRemaining = f.EnemyCountForWave()
	f.state = WaveActive
	return true
}

// Render draws the wave overlay text: "WAVE N" for a second after a wave
// starts, and "CLEAR" blinking twice over the clear second.
func (f *FlowController) Render(fb *Framebuffer, now uint64) {
	if f.state == WaveActive || f.state == WaveActivePendingSpawn {
		if now-f.waveTextStartMS < waveStartTextMS {
			text := fmt.Sprintf("WAVE %d", f.wave)
			fb.DrawText(CenteredX(text), 2, text)
		}
	}
	if f.state == WaveClear {
		elapsed := now - f.stateStartMS
		if elapsed < waveClearTextMS {
			phase := elapsed / clearBlinkPhaseMS // 0..3
			if phase == 0 || phase == 2 {
				fb.DrawText(CenteredX("CLEAR"), 2, "CLEAR")
			}
		}
	}
}
