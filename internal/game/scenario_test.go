package game

import "testing"

// dumpLog prints the run's event log so it shows under `go test -v`.
func dumpLog(t *testing.T, sim *HeadlessSim) {
	t.Helper()
	for _, e := range sim.Game.Log().Entries() {
		t.Log(e.String())
	}
}

// --- Scenario: fire with no enemy ---

func TestScenario_FireWithNoEnemy(t *testing.T) {
	t.Log("=== Fire with no enemy ===")
	t.Log("--- Setup: player at (2,2) facing +x, empty sprite table ---")

	sim := NewHeadlessSim(WithPlayerAt(2, 2, 1, 0))
	sim.FireOnce()
	dumpLog(t, sim)

	if !sim.LastFrameOverlays().WeaponFlash {
		t.Error("weapon flash should be raised for the fire frame")
	}
	for i := 0; i < maxEnemies; i++ {
		if sim.Enemy(i).Active {
			t.Errorf("enemy slot %d should be empty", i)
		}
	}
	// Holding the button for more frames must not discharge again.
	sim.Press(ButtonFire)
	sim.RunTicks(5)
	if got := sim.Game.Log().Count(TagCombat, "Fire ("); got != 1 {
		t.Errorf("fire discharged %d times, want 1", got)
	}
}

// --- Scenario: straight-on kill ---

func TestScenario_StraightOnKill(t *testing.T) {
	t.Log("=== Straight-on kill ===")
	t.Log("--- Setup: player at (2,2) facing +x, single enemy at (8,2) ---")

	sim := NewHeadlessSim(WithPlayerAt(2, 2, 1, 0), WithEnemyAt(8, 2))
	before := sim.Game.EnemiesRemaining()

	sim.FireOnce()
	e := sim.Enemy(0)
	if e.State != EnemyHit {
		t.Fatalf("enemy state = %v after the fire tick, want HIT", e.State)
	}
	if e.HitFramesLeft != 3 {
		t.Fatalf("hit_frames_left = %d, want 3", e.HitFramesLeft)
	}

	sim.RunTicks(2)
	if e.State != EnemyHit {
		t.Fatal("enemy should still be dying two ticks later")
	}

	sim.Tick()
	dumpLog(t, sim)
	if e.State != EnemyDead {
		t.Fatalf("enemy state = %v three ticks after the hit, want DEAD", e.State)
	}
	if got := sim.Game.EnemiesRemaining(); got != before-1 {
		t.Errorf("enemies remaining = %d, want %d", got, before-1)
	}
	if !sim.LastFrameOverlays().EnemyDeath {
		t.Error("enemy death overlay should be raised on the transition tick")
	}
	if got := sim.Game.Log().Count(TagFlow, "Enemy killed"); got != 1 {
		t.Errorf("kill notified %d times, want exactly once", got)
	}
}

// --- Scenario: wave progression ---

func TestScenario_WaveProgression(t *testing.T) {
	t.Log("=== Wave progression ===")
	t.Log("--- Setup: fresh game with automatic waves ---")

	sim := NewHeadlessSim(WithAutoWaves())
	sim.Tick()

	if got := sim.Game.Wave(); got != 1 {
		t.Fatalf("wave = %d after first tick, want 1", got)
	}
	if got := sim.Game.EnemiesRemaining(); got != 3 {
		t.Fatalf("wave 1 enemies = %d, want 3", got)
	}
	if got := sim.Game.liveEnemyCount(); got != 3 {
		t.Fatalf("live enemies = %d, want 3", got)
	}

	t.Log("--- Killing the wave 1 cohort ---")
	for i := 0; i < maxEnemies; i++ {
		e := sim.Enemy(i)
		e.State = EnemyHit
		e.HitFramesLeft = 1
	}
	sim.Tick() // countdown expires, all three die this tick
	if sim.Game.flow.State() != WaveClear {
		t.Fatalf("flow state = %s after clearing, want clear", sim.Game.flow.State())
	}

	t.Log("--- CLEAR second, then cooldown, then wave 2 ---")
	sim.RunMS(1000)
	if got := sim.Game.flow.State(); got != WaveCooldown {
		t.Fatalf("flow state = %s after the clear second, want cooldown", got)
	}
	sim.RunMS(2000)
	sim.Tick()
	dumpLog(t, sim)

	if got := sim.Game.Wave(); got != 2 {
		t.Fatalf("wave = %d, want 2", got)
	}
	if got := sim.Game.EnemiesRemaining(); got != 4 {
		t.Errorf("wave 2 enemies = %d, want 4", got)
	}
	if !sim.Game.Log().Has(TagFlow, "Wave 2 started") {
		t.Error("wave 2 start not logged")
	}
}

// --- Scenario: damage from the left ---

func TestScenario_DamageFromLeft(t *testing.T) {
	t.Log("=== Damage from the left ===")
	t.Log("--- Setup: enemy at (1,2), player at (2,2) ---")

	sim := NewHeadlessSim(WithPlayerAt(2, 2, 1, 0), WithEnemyAt(1, 2))
	// Tick 1: idle->chase, tick 2: chase->attack, tick 3: the strike.
	sim.RunTicks(3)
	dumpLog(t, sim)

	if got := sim.Game.Health(); got != PlayerMaxHealth-enemyAttackDmg {
		t.Fatalf("health = %d, want %d", got, PlayerMaxHealth-enemyAttackDmg)
	}
	last := sim.LastFrameOverlays()
	if !last.PlayerDamage {
		t.Error("player damage overlay should be raised for the strike frame")
	}
	if last.DamageDir != DamageLeft {
		t.Errorf("damage direction = %s, want LEFT", last.DamageDir)
	}
	// The strike frame carries the left edge indicator and the vignette.
	fb := sim.Framebuffer()
	if !fb.Pixel(2, 30) {
		t.Error("left edge indicator missing from the strike frame")
	}
	if !fb.Pixel(0, 0) {
		t.Error("vignette missing from the strike frame")
	}
}

// --- Scenario: death and restart ---

func TestScenario_DeathAndRestart(t *testing.T) {
	t.Log("=== Death and restart ===")
	t.Log("--- Setup: mid-game, absorbing repeated 7HP hits ---")

	sim := NewHeadlessSim(WithPlayerAt(2, 2, 1, 0))
	sim.Game.registerDamageSource(1, 2)
	for i := 0; i < 14; i++ {
		sim.Game.applyPlayerDamage(enemyAttackDmg)
	}
	if got := sim.Game.Health(); got != 2 {
		t.Fatalf("health = %d after fourteen hits, want 2", got)
	}
	sim.Game.applyPlayerDamage(enemyAttackDmg)
	if got := sim.Game.Health(); got != 0 {
		t.Fatalf("health = %d, want saturated 0", got)
	}

	sim.Tick()
	if got := sim.Game.State(); got != StateGameOver {
		t.Fatalf("state = %s at zero health, want game-over", got)
	}

	t.Log("--- Fire edge restarts ---")
	sim.FireOnce()
	dumpLog(t, sim)
	if got := sim.Game.State(); got != StatePlaying {
		t.Fatalf("state = %s after restart edge, want playing", got)
	}
	if got := sim.Game.Health(); got != PlayerMaxHealth {
		t.Errorf("health = %d after restart, want %d", got, PlayerMaxHealth)
	}
	if got := sim.Game.Ammo(); got != InitialAmmo {
		t.Errorf("ammo = %d after restart, want %d", got, InitialAmmo)
	}
}

// --- Scenario: depth occlusion ---

func TestScenario_DepthOcclusion(t *testing.T) {
	t.Log("=== Depth occlusion ===")
	t.Log("--- Setup: wall cell at (5,2), enemy behind it at (7.5,2.5) ---")

	level := roomLevel(t, [2]int{5, 2})
	sim := NewHeadlessSim(
		WithLevel(level),
		WithPlayerAt(2.5, 2.5, 1, 0),
		WithEnemyAt(7.5, 2.5),
	)
	sim.Tick() // fill the depth buffer
	if got, want := sim.Depth()[64], EncodeDepth(2.5); got != want {
		t.Fatalf("wall depth = %d, want %d", got, want)
	}

	sim.FireOnce()
	if sim.Enemy(0).State != EnemyAlive {
		t.Error("enemy behind the wall must be protected by occlusion")
	}

	t.Log("--- Enemy in front of the same wall is exposed ---")
	sim2 := NewHeadlessSim(
		WithLevel(level),
		WithPlayerAt(2.5, 2.5, 1, 0),
		WithEnemyAt(4.2, 2.5),
	)
	sim2.Tick()
	sim2.FireOnce()
	dumpLog(t, sim2)
	if sim2.Enemy(0).State != EnemyHit {
		t.Error("enemy in front of the wall should take the hit")
	}
}

// --- Scenario: title flow ---

func TestScenario_TitleToPlaying(t *testing.T) {
	t.Log("=== Title to playing ===")

	sim := NewHeadlessSim(WithTitleScreen())
	sim.RunTicks(3)
	if got := sim.Game.State(); got != StateTitle {
		t.Fatalf("state = %s without input, want title", got)
	}

	sim.FireOnce()
	dumpLog(t, sim)
	if got := sim.Game.State(); got != StatePlaying {
		t.Fatalf("state = %s after the fire edge, want playing", got)
	}
	// The fire edge that starts the game must not also discharge in game.
	if sim.Game.Log().Has(TagCombat, "Fire (") {
		t.Error("the starting edge must not double as a trigger pull")
	}
}
