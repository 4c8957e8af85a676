package game

import "testing"

// checkBounds verifies the resource invariants that must hold in every
// reachable state.
func checkBounds(t *testing.T, sim *HeadlessSim) {
	t.Helper()
	g := sim.Game
	if g.Health() > PlayerMaxHealth {
		t.Errorf("health %d above max", g.Health())
	}
	if g.flow.State() == WaveActive {
		if max := 2 + g.Wave(); g.EnemiesRemaining() > max {
			t.Errorf("remaining %d above cohort size %d", g.EnemiesRemaining(), max)
		}
	}
}

// checkOverlaysConsumed verifies every one-frame flag was cleared by the end
// of the frame.
func checkOverlaysConsumed(t *testing.T, sim *HeadlessSim) {
	t.Helper()
	ov := sim.Overlays()
	if ov.WeaponFlash || ov.HitSpark || ov.EnemyDeath || ov.PlayerDamage || ov.WaveStart || ov.WaveClear {
		t.Errorf("overlay flag survived the frame: %+v", *ov)
	}
	if ov.ShakeX != 0 || ov.ShakeY != 0 {
		t.Errorf("shake survived the frame: (%d,%d)", ov.ShakeX, ov.ShakeY)
	}
}

// checkSpriteTable verifies the structural sprite invariants: one weapon in
// slot 0, unique enemy ids, dead implies inactive.
func checkSpriteTable(t *testing.T, sim *HeadlessSim) {
	t.Helper()
	g := sim.Game
	weapons := 0
	seen := map[uint8]bool{}
	for i := range g.sprites {
		s := &g.sprites[i]
		if s.Active && s.Kind == SpriteWeapon {
			weapons++
		}
		if s.Kind == SpriteEnemy && s.Active {
			if s.State == EnemyDead {
				t.Errorf("slot %d: dead enemy still active", i)
			}
			if seen[s.EnemyID] {
				t.Errorf("duplicate enemy id %d", s.EnemyID)
			}
			seen[s.EnemyID] = true
		}
	}
	if weapons != 1 {
		t.Errorf("%d active weapon sprites, want 1", weapons)
	}
}

func TestInvariants_ScriptedSkirmish(t *testing.T) {
	sim := NewHeadlessSim(WithAutoWaves())
	for i := 0; i < 400; i++ {
		var mask uint8
		if i%3 != 2 {
			mask |= ButtonUp
		}
		if i%30 >= 25 {
			mask |= ButtonLeft
		}
		if i%6 == 0 {
			mask |= ButtonFire
		}
		sim.SetButtons(mask)
		sim.Tick()

		checkBounds(t, sim)
		checkOverlaysConsumed(t, sim)
		checkSpriteTable(t, sim)
		if t.Failed() {
			t.Fatalf("invariant broken at tick %d", i+1)
		}
	}
}

func TestInvariant_HUDBandExclusive(t *testing.T) {
	// A quiet frame's HUD band must be byte-identical to a pure HUD render:
	// whatever the world and sprite passes scribbled there is gone.
	sim := NewHeadlessSim(WithPlayerAt(3.5, 3.5, 1, 0))
	sim.Tick()

	var expected Framebuffer
	RenderHUD(&expected, PlayerMaxHealth, InitialAmmo, sim.NowMS())

	fb := sim.Framebuffer()
	for i := hudBandFirstPage * FBWidth; i < FBBytes; i++ {
		if fb[i] != expected[i] {
			x := i % FBWidth
			page := i / FBWidth
			t.Fatalf("band byte mismatch at page %d x=%d: %#02x != %#02x", page, x, fb[i], expected[i])
		}
	}
}

func TestInvariant_AmmoNeverWraps(t *testing.T) {
	sim := NewHeadlessSim(WithPlayerAt(2, 2, 1, 0), WithAmmo(2))
	for i := 0; i < 8; i++ {
		sim.FireOnce()
		sim.Tick()
	}
	if got := sim.Game.Ammo(); got != 0 {
		t.Errorf("ammo = %d after overfiring, want pinned at 0", got)
	}
}

func TestInvariant_FireEdgeDiscipline(t *testing.T) {
	sim := NewHeadlessSim(WithPlayerAt(2, 2, 1, 0))
	sim.Press(ButtonFire)
	sim.RunTicks(40)
	if got := sim.Game.Log().Count(TagCombat, "Fire ("); got != 1 {
		t.Errorf("held trigger produced %d discharges over 40 ticks, want 1", got)
	}
}

func TestInvariant_DepthResetEveryFrame(t *testing.T) {
	// In an open area the center column is sky; a previous frame's close
	// wall must not linger in the depth buffer.
	level := roomLevel(t, [2]int{5, 28})
	sim := NewHeadlessSim(WithLevel(level), WithPlayerAt(2.5, 28.5, 1, 0))
	sim.Tick()
	if sim.Depth()[64] == depthFar {
		t.Fatal("wall ahead should register")
	}
	// Move to the middle of the room: nothing within the DDA budget ahead.
	WithPlayerAt(30.5, 28.5, 1, 0)(sim)
	sim.Tick()
	if sim.Depth()[64] != depthFar {
		t.Error("stale depth survived the frame reset")
	}
}

func TestInvariant_RestartResetsEverything(t *testing.T) {
	sim := NewHeadlessSim(WithAutoWaves())
	sim.Press(ButtonFire)
	sim.RunTicks(60)
	sim.Release(ButtonFire)

	g := sim.Game
	g.registerDamageSource(1, 1)
	for g.Health() > 0 {
		g.applyPlayerDamage(enemyAttackDmg)
	}
	sim.Tick()
	if g.State() != StateGameOver {
		t.Fatal("expected game over")
	}

	sim.FireOnce()
	if g.State() != StatePlaying {
		t.Fatal("expected restart")
	}
	if g.Health() != PlayerMaxHealth || g.Ammo() != InitialAmmo {
		t.Error("player not reset")
	}
	if g.Wave() != 0 && g.Wave() != 1 {
		t.Errorf("wave = %d after restart, want fresh progression", g.Wave())
	}
	for i := 0; i < maxEnemies; i++ {
		if sim.Enemy(i).Active {
			t.Errorf("enemy slot %d survived the restart", i)
		}
	}
	checkOverlaysConsumed(t, sim)
}
