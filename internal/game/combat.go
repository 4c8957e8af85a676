package game

import "math"

// Combat and enemy AI tuning.
const (
	combatHitDistance = 50.0 // max range of a shot
	hitWindowMin      = 62   // central-ray acceptance window, center +-2 columns
	hitWindowMax      = 66
	enemyHitFrames    = 3 // frames an enemy shows the HIT pose before dying

	awarenessRange = 20.0  // tiles, IDLE -> CHASE
	attackRange    = 2.0   // tiles, CHASE -> ATTACK
	enemyMoveSpeed = 0.035 // tiles per tick while chasing
	attackCooldown = 1000  // ms between enemy attacks
	enemyAttackDmg = 7     // HP per enemy attack
)

// handleFire resolves an edge-triggered trigger pull: spends a round, raises
// the weapon flash, and tests every live enemy against the central-ray
// acceptance window. The closest passing enemy takes the hit; ties go to the
// lowest sprite index by iteration order.
func (g *Game) handleFire(now uint64) {
	if g.player.Ammo == 0 {
		g.log.Logf(g.tick, TagCombat, "Dry fire, no ammo")
		g.beeper.Beep(120, 20)
		return
	}
	g.player.Ammo--
	g.ov.WeaponFlash = true
	g.setShake(1)
	g.beeper.Beep(880, 20)
	g.log.Logf(g.tick, TagCombat, "Fire (ammo left: %d)", g.player.Ammo)

	view := g.player.View()
	best := -1
	bestDist := 0.0
	for i := range g.sprites {
		s := &g.sprites[i]
		if !s.Active || s.Kind != SpriteEnemy || s.State != EnemyAlive {
			continue
		}
		col, dist, ok := projectSprite(view, s.X, s.Y)
		if !ok || dist > combatHitDistance {
			continue
		}
		if col < hitWindowMin || col > hitWindowMax {
			continue
		}
		// The wall must not be in front of the enemy in the aimed column.
		if g.depth[col] > EncodeDepth(dist) {
			continue
		}
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	if best == -1 {
		g.log.Logf(g.tick, TagCombat, "Miss")
		return
	}

	s := &g.sprites[best]
	s.State = EnemyHit
	s.HitFramesLeft = enemyHitFrames
	s.AI = AIHit
	g.ov.HitSpark = true
	g.beeper.Beep(1320, 15)
	g.log.Logf(g.tick, TagCombat, "Enemy %d hit at distance %.1f", s.EnemyID, bestDist)
	g.log.Logf(g.tick, TagCombatFX, "Hit confirm")
}

// updateEnemyAI advances the behavioural state machine of every live enemy.
// Runs before combat in the tick, so a kill registered this frame still
// renders as HIT this frame and DEAD only after the countdown.
func (g *Game) updateEnemyAI(now uint64) {
	for i := range g.sprites {
		s := &g.sprites[i]
		if !s.Active || s.Kind != SpriteEnemy || s.State != EnemyAlive {
			continue
		}
		d := math.Hypot(g.player.X-s.X, g.player.Y-s.Y)

		switch s.AI {
		case AIIdle:
			if d < awarenessRange {
				g.logAIChange(s, AIChase)
				s.AI = AIChase
			}

		case AIChase:
			switch {
			case d < attackRange:
				g.logAIChange(s, AIAttack)
				s.AI = AIAttack
				s.HasAttacked = false
			case d >= awarenessRange:
				g.logAIChange(s, AIIdle)
				s.AI = AIIdle
			default:
				g.moveEnemyToward(s, d)
			}

		case AIAttack:
			if d > attackRange {
				g.logAIChange(s, AIChase)
				s.AI = AIChase
				break
			}
			if !s.HasAttacked || now-s.LastAttackMS >= attackCooldown {
				s.HasAttacked = true
				s.LastAttackMS = now
				g.registerDamageSource(s.X, s.Y)
				g.log.Logf(g.tick, TagEnemy, "Enemy %d attacks", s.EnemyID)
				g.applyPlayerDamage(enemyAttackDmg)
			}
		}
	}
}

func (g *Game) logAIChange(s *Sprite, to AIState) {
	g.log.Logf(g.tick, TagAI, "Enemy %d %s -> %s", s.EnemyID, s.AI, to)
}

// moveEnemyToward steps the enemy along the unit vector to the player,
// checking each axis against the map so enemies slide around pillars.
func (g *Game) moveEnemyToward(s *Sprite, d float64) {
	ux := (g.player.X - s.X) / d
	uy := (g.player.Y - s.Y) / d
	nx := s.X + ux*enemyMoveSpeed
	if !g.level.IsWall(int(nx), int(s.Y)) {
		s.X = nx
	}
	ny := s.Y + uy*enemyMoveSpeed
	if !g.level.IsWall(int(s.X), int(ny)) {
		s.Y = ny
	}
}

// decayHitSprites runs the HIT countdown at the start of the tick: an enemy
// hit on tick N shows the HIT pose on frames N..N+2 and is DEAD on frame
// N+3. The death raises the one-frame crack overlay and tells the wave
// controller exactly once.
func (g *Game) decayHitSprites(now uint64) {
	for i := range g.sprites {
		s := &g.sprites[i]
		if !s.Active || s.Kind != SpriteEnemy || s.State != EnemyHit {
			continue
		}
		s.HitFramesLeft--
		if s.HitFramesLeft > 0 {
			continue
		}
		s.State = EnemyDead
		s.AI = AIDead
		s.Active = false
		g.ov.EnemyDeath = true
		g.beeper.Beep(220, 60)
		g.log.Logf(g.tick, TagEnemy, "Enemy %d died", s.EnemyID)
		g.flow.NotifyEnemyKilled(now)
		g.maybeSpawnReplacement(now)
	}
}

// registerDamageSource records the attacker's world position; the feedback
// renderer derives the damage direction from it.
func (g *Game) registerDamageSource(ex, ey float64) {
	g.ov.DamageSourceX = ex
	g.ov.DamageSourceY = ey
}

// applyPlayerDamage saturates health at zero and raises the one-frame damage
// feedback: vignette, direction indicator and a 2px screen shake.
func (g *Game) applyPlayerDamage(dmg uint8) {
	if dmg >= g.player.Health {
		g.player.Health = 0
	} else {
		g.player.Health -= dmg
	}
	g.ov.PlayerDamage = true
	g.ov.DamageDir = damageDirection(g.player.X, g.player.Y, g.ov.DamageSourceX, g.ov.DamageSourceY)
	g.setShake(2)
	g.beeper.Beep(110, 40)
	g.log.Logf(g.tick, TagPlayer, "Took %d damage", dmg)
	g.log.Logf(g.tick, TagPlayer, "Health: %d", g.player.Health)
	g.log.Logf(g.tick, TagPlayerFX, "Damage direction: %s", g.ov.DamageDir)
}

// setShake arms the screen shake for this frame's world pass. The sign flips
// with tick parity so repeated hits jitter instead of leaning one way. A
// pending larger magnitude is never downgraded.
func (g *Game) setShake(magnitude int) {
	if abs(g.ov.ShakeX) >= magnitude {
		return
	}
	if g.tick%2 == 1 {
		magnitude = -magnitude
	}
	g.ov.ShakeX = magnitude
	g.ov.ShakeY = -magnitude
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
