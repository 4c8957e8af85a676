package game

// Game-feel thresholds.
const (
	lowHealthTickMax = 30 // the 2px warning tick shows while 0 < health < 30
)

// DamageDirection is the dominant world axis from player to attacker.
type DamageDirection uint8

const (
	DamageNone DamageDirection = iota
	DamageFront
	DamageBack
	DamageLeft
	DamageRight
)

func (d DamageDirection) String() string {
	switch d {
	case DamageFront:
		return "FRONT"
	case DamageBack:
		return "BACK"
	case DamageLeft:
		return "LEFT"
	case DamageRight:
		return "RIGHT"
	}
	return "NONE"
}

// damageDirection classifies the attacker's position by dominant axis. A
// near-zero vector counts as front.
func damageDirection(px, py, ex, ey float64) DamageDirection {
	dx := ex - px
	dy := ey - py
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	if adx < 0.001 && ady < 0.001 {
		return DamageFront
	}
	if adx > ady {
		if dx > 0 {
			return DamageRight
		}
		return DamageLeft
	}
	if dy > 0 {
		return DamageBack
	}
	return DamageFront
}

// Overlays collects the one-frame feedback flags raised during a tick and
// consumed by the same tick's feedback passes, plus the shake offset for the
// world pass and the last damage source coordinates (data, not a flag).
type Overlays struct {
	WeaponFlash  bool
	HitSpark     bool
	EnemyDeath   bool
	PlayerDamage bool
	WaveStart    bool
	WaveClear    bool

	DamageDir      DamageDirection
	ShakeX, ShakeY int

	// World position of the most recent attacker.
	DamageSourceX, DamageSourceY float64
}

// Reset clears everything, including the damage source memory.
func (o *Overlays) Reset() {
	*o = Overlays{}
}

// ClearFrameFlags drops all one-frame state at the end of a rendered frame.
// The damage source coordinates survive; they are history, not an effect.
func (o *Overlays) ClearFrameFlags() {
	o.WeaponFlash = false
	o.HitSpark = false
	o.EnemyDeath = false
	o.PlayerDamage = false
	o.WaveStart = false
	o.WaveClear = false
	o.DamageDir = DamageNone
	o.ShakeX, o.ShakeY = 0, 0
}

// RenderFeedback draws the combat feedback overlays: the damage vignette
// with its direction indicator, then the hit-confirm spark. Runs after the
// HUD so the indicators stay on top.
func RenderFeedback(fb *Framebuffer, ov *Overlays) {
	if ov.PlayerDamage && ov.DamageDir != DamageNone {
		drawDirectionIndicator(fb, ov.DamageDir)
		drawDamageVignette(fb)
	}
	if ov.HitSpark {
		drawHitSpark(fb)
	}
}

// drawDirectionIndicator draws a small bar on the screen edge facing the
// damage source.
func drawDirectionIndicator(fb *Framebuffer, dir DamageDirection) {
	switch dir {
	case DamageFront:
		fb.HLine(60, 2, 8)
	case DamageBack:
		fb.HLine(60, FBHeight-3, 8)
	case DamageLeft:
		fb.VLine(2, 28, 8)
	case DamageRight:
		fb.VLine(FBWidth-3, 28, 8)
	}
}

// drawDamageVignette lights three pixels in each screen corner.
func drawDamageVignette(fb *Framebuffer) {
	fb.SetPixel(0, 0)
	fb.SetPixel(1, 0)
	fb.SetPixel(0, 1)

	fb.SetPixel(FBWidth-1, 0)
	fb.SetPixel(FBWidth-2, 0)
	fb.SetPixel(FBWidth-1, 1)

	fb.SetPixel(0, FBHeight-1)
	fb.SetPixel(1, FBHeight-1)
	fb.SetPixel(0, FBHeight-2)

	fb.SetPixel(FBWidth-1, FBHeight-1)
	fb.SetPixel(FBWidth-2, FBHeight-1)
	fb.SetPixel(FBWidth-1, FBHeight-2)
}

// drawHitSpark puts a 3-pixel cluster on the crosshair center.
func drawHitSpark(fb *Framebuffer) {
	cx, cy := FBWidth/2, FBHeight/2
	fb.SetPixel(cx, cy)
	fb.SetPixel(cx-1, cy+1)
	fb.SetPixel(cx+1, cy-1)
}

// RenderGameFeel draws the micro-feedback layer: death crack, wave
// flourishes and the low-health tick. Good feedback does not shout.
func RenderGameFeel(fb *Framebuffer, ov *Overlays, health uint8, now uint64) {
	if ov.EnemyDeath {
		drawDeathCrack(fb)
	}
	if ov.WaveStart {
		fb.HLine(59, 52, 10)
	}
	if ov.WaveClear {
		fb.HLine(58, 51, 12)
		fb.HLine(58, 53, 12)
	}
	if health > 0 && health < lowHealthTickMax && hudBlinkOn(now) {
		fb.SetPixel(106, 49)
		fb.SetPixel(107, 49)
	}
}

// drawDeathCrack draws a broken vertical crack through the screen center.
func drawDeathCrack(fb *Framebuffer) {
	fb.VLine(64, 18, 4)
	fb.VLine(63, 23, 3)
	fb.VLine(65, 27, 4)
	fb.VLine(64, 33, 3)
	fb.VLine(63, 37, 4)
	fb.VLine(64, 42, 3)
}
