package game

import "math"

// Sprite table sizing and screen placement.
const (
	MaxSprites = 4 // slot 0 is the weapon, slots 1..3 hold enemies
	maxEnemies = MaxSprites - 1

	spriteMinDepth    = 0.1  // camera-space depth below which a sprite is behind us
	spriteMaxDistance = 50.0 // cull range, same as the wall clamp

	weaponScreenX = 96
	weaponScreenY = 48
	weaponScale   = 1.5

	spriteCenterY = FBHeight / 2
	hitRecoilY    = 2 // HIT sprites drop this many pixels
)

// SpriteKind separates the screen-fixed weapon from world-space enemies.
type SpriteKind uint8

const (
	SpriteWeapon SpriteKind = iota
	SpriteEnemy
)

// EnemyState is the visual state of an enemy sprite.
type EnemyState uint8

const (
	EnemyAlive EnemyState = iota
	EnemyHit
	EnemyDead
)

// AIState is the behavioural state of an enemy.
type AIState uint8

const (
	AIIdle AIState = iota
	AIChase
	AIAttack
	AIHit
	AIDead
)

func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AIChase:
		return "chase"
	case AIAttack:
		return "attack"
	case AIHit:
		return "hit"
	case AIDead:
		return "dead"
	}
	return "?"
}

// Sprite is one entry of the statically sized sprite table.
type Sprite struct {
	X, Y          float64
	Kind          SpriteKind
	TextureID     uint8
	Active        bool
	State         EnemyState
	HitFramesLeft uint8
	EnemyID       uint8
	AI            AIState
	LastAttackMS  uint64
	HasAttacked   bool
}

// projectSprite transforms a world position into a screen column and its
// distance. The camera-space transform uses the inverse of the [plane dir]
// matrix so it stays consistent with the world renderer for every facing,
// not just the starting one. ok is false behind the camera or out of range.
func projectSprite(view PlayerView, sx, sy float64) (col int, dist float64, ok bool) {
	vx := sx - view.X
	vy := sy - view.Y
	dist = math.Hypot(vx, vy)
	if dist > spriteMaxDistance {
		return 0, 0, false
	}

	invDet := 1 / (view.PlaneX*view.DirY - view.DirX*view.PlaneY)
	camX := invDet * (view.DirY*vx - view.DirX*vy)  // lateral
	camY := invDet * (-view.PlaneY*vx + view.PlaneX*vy) // depth
	if camY <= spriteMinDepth {
		return 0, 0, false
	}
	col = int(float64(FBWidth) / 2 * (1 + camX/camY))
	return col, dist, true
}

// drawWorldSprite rasterizes a scaled 16x16 texture centered at
// (centerX, centerY), testing each column against the wall depth and running
// every texel through the shared Bayer dither. flood overdraws the whole
// bounding box with lit pixels afterwards (the one-frame HIT flash).
func drawWorldSprite(fb *Framebuffer, depth *DepthBuffer, tex *Texture, centerX, centerY int, dist float64, flood bool) {
	scale := 32.0 / dist
	if scale > 2.0 {
		scale = 2.0
	}
	size := int(TextureSize * scale)
	if size <= 0 {
		return
	}
	left := centerX - size/2
	top := centerY - size/2
	shade := distanceShade(dist)
	spriteDepth := EncodeDepth(dist)

	for px := 0; px < size; px++ {
		x := left + px
		if x < 0 || x >= FBWidth {
			continue
		}
		if depth[x] > spriteDepth {
			continue // wall in front of the sprite in this column
		}
		texX := px * TextureSize / size
		for py := 0; py < size; py++ {
			y := top + py
			texY := py * TextureSize / size
			if tex.Sample(texX, texY) == 1 && ditherLit(shade, x, y) {
				fb.SetPixel(x, y)
			}
		}
		if flood {
			for py := 0; py < size; py++ {
				fb.SetPixel(x, top+py)
			}
		}
	}
}

// drawWeapon draws the screen-fixed weapon sprite at the bottom right,
// ignoring the depth buffer. With flash set the bounding box is fully lit
// instead.
func drawWeapon(fb *Framebuffer, tex *Texture, flash bool) {
	size := int(TextureSize * weaponScale)
	left := weaponScreenX - size/2
	top := weaponScreenY - size/2
	if flash {
		fb.FillRect(left, top, size, size)
		return
	}
	for px := 0; px < size; px++ {
		texX := px * TextureSize / size
		for py := 0; py < size; py++ {
			texY := py * TextureSize / size
			if tex.Sample(texX, texY) == 1 {
				fb.SetPixel(left+px, top+py)
			}
		}
	}
}
