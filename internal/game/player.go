package game

import "math"

// Player tuning.
const (
	PlayerMaxHealth = 100
	InitialAmmo     = 40

	playerStartX    = 3.5
	playerStartY    = 3.5
	playerMoveStep  = 0.12 // tiles per tick when holding UP/DOWN
	playerRotStep   = 0.10 // radians per tick when holding LEFT/RIGHT
	cameraPlaneHalf = 0.66 // tan(FOV/2) for a ~66 degree field of view
)

// Player is the camera plus the two player resources. Direction and camera
// plane are kept perpendicular by construction: every rotation turns both by
// the same angle.
type Player struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
	Health         uint8
	Ammo           uint8
}

// NewPlayer returns a player at the starting pose with full resources.
func NewPlayer() Player {
	var p Player
	p.Reset()
	return p
}

// Reset restores the starting pose, full health and initial ammo. Used once
// at construction and again on every game restart.
func (p *Player) Reset() {
	p.X, p.Y = playerStartX, playerStartY
	p.DirX, p.DirY = 1, 0
	p.PlaneX, p.PlaneY = 0, cameraPlaneHalf
	p.Health = PlayerMaxHealth
	p.Ammo = InitialAmmo
}

// View snapshots the camera for the render passes.
func (p *Player) View() PlayerView {
	return PlayerView{
		X: p.X, Y: p.Y,
		DirX: p.DirX, DirY: p.DirY,
		PlaneX: p.PlaneX, PlaneY: p.PlaneY,
	}
}

// Move walks along the facing direction; dir is +1 forward, -1 backward.
// Each axis is checked against the map separately so the player slides along
// walls instead of sticking to them.
func (p *Player) Move(level *Level, dir float64) {
	nx := p.X + p.DirX*playerMoveStep*dir
	if !level.IsWall(int(nx), int(p.Y)) {
		p.X = nx
	}
	ny := p.Y + p.DirY*playerMoveStep*dir
	if !level.IsWall(int(p.X), int(ny)) {
		p.Y = ny
	}
}

// Rotate turns the facing direction and camera plane by angle radians.
func (p *Player) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	dx := p.DirX*cos - p.DirY*sin
	p.DirY = p.DirX*sin + p.DirY*cos
	p.DirX = dx
	px := p.PlaneX*cos - p.PlaneY*sin
	p.PlaneY = p.PlaneX*sin + p.PlaneY*cos
	p.PlaneX = px
}
