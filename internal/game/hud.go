package game

import "fmt"

// HUD layout. The HUD owns the bottom two pages (rows 48..63) outright: it
// zeroes them every frame, so earlier passes may scribble there freely.
const (
	hudBandFirstPage = 6
	hudBandPages     = 2
	hudSeparatorY    = 47

	hudBlinkMS         = 500
	lowHealthThreshold = 35 // percent; HP bar and number blink below this

	hpBarX        = 2
	hpBarY        = 56
	hpBarSegments = 10
	hpBarHeight   = 4
)

// hudBlinkOn reports the visible phase of the shared 500ms blink: elements
// are suppressed while (t/500) mod 2 == 1.
func hudBlinkOn(now uint64) bool {
	return (now/hudBlinkMS)%2 == 0
}

// RenderHUD overwrites the HUD band with separator, health bar and number,
// ammo counter and the center crosshair.
func RenderHUD(fb *Framebuffer, health, ammo uint8, now uint64) {
	fb.ClearBand(hudBandFirstPage, hudBandPages)
	fb.HLine(0, hudSeparatorY, FBWidth)

	showHP := health >= lowHealthThreshold || hudBlinkOn(now)
	fb.DrawText(2, 49, "HP")
	if showHP {
		n := health
		if n > 99 {
			n = 99
		}
		fb.DrawText(12, 49, fmt.Sprintf("%02d", n))
		fb.Rect(hpBarX-1, hpBarY-1, hpBarSegments+2, hpBarHeight+2)
		filled := int(health) * hpBarSegments / PlayerMaxHealth
		fb.FillRect(hpBarX, hpBarY, filled, hpBarHeight)
	}

	// AMMO is four glyphs right-aligned so the label ends at column 95.
	fb.DrawText(81, 49, "AMMO")
	if ammo == 0 {
		if hudBlinkOn(now) {
			fb.DrawText(85, 56, "NO")
		}
	} else {
		n := ammo
		if n > 99 {
			n = 99
		}
		fb.DrawText(85, 56, fmt.Sprintf("%02d", n))
	}

	drawCrosshair(fb)
}

// drawCrosshair draws the 5x5 hollow crosshair: four 2px arms with the
// center pixel explicitly cleared so it stays visible on lit textures.
func drawCrosshair(fb *Framebuffer) {
	cx, cy := FBWidth/2, FBHeight/2
	fb.HLine(cx-2, cy, 2)
	fb.HLine(cx+1, cy, 2)
	fb.VLine(cx, cy-2, 2)
	fb.VLine(cx, cy+1, 2)
	fb.ClearPixel(cx, cy)
}
