package game

// TestPattern identifies one of the deterministic framebuffer generators
// used to qualify the display mapping and bit order. Patterns never read or
// write game state.
type TestPattern uint8

const (
	// Stage 1: basic connectivity.
	PatternAllBlack TestPattern = iota
	PatternAllWhite

	// Stage 2: coordinate mapping.
	PatternPixelTopLeft
	PatternPixelTopRight
	PatternPixelBottomLeft
	PatternPixelBottomRight
	PatternPixelCenter

	// Stage 3: line rendering.
	PatternHorizontalLines
	PatternVerticalLines
	PatternGrid

	// Stage 4: dithering and intensity.
	PatternCheckerboard
	PatternGradient

	// Stage 5: complete scene.
	PatternCompleteScene

	// Stage 6: animation.
	PatternScrolling

	PatternCount
)

// patternInfo pairs the description of a pattern with what a correct panel
// should show.
var patternInfo = [PatternCount][2]string{
	PatternAllBlack:         {"All pixels off", "Blank screen"},
	PatternAllWhite:         {"All pixels on", "Solid white screen"},
	PatternPixelTopLeft:     {"Single pixel at (0,0)", "One dot in the top-left corner"},
	PatternPixelTopRight:    {"Single pixel at (127,0)", "One dot in the top-right corner"},
	PatternPixelBottomLeft:  {"Single pixel at (0,63)", "One dot in the bottom-left corner"},
	PatternPixelBottomRight: {"Single pixel at (127,63)", "One dot in the bottom-right corner"},
	PatternPixelCenter:      {"Single pixel at (64,32)", "One dot in the screen center"},
	PatternHorizontalLines:  {"Horizontal lines every 8 rows", "8 evenly spaced horizontal lines"},
	PatternVerticalLines:    {"Vertical lines every 8 columns", "16 evenly spaced vertical lines"},
	PatternGrid:             {"8x8 grid", "Grid of 8x8 cells"},
	PatternCheckerboard:     {"Alternating pixel checkerboard", "Fine 50% gray checker"},
	PatternGradient:         {"5-level dither gradient", "Five vertical bands, dark to bright"},
	PatternCompleteScene:    {"Walls, HUD and crosshair", "Static corridor scene with HUD band"},
	PatternScrolling:        {"Scrolling stripes, 8 frames", "Stripes moving left one pixel per frame"},
}

// PatternDescription returns what the pattern draws.
func PatternDescription(p TestPattern) string {
	if p >= PatternCount {
		return "unknown pattern"
	}
	return patternInfo[p][0]
}

// PatternExpected returns what a correctly mapped panel should display.
func PatternExpected(p TestPattern) string {
	if p >= PatternCount {
		return "unknown pattern"
	}
	return patternInfo[p][1]
}

// RenderTestPattern fills the framebuffer with the requested pattern and
// reports whether the pattern id was valid. frame selects the animation
// phase for PatternScrolling and is ignored elsewhere.
func RenderTestPattern(fb *Framebuffer, p TestPattern, frame int) bool {
	switch p {
	case PatternAllBlack:
		fb.Fill(0x00)
	case PatternAllWhite:
		fb.Fill(0xFF)
	case PatternPixelTopLeft:
		fb.Clear()
		fb.SetPixel(0, 0)
	case PatternPixelTopRight:
		fb.Clear()
		fb.SetPixel(FBWidth-1, 0)
	case PatternPixelBottomLeft:
		fb.Clear()
		fb.SetPixel(0, FBHeight-1)
	case PatternPixelBottomRight:
		fb.Clear()
		fb.SetPixel(FBWidth-1, FBHeight-1)
	case PatternPixelCenter:
		fb.Clear()
		fb.SetPixel(FBWidth/2, FBHeight/2)
	case PatternHorizontalLines:
		fb.Clear()
		for y := 0; y < FBHeight; y += 8 {
			fb.HLine(0, y, FBWidth)
		}
	case PatternVerticalLines:
		fb.Clear()
		for x := 0; x < FBWidth; x += 8 {
			fb.VLine(x, 0, FBHeight)
		}
	case PatternGrid:
		fb.Clear()
		for y := 0; y < FBHeight; y += 8 {
			fb.HLine(0, y, FBWidth)
		}
		for x := 0; x < FBWidth; x += 8 {
			fb.VLine(x, 0, FBHeight)
		}
	case PatternCheckerboard:
		fb.Clear()
		for y := 0; y < FBHeight; y++ {
			for x := (y & 1); x < FBWidth; x += 2 {
				fb.SetPixel(x, y)
			}
		}
	case PatternGradient:
		fb.Clear()
		for x := 0; x < FBWidth; x++ {
			shade := (shadeLevels - 1) - x*shadeLevels/FBWidth
			for y := 0; y < FBHeight; y++ {
				if ditherLit(shade, x, y) {
					fb.SetPixel(x, y)
				}
			}
		}
	case PatternCompleteScene:
		renderCompleteScene(fb)
	case PatternScrolling:
		fb.Clear()
		offset := frame & 7
		for x := 0; x < FBWidth; x++ {
			if (x+offset)%8 < 4 {
				fb.VLine(x, 0, FBHeight)
			}
		}
	default:
		return false
	}
	return true
}

// renderCompleteScene draws a static fake corridor plus the real HUD pass,
// exercising walls, text and crosshair in one known-good frame.
func renderCompleteScene(fb *Framebuffer) {
	fb.Clear()
	// Converging corridor: wall slices get taller toward the edges.
	for x := 0; x < FBWidth; x++ {
		off := x - FBWidth/2
		if off < 0 {
			off = -off
		}
		h := 8 + off/2
		if h > 46 {
			h = 46
		}
		top := 24 - h/2
		if x%2 == 0 {
			fb.VLine(x, top, h)
		} else {
			fb.SetPixel(x, top)
			fb.SetPixel(x, top+h-1)
		}
	}
	// HUD band at a fixed time so the frame is reproducible.
	RenderHUD(fb, 100, 42, 0)
}

// RunTestPattern renders a pattern and records a [VALIDATION] line for it.
func RunTestPattern(fb *Framebuffer, p TestPattern, frame int, log *EventLog, tick int) bool {
	ok := RenderTestPattern(fb, p, frame)
	if log != nil {
		if ok {
			log.Logf(tick, TagValidation, "Pattern %d: %s", p, PatternDescription(p))
		} else {
			log.Logf(tick, TagValidation, "Pattern %d: invalid", p)
		}
	}
	return ok
}
