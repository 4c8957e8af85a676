package game

// Fixed display geometry. The panel is a 128x64 monochrome OLED whose RAM is
// page-major: eight vertically stacked pixels per byte, pages top to bottom.
const (
	FBWidth  = 128
	FBHeight = 64
	FBPages  = FBHeight / 8
	FBBytes  = FBWidth * FBPages
)

// Framebuffer is the shared 1-bit render target. Byte layout matches the
// panel RAM directly: byte (y/8)*128 + x, bit y%8. All primitives clamp out
// of range coordinates silently; a bad coordinate is never a fault.
type Framebuffer [FBBytes]byte

// Clear zeroes the whole framebuffer.
func (fb *Framebuffer) Clear() {
	for i := range fb {
		fb[i] = 0
	}
}

// Fill sets every byte to v (0x00 all black, 0xFF all white).
func (fb *Framebuffer) Fill(v byte) {
	for i := range fb {
		fb[i] = v
	}
}

// SetPixel lights the pixel at (x,y).
func (fb *Framebuffer) SetPixel(x, y int) {
	if x < 0 || x >= FBWidth || y < 0 || y >= FBHeight {
		return
	}
	fb[(y/8)*FBWidth+x] |= 1 << (y % 8)
}

// ClearPixel darkens the pixel at (x,y).
func (fb *Framebuffer) ClearPixel(x, y int) {
	if x < 0 || x >= FBWidth || y < 0 || y >= FBHeight {
		return
	}
	fb[(y/8)*FBWidth+x] &^= 1 << (y % 8)
}

// Pixel reports whether the pixel at (x,y) is lit. Out of range reads false.
func (fb *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= FBWidth || y < 0 || y >= FBHeight {
		return false
	}
	return fb[(y/8)*FBWidth+x]&(1<<(y%8)) != 0
}

// HLine draws a horizontal run of length pixels starting at (x,y).
func (fb *Framebuffer) HLine(x, y, length int) {
	for i := 0; i < length; i++ {
		fb.SetPixel(x+i, y)
	}
}

// VLine draws a vertical run of length pixels starting at (x,y).
func (fb *Framebuffer) VLine(x, y, length int) {
	for i := 0; i < length; i++ {
		fb.SetPixel(x, y+i)
	}
}

// FillRect lights a w x h rectangle with top-left corner (x,y).
func (fb *Framebuffer) FillRect(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		fb.HLine(x, y+dy, w)
	}
}

// ClearRect darkens a w x h rectangle with top-left corner (x,y).
func (fb *Framebuffer) ClearRect(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			fb.ClearPixel(x+dx, y+dy)
		}
	}
}

// Rect draws the 1px outline of a w x h rectangle with top-left corner (x,y).
func (fb *Framebuffer) Rect(x, y, w, h int) {
	fb.HLine(x, y, w)
	fb.HLine(x, y+h-1, w)
	fb.VLine(x, y, h)
	fb.VLine(x+w-1, y, h)
}

// ClearBand zeroes the full-width horizontal band of pages [page0,
// page0+pages), i.e. rows page0*8 up to (page0+pages)*8. Pages past the
// bottom of the screen are ignored.
func (fb *Framebuffer) ClearBand(page0, pages int) {
	for p := page0; p < page0+pages && p < FBPages; p++ {
		for x := 0; x < FBWidth; x++ {
			fb[p*FBWidth+x] = 0
		}
	}
}

// --- 3x5 glyph font ---
//
// Rows are 3-bit patterns, bit2..bit0 = left..right pixels. Only the digits
// and the letters the game actually prints are defined; anything else renders
// as blank and still advances the cursor.

var font3x5Digits = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b001, 0b001, 0b001, 0b001, 0b001}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

var font3x5Letters = map[byte][5]uint8{
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'C': {0b111, 0b100, 0b100, 0b100, 0b111},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b111, 0b100, 0b111},
	'F': {0b111, 0b100, 0b111, 0b100, 0b100},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b111, 0b101},
	'O': {0b111, 0b101, 0b101, 0b101, 0b111},
	'P': {0b111, 0b101, 0b111, 0b100, 0b100},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b111, 0b100, 0b111, 0b001, 0b111},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b101, 0b111, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
}

func glyphPattern(c byte) ([5]uint8, bool) {
	if c >= '0' && c <= '9' {
		return font3x5Digits[c-'0'], true
	}
	p, ok := font3x5Letters[c]
	return p, ok
}

// DrawChar rasterizes one 3x5 glyph with top-left corner (x,y). Unsupported
// characters draw nothing.
func (fb *Framebuffer) DrawChar(x, y int, c byte) {
	pattern, ok := glyphPattern(c)
	if !ok {
		return
	}
	for py := 0; py < 5; py++ {
		row := pattern[py]
		for px := 0; px < 3; px++ {
			if row&(1<<(2-px)) != 0 {
				fb.SetPixel(x+px, y+py)
			}
		}
	}
}

// DrawText rasterizes text left to right starting at (x,y). Every character,
// including space, advances the cursor 4 pixels (3px glyph + 1px gap).
func (fb *Framebuffer) DrawText(x, y int, text string) {
	cx := x
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' {
			fb.DrawChar(cx, y, text[i])
		}
		cx += 4
	}
}

// TextWidth returns the pixel width of text in the 3x5 font: 4 per character
// minus the trailing gap.
func TextWidth(text string) int {
	if len(text) == 0 {
		return 0
	}
	return 4*len(text) - 1
}

// CenteredX returns the x at which text should start to be horizontally
// centered, or 0 when it is wider than the screen.
func CenteredX(text string) int {
	w := TextWidth(text)
	if w >= FBWidth {
		return 0
	}
	return (FBWidth - w) / 2
}
