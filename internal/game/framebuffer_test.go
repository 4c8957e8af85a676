package game

import "testing"

func TestSetClearPixelRoundTrip(t *testing.T) {
	var fb Framebuffer
	before := fb

	fb.SetPixel(17, 42)
	if !fb.Pixel(17, 42) {
		t.Fatal("pixel not set")
	}
	fb.ClearPixel(17, 42)
	if fb != before {
		t.Fatal("set then clear should leave the framebuffer byte-equal")
	}
}

func TestPixelPageMajorLayout(t *testing.T) {
	var fb Framebuffer
	fb.SetPixel(3, 10) // page 1, bit 2
	if got := fb[1*FBWidth+3]; got != 1<<2 {
		t.Fatalf("byte = %#02x, want %#02x", got, 1<<2)
	}
}

func TestPixelOutOfRangeIsSilent(t *testing.T) {
	var fb Framebuffer
	fb.SetPixel(-1, 0)
	fb.SetPixel(FBWidth, 0)
	fb.SetPixel(0, -1)
	fb.SetPixel(0, FBHeight)
	fb.ClearPixel(FBWidth, FBHeight)
	if fb != (Framebuffer{}) {
		t.Fatal("out of range writes must not land anywhere")
	}
	if fb.Pixel(FBWidth, 0) {
		t.Fatal("out of range read should be false")
	}
}

func TestLinesAndRects(t *testing.T) {
	var fb Framebuffer
	fb.HLine(10, 5, 4)
	for x := 10; x < 14; x++ {
		if !fb.Pixel(x, 5) {
			t.Errorf("hline missing pixel at x=%d", x)
		}
	}
	fb.VLine(20, 8, 3)
	for y := 8; y < 11; y++ {
		if !fb.Pixel(20, y) {
			t.Errorf("vline missing pixel at y=%d", y)
		}
	}

	fb.Clear()
	fb.Rect(4, 4, 6, 5)
	if !fb.Pixel(4, 4) || !fb.Pixel(9, 8) || !fb.Pixel(4, 8) || !fb.Pixel(9, 4) {
		t.Error("rect corners missing")
	}
	if fb.Pixel(6, 6) {
		t.Error("rect interior should be hollow")
	}

	fb.Clear()
	fb.FillRect(4, 4, 3, 3)
	if !fb.Pixel(5, 5) {
		t.Error("fillrect interior missing")
	}
}

func TestClearBand(t *testing.T) {
	var fb Framebuffer
	fb.Fill(0xFF)
	fb.ClearBand(6, 2)
	if fb.Pixel(0, 48) || fb.Pixel(127, 63) {
		t.Error("band rows should be cleared")
	}
	if !fb.Pixel(0, 47) {
		t.Error("rows above the band must be untouched")
	}
}

func TestTextWidthAndCentering(t *testing.T) {
	if got := TextWidth("WAVE 1"); got != 23 {
		t.Errorf("TextWidth = %d, want 23", got)
	}
	if got := CenteredX("MINI DOOM"); got != (FBWidth-35)/2 {
		t.Errorf("CenteredX = %d, want %d", got, (FBWidth-35)/2)
	}
	if got := TextWidth(""); got != 0 {
		t.Errorf("empty TextWidth = %d", got)
	}
}

func TestDrawTextAdvancesFourPerChar(t *testing.T) {
	var fb Framebuffer
	fb.DrawText(0, 0, "HH")
	// Second H starts at x=4: its left column must be lit, the gap not.
	if !fb.Pixel(4, 0) {
		t.Error("second glyph missing")
	}
	if fb.Pixel(3, 0) {
		t.Error("inter-glyph gap should stay dark")
	}
}

func TestGlyphCoverage(t *testing.T) {
	for _, c := range []byte("0123456789ACDEFHILMNOPRSUVWY") {
		if _, ok := glyphPattern(c); !ok {
			t.Errorf("glyph %q missing", c)
		}
	}
	if _, ok := glyphPattern('Q'); ok {
		t.Error("Q is not part of the glyph set")
	}
}
