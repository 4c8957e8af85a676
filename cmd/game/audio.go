package main

import "github.com/hajimehoshi/ebiten/v2/audio"

const toneSampleRate = 44100

// toneBeeper renders each beep as a square wave through the shared ebiten
// audio context. Players are fire-and-forget; the garbage collector reaps
// them once the tone ends.
type toneBeeper struct {
	ctx *audio.Context
}

func newToneBeeper() *toneBeeper {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(toneSampleRate)
	}
	return &toneBeeper{ctx: ctx}
}

func (b *toneBeeper) Beep(hz, ms int) {
	if hz <= 0 || ms <= 0 {
		return
	}
	samples := toneSampleRate * ms / 1000
	half := toneSampleRate / hz / 2
	if half < 1 {
		half = 1
	}
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		v := int16(6000)
		if (i/half)%2 == 1 {
			v = -6000
		}
		// 16-bit little-endian stereo.
		buf[4*i+0] = byte(v)
		buf[4*i+1] = byte(uint16(v) >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(uint16(v) >> 8)
	}
	b.ctx.NewPlayerFromBytes(buf).Play()
}
