package render

import "image/color"

var (
	// AliveColor is used for live cells.
	AliveColor = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	// DeadColor is used for dead cells.
	DeadColor = color.RGBA{R: 0, G: 117, B: 44, A: 255}
)

// fillBinaryRGBA converts cell data into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
