package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
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

// gridLines returns the endpoints of the background grid lines for a table of
// cols x rows blocks drawn at unit pixels per block, clipped to the view.
func gridLines(cols, rows int, unit float64, viewW, viewH int) [][4]float64 {
	if unit <= 0 {
		return nil
	}
	w := min(float64(cols)*unit, float64(viewW))
	h := min(float64(rows)*unit, float64(viewH))
	var lines [][4]float64
	for c := 0; c <= cols; c++ {
		x := float64(c) * unit
		if x > w {
			break
		}
		lines = append(lines, [4]float64{x, 0, x, h})
	}
	for r := 0; r <= rows; r++ {
		y := float64(r) * unit
		if y > h {
			break
		}
		lines = append(lines, [4]float64{0, y, w, y})
	}
	return lines
}
