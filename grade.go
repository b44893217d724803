package vgrade

// grader holds the per-frame constants of the primary and masked grade.
type grader struct {
	contrast   float64
	saturation float64
	brightness float64
	warmR      float64
	coolB      float64

	// Secondary grade, applied only inside the mask.
	liftR  float64
	gainR  float64
	gammaG float64
	gainB  float64

	cx, cy, radius2 float64
}

func newGrader(g GradeParams, m MaskParams, width, height int) grader {
	radius := float64(min(width, height)) * m.Radius / 100
	return grader{
		contrast:   1 + g.Contrast/100,
		saturation: 1 + g.Saturation/100,
		brightness: g.Brightness,
		warmR:      g.Temperature * 0.5,
		coolB:      g.Temperature * 0.4,
		liftR:      g.Lift / 100 * 40,
		gainR:      1 + g.Gain/100,
		gammaG:     1 + g.Gamma/100*0.8,
		gainB:      1 + g.Gain/100*0.6,
		cx:         float64(width) * m.CenterX / 100,
		cy:         float64(height) * m.CenterY / 100,
		radius2:    radius * radius,
	}
}

// inMask reports strict membership in the mask circle; the rim is outside.
func (s *grader) inMask(x, y int) bool {
	dx := float64(x) - s.cx
	dy := float64(y) - s.cy
	return dx*dx+dy*dy < s.radius2
}

func (s *grader) apply(p *pixel, x, y int) {
	p.r = (p.r-midGray)*s.contrast + midGray + s.brightness + s.warmR
	p.g = (p.g-midGray)*s.contrast + midGray + s.brightness
	p.b = (p.b-midGray)*s.contrast + midGray + s.brightness - s.coolB

	avg := (p.r + p.g + p.b) / 3
	p.r = avg + (p.r-avg)*s.saturation
	p.g = avg + (p.g-avg)*s.saturation
	p.b = avg + (p.b-avg)*s.saturation

	if s.inMask(x, y) {
		p.r = p.r*s.gainR + s.liftR
		p.g *= s.gammaG
		p.b *= s.gainB
	}
}

// Grade applies the color grade to buf in place and clamps R, G and B.
// Alpha is not modified. Lift, gamma and gain only affect pixels strictly
// inside the circle described by mask.
//
// Grade is the standalone form of the first pipeline stage; Process runs
// the same math without clamping before the LUT and keyer.
func Grade(buf *PixelBuffer, g GradeParams, mask MaskParams) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	s := newGrader(g, mask, buf.width, buf.height)
	eachPixel(buf, 0, buf.height, func(p *pixel, x, y int) {
		s.apply(p, x, y)
	})
	return nil
}

// eachPixel loads every pixel of rows [y0, y1), passes it to fn and
// stores the clamped result.
func eachPixel(buf *PixelBuffer, y0, y1 int, fn func(p *pixel, x, y int)) {
	stride := buf.width * 4
	for y := y0; y < y1; y++ {
		row := buf.data[y*stride : (y+1)*stride]
		for x := 0; x < buf.width; x++ {
			d := row[x*4 : x*4+4 : x*4+4]
			p := loadPixel(d)
			fn(&p, x, y)
			p.store(d)
		}
	}
}
