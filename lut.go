package vgrade

// lutFactors are the R, G and B multipliers of one tint.
type lutFactors [3]float64

var lutTable = [...]lutFactors{
	LutNone:       {1, 1, 1},
	LutCinematic:  {1.06, 0.98, 0.92},
	LutTealOrange: {1.10, 1.02, 0.85},
	LutVintage:    {1.08, 1.02, 0.82},
}

func (l LutName) factors() lutFactors {
	if int(l) < len(lutTable) {
		return lutTable[l]
	}
	return lutTable[LutNone]
}

// Factors returns the channel multipliers for l. Unknown values behave
// like LutNone.
func (l LutName) Factors() (r, g, b float64) {
	f := l.factors()
	return f[0], f[1], f[2]
}

func (f *lutFactors) apply(p *pixel) {
	p.r *= f[0]
	p.g *= f[1]
	p.b *= f[2]
}

// ApplyLut multiplies every pixel of buf by the tint of lut and clamps
// the result. Alpha is not modified.
func ApplyLut(buf *PixelBuffer, lut LutName) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	f := lut.factors()
	eachPixel(buf, 0, buf.height, func(p *pixel, _, _ int) {
		f.apply(p)
	})
	return nil
}
