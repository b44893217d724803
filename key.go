package vgrade

// keyer holds the per-frame constants of the chroma key.
type keyer struct {
	gate      float64 // green must exceed red and blue by this much
	alphaDrop float64 // threshold minus twice the feather
	spill     float64 // green multiplier for keyed pixels
}

func newKeyer(k KeyParams) keyer {
	return keyer{
		gate:      k.ChromaThreshold * 0.2,
		alphaDrop: k.ChromaThreshold - k.Feather*2,
		spill:     1 - k.SpillReduction/100,
	}
}

func (k *keyer) isGreen(p *pixel) bool {
	return p.g > p.r+k.gate && p.g > p.b+k.gate
}

func (k *keyer) apply(p *pixel) {
	if !k.isGreen(p) {
		return
	}
	p.a = max(0, p.a-k.alphaDrop)
	p.g *= k.spill
}

// Key applies the green-screen key to buf in place. Pixels classified
// as green lose ChromaThreshold-2*Feather of alpha (never below zero) and
// have their green scaled down by SpillReduction percent. All four
// channels are clamped on write.
func Key(buf *PixelBuffer, k KeyParams) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	s := newKeyer(k)
	eachPixel(buf, 0, buf.height, func(p *pixel, _, _ int) {
		s.apply(p)
	})
	return nil
}
