package sos

// Cascade runs biquad sections in series, forming a higher-order IIR filter.
// Each section keeps its own state, so a Cascade is safe to reuse across
// blocks of a continuous stream.
type Cascade struct {
	sections []Section
}

// NewCascade builds a Cascade from per-section coefficients.
// The sections are processed in slice order.
func NewCascade(coeffs []Coefficients) *Cascade {
	c := &Cascade{sections: make([]Section, len(coeffs))}
	for i, cf := range coeffs {
		c.sections[i].Coefficients = cf
	}
	return c
}

// ProcessSample filters a single sample through every section in order.
func (c *Cascade) ProcessSample(x float64) float64 {
	y := x
	for i := range c.sections {
		y = c.sections[i].ProcessSample(y)
	}
	return y
}

// ProcessBlock filters buf in-place through every section in order.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst without modifying src.
// dst must be at least as long as src; dst == src is allowed.
func (c *Cascade) ProcessBlockTo(dst, src []float64) {
	if len(dst) < len(src) {
		panic("sos: destination buffer too small")
	}
	dst = dst[:len(src)]
	copy(dst, src)
	c.ProcessBlock(dst)
}

// Reset clears the state of every section.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Order returns the filter order realized by the cascade. Full biquads
// contribute two, degenerate first-order sections contribute one.
func (c *Cascade) Order() int {
	order := 0
	for i := range c.sections {
		if c.sections[i].FirstOrder() {
			order++
		} else {
			order += 2
		}
	}
	return order
}

// Section returns the i-th section for inspection or state manipulation.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// State captures the internal state of every section.
func (c *Cascade) State() [][2]float64 {
	state := make([][2]float64, len(c.sections))
	for i := range c.sections {
		state[i] = c.sections[i].State()
	}
	return state
}

// SetState restores a state previously captured with State.
// The slice must have one entry per section.
func (c *Cascade) SetState(state [][2]float64) {
	if len(state) != len(c.sections) {
		panic("sos: state length does not match section count")
	}
	for i := range c.sections {
		c.sections[i].SetState(state[i])
	}
}

// UpdateCoefficients swaps in new coefficients for the i-th section while
// preserving its state. Useful when retuning a running filter.
func (c *Cascade) UpdateCoefficients(i int, cf Coefficients) {
	c.sections[i].Coefficients = cf
}
