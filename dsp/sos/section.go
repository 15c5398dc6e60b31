package sos

// Coefficients holds the transfer function of a single second-order section.
// The denominator is normalized so that a0 = 1 and is not stored.
//
//	        B0 + B1*z^-1 + B2*z^-2
//	H(z) = ------------------------
//	         1 + A1*z^-1 + A2*z^-2
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// FirstOrder reports whether the section degenerates to first order,
// i.e. both z^-2 taps are zero.
func (c *Coefficients) FirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// Section is a single biquad filter with coefficients and internal state.
// Processing uses the Direct Form II Transposed structure, which keeps the
// state variables well-scaled for float64 audio and biosignal work.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with the given coefficients and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters a single sample.
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in-place.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	n := len(buf)
	i := 0
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0 = b1*x0 - a1*y0 + d1
		d1 = b2*x0 - a2*y0
		buf[i] = y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0
		d0 = b1*x1 - a1*y1 + d1
		d1 = b2*x1 - a2*y1
		buf[i+1] = y1
	}
	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// ProcessBlockTo filters src into dst without modifying src.
// dst must be at least as long as src; dst == src is allowed.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(dst) < len(src) {
		panic("sos: destination buffer too small")
	}
	dst = dst[:len(src)]
	copy(dst, src)
	s.ProcessBlock(dst)
}

// Reset clears the internal filter state.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the current internal state (d0, d1).
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously captured internal state.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
