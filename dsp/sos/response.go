package sos

import (
	"math"
	"math/cmplx"
)

// Response evaluates the complex frequency response H(e^jw) at the
// normalized angular frequency w in radians per sample, w = 2*pi*f/sampleRate.
func (c *Coefficients) Response(w float64) complex128 {
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1
	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := complex(1, 0) + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// MagnitudeSquared evaluates |H(e^jw)|^2 using a closed form that avoids
// complex arithmetic.
func (c *Coefficients) MagnitudeSquared(w float64) float64 {
	cosw := math.Cos(w)
	cos2w := math.Cos(2 * w)

	num := c.B0*c.B0 + c.B1*c.B1 + c.B2*c.B2 +
		2*c.B1*(c.B0+c.B2)*cosw + 2*c.B0*c.B2*cos2w
	den := 1 + c.A1*c.A1 + c.A2*c.A2 +
		2*c.A1*(1+c.A2)*cosw + 2*c.A2*cos2w

	if den == 0 {
		return math.Inf(1)
	}
	return num / den
}

// MagnitudeDB evaluates the magnitude response in decibels.
// Transmission zeros map to negative infinity.
func (c *Coefficients) MagnitudeDB(w float64) float64 {
	ms := c.MagnitudeSquared(w)
	if ms <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(ms)
}

// Phase evaluates the phase response in radians at w.
func (c *Coefficients) Phase(w float64) float64 {
	return cmplx.Phase(c.Response(w))
}

// ImpulseResponse returns the first n samples of the section's impulse
// response. The current filter state is preserved.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	s.Reset()

	out := make([]float64, n)
	out[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		out[i] = s.ProcessSample(0)
	}

	s.SetState(saved)
	return out
}

// Response evaluates the cascade's complex frequency response at w,
// the product of the per-section responses.
func (c *Cascade) Response(w float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(w)
	}
	return h
}

// MagnitudeDB evaluates the cascade magnitude response in decibels.
// Summing per-section decibels keeps deep stopbands from underflowing.
func (c *Cascade) MagnitudeDB(w float64) float64 {
	sum := 0.0
	for i := range c.sections {
		sum += c.sections[i].MagnitudeDB(w)
	}
	return sum
}

// ImpulseResponse returns the first n samples of the cascade's impulse
// response. The current filter state is preserved.
func (c *Cascade) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := c.State()
	c.Reset()

	out := make([]float64, n)
	out[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		out[i] = c.ProcessSample(0)
	}

	c.SetState(saved)
	return out
}
