package sos

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane poles of the section.
func (c *Coefficients) Poles() []complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section.
func (c *Coefficients) Zeros() []complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (c *Coefficients) Stable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}
	return true
}

// Stable reports whether every section of the cascade is stable.
func (c *Cascade) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}
	return true
}

// quadraticRoots returns the roots of a*z^2 + b*z + c, degrading to lower
// degree when leading coefficients vanish.
func quadraticRoots(a, b, c float64) []complex128 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []complex128{complex(-c/b, 0)}
	}

	disc := b*b - 4*a*c
	if disc >= 0 {
		s := math.Sqrt(disc)
		return []complex128{
			complex((-b+s)/(2*a), 0),
			complex((-b-s)/(2*a), 0),
		}
	}

	s := math.Sqrt(-disc)
	return []complex128{
		complex(-b/(2*a), s/(2*a)),
		complex(-b/(2*a), -s/(2*a)),
	}
}
