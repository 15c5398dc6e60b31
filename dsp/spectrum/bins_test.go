package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeAndPower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=%f", mag[1], math.Sqrt2)
	}

	if mag[2] != 0 {
		t.Fatalf("Magnitude[2]=%f want=0", mag[2])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	if math.Abs(pow[1]-2) > 1e-12 {
		t.Fatalf("Power[1]=%f want=2", pow[1])
	}
}

func TestMagnitudePowerEmpty(t *testing.T) {
	if out := Magnitude(nil); out != nil {
		t.Fatalf("Magnitude(nil)=%v want=nil", out)
	}

	if out := Power(nil); out != nil {
		t.Fatalf("Power(nil)=%v want=nil", out)
	}
}

func TestMagnitudeScratchReuse(t *testing.T) {
	bins := []complex128{1 + 1i, 2 + 2i, 3 + 3i, 4 + 4i}

	first := Magnitude(bins)

	second := Magnitude(bins)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated Magnitude differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	MagnitudeFromParts(dst, re, im)

	if math.Abs(dst[0]-5) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[0]=%f want=5", dst[0])
	}

	if math.Abs(dst[1]-math.Sqrt(2)) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[1]=%f want=%f", dst[1], math.Sqrt(2))
	}

	if math.Abs(dst[2]-0) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[2]=%f want=0", dst[2])
	}
}

func TestPowerFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	PowerFromParts(dst, re, im)

	if math.Abs(dst[0]-25) > 1e-12 {
		t.Fatalf("PowerFromParts[0]=%f want=25", dst[0])
	}

	if math.Abs(dst[1]-2) > 1e-12 {
		t.Fatalf("PowerFromParts[1]=%f want=2", dst[1])
	}

	if math.Abs(dst[2]-0) > 1e-12 {
		t.Fatalf("PowerFromParts[2]=%f want=0", dst[2])
	}
}
