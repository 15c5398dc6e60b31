// Package sos implements second-order-section (biquad) IIR filter primitives.
//
// A Section is a single Direct Form II Transposed biquad; a Cascade runs
// sections in series to realize higher-order filters. Coefficients carry the
// normalized transfer function (a0 = 1). The package also provides frequency
// response and pole/zero analysis for verifying designed filters before they
// touch a signal.
package sos
