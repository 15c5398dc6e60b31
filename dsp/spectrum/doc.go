// Package spectrum measures frequency content of ECG signals: single-bin
// Goertzel analyzers for spot checks of mains hum and baseline drift, a
// windowed FFT power spectrum for full-band inspection, and helpers for
// unpacking complex bins into magnitude and power.
package spectrum
