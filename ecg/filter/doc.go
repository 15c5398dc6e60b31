// Package filter implements the three conditioning stages applied to raw
// ECG strips: a baseline-wander high-pass (the DFT filter), a
// muscle-artifact high-pass (the EMG filter) and a mains-interference
// notch (the AC filter).
//
// Every stage is zero-phase so QRS onsets and ST segments keep their
// sample positions, and every stage is fail-soft: a frequency at or
// beyond Nyquist, a degenerate design or a buffer too short for the
// edge padding never aborts a call. The stage passes the signal through
// untouched and describes what happened in a Diagnostic delivered to
// the configured Reporter.
//
// Stage frequencies arrive as Selector values. A Selector is either off,
// which skips the stage silently, or a frequency in Hz; ParseSelector
// converts the historical settings encoding ("off" or decimal text).
package filter
