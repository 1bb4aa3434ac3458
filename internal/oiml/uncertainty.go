package oiml

// uncertainty.go implements the uncertainty model: composition of
// repeatability and display resolution into an effective standard
// uncertainty, and derivation of the minimum usable sample mass.

import "math"

// EffectiveStd combines repeatability s with the display resolution d
// into an effective standard uncertainty, all in grams.
//
// When includeResolution is true and d > 0, the resolution contributes
// the standard uncertainty of a uniform rounding distribution of
// half-width d/2, giving sqrt(s^2 + (d/sqrt(12))^2). Otherwise s is
// returned unchanged. Defined for all non-negative inputs.
func EffectiveStd(s, d float64, includeResolution bool) float64 {
	if includeResolution && d > 0 {
		ud := d / math.Sqrt(12)
		return math.Sqrt(s*s + ud*ud)
	}
	return s
}

// MinimumMass returns the smallest sample mass, in grams, for which the
// expanded uncertainty k*sEff stays within the fractional budget rRel of
// the measured value: m_min = k * sEff / rRel.
//
// rRel must be positive; zero or negative returns
// ErrInvalidRelUncertainty rather than a silently computed value.
func MinimumMass(s, d, rRel, k float64, includeResolution bool) (float64, error) {
	if rRel <= 0 {
		return 0, ErrInvalidRelUncertainty
	}
	sEff := EffectiveStd(s, d, includeResolution)
	return k * sEff / rRel, nil
}

// EffectiveStd returns the balance's effective standard uncertainty in
// grams.
func (b Balance) EffectiveStd() float64 {
	return EffectiveStd(b.Repeatability, b.Division, b.IncludeResolution)
}

// MinimumMass returns the minimum usable sample mass in grams for the
// target relative uncertainty rRel and coverage factor k.
func (b Balance) MinimumMass(rRel, k float64) (float64, error) {
	return MinimumMass(b.Repeatability, b.Division, rRel, k, b.IncludeResolution)
}

// ThresholdFromTUR derives the standard-uncertainty budget for a
// reference weight from the balance's effective uncertainty and a target
// test uncertainty ratio: u_ref <= u_balance / TUR.
//
// This is the composition step between the uncertainty model and the
// class selector; the invocation layer calls it before SelectClass.
func ThresholdFromTUR(uBalance, tur float64) (Threshold, error) {
	if tur <= 0 {
		return Threshold{}, ErrInvalidTUR
	}
	return StdThreshold(uBalance / tur), nil
}
