package oiml

// selector.go implements the reference-class selector: MPE resolution
// with log-log interpolation across untabulated masses, and selection of
// the loosest class satisfying an error budget.

import (
	"math"
	"sort"
)

// mgPerGram converts the table's MPE unit (mg) to the uncertainty unit (g).
const mgPerGram = 1000.0

// MPEFor resolves the maximum permissible error, in milligrams, for the
// given nominal mass and class.
//
// An exact tabulated value is returned as-is. Otherwise the MPE is
// interpolated between the two tabulated masses bracketing the request,
// in log10(mass) / log10(MPE) space: weight denominations and their MPEs
// grow geometrically, so linear interpolation would systematically
// overestimate MPE between entries.
//
// The second result is false when mass falls outside the tabulated range
// or either bracketing row does not define the class. A row that exists
// but lacks the class does not short-circuit: interpolation is still
// attempted against its neighbors.
func (t Table) MPEFor(mass float64, class Class) (float64, bool) {
	if mpe, ok := t.MPEAt(mass, class); ok {
		return mpe, true
	}

	xs := t.masses
	if len(xs) < 2 || mass < xs[0] || mass > xs[len(xs)-1] {
		return 0, false
	}

	i := sort.SearchFloat64s(xs, mass)
	if i == 0 || i == len(xs) {
		return 0, false
	}

	x0, x1 := xs[i-1], xs[i]
	y0, ok0 := t.rows[x0][class]
	y1, ok1 := t.rows[x1][class]
	if !ok0 || !ok1 {
		return 0, false
	}

	frac := (math.Log10(mass) - math.Log10(x0)) / (math.Log10(x1) - math.Log10(x0))
	return math.Pow(10, math.Log10(y0)+frac*(math.Log10(y1)-math.Log10(y0))), true
}

// SelectClass returns the first class in order whose MPE at the given
// nominal mass (grams) satisfies the threshold.
//
// order is scanned exactly as given (DefaultClassOrder when nil), so the
// result is always the earliest qualifying entry. Classes with no
// resolvable MPE for this mass are skipped.
//
// For a ThresholdStd budget the MPE is converted to a standard
// uncertainty in grams via u = MPE/sqrt(3) (rectangular distribution);
// a ThresholdMPE budget is compared against the MPE directly, in
// milligrams.
//
// The boolean result is false when no class in the table qualifies: an
// expected outcome, distinct from the usage errors returned for an unset
// threshold or non-positive mass.
func (t Table) SelectClass(mass float64, th Threshold, order []Class) (Class, bool, error) {
	if mass <= 0 {
		return "", false, ErrInvalidMass
	}
	if th.kind != ThresholdStd && th.kind != ThresholdMPE {
		return "", false, ErrNoThreshold
	}
	if order == nil {
		order = DefaultClassOrder
	}

	for _, class := range order {
		mpeMg, ok := t.MPEFor(mass, class)
		if !ok {
			continue
		}
		switch th.kind {
		case ThresholdMPE:
			if mpeMg <= th.value {
				return class, true, nil
			}
		case ThresholdStd:
			uGrams := mpeMg / mgPerGram / math.Sqrt(3)
			if uGrams <= th.value {
				return class, true, nil
			}
		}
	}
	return "", false, nil
}
