package oiml

import (
	"errors"
	"fmt"
	"sort"
)

// Class is an OIML R111 accuracy grade for reference weights.
type Class string

// Recognized accuracy classes, tightest tolerance first.
const (
	ClassE1 Class = "E1"
	ClassE2 Class = "E2"
	ClassF1 Class = "F1"
	ClassF2 Class = "F2"
	ClassM1 Class = "M1"
	ClassM2 Class = "M2"
	ClassM3 Class = "M3"
)

// Classes lists every recognized class label, tightest to loosest.
// Table columns must be a subset of this set.
var Classes = []Class{ClassE1, ClassE2, ClassF1, ClassF2, ClassM1, ClassM2, ClassM3}

// DefaultClassOrder is the selection order used when the caller does not
// supply one. E1 weights are excluded: they are rarely stocked by
// calibration labs and the demo table carries no E1 values.
var DefaultClassOrder = []Class{ClassE2, ClassF1, ClassF2, ClassM1, ClassM2, ClassM3}

// Recognized reports whether c is a known OIML class label.
func Recognized(c Class) bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

// Domain and usage errors. These must surface to the caller; they are
// never silently replaced with defaults.
var (
	// ErrInvalidRelUncertainty is returned when the target relative
	// uncertainty is zero or negative.
	ErrInvalidRelUncertainty = errors.New("target relative uncertainty must be positive")

	// ErrInvalidTUR is returned when the test uncertainty ratio is zero
	// or negative.
	ErrInvalidTUR = errors.New("test uncertainty ratio must be positive")

	// ErrNoThreshold is returned by SelectClass when the threshold value
	// was never constructed via StdThreshold or MPEThreshold.
	ErrNoThreshold = errors.New("no threshold given: use StdThreshold or MPEThreshold")

	// ErrInvalidMass is returned when a nominal mass is zero or negative.
	ErrInvalidMass = errors.New("nominal mass must be positive")
)

// Balance characterizes the balance under calibration. It is an immutable
// input record: construct one per calculation call.
type Balance struct {
	// Repeatability is the observed repeatability standard deviation s,
	// in grams. Must be >= 0.
	Repeatability float64

	// Division is the digital resolution d of the balance display, in
	// grams. Zero means the resolution is unknown or not applicable.
	Division float64

	// IncludeResolution controls whether Division contributes a
	// rectangular rounding term to the effective uncertainty.
	IncludeResolution bool
}

// ThresholdKind discriminates the two budget interpretations accepted by
// SelectClass.
type ThresholdKind int

const (
	// thresholdUnset is the zero value; using it is a usage error.
	thresholdUnset ThresholdKind = iota

	// ThresholdStd compares the class MPE, converted to a standard
	// uncertainty via MPE/sqrt(3), against a budget in grams.
	ThresholdStd

	// ThresholdMPE compares the class MPE directly against a budget in
	// milligrams.
	ThresholdMPE
)

// Threshold is an error budget for class selection: either a standard
// uncertainty budget in grams or a direct MPE budget in milligrams.
// The zero Threshold is invalid; build one with StdThreshold or
// MPEThreshold.
type Threshold struct {
	kind  ThresholdKind
	value float64
}

// StdThreshold returns a standard-uncertainty budget in grams.
func StdThreshold(grams float64) Threshold {
	return Threshold{kind: ThresholdStd, value: grams}
}

// MPEThreshold returns a direct MPE budget in milligrams.
func MPEThreshold(milligrams float64) Threshold {
	return Threshold{kind: ThresholdMPE, value: milligrams}
}

// Kind reports which budget interpretation the threshold carries.
func (t Threshold) Kind() ThresholdKind { return t.kind }

// Value returns the budget value (grams for ThresholdStd, milligrams for
// ThresholdMPE).
func (t Threshold) Value() float64 { return t.value }

// String renders the threshold with its unit for user-facing messages.
func (t Threshold) String() string {
	switch t.kind {
	case ThresholdStd:
		return fmt.Sprintf("u <= %g g", t.value)
	case ThresholdMPE:
		return fmt.Sprintf("MPE <= %g mg", t.value)
	default:
		return "unset threshold"
	}
}

// Table holds maximum permissible errors per nominal mass and class.
// Nominal masses are in grams; MPE values are in milligrams.
//
// A Table is immutable after NewTable returns, so it may be shared freely
// between goroutines.
type Table struct {
	rows   map[float64]map[Class]float64
	masses []float64 // tabulated denominations, ascending
}

// NewTable builds a Table from rows mapping nominal mass (g) to per-class
// MPE (mg). The input is copied; later mutation of rows does not affect
// the table. Rows with non-positive masses or MPE values, or unrecognized
// class labels, are rejected.
func NewTable(rows map[float64]map[Class]float64) (Table, error) {
	t := Table{
		rows:   make(map[float64]map[Class]float64, len(rows)),
		masses: make([]float64, 0, len(rows)),
	}
	for mass, row := range rows {
		if mass <= 0 {
			return Table{}, fmt.Errorf("nominal mass %g g: %w", mass, ErrInvalidMass)
		}
		copied := make(map[Class]float64, len(row))
		for class, mpe := range row {
			if !Recognized(class) {
				return Table{}, fmt.Errorf("nominal mass %g g: unrecognized class %q", mass, class)
			}
			if mpe <= 0 {
				return Table{}, fmt.Errorf("nominal mass %g g, class %s: MPE must be positive, got %g", mass, class, mpe)
			}
			copied[class] = mpe
		}
		t.rows[mass] = copied
		t.masses = append(t.masses, mass)
	}
	sort.Float64s(t.masses)
	return t, nil
}

// Len returns the number of tabulated denominations.
func (t Table) Len() int { return len(t.masses) }

// Denominations returns the tabulated nominal masses in ascending order.
// The returned slice is a copy.
func (t Table) Denominations() []float64 {
	out := make([]float64, len(t.masses))
	copy(out, t.masses)
	return out
}

// MPEAt returns the tabulated MPE for an exact denomination and class,
// without interpolation.
func (t Table) MPEAt(mass float64, class Class) (float64, bool) {
	row, ok := t.rows[mass]
	if !ok {
		return 0, false
	}
	mpe, ok := row[class]
	return mpe, ok
}
