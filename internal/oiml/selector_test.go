package oiml

import (
	"errors"
	"math"
	"testing"
)

func TestMPEFor_ExactLookup(t *testing.T) {
	table := DemoTable()

	tests := []struct {
		mass  float64
		class Class
		want  float64
	}{
		{2000, ClassE2, 50.0},
		{2000, ClassF1, 120.0},
		{1, ClassM3, 500.0},
		{50000, ClassE2, 300.0},
	}

	for _, tt := range tests {
		got, ok := table.MPEFor(tt.mass, tt.class)
		if !ok {
			t.Errorf("MPEFor(%g, %s) not found, want %g", tt.mass, tt.class, tt.want)
			continue
		}
		if got != tt.want {
			// Tabulated values must come back exactly, not interpolated.
			t.Errorf("MPEFor(%g, %s) = %g, want exactly %g", tt.mass, tt.class, got, tt.want)
		}
	}
}

func TestMPEFor_Interpolation(t *testing.T) {
	table := DemoTable()

	// 1500 g sits between the 1000 g and 2000 g rows (E2: 30 and 50 mg).
	got, ok := table.MPEFor(1500, ClassE2)
	if !ok {
		t.Fatal("MPEFor(1500, E2) not found")
	}
	if got <= 30.0 || got >= 50.0 {
		t.Errorf("MPEFor(1500, E2) = %g, want strictly between 30 and 50", got)
	}

	// Log-log interpolation, computed by hand:
	// t = (log10 1500 - log10 1000) / (log10 2000 - log10 1000)
	// mpe = 10^(log10 30 + t*(log10 50 - log10 30))
	frac := (math.Log10(1500) - 3) / (math.Log10(2000) - 3)
	want := math.Pow(10, math.Log10(30)+frac*(math.Log10(50)-math.Log10(30)))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MPEFor(1500, E2) = %g, want %g", got, want)
	}
}

func TestMPEFor_InterpolationMonotonic(t *testing.T) {
	table := DemoTable()

	// For a class whose MPE strictly increases with mass, interpolated
	// values must stay strictly inside the bracketing interval.
	masses := table.Denominations()
	for i := 0; i+1 < len(masses); i++ {
		x0, x1 := masses[i], masses[i+1]
		mid := math.Sqrt(x0 * x1) // geometric midpoint
		y0, _ := table.MPEAt(x0, ClassF1)
		y1, _ := table.MPEAt(x1, ClassF1)
		got, ok := table.MPEFor(mid, ClassF1)
		if !ok {
			t.Errorf("MPEFor(%g, F1) not found", mid)
			continue
		}
		lo, hi := y0, y1
		if lo > hi {
			lo, hi = hi, lo
		}
		if y0 != y1 && (got <= lo || got >= hi) {
			t.Errorf("MPEFor(%g, F1) = %g, want strictly between %g and %g", mid, got, lo, hi)
		}
	}
}

func TestMPEFor_OutOfRange(t *testing.T) {
	table := DemoTable()

	for _, mass := range []float64{0.5, 0.999, 50001, 100000} {
		if got, ok := table.MPEFor(mass, ClassE2); ok {
			t.Errorf("MPEFor(%g, E2) = %g, want not found (out of range)", mass, got)
		}
	}
}

func TestMPEFor_MissingClassInBracketingRow(t *testing.T) {
	// F1 is defined at 1 g and 5 g but not at 2 g: interpolation across
	// the gap must conservatively report not found.
	table, err := NewTable(map[float64]map[Class]float64{
		1: {ClassE2: 1.0, ClassF1: 3.0},
		2: {ClassE2: 1.2},
		5: {ClassE2: 1.5, ClassF1: 4.0},
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if got, ok := table.MPEFor(1.5, ClassF1); ok {
		t.Errorf("MPEFor(1.5, F1) = %g, want not found (class missing at 2 g)", got)
	}
	// The tabulated 2 g row itself lacks F1.
	if got, ok := table.MPEFor(2, ClassF1); ok {
		t.Errorf("MPEFor(2, F1) = %g, want not found", got)
	}
	// E2 is present in both bracketing rows and interpolates fine.
	if _, ok := table.MPEFor(1.5, ClassE2); !ok {
		t.Error("MPEFor(1.5, E2) not found, want interpolated value")
	}
}

func TestSelectClass_MPEThreshold(t *testing.T) {
	table := DemoTable()

	tests := []struct {
		name      string
		mass      float64
		threshold Threshold
		want      Class
		wantFound bool
	}{
		{
			name:      "boundary MPE satisfied with <=",
			mass:      2000,
			threshold: MPEThreshold(50.0),
			want:      ClassE2,
			wantFound: true,
		},
		{
			name:      "threshold tighter than every class",
			mass:      2000,
			threshold: MPEThreshold(10.0),
			wantFound: false,
		},
		{
			name:      "generous threshold still returns earliest entry",
			mass:      2000,
			threshold: MPEThreshold(1000.0),
			want:      ClassE2,
			wantFound: true,
		},
		{
			name:      "interpolated mass",
			mass:      1500,
			threshold: MPEThreshold(45.0),
			want:      ClassE2,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := table.SelectClass(tt.mass, tt.threshold, nil)
			if err != nil {
				t.Fatalf("SelectClass() error = %v", err)
			}
			if found != tt.wantFound {
				t.Fatalf("SelectClass() found = %v, want %v", found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Errorf("SelectClass() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSelectClass_StdThreshold(t *testing.T) {
	table := DemoTable()

	// E2 at 2000 g: u = 50 mg / 1000 / sqrt(3) ≈ 0.028868 g.
	got, found, err := table.SelectClass(2000, StdThreshold(0.05), nil)
	if err != nil {
		t.Fatalf("SelectClass() error = %v", err)
	}
	if !found || got != ClassE2 {
		t.Errorf("SelectClass() = %s, found=%v, want E2", got, found)
	}

	// Budget below E2's converted uncertainty: nothing qualifies.
	_, found, err = table.SelectClass(2000, StdThreshold(0.02), nil)
	if err != nil {
		t.Fatalf("SelectClass() error = %v", err)
	}
	if found {
		t.Error("SelectClass() found a class, want none for a 0.02 g budget")
	}
}

func TestSelectClass_EarliestQualifying(t *testing.T) {
	table := DemoTable()

	// Every class from F2 on satisfies 600 mg at 2000 g; with a custom
	// order starting at F2, F2 must come back, never a later entry.
	got, found, err := table.SelectClass(2000, MPEThreshold(600.0), []Class{ClassF2, ClassM1, ClassM2})
	if err != nil {
		t.Fatalf("SelectClass() error = %v", err)
	}
	if !found || got != ClassF2 {
		t.Errorf("SelectClass() = %s, found=%v, want F2", got, found)
	}
}

func TestSelectClass_SkipsUnresolvableClasses(t *testing.T) {
	table := DemoTable()

	// The demo table has no E1 column; E1 must be skipped, not fail.
	got, found, err := table.SelectClass(2000, MPEThreshold(120.0), []Class{ClassE1, ClassF1})
	if err != nil {
		t.Fatalf("SelectClass() error = %v", err)
	}
	if !found || got != ClassF1 {
		t.Errorf("SelectClass() = %s, found=%v, want F1", got, found)
	}
}

func TestSelectClass_UsageErrors(t *testing.T) {
	table := DemoTable()

	if _, _, err := table.SelectClass(2000, Threshold{}, nil); !errors.Is(err, ErrNoThreshold) {
		t.Errorf("SelectClass(zero threshold) error = %v, want ErrNoThreshold", err)
	}
	if _, _, err := table.SelectClass(0, MPEThreshold(50), nil); !errors.Is(err, ErrInvalidMass) {
		t.Errorf("SelectClass(mass=0) error = %v, want ErrInvalidMass", err)
	}
	if _, _, err := table.SelectClass(-5, MPEThreshold(50), nil); !errors.Is(err, ErrInvalidMass) {
		t.Errorf("SelectClass(mass=-5) error = %v, want ErrInvalidMass", err)
	}
}

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name string
		rows map[float64]map[Class]float64
	}{
		{
			name: "non-positive mass",
			rows: map[float64]map[Class]float64{0: {ClassE2: 1.0}},
		},
		{
			name: "negative mass",
			rows: map[float64]map[Class]float64{-1: {ClassE2: 1.0}},
		},
		{
			name: "unrecognized class",
			rows: map[float64]map[Class]float64{1: {Class("X9"): 1.0}},
		},
		{
			name: "non-positive MPE",
			rows: map[float64]map[Class]float64{1: {ClassE2: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.rows); err == nil {
				t.Error("NewTable() expected error")
			}
		})
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	rows := map[float64]map[Class]float64{
		1: {ClassE2: 1.0},
		2: {ClassE2: 1.2},
	}
	table, err := NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	// Mutating the source rows must not leak into the table.
	rows[1][ClassE2] = 999
	if got, _ := table.MPEAt(1, ClassE2); got != 1.0 {
		t.Errorf("MPEAt(1, E2) = %g after source mutation, want 1.0", got)
	}
}

func TestDemoTable(t *testing.T) {
	table := DemoTable()

	if table.Len() != 15 {
		t.Errorf("DemoTable().Len() = %d, want 15", table.Len())
	}

	masses := table.Denominations()
	for i := 1; i < len(masses); i++ {
		if masses[i] <= masses[i-1] {
			t.Fatalf("Denominations() not ascending at index %d: %v", i, masses)
		}
	}
	if masses[0] != 1 || masses[len(masses)-1] != 50000 {
		t.Errorf("Denominations() range = [%g, %g], want [1, 50000]", masses[0], masses[len(masses)-1])
	}
}
