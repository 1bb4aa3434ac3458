// Package tableio loads maximum-permissible-error tables from CSV files.
//
// The expected shape mirrors published OIML R111 tables:
//
//	mass_g,E1,E2,F1,F2,M1,M2,M3
//	1,,1,3,10,50,150,500
//	2,,1.2,3.5,12,60,180,600
//	...
//
// One mandatory mass_g column (grams) plus one optional column per
// recognized accuracy class (MPE in milligrams). Class columns may appear
// in any order and any subset; a blank cell means the class is undefined
// for that denomination. The result is an immutable [oiml.Table].
package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/masslab/oimlcal/internal/oiml"
)

// massColumn is the mandatory nominal-mass header, in grams.
const massColumn = "mass_g"

// ErrTooFewRows is returned when a table defines fewer than two
// denominations. Interpolation between tabulated masses needs at least
// two rows to ever resolve.
var ErrTooFewRows = errors.New("table needs at least two denominations")

// Load parses a CSV MPE table from r.
func Load(r io.Reader) (oiml.Table, error) {
	cr := csv.NewReader(NewBOMSkippingReader(r))
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return oiml.Table{}, errors.New("empty table file")
	}
	if err != nil {
		return oiml.Table{}, fmt.Errorf("reading header: %w", err)
	}

	massIdx, classFor, err := parseHeader(header)
	if err != nil {
		return oiml.Table{}, err
	}

	rows := make(map[float64]map[oiml.Class]float64)
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return oiml.Table{}, fmt.Errorf("line %d: %w", line, err)
		}

		mass, err := strconv.ParseFloat(strings.TrimSpace(record[massIdx]), 64)
		if err != nil {
			return oiml.Table{}, fmt.Errorf("line %d: invalid %s value %q", line, massColumn, record[massIdx])
		}
		if mass <= 0 {
			return oiml.Table{}, fmt.Errorf("line %d: %s must be positive, got %g", line, massColumn, mass)
		}
		if _, dup := rows[mass]; dup {
			return oiml.Table{}, fmt.Errorf("line %d: duplicate denomination %g g", line, mass)
		}

		row := make(map[oiml.Class]float64)
		for idx, class := range classFor {
			if idx >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[idx])
			if cell == "" {
				continue // class undefined for this denomination
			}
			mpe, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return oiml.Table{}, fmt.Errorf("line %d, class %s: invalid MPE value %q", line, class, cell)
			}
			if mpe <= 0 {
				return oiml.Table{}, fmt.Errorf("line %d, class %s: MPE must be positive, got %g", line, class, mpe)
			}
			row[class] = mpe
		}
		rows[mass] = row
	}

	if len(rows) < 2 {
		return oiml.Table{}, ErrTooFewRows
	}
	return oiml.NewTable(rows)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (oiml.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return oiml.Table{}, fmt.Errorf("opening table file: %w", err)
	}
	defer f.Close()

	table, err := Load(f)
	if err != nil {
		return oiml.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// parseHeader locates the mass column and maps class-column positions to
// their class labels. Unknown columns are rejected so a typo like "F 1"
// fails loudly instead of silently dropping a whole class.
func parseHeader(header []string) (int, map[int]oiml.Class, error) {
	massIdx := -1
	classFor := make(map[int]oiml.Class, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, massColumn) {
			if massIdx >= 0 {
				return 0, nil, fmt.Errorf("duplicate %s column", massColumn)
			}
			massIdx = i
			continue
		}
		class := oiml.Class(strings.ToUpper(name))
		if !oiml.Recognized(class) {
			return 0, nil, fmt.Errorf("unrecognized column %q (expected %s or a class label)", name, massColumn)
		}
		if _, dup := classValues(classFor, class); dup {
			return 0, nil, fmt.Errorf("duplicate class column %s", class)
		}
		classFor[i] = class
	}

	if massIdx < 0 {
		return 0, nil, fmt.Errorf("missing required column %q", massColumn)
	}
	return massIdx, classFor, nil
}

// classValues reports whether class already has a column assigned.
func classValues(classFor map[int]oiml.Class, class oiml.Class) (int, bool) {
	for idx, c := range classFor {
		if c == class {
			return idx, true
		}
	}
	return 0, false
}
