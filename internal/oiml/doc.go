// Package oiml implements the calculation engine for balance calibration
// under OIML R111 conventions.
//
// This package is the heart of the calculator, containing all domain logic
// independent of any CLI or file-loading layer. It can be used by command
// handlers, other tools, or tests without modification.
//
// # Components
//
// The package is organized around two independent calculators:
//
//   - Uncertainty model: combines a balance's repeatability and digital
//     resolution into an effective standard uncertainty, and derives the
//     minimum sample mass for a target relative uncertainty. See
//     [EffectiveStd] and [Balance.MinimumMass].
//   - Reference-class selector: given a nominal mass and an MPE table,
//     finds the loosest OIML accuracy class whose maximum permissible
//     error still satisfies an uncertainty budget. See [Table.SelectClass].
//
// # MPE Tables
//
// A [Table] maps nominal masses (grams) to per-class maximum permissible
// errors (milligrams). Tables are built once via [NewTable] and are
// immutable afterwards, so a single table can serve concurrent
// calculations without synchronization. When a requested mass falls
// between tabulated denominations, MPE values are interpolated in
// log-mass / log-MPE space, because both weight denominations and MPE
// growth in OIML tables are approximately geometric.
//
// # Error Handling
//
// Invalid numeric input and missing thresholds are domain errors returned
// to the caller (see [ErrInvalidRelUncertainty], [ErrNoThreshold]).
// "No MPE resolvable" and "no class qualifies" are expected outcomes, not
// errors: they are reported through boolean results so callers can tell
// them apart from every numeric output.
package oiml
