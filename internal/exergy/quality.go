package exergy

import (
	"fmt"
	"strings"
)

// EndUse classifies what the delivered energy is ultimately used for.
// The quality value of an end-use is the fraction of delivered energy that
// is work-equivalent: electricity and shaft work are pure exergy, heat is
// worth progressively less as its temperature approaches the environment.
type EndUse int

// Closed set of end-use categories. Adding a category requires updating
// Quality, String, and ParseEndUse together.
const (
	Electricity EndUse = iota
	MechanicalWork
	HighTempHeat
	MediumTempHeat
	LowTempHeat
	Chemical
)

// Quality returns the work-equivalent fraction for the end-use.
func (u EndUse) Quality() float64 {
	switch u {
	case Electricity, MechanicalWork:
		return 1.0
	case HighTempHeat:
		return 0.6
	case MediumTempHeat:
		return 0.4
	case LowTempHeat:
		return 0.2
	case Chemical:
		return 0.9
	default:
		return 0
	}
}

// IsHeat reports whether the end-use is a thermal service. Heat end-uses
// with a known output temperature get Carnot-based exergy instead of the
// fixed quality value.
func (u EndUse) IsHeat() bool {
	switch u {
	case HighTempHeat, MediumTempHeat, LowTempHeat:
		return true
	default:
		return false
	}
}

// String returns the canonical snake_case name for the end-use.
func (u EndUse) String() string {
	switch u {
	case Electricity:
		return "electricity"
	case MechanicalWork:
		return "mechanical_work"
	case HighTempHeat:
		return "high_temp_heat"
	case MediumTempHeat:
		return "medium_temp_heat"
	case LowTempHeat:
		return "low_temp_heat"
	case Chemical:
		return "chemical"
	default:
		return "unknown"
	}
}

// ParseEndUse converts a user-supplied end-use name into an EndUse.
// Matching is case-insensitive and accepts both snake_case and hyphenated
// forms. Unknown names return ErrUnknownEndUse; unlike source names, a typo
// here would silently pick the wrong quality value, so parsing is strict.
func ParseEndUse(s string) (EndUse, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "electricity":
		return Electricity, nil
	case "mechanical_work":
		return MechanicalWork, nil
	case "high_temp_heat":
		return HighTempHeat, nil
	case "medium_temp_heat":
		return MediumTempHeat, nil
	case "low_temp_heat":
		return LowTempHeat, nil
	case "chemical":
		return Chemical, nil
	default:
		return Electricity, fmt.Errorf("%w: %q", ErrUnknownEndUse, s)
	}
}
