package game

import "fmt"

// ResultKind tags the outcome of a shot.
type ResultKind int

const (
	Miss ResultKind = iota
	Hit
	Sunk
)

// Result is the outcome of checking a cell. Length is set only for Sunk.
type Result struct {
	Kind   ResultKind
	Length int
}

// MissResult is the outcome of firing at water.
func MissResult() Result {
	return Result{Kind: Miss}
}

// HitResult is the outcome of hitting a ship that stays afloat.
func HitResult() Result {
	return Result{Kind: Hit}
}

// SunkResult is the outcome of hitting the last cell of a ship of the given length.
func SunkResult(length int) Result {
	return Result{Kind: Sunk, Length: length}
}

func (r Result) String() string {
	switch r.Kind {
	case Miss:
		return "MISS"
	case Hit:
		return "HIT"
	case Sunk:
		return fmt.Sprintf("SUNK, %d", r.Length)
	default:
		return fmt.Sprintf("result(%d)", int(r.Kind))
	}
}
