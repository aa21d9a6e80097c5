package exergy

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for input parsing at the engine boundary. These can be
// compared with errors.Is().
var (
	// ErrUnknownEndUse indicates an end-use name outside the closed set.
	ErrUnknownEndUse = constError("unknown end use")

	// ErrNonPositiveEnergy indicates a zero or negative input energy.
	ErrNonPositiveEnergy = constError("input energy must be greater than 0")
)
