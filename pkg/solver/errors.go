package solver

import "errors"

// Construction errors are returned synchronously by the call that receives a
// malformed argument (§7 of the specification). They are never produced during
// search; a puzzle that fails to find a solution simply yields no solutions.
var (
	// ErrInvalidRange is returned when an argument lies outside its valid range:
	// MinValue > MaxValue, a non-positive grid width or height, a negative
	// maxCount, a nil predicate, or too few lines or regions.
	ErrInvalidRange = errors.New("solver: argument out of range")

	// ErrDomainTooWide is returned when MaxValue-MinValue+1 exceeds the bitset width
	// the engine supports.
	ErrDomainTooWide = errors.New("solver: value range exceeds the maximum supported domain width")

	// ErrCellOutOfRange is returned when a constraint names a cell index outside [0, N).
	ErrCellOutOfRange = errors.New("solver: cell index out of range")

	// ErrValueOutOfRange is returned when a constraint names a value outside [MinValue, MaxValue].
	ErrValueOutOfRange = errors.New("solver: value out of range")

	// ErrEmptyCellList is returned by constraints given fewer cells than they
	// require (one for most, two or three for some).
	ErrEmptyCellList = errors.New("solver: constraint has too few cells")

	// ErrLengthMismatch is returned when two parallel slices (e.g. cells and a tuple) disagree in length.
	ErrLengthMismatch = errors.New("solver: mismatched slice lengths")

	// ErrInvalidCoordinate is returned by the coordinate mini-language parser on malformed input.
	ErrInvalidCoordinate = errors.New("solver: invalid coordinate expression")

	// ErrInvalidGivens is returned by the givens mini-language parser on malformed input.
	ErrInvalidGivens = errors.New("solver: invalid givens string")
)
