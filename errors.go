package nxcube

import "errors"

// Sentinel errors for the nxcube package.
var (
	// Construction errors
	ErrInvalidSize = errors.New("nxcube: cube size must be at least 2")

	// Sticker access errors
	ErrIndexOutOfRange = errors.New("nxcube: sticker index out of range")

	// Move errors
	ErrInvalidMove     = errors.New("nxcube: unknown face in move")
	ErrInvalidLayer    = errors.New("nxcube: slice layer out of range for cube size")
	ErrInvalidNotation = errors.New("nxcube: invalid move notation")

	// Scramble errors
	ErrInvalidArgument  = errors.New("nxcube: scramble length must be at least 1")
	ErrExhaustedMoveSet = errors.New("nxcube: no legal moves remain for scramble constraints")
)
