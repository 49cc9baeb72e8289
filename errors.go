package memsize

import "errors"

// Failure conditions reported by size arithmetic and parsing.
var (
	ErrOverflow  = errors.New("memory size overflows 64 bits")
	ErrUnderflow = errors.New("memory size cannot be negative")
	ErrSyntax    = errors.New("malformed memory size")
)
