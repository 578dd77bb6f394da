package entities

import "fmt"

// Finding is a single disallowed non-ASCII character at a file and line.
type Finding struct {
	Path string // Path as displayed: scan root joined with the relative path
	Line int    // 1-based line number
	Char rune   // The offending character
}

// CodePoint returns the character's code point as U+XXXX (at least four uppercase hex digits).
func (f Finding) CodePoint() string {
	return fmt.Sprintf("U+%04X", f.Char)
}

// String renders the finding in the report line format.
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: Found non-ASCII: %c (%s)", f.Path, f.Line, f.Char, f.CodePoint())
}

// ReadError records a file that could not be opened, read, or decoded.
type ReadError struct {
	Path    string
	Message string
}

// String renders the read error in the report line format.
func (e ReadError) String() string {
	return fmt.Sprintf("Error reading %s: %s", e.Path, e.Message)
}
