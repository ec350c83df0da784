package token

import "fmt"

// Position represents a location in a service definition source file.
type Position struct {
	File   string // source file name, may be empty
	Line   int    // 1-based line number
	Column int    // 1-based column number
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String renders the position as "file:line:column". The file part is
// omitted when empty.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
