package debug

import "fmt"

// SourceLocation represents a position in the original source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code, if available
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// Frame associates a debug handle with the source context it was exported
// from: the function name, the dotted sub-module path within the top-level
// module, and the source location.
type Frame struct {
	Function  string
	Hierarchy string
	Location  SourceLocation
}

// String returns a formatted string representation of the frame.
func (f Frame) String() string {
	name := f.Function
	if f.Hierarchy != "" {
		if name != "" {
			name = f.Hierarchy + "." + name
		} else {
			name = f.Hierarchy
		}
	}
	if name != "" {
		return fmt.Sprintf("at %s (%s)", name, f.Location.String())
	}
	return fmt.Sprintf("at %s", f.Location.String())
}
