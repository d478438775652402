package debug

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table maps debug handles to the source frames they were exported from.
// Symbolication is best-effort everywhere: handles with no entry yield empty
// strings and never errors, so a stripped or missing table only degrades
// diagnostics.
type Table struct {
	frames map[Handle]Frame
}

// NewTable creates an empty symbolication table.
func NewTable() *Table {
	return &Table{frames: map[Handle]Frame{}}
}

// Add registers the frame for a handle, replacing any existing entry.
func (t *Table) Add(handle Handle, frame Frame) {
	t.frames[handle] = frame
}

// Len returns the number of handles in the table.
func (t *Table) Len() int {
	return len(t.frames)
}

// Lookup returns the frame for a handle, or false if the table has no entry.
func (t *Table) Lookup(handle Handle) (Frame, bool) {
	frame, ok := t.frames[handle]
	return frame, ok
}

// SourceDebugString symbolicates the given handles into a human-readable
// stack trace rooted at the named top-level module type. Unknown handles are
// skipped; the result is empty when nothing symbolicates.
func (t *Table) SourceDebugString(topTypeName string, handles ...Handle) string {
	var frames []Frame
	for _, handle := range handles {
		if frame, ok := t.frames[handle]; ok {
			frames = append(frames, frame)
		}
	}
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Module hierarchy: %s\n", topTypeName)
	b.WriteString("Stack trace:\n")
	for _, frame := range frames {
		b.WriteString("  ")
		b.WriteString(frame.String())
		b.WriteString("\n")
	}
	return b.String()
}

// ModuleHierarchyInfo returns the dotted sub-module path for a handle,
// prefixed with the named top-level module type. It returns an empty string
// for unknown handles.
func (t *Table) ModuleHierarchyInfo(handle Handle, topTypeName string) string {
	frame, ok := t.frames[handle]
	if !ok {
		return ""
	}
	if frame.Hierarchy == "" {
		return topTypeName
	}
	return topTypeName + "." + frame.Hierarchy
}

type frameEntry struct {
	Handle    int64  `yaml:"handle"`
	Function  string `yaml:"function,omitempty"`
	Hierarchy string `yaml:"hierarchy,omitempty"`
	File      string `yaml:"file,omitempty"`
	Line      int    `yaml:"line,omitempty"`
	Column    int    `yaml:"column,omitempty"`
	Source    string `yaml:"source,omitempty"`
}

type tableFile struct {
	Frames []frameEntry `yaml:"frames"`
}

// ParseTable reads a symbolication table from YAML data.
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid debug table: %w", err)
	}
	table := NewTable()
	for _, entry := range file.Frames {
		table.Add(Handle(entry.Handle), Frame{
			Function:  entry.Function,
			Hierarchy: entry.Hierarchy,
			Location: SourceLocation{
				Filename: entry.File,
				Line:     entry.Line,
				Column:   entry.Column,
				Source:   entry.Source,
			},
		})
	}
	return table, nil
}

// LoadTable reads a symbolication table from a YAML file on disk.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}
