package debug

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestSourceDebugString(t *testing.T) {
	table := NewTable()
	table.Add(1, Frame{
		Function:  "forward",
		Hierarchy: "encoder",
		Location:  SourceLocation{Filename: "net.py", Line: 10, Column: 4},
	})
	table.Add(2, Frame{
		Function: "relu",
		Location: SourceLocation{Line: 3, Column: 1},
	})

	out := table.SourceDebugString("Net", 1, 2)
	assert.Contains(t, out, "Module hierarchy: Net")
	assert.Contains(t, out, "at encoder.forward (net.py:10:4)")
	assert.Contains(t, out, "at relu (3:1)")

	// Unknown handles are skipped; all-unknown yields an empty string.
	assert.Equal(t, table.SourceDebugString("Net", 99), "")
	assert.Equal(t, table.SourceDebugString("Net", InvalidHandle), "")
}

func TestModuleHierarchyInfo(t *testing.T) {
	table := NewTable()
	table.Add(1, Frame{Hierarchy: "encoder.layer1"})
	table.Add(2, Frame{})

	assert.Equal(t, table.ModuleHierarchyInfo(1, "Net"), "Net.encoder.layer1")
	assert.Equal(t, table.ModuleHierarchyInfo(2, "Net"), "Net")
	assert.Equal(t, table.ModuleHierarchyInfo(99, "Net"), "")
}

func TestParseTable(t *testing.T) {
	data := []byte(`
frames:
  - handle: 1
    function: forward
    hierarchy: encoder
    file: net.py
    line: 10
    column: 4
  - handle: 2
    function: relu
`)
	table, err := ParseTable(data)
	assert.Nil(t, err)
	assert.Equal(t, table.Len(), 2)

	frame, ok := table.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, frame.Function, "forward")
	assert.Equal(t, frame.Hierarchy, "encoder")
	assert.Equal(t, frame.Location.String(), "net.py:10:4")
}

func TestParseTableInvalid(t *testing.T) {
	_, err := ParseTable([]byte("frames: {not a list}"))
	assert.NotNil(t, err)
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	err := os.WriteFile(path, []byte("frames:\n  - handle: 7\n    function: conv\n"), 0o644)
	assert.Nil(t, err)

	table, err := LoadTable(path)
	assert.Nil(t, err)
	_, ok := table.Lookup(7)
	assert.True(t, ok)

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestInfoContext(t *testing.T) {
	ctx := context.Background()
	_, ok := CurrentInfo(ctx)
	assert.False(t, ok)

	info := &Info{ModelName: "mnist", MethodName: "forward"}
	scoped := WithInfo(ctx, info)

	got, ok := CurrentInfo(scoped)
	assert.True(t, ok)
	assert.Equal(t, got, info)

	// The original context is untouched.
	_, ok = CurrentInfo(ctx)
	assert.False(t, ok)
}
