package widgets

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/symbols"
	"github.com/odvcencio/tessera/pkg/ui/terminal"
)

var updateSnapshots = flag.Bool("update-snapshots", false, "Update golden snapshot files")

// renderToString renders a widget into a fresh buffer and returns its rows.
func renderToString(w terminal.Widget, width, height uint16) string {
	area := geometry.NewRect(0, 0, width, height)
	buf := buffer.New(area)
	w.Render(area, buf)
	return buf.String() + "\n"
}

// assertSnapshot compares rendered output against a golden file.
func assertSnapshot(t *testing.T, name string, actual string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if *updateSnapshots {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to write golden file: %v", err)
		}
		t.Logf("Updated snapshot: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file not found: %s\nRun with -update-snapshots to create it.\nActual output:\n%s", goldenPath, actual)
		}
		t.Fatalf("failed to read golden file: %v", err)
	}

	if actual != string(expected) {
		t.Errorf("snapshot mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with -update-snapshots to update.", name, string(expected), actual)
	}
}

func TestSnapshot_Block(t *testing.T) {
	b := NewBlock().WithTitle("Log")
	b.Lines = symbols.Rounded

	assertSnapshot(t, "block", renderToString(b, 12, 4))
}

func TestSnapshot_Paragraph(t *testing.T) {
	block := NewBlock().WithTitle("Fox")
	block.TitleAlign = geometry.AlignCenter
	p := NewParagraph("the quick brown fox jumps")
	p.Block = &block

	assertSnapshot(t, "paragraph", renderToString(p, 14, 5))
}
