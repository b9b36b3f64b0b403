package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/object"
)

// UpdateEnv is the environment variable that makes MatchesFile rewrite
// golden files instead of comparing.
const UpdateEnv = "EMBEDUI_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the object tree and the draw operations of a refresh.
type Snapshot struct {
	Tree *Node    `yaml:"tree"`
	Ops  []DrawOp `yaml:"ops,omitempty"`
}

// Node is a serialized object.
type Node struct {
	Type     string   `yaml:"type"`
	Area     [4]int32 `yaml:"area,flow"`
	Children []*Node  `yaml:"children,omitempty"`
}

// DrawOp is a serialized rectangle request.
type DrawOp struct {
	Area   [4]int32 `yaml:"area,flow"`
	Color  string   `yaml:"color"`
	Grad   string   `yaml:"grad,omitempty"`
	Radius int32    `yaml:"radius,omitempty"`
	Border int32    `yaml:"border,omitempty"`
}

// CaptureSnapshot invalidates the whole display, refreshes it and records
// the result.
func (t *Tester) CaptureSnapshot() *Snapshot {
	t.disp.Invalidate(t.disp.Bounds())
	return &Snapshot{
		Tree: captureNode(t.disp.Screen()),
		Ops:  serializeOps(t.Refresh()),
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When EMBEDUI_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, or "" if they
// are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func captureNode(o *object.Object) *Node {
	types := o.TypeNames()
	node := &Node{
		Type: types[len(types)-1],
		Area: areaOf(o.Coords()),
	}
	for _, c := range o.Children() {
		node.Children = append(node.Children, captureNode(c))
	}
	return node
}

func serializeOps(ops []draw.RectOp) []DrawOp {
	out := make([]DrawOp, 0, len(ops))
	for _, op := range ops {
		body := op.Style.Body
		d := DrawOp{
			Area:   areaOf(op.Area),
			Color:  serializeColor(body.MainColor),
			Radius: int32(body.Radius),
			Border: int32(body.Border.Width),
		}
		if body.GradColor != body.MainColor {
			d.Grad = serializeColor(body.GradColor)
		}
		out = append(out, d)
	}
	return out
}

func areaOf(a graphics.Area) [4]int32 {
	return [4]int32{int32(a.X1), int32(a.Y1), int32(a.X2), int32(a.Y2)}
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}

	return buf.String()
}
