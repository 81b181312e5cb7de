package commands

import (
	"flag"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tree-transforms/internal/animate"
	"tree-transforms/internal/graph"
	"tree-transforms/internal/primitives"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd grid -visible=false", []string{"grid", "-visible=false"}, true},
		{"cmd   pause  ", []string{"pause"}, true},
		{"cmd ", nil, true},
		{"hello there", nil, false},
		{"CMD pause", nil, false},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.args, args, tt.line)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Execute(nil), ErrMissingSubcommand)
	assert.ErrorIs(t, r.Execute([]string{"nope"}), ErrUnknownCommand)

	fs := flag.NewFlagSet("n", flag.ContinueOnError)
	fs.Int("count", 0, "")
	r.Register("n", fs, func() error { return nil })
	assert.Error(t, r.Execute([]string{"n", "-count=abc"}))
}

func TestExecuteResetsFlags(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	n := fs.Int("n", 7, "")
	var seen []int
	r.Register("set", fs, func() error {
		seen = append(seen, *n)
		return nil
	})
	require.NoError(t, r.Execute([]string{"set", "-n", "3"}))
	require.NoError(t, r.Execute([]string{"set"}))
	assert.Equal(t, []int{3, 7}, seen)
}

// demoViewer builds root -> triangle -> child at (2,0,0), both with meshes.
func demoViewer(t *testing.T) (*Viewer, *[]string) {
	t.Helper()
	reg := primitives.NewRegistry()
	tri, err := reg.Mesh("triangle", primitives.DefaultSize)
	require.NoError(t, err)

	root := graph.New("root")
	a := root.EmplaceChild("triangle")
	a.SetMesh(tri)
	b := a.EmplaceChild("child")
	b.SetMesh(tri)
	b.Transform().Translate(mgl64.Vec3{2, 0, 0})

	spinner := animate.NewSpinner(36)
	spinner.Add(a, mgl64.Vec3{0, 0, 1})

	var out []string
	v := &Viewer{
		Root:    root,
		Spinner: spinner,
		Print:   func(line string) { out = append(out, line) },
	}
	return v, &out
}

func TestViewerCommands(t *testing.T) {
	v, out := demoViewer(t)
	var grid []bool
	framed := 0
	v.SetGrid = func(b bool) { grid = append(grid, b) }
	v.Reframe = func() { framed++ }

	r := NewRegistry()
	RegisterViewer(r, v)
	run := func(line string) error {
		args, ok := Parse(line)
		require.True(t, ok, line)
		return r.Execute(args)
	}

	require.NoError(t, run("cmd pause"))
	assert.False(t, v.Spinner.Paused())
	require.NoError(t, run("cmd pause"))
	assert.True(t, v.Spinner.Paused())
	assert.Equal(t, []string{"running", "paused"}, *out)

	require.NoError(t, run("cmd grid -visible=false"))
	require.NoError(t, run("cmd grid"))
	assert.Equal(t, []bool{false, true}, grid)

	require.NoError(t, run("cmd frame"))
	assert.Equal(t, 1, framed)

	require.NoError(t, run("cmd rotate -path triangle -deg 90 -axis z"))
	child, ok := v.Root.Find("triangle/child")
	require.True(t, ok)
	assertVecNear(t, mgl64.Vec3{0, 2, 0}, child.WorldTransform().Pos(), 1e-9)

	require.NoError(t, run("cmd move -path triangle/child -x 1"))
	// child's local x now points along world +y
	assertVecNear(t, mgl64.Vec3{0, 3, 0}, child.WorldTransform().Pos(), 1e-9)

	*out = nil
	require.NoError(t, run("cmd bbox -path triangle/child"))
	require.Len(t, *out, 1)
	assert.Contains(t, (*out)[0], "triangle/child: min")

	assert.ErrorIs(t, run("cmd rotate -path nope -deg 10"), ErrNoSuchObject)
	assert.ErrorIs(t, run("cmd rotate -path triangle -deg 10 -axis w"), ErrBadAxis)

	*out = nil
	require.NoError(t, run("cmd help"))
	assert.Equal(t, []string{"commands: bbox, frame, grid, help, move, pause, rotate, tree"}, *out)
}

func TestViewerNilHooks(t *testing.T) {
	r := NewRegistry()
	RegisterViewer(r, &Viewer{Root: graph.New("root")})
	for _, line := range []string{"cmd pause", "cmd grid", "cmd frame", "cmd tree"} {
		args, _ := Parse(line)
		assert.NoError(t, r.Execute(args), line)
	}
}

func TestRotateLocalAxis(t *testing.T) {
	v, _ := demoViewer(t)
	require.NoError(t, Rotate(v.Root, "triangle/child", 180, "y"))
	child, _ := v.Root.Find("triangle/child")
	fwd := child.WorldTransform().Fwd()
	assertVecNear(t, mgl64.Vec3{0, 0, -1}, fwd, 1e-9, "fwd %v", fwd)
}

func TestWorldBox(t *testing.T) {
	v, _ := demoViewer(t)
	box, err := WorldBox(v.Root, "triangle")
	require.NoError(t, err)
	assert.InDelta(t, -0.5, box.Min[0], 1e-9)
	assert.InDelta(t, 2.5, box.Max[0], 1e-9)

	_, err = WorldBox(v.Root, "missing")
	assert.True(t, errors.Is(err, ErrNoSuchObject))
}

func TestAxis(t *testing.T) {
	for name, want := range map[string]mgl64.Vec3{"x": {1, 0, 0}, "Y": {0, 1, 0}, "z": {0, 0, 1}} {
		got, err := Axis(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := Axis("")
	assert.ErrorIs(t, err, ErrBadAxis)
}

func TestTree(t *testing.T) {
	v, _ := demoViewer(t)
	assert.Equal(t, []string{"root", "  triangle [triangle]", "    child [triangle]"}, Tree(v.Root))
}

func assertVecNear(t *testing.T, want, have mgl64.Vec3, eps float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], have[:], eps, msgAndArgs...)
}
