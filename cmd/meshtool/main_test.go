package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/internal/engine/shapes"
)

func TestCmdListShowsEveryGenerator(t *testing.T) {
	var out strings.Builder
	require.NoError(t, cmdList(&out))
	for _, name := range shapes.Names() {
		assert.Contains(t, out.String(), name)
	}
}

func TestCmdCheckAll(t *testing.T) {
	var out strings.Builder
	require.NoError(t, cmdCheck(&out, nil))
	assert.Equal(t, len(shapes.Names()), strings.Count(out.String(), "ok   "))
}

func TestCmdCheckUnknown(t *testing.T) {
	var out strings.Builder
	err := cmdCheck(&out, []string{"cube", "teapot"})
	assert.ErrorContains(t, err, "1 of 2")
	assert.Contains(t, out.String(), "FAIL teapot")
}

func TestCmdStats(t *testing.T) {
	var out strings.Builder
	require.NoError(t, cmdStats(&out, []string{"circle", "-tess", "8", "-radius", "2"}))
	assert.Contains(t, out.String(), "Vertices:  10\n")
	assert.Contains(t, out.String(), "Triangles: 8\n")
	assert.Contains(t, out.String(), "(-2.000,")
}

func TestCmdStatsUsage(t *testing.T) {
	var out strings.Builder
	assert.ErrorContains(t, cmdStats(&out, nil), "usage")
	assert.ErrorContains(t, cmdStats(&out, []string{"-tess", "8"}), "usage")
}

func TestCmdOBJToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.obj")
	var out strings.Builder
	require.NoError(t, cmdOBJ(&out, []string{"cube", "-width", "2", "-o", path}))
	assert.Contains(t, out.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "o cube\n"))
	assert.Equal(t, 8, strings.Count(string(data), "\nv "))
	assert.Equal(t, 12, strings.Count(string(data), "\nf "))
}

func TestCmdOBJToStdout(t *testing.T) {
	var out strings.Builder
	require.NoError(t, cmdOBJ(&out, []string{"plane", "-width", "1", "-height", "1"}))
	assert.True(t, strings.HasPrefix(out.String(), "o plane\n"))
}

func TestParamFlagsKeepExplicitZero(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	params := paramFlags(fs)
	require.NoError(t, fs.Parse([]string{"-z", "0", "-flip=false", "-tess", "12"}))

	p := params(shapes.Params{Radius: 2, Z: 0.05, Tessellation: 64, Flip: true})
	assert.Equal(t, float32(2), p.Radius)
	assert.Equal(t, float32(0), p.Z)
	assert.False(t, p.Flip)
	assert.Equal(t, 12, p.Tessellation)
}

func TestCmdStatsZeroOffset(t *testing.T) {
	var out strings.Builder
	require.NoError(t, cmdStats(&out, []string{"zero", "-tess", "8", "-z", "0"}))
	assert.Contains(t, out.String(), "0.000) - (")
	assert.NotContains(t, out.String(), "0.050")
}

func TestCmdStatsNormals(t *testing.T) {
	tests := []struct {
		mode     string
		vertices string
	}{
		{"smooth", "Vertices:  8\n"},
		{"flat", "Vertices:  36\n"},
	}
	for _, tt := range tests {
		var out strings.Builder
		require.NoError(t, cmdStats(&out, []string{"cube", "-normals", tt.mode}), tt.mode)
		assert.Contains(t, out.String(), tt.vertices, tt.mode)
		assert.Contains(t, out.String(), "Normals:   true\n", tt.mode)
	}

	var out strings.Builder
	assert.ErrorContains(t, cmdStats(&out, []string{"cube", "-normals", "bumpy"}), "unknown normals mode")
}

func TestSmoothNormalsNeedIndices(t *testing.T) {
	tmpl, err := recomputeNormals(shapes.Cube(1), "flat")
	require.NoError(t, err)
	_, err = recomputeNormals(tmpl, "smooth")
	assert.ErrorIs(t, err, mesh.ErrNotIndexed)
}

type failingCloser struct {
	strings.Builder
}

func (failingCloser) Close() error { return errors.New("disk full") }

func TestWriteOBJReportsCloseError(t *testing.T) {
	w := &failingCloser{}
	err := writeOBJClose(w, "cube.obj", "cube", shapes.Cube(1))
	assert.ErrorContains(t, err, "closing cube.obj: disk full")
	assert.True(t, strings.HasPrefix(w.String(), "o cube\n"))
}

func TestCmdOBJCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cube.obj")
	var out strings.Builder
	assert.ErrorContains(t, cmdOBJ(&out, []string{"cube", "-o", path}), "creating")
	assert.Empty(t, out.String())
}
