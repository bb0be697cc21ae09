// meshtool is a CLI utility for inspecting and exporting the procedural
// meshes without opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/spinning-wgmi/internal/engine/mesh"
	"github.com/Faultbox/spinning-wgmi/internal/engine/shapes"
	"github.com/Faultbox/spinning-wgmi/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if lvl := os.Getenv("MESHTOOL_LOG"); lvl != "" {
		if err := logger.Init(lvl, ""); err != nil {
			fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "list", "ls":
		err = cmdList(os.Stdout)
	case "stats":
		err = cmdStats(os.Stdout, args)
	case "check":
		err = cmdCheck(os.Stdout, args)
	case "obj":
		err = cmdOBJ(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - procedural mesh utility

Usage:
  meshtool <command> [options]

Commands:
  list                         List generators and their defaults
  stats <generator> [options]  Print vertex, triangle and bounds figures
  check [generator...]         Validate generators (all when none given)
  obj <generator> [options]    Write a Wavefront OBJ (-o file, default stdout)

Generator options:
  -radius -thickness -z -length -angle -width (float)
  -height -slices -tess (int)  -flip (bool)
  -normals smooth|flat         Recompute normals before printing or writing

Examples:
  meshtool list
  meshtool stats torus -tess 32
  meshtool obj cube -normals flat -o cube.obj
  meshtool obj sphere-skeleton -slices 12 -o skeleton.obj`)
}

// paramFlags registers the generator options on fs. The returned func
// overrides defaults with the options given on the command line, so an
// explicit zero or false is kept.
func paramFlags(fs *flag.FlagSet) func(defaults shapes.Params) shapes.Params {
	radius := fs.Float64("radius", 0, "radius")
	thickness := fs.Float64("thickness", 0, "thickness")
	z := fs.Float64("z", 0, "z offset")
	length := fs.Float64("length", 0, "cylinder length")
	angle := fs.Float64("angle", 0, "angle thickness in radians")
	width := fs.Float64("width", 0, "width")
	height := fs.Int("height", 0, "height")
	slices := fs.Int("slices", 0, "slices")
	tess := fs.Int("tess", 0, "tessellation")
	flip := fs.Bool("flip", false, "flip winding")

	return func(p shapes.Params) shapes.Params {
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "radius":
				p.Radius = float32(*radius)
			case "thickness":
				p.Thickness = float32(*thickness)
			case "z":
				p.Z = float32(*z)
			case "length":
				p.Length = float32(*length)
			case "angle":
				p.AngleThickness = float32(*angle)
			case "width":
				p.Width = float32(*width)
			case "height":
				p.Height = *height
			case "slices":
				p.Slices = *slices
			case "tess":
				p.Tessellation = *tess
			case "flip":
				p.Flip = *flip
			}
		})
		return p
	}
}

// parseGenerator splits "<name> [options]" and builds the template.
func parseGenerator(command string, args []string, extra func(fs *flag.FlagSet)) (string, *mesh.Template, error) {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("usage: meshtool %s <generator> [options]", command)
	}
	name := args[0]
	b, ok := shapes.Lookup(name)
	if !ok {
		return "", nil, fmt.Errorf("unknown shape %q", name)
	}

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	params := paramFlags(fs)
	normals := fs.String("normals", "", "recompute normals: smooth or flat")
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return "", nil, err
	}

	t, err := recomputeNormals(b.Build(params(b.Defaults)), *normals)
	if err != nil {
		return "", nil, err
	}
	return name, t, nil
}

// recomputeNormals replaces the generator's normals. Smooth normals need
// an indexed template; flat normals expand the indices first.
func recomputeNormals(t *mesh.Template, mode string) (*mesh.Template, error) {
	var err error
	switch mode {
	case "":
		return t, nil
	case "smooth":
		err = mesh.ComputeVertexNormals(t)
	case "flat":
		if t.Indexed() {
			if t, err = mesh.ExpandIndices(t); err != nil {
				break
			}
		}
		err = mesh.ComputeFaceNormals(t)
	default:
		return nil, fmt.Errorf("unknown normals mode %q (want smooth or flat)", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("%s normals: %w", mode, err)
	}
	return t, nil
}

func cmdList(w io.Writer) error {
	for _, name := range shapes.Names() {
		b, _ := shapes.Lookup(name)
		fmt.Fprintf(w, "  %-16s %s\n", name, b.Description)
	}
	return nil
}

func cmdStats(w io.Writer, args []string) error {
	name, t, err := parseGenerator("stats", args, nil)
	if err != nil {
		return err
	}
	b := t.Bounds()
	fmt.Fprintf(w, "Generator: %s\n", name)
	fmt.Fprintf(w, "Vertices:  %d\n", t.VertexCount())
	fmt.Fprintf(w, "Triangles: %d\n", t.TriangleCount())
	fmt.Fprintf(w, "Indexed:   %t\n", t.Indexed())
	fmt.Fprintf(w, "Normals:   %t\n", len(t.Normals) > 0)
	fmt.Fprintf(w, "TexCoords: %t\n", len(t.TexCoords) > 0)
	fmt.Fprintf(w, "Colors:    %t\n", len(t.Colors) > 0)
	fmt.Fprintf(w, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	return nil
}

func cmdCheck(w io.Writer, args []string) error {
	names := args
	if len(names) == 0 {
		names = shapes.Names()
	}

	failed := 0
	for _, name := range names {
		t, err := shapes.Generate(name, shapes.Params{})
		if err == nil {
			err = t.Validate()
		}
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %-16s %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "ok   %-16s %d vertices, %d triangles\n", name, t.VertexCount(), t.TriangleCount())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d generators failed", failed, len(names))
	}
	return nil
}

func cmdOBJ(stdout io.Writer, args []string) error {
	var output *string
	name, t, err := parseGenerator("obj", args, func(fs *flag.FlagSet) {
		output = fs.String("o", "", "output file (default stdout)")
	})
	if err != nil {
		return err
	}

	if *output == "" {
		if err := mesh.WriteOBJ(stdout, name, t); err != nil {
			return fmt.Errorf("writing OBJ: %w", err)
		}
		return nil
	}

	if err := writeOBJFile(*output, name, t); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%d vertices, %d triangles)\n", *output, t.VertexCount(), t.TriangleCount())
	return nil
}

// writeOBJFile creates path and writes t to it.
func writeOBJFile(path, name string, t *mesh.Template) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return writeOBJClose(f, path, name, t)
}

// writeOBJClose writes t to wc and closes it, returning the close error
// when the write succeeded.
func writeOBJClose(wc io.WriteCloser, path, name string, t *mesh.Template) error {
	if err := mesh.WriteOBJ(wc, name, t); err != nil {
		wc.Close()
		return fmt.Errorf("writing OBJ: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
