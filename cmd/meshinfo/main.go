// meshinfo inspects OBJ meshes without opening a window.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/meshdemo/internal/engine/mesh"
)

var white = [3]float32{1, 1, 1}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "gen":
		cmdGen(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshinfo - OBJ mesh utility

Usage:
  meshinfo <command> [args]

Commands:
  info <file.obj>...   Show triangle count and bounds
  gen <dir>            Write icosahedron.obj into dir

Examples:
  meshinfo gen ./meshes
  meshinfo info ./meshes/icosahedron.obj`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo info <file.obj>...")
		os.Exit(1)
	}

	failed := false
	for _, path := range args {
		data, err := mesh.LoadOBJ(path, white)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}

		b := data.Bounds()
		size := b.Size()
		center := b.Center()
		fmt.Printf("%s\n", path)
		fmt.Printf("  Name:      %s\n", data.Name)
		fmt.Printf("  Triangles: %d\n", data.Triangles())
		fmt.Printf("  Vertices:  %d\n", len(data.Vertices))
		fmt.Printf("  Min:       (%.3f, %.3f, %.3f)\n", b.Min[0], b.Min[1], b.Min[2])
		fmt.Printf("  Max:       (%.3f, %.3f, %.3f)\n", b.Max[0], b.Max[1], b.Max[2])
		fmt.Printf("  Size:      (%.3f, %.3f, %.3f)\n", size[0], size[1], size[2])
		fmt.Printf("  Center:    (%.3f, %.3f, %.3f)\n", center[0], center[1], center[2])
	}
	if failed {
		os.Exit(1)
	}
}

func cmdGen(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo gen <dir>")
		os.Exit(1)
	}

	path, err := writeIcosahedron(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

// writeIcosahedron writes icosahedron.obj into dir and returns its path.
func writeIcosahedron(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, "icosahedron.obj")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := mesh.WriteOBJ(f, mesh.Icosahedron(white)); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
