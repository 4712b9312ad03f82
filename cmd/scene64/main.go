// Package main draws the same lit mesh scene as cmd/scene, computing
// matrices in double precision.
package main

import (
	"os"

	"github.com/Faultbox/meshdemo/internal/demo"
	"github.com/Faultbox/meshdemo/internal/engine/transform"
)

func main() {
	os.Exit(demo.RunScene(transform.Float64{}))
}
