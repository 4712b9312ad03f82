// Package main draws a lit mesh scene with single-precision matrix math.
package main

import (
	"os"

	"github.com/Faultbox/meshdemo/internal/demo"
	"github.com/Faultbox/meshdemo/internal/engine/transform"
)

func main() {
	os.Exit(demo.RunScene(transform.Float32{}))
}
