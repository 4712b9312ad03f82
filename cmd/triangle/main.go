// Package main opens a window and draws a single green triangle.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshdemo/internal/demo"
	"github.com/Faultbox/meshdemo/internal/logger"
)

func main() {
	cfg, err := demo.Boot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := demo.Start(cfg, demo.NewTriangle); err != nil {
		logger.Error("triangle failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
