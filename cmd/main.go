// Package main is the entry point of the indicator showcase.
//
// The showcase hosts one animated indicator per configured entry and feeds them
// random values. Configuration is read from the file named by GOINDICATORS_CONFIG
// (default indicators.yaml, falling back to a built-in set of every shape).
//
// Build:
//
//	go build -o build/goindicators ./cmd
//
// Run:
//
//	GOINDICATORS_LOG_LEVEL=debug ./build/goindicators
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tejashwikalptaru/goindicators/internal/app"
)

func main() {
	application, err := app.NewApplication(app.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Ensure a graceful shutdown
	defer func() {
		if err := application.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
		}
	}()

	// Run application (blocks until the window closed)
	application.Run()
}
