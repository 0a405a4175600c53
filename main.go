// Package main is the entry point for sh2mp4.
package main

import (
	"os"

	"github.com/sh2mp4/sh2mp4/cmd"
	"github.com/sh2mp4/sh2mp4/internal/diag"
)

func main() {
	if err := cmd.Execute(); err != nil {
		diag.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
