// Package main provides the entry point for finboard.
//
// finboard is a terminal dashboard for personal finances: a month of
// transactions with totals, search, CSV export, clipboard copy and desktop
// notifications.
//
// Usage:
//
//	finboard [--config path] [--data path]
//	finboard export --month 2026-10 [--out oktober.csv]
//	finboard summary [--month 2026-10]
//	finboard version
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/finboard/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
