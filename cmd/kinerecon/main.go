package main

import (
	"os"

	"github.com/aberthier/kinerecon/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
