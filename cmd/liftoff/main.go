// Package main provides the entry point for the liftoff CLI harness.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
