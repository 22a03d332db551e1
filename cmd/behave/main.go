// Command behave compiles a behave project into its XML behavior
// document.
package main

import (
	"fmt"
	"os"

	"github.com/Synaptic-Simulations/behave/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug, please report it")
			os.Exit(1)
		}
	}()

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
