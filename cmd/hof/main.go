// Command hof runs the go-hof tutorial examples and prints their results.
//
//	hof list
//	hof run map-array reduce-sum --format table
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
