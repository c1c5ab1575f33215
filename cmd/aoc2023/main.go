package main

import (
	"os"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/cmd/aoc2023/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
