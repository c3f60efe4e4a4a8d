package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/eringen/kotoba"
)

func runOptimizeImages(dir string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	n, err := kotoba.OptimizeImages(dir, log)
	if err != nil {
		return err
	}
	fmt.Printf("Optimized %d image(s) under %s\n", n, dir)
	return nil
}
