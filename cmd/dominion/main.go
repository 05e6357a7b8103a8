package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/FThompson/DominionRandomizer/internal/cards"
	"github.com/FThompson/DominionRandomizer/internal/cli"
)

func main() {
	// 1. Parse top-level flags
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	dataPath := flag.String("data", "", "Path to a cards.json dataset (defaults to the embedded data)")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load the card collection
	var collection *cards.Collection
	if *dataPath != "" {
		collection, err = cards.Load(*dataPath)
	} else {
		collection, err = cards.Default()
	}
	if err != nil {
		log.Fatalf("Failed to load card data: %v", err)
	}

	// 4. Create the CLI, injecting the logger, and run with a fresh random
	// source for this invocation.
	ui := cli.NewCLI(log)
	randSource := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := ui.Run(flag.Args(), collection, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
