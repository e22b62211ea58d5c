package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"

	"skirmish/internal/bench"
	"skirmish/internal/config"
	"skirmish/internal/logger"
)

func main() {
	log, err := logger.NewLoggerWithComponent("bench")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("invalid configuration", logger.Field{Key: "error", Value: err})
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	log.Info("starting benchmark sweep",
		logger.Field{Key: "entity_counts", Value: cfg.EntityCounts},
		logger.Field{Key: "repetitions", Value: cfg.Repetitions},
		logger.Field{Key: "frames", Value: cfg.Frames},
		logger.Field{Key: "seed", Value: cfg.Seed},
	)

	fmt.Println("Ark ECS Benchmark - Complex Game Simulation (11 Systems)")
	fmt.Println()
	fmt.Printf("Running %d repetitions per entity count for averaging...\n", cfg.Repetitions)
	fmt.Println()

	bench.NewRunner(cfg, log).Run(os.Stdout)
}
