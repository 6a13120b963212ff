// cmd/spectrum/main.go
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/spectrum/internal/config"
	"github.com/jason-s-yu/spectrum/internal/report"
	"github.com/jason-s-yu/spectrum/internal/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Flags override whatever the environment provided.
	flag.IntVar(&cfg.Simulations, "n", cfg.Simulations, "number of games to simulate")
	flag.IntVar(&cfg.Players, "players", cfg.Players, "number of players per game")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 seeds from the clock)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	stats, err := sim.Run(cfg, rng, logger)
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}
	if err := report.Write(os.Stdout, stats, cfg); err != nil {
		log.Fatalf("report: %v", err)
	}
}
