// internal/sim/sim.go
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/spectrum/internal/config"
	"github.com/jason-s-yu/spectrum/internal/game"
	"github.com/jason-s-yu/spectrum/internal/models"
)

// Run plays cfg.Simulations independent games of cfg.Players players each,
// drawing all randomness from rng, and folds the results into summary
// statistics. Each game owns its own deck, cursor, and positions.
func Run(cfg config.Config, rng *rand.Rand, logger *logrus.Logger) (models.SimulationStats, error) {
	if err := cfg.Validate(); err != nil {
		return models.SimulationStats{}, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = logrus.New()
	}

	logger.WithFields(logrus.Fields{
		"simulations": cfg.Simulations,
		"players":     cfg.Players,
	}).Info("Starting simulation batch")

	start := time.Now()
	results := make([]models.GameResult, 0, cfg.Simulations)
	for i := 0; i < cfg.Simulations; i++ {
		results = append(results, game.New(cfg.Players, rng).Play())
	}
	stats := Fold(results)

	logger.WithFields(logrus.Fields{
		"simulations": cfg.Simulations,
		"avg_turns":   stats.AvgTurns,
		"duration":    time.Since(start),
	}).Info("Simulation batch complete")

	return stats, nil
}

// Fold reduces an ordered sequence of game results into one stats value.
// The reduction is commutative (sum, min, max), so result order does not
// affect the outcome. results must be non-empty.
func Fold(results []models.GameResult) models.SimulationStats {
	wins := make(map[int]int, 8)
	minTurns := results[0].Turns
	maxTurns := results[0].Turns
	totalTurns := 0

	for _, r := range results {
		wins[r.Winner]++
		totalTurns += r.Turns
		if r.Turns < minTurns {
			minTurns = r.Turns
		}
		if r.Turns > maxTurns {
			maxTurns = r.Turns
		}
	}

	return models.SimulationStats{
		WinsPerPlayer: wins,
		AvgTurns:      float64(totalTurns) / float64(len(results)),
		MinTurns:      minTurns,
		MaxTurns:      maxTurns,
	}
}
