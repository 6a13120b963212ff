// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jason-s-yu/spectrum/internal/config"
	"github.com/jason-s-yu/spectrum/internal/models"
)

// Write renders the fixed-format batch summary: simulation count, player
// count, turn statistics, and per-player win counts with percentages.
func Write(w io.Writer, stats models.SimulationStats, cfg config.Config) error {
	rule := strings.Repeat("=", 40)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "  Spectrum Shuffle - Simulation Results\n")
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "  Simulations : %d\n", cfg.Simulations)
	fmt.Fprintf(&b, "  Players     : %d\n", cfg.Players)
	fmt.Fprintf(&b, "  Avg turns   : %.2f\n", stats.AvgTurns)
	fmt.Fprintf(&b, "  Min turns   : %d\n", stats.MinTurns)
	fmt.Fprintf(&b, "  Max turns   : %d\n", stats.MaxTurns)
	fmt.Fprintf(&b, "\n  Win rates:\n")
	for player := 0; player < cfg.Players; player++ {
		wins := stats.WinsPerPlayer[player]
		rate := float64(wins) / float64(cfg.Simulations) * 100
		fmt.Fprintf(&b, "    Player %d: %6d wins  (%.1f %%)\n", player+1, wins, rate)
	}
	fmt.Fprintf(&b, "%s\n\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}
