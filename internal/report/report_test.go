// internal/report/report_test.go
package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/spectrum/internal/config"
	"github.com/jason-s-yu/spectrum/internal/models"
)

func TestWrite(t *testing.T) {
	stats := models.SimulationStats{
		WinsPerPlayer: map[int]int{0: 523, 1: 477},
		AvgTurns:      11.432,
		MinTurns:      2,
		MaxTurns:      43,
	}
	cfg := config.Config{Simulations: 1000, Players: 2}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, stats, cfg))

	out := buf.String()
	assert.Contains(t, out, "Spectrum Shuffle - Simulation Results")
	assert.Contains(t, out, "Simulations : 1000")
	assert.Contains(t, out, "Players     : 2")
	assert.Contains(t, out, "Avg turns   : 11.43")
	assert.Contains(t, out, "Min turns   : 2")
	assert.Contains(t, out, "Max turns   : 43")
	assert.Contains(t, out, "Player 1:    523 wins  (52.3 %)")
	assert.Contains(t, out, "Player 2:    477 wins  (47.7 %)")
}

// TestWritePlayerWithNoWins checks absent map entries render as zero.
func TestWritePlayerWithNoWins(t *testing.T) {
	stats := models.SimulationStats{
		WinsPerPlayer: map[int]int{0: 10},
		AvgTurns:      5,
		MinTurns:      3,
		MaxTurns:      9,
	}
	cfg := config.Config{Simulations: 10, Players: 2}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, stats, cfg))
	assert.Contains(t, buf.String(), "Player 2:      0 wins  (0.0 %)")
}
