package model

import (
	"fmt"
	"math"
)

// MatrixSize is the number of probability deciles and impact levels
const MatrixSize = 10

// MatrixGrid buckets risks into a fixed 10x10 probability/impact grid.
// Every one of the 100 cells is present even when empty so consumers can
// render the full grid; risks within a cell keep the insertion order of the
// input set.
type MatrixGrid map[string][]*Risk

// MatrixKey builds the cell key for a probability decile and impact level,
// e.g. P7-I8 for a decile of 7 and an impact of 8.
func MatrixKey(decile, impact int) string {
	return fmt.Sprintf("P%d-I%d", decile, impact)
}

// ProbabilityDecile maps a probability in (0, 1] to a decile in [1, 10]
// using round-half-up. Probabilities are constrained to be positive, so a
// value like 0.05 belongs to decile 1, never 0.
func ProbabilityDecile(probability float64) int {
	decile := int(math.Round(probability * MatrixSize))
	if decile < 1 {
		decile = 1
	}
	if decile > MatrixSize {
		decile = MatrixSize
	}
	return decile
}

// ClassifyMatrix buckets the risks into the full grid
func ClassifyMatrix(risks []*Risk) MatrixGrid {
	grid := make(MatrixGrid, MatrixSize*MatrixSize)
	for p := 1; p <= MatrixSize; p++ {
		for i := 1; i <= MatrixSize; i++ {
			grid[MatrixKey(p, i)] = []*Risk{}
		}
	}

	for _, risk := range risks {
		key := MatrixKey(ProbabilityDecile(risk.Probability), risk.Impact)
		if _, ok := grid[key]; ok {
			grid[key] = append(grid[key], risk)
		}
	}

	return grid
}

// Cell returns the risks bucketed at the given decile and impact
func (g MatrixGrid) Cell(decile, impact int) []*Risk {
	return g[MatrixKey(decile, impact)]
}

// CellSeverity is the severity of a cell derived from its own coordinates,
// not from the risks inside it. This keeps the grid's banding stable even
// when risks in the same cell were scored at slightly different times.
func CellSeverity(decile, impact int) float64 {
	return float64(decile) / MatrixSize * float64(impact)
}

// CellBand returns the qualitative band of a cell from its coordinates
func CellBand(decile, impact int) SeverityBand {
	return BandOf(CellSeverity(decile, impact))
}
