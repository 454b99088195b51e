package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

func TestProbabilityDecile(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		want        int
	}{
		{
			name:        "rounds half up",
			probability: 0.65,
			want:        7,
		},
		{
			name:        "rounds down below half",
			probability: 0.64,
			want:        6,
		},
		{
			name:        "tiny probability clamps to one",
			probability: 0.01,
			want:        1,
		},
		{
			name:        "0.05 belongs to decile one",
			probability: 0.05,
			want:        1,
		},
		{
			name:        "full probability",
			probability: 1.0,
			want:        10,
		},
		{
			name:        "exact decile boundary",
			probability: 0.3,
			want:        3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Number(t, model.ProbabilityDecile(tt.probability)).Equal(tt.want)
		})
	}
}

func TestMatrixKey(t *testing.T) {
	gt.Value(t, model.MatrixKey(7, 8)).Equal("P7-I8")
	gt.Value(t, model.MatrixKey(1, 1)).Equal("P1-I1")
	gt.Value(t, model.MatrixKey(10, 10)).Equal("P10-I10")
}

func TestClassifyMatrix(t *testing.T) {
	t.Run("empty input yields all 100 empty cells", func(t *testing.T) {
		grid := model.ClassifyMatrix(nil)
		gt.Number(t, len(grid)).Equal(100)
		for _, cell := range grid {
			gt.Array(t, cell).Length(0)
		}
	})

	t.Run("risks land in their cells", func(t *testing.T) {
		risks := []*model.Risk{
			{ID: types.RiskID("r1"), Probability: 0.65, Impact: 8},
			{ID: types.RiskID("r2"), Probability: 0.05, Impact: 1},
			{ID: types.RiskID("r3"), Probability: 0.65, Impact: 8},
		}

		grid := model.ClassifyMatrix(risks)
		gt.Number(t, len(grid)).Equal(100)

		cell := grid.Cell(7, 8)
		gt.Array(t, cell).Length(2)
		// Insertion order within a cell is preserved
		gt.Value(t, cell[0].ID).Equal(types.RiskID("r1"))
		gt.Value(t, cell[1].ID).Equal(types.RiskID("r3"))

		gt.Array(t, grid.Cell(1, 1)).Length(1)
		gt.Array(t, grid.Cell(5, 5)).Length(0)
	})
}

func TestCellSeverity(t *testing.T) {
	gt.Number(t, model.CellSeverity(10, 10)).Equal(10.0)
	gt.Number(t, model.CellSeverity(5, 6)).Equal(3.0)
	gt.Number(t, model.CellSeverity(5, 1)).Equal(0.5)

	gt.Value(t, model.CellBand(10, 10)).Equal(model.BandCritical)
	gt.Value(t, model.CellBand(5, 10)).Equal(model.BandHigh)
	gt.Value(t, model.CellBand(5, 6)).Equal(model.BandMedium)
	gt.Value(t, model.CellBand(1, 1)).Equal(model.BandLow)
}
