package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
)

func TestComputeSeverity(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		impact      int
		wantScore   float64
		wantBand    model.SeverityBand
	}{
		{
			name:        "critical at exact threshold",
			probability: 0.875,
			impact:      8,
			wantScore:   7.0,
			wantBand:    model.BandCritical,
		},
		{
			name:        "high at exact threshold",
			probability: 0.5,
			impact:      10,
			wantScore:   5.0,
			wantBand:    model.BandHigh,
		},
		{
			name:        "medium at exact threshold",
			probability: 0.75,
			impact:      4,
			wantScore:   3.0,
			wantBand:    model.BandMedium,
		},
		{
			name:        "low just below medium",
			probability: 0.25,
			impact:      10,
			wantScore:   2.5,
			wantBand:    model.BandLow,
		},
		{
			name:        "maximum score",
			probability: 1.0,
			impact:      10,
			wantScore:   10.0,
			wantBand:    model.BandCritical,
		},
		{
			name:        "minimum impact",
			probability: 0.5,
			impact:      1,
			wantScore:   0.5,
			wantBand:    model.BandLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			severity, err := model.ComputeSeverity(tt.probability, tt.impact)
			gt.NoError(t, err).Required()
			gt.Number(t, severity.Score).Equal(tt.wantScore)
			gt.Value(t, severity.Band).Equal(tt.wantBand)
		})
	}
}

func TestComputeSeverity_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		impact      int
		sentinel    error
	}{
		{
			name:        "zero probability",
			probability: 0,
			impact:      5,
			sentinel:    model.ErrInvalidProbability,
		},
		{
			name:        "negative probability",
			probability: -0.1,
			impact:      5,
			sentinel:    model.ErrInvalidProbability,
		},
		{
			name:        "probability above one",
			probability: 1.01,
			impact:      5,
			sentinel:    model.ErrInvalidProbability,
		},
		{
			name:        "zero impact",
			probability: 0.5,
			impact:      0,
			sentinel:    model.ErrInvalidImpact,
		},
		{
			name:        "impact above ten",
			probability: 0.5,
			impact:      11,
			sentinel:    model.ErrInvalidImpact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.ComputeSeverity(tt.probability, tt.impact)
			gt.Error(t, err)
			gt.B(t, errors.Is(err, tt.sentinel)).True()
		})
	}
}

func TestBandOf(t *testing.T) {
	gt.Value(t, model.BandOf(10.0)).Equal(model.BandCritical)
	gt.Value(t, model.BandOf(7.0)).Equal(model.BandCritical)
	gt.Value(t, model.BandOf(6.99)).Equal(model.BandHigh)
	gt.Value(t, model.BandOf(5.0)).Equal(model.BandHigh)
	gt.Value(t, model.BandOf(4.99)).Equal(model.BandMedium)
	gt.Value(t, model.BandOf(3.0)).Equal(model.BandMedium)
	gt.Value(t, model.BandOf(2.99)).Equal(model.BandLow)
	gt.Value(t, model.BandOf(0.01)).Equal(model.BandLow)
}
