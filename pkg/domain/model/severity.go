package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// SeverityBand is the qualitative label derived from a severity score
type SeverityBand string

const (
	BandLow      SeverityBand = "Low"
	BandMedium   SeverityBand = "Medium"
	BandHigh     SeverityBand = "High"
	BandCritical SeverityBand = "Critical"
)

// Band thresholds are inclusive lower bounds: a severity of exactly 7.0 is
// Critical, 5.0 is High, 3.0 is Medium.
const (
	criticalThreshold = 7.0
	highThreshold     = 5.0
	mediumThreshold   = 3.0
)

// Sentinel errors for score validation
var (
	ErrInvalidProbability = goerr.New("probability must be within (0.0, 1.0]")
	ErrInvalidImpact      = goerr.New("impact must be within [1, 10]")
)

// Severity is the computed magnitude of a risk
type Severity struct {
	Score float64
	Band  SeverityBand
}

// ComputeSeverity maps a (probability, impact) pair to its severity score
// and qualitative band. The score is probability multiplied by impact at
// full precision; rounding for display is a presentation concern. This is
// the only path by which a risk's severity is ever derived.
func ComputeSeverity(probability float64, impact int) (Severity, error) {
	if probability <= 0 || probability > 1 {
		return Severity{}, goerr.Wrap(ErrInvalidProbability, "invalid probability", goerr.V("probability", probability))
	}
	if impact < 1 || impact > 10 {
		return Severity{}, goerr.Wrap(ErrInvalidImpact, "invalid impact", goerr.V("impact", impact))
	}

	score := probability * float64(impact)
	return Severity{
		Score: score,
		Band:  BandOf(score),
	}, nil
}

// BandOf returns the qualitative band for a severity score
func BandOf(score float64) SeverityBand {
	switch {
	case score >= criticalThreshold:
		return BandCritical
	case score >= highThreshold:
		return BandHigh
	case score >= mediumThreshold:
		return BandMedium
	default:
		return BandLow
	}
}
