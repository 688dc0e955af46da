// Package report synthesizes plausible damage assessments for drone images.
package report

import (
	"math"

	"github.com/hades-platform/field-simulators/utils"
)

const (
	MaxCollapsedBuildings = 4
	MaxExtraDamaged       = 14
	MaxBlockedRoads       = 3
	MaxSeverityScore      = 10.0

	collapsedWeight = 1.5
	damagedWeight   = 0.3
	blockedWeight   = 0.5
	maxNoise        = 2.0
)

// Analysis is the sampled damage of one image
type Analysis struct {
	Collapsed     int
	Damaged       int
	Blocked       int
	SeverityScore float64
}

// Analyze samples collapsed buildings in [0,4], damaged structures in
// [collapsed, collapsed+14] and blocked roads in [0,3], then derives the severity
func Analyze(r utils.Rand) Analysis {
	collapsed := r.Intn(MaxCollapsedBuildings + 1)
	damaged := collapsed + r.Intn(MaxExtraDamaged+1)
	blocked := r.Intn(MaxBlockedRoads + 1)

	return Analysis{
		Collapsed:     collapsed,
		Damaged:       damaged,
		Blocked:       blocked,
		SeverityScore: Severity(collapsed, damaged, blocked, r.Float64()*maxNoise),
	}
}

// Severity weights the damage counts, adds noise, rounds to one decimal and caps at 10
func Severity(collapsed, damaged, blocked int, noise float64) float64 {
	raw := float64(collapsed)*collapsedWeight +
		float64(damaged)*damagedWeight +
		float64(blocked)*blockedWeight +
		noise

	return math.Min(MaxSeverityScore, math.Round(raw*10)/10)
}
