// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"

	"github.com/tor-iv/foe-finder-sub000/models"
)

// component is one question feeding a trait dimension. Inverted components
// contribute 8 - value.
type component struct {
	questionID int
	inverted   bool
}

var (
	progressiveComponents = []component{{1, false}, {2, true}, {4, false}, {6, true}}
	artisticComponents    = []component{{3, false}, {7, false}, {9, true}}
	socialComponents      = []component{{5, false}, {8, false}, {10, true}}
)

// Dimensions projects an answer set onto the (progressive, artistic, social)
// space. Missing or invalid answers count as neutral.
func Dimensions(set models.AnswerSet) models.TraitVector {
	answers := make(map[int]int, len(set))
	for _, a := range set {
		if inScale(a.Value) {
			answers[a.QuestionID] = a.Value
		}
	}

	return models.TraitVector{
		Progressive: dimension(answers, progressiveComponents),
		Artistic:    dimension(answers, artisticComponents),
		Social:      dimension(answers, socialComponents),
	}
}

func dimension(answers map[int]int, components []component) float64 {
	sum := 0
	for _, c := range components {
		v, ok := answers[c.questionID]
		if !ok {
			v = models.ScaleNeutral
		}
		if c.inverted {
			v = models.ScaleMin + models.ScaleMax - v
		}
		sum += v
	}

	avg := float64(sum) / float64(len(components))
	return normalizeScore(avg)
}

// normalizeScore rescales a 1-7 average to 0-100
func normalizeScore(avg float64) float64 {
	return (avg - models.ScaleMin) / (models.ScaleMax - models.ScaleMin) * 100
}

// Classify returns the profile whose reference vector is nearest to the
// user's dimensions. Ties keep the earliest profile in the list.
func Classify(set models.AnswerSet, profiles []models.NeighborhoodProfile) models.NeighborhoodProfile {
	best, _ := nearest(Dimensions(set), profiles)
	return best
}

// ClassifyWithDimensions is Classify that also reports the user's vector
func ClassifyWithDimensions(set models.AnswerSet, profiles []models.NeighborhoodProfile) models.NeighborhoodResult {
	dims := Dimensions(set)
	best, _ := nearest(dims, profiles)
	return models.NeighborhoodResult{Neighborhood: best, Dimensions: dims}
}

func nearest(v models.TraitVector, profiles []models.NeighborhoodProfile) (models.NeighborhoodProfile, float64) {
	if len(profiles) == 0 {
		return models.NeighborhoodProfile{}, math.Inf(1)
	}

	bestIdx := 0
	bestDistance := math.Inf(1)
	for i, p := range profiles {
		d := distance(v, p.Reference)
		if d < bestDistance {
			bestDistance = d
			bestIdx = i
		}
	}

	return profiles[bestIdx], bestDistance
}

// distance is the Euclidean distance between two trait vectors
func distance(a, b models.TraitVector) float64 {
	dp := a.Progressive - b.Progressive
	da := a.Artistic - b.Artistic
	ds := a.Social - b.Social
	return math.Sqrt(dp*dp + da*da + ds*ds)
}
