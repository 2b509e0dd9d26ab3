// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"sort"

	"github.com/tor-iv/foe-finder-sub000/models"
)

const (
	DefaultHotTakeCount = 3
	minHotTakeIntensity = 2
)

// Intensity is the distance of a value from neutral (0-3 on the 1-7 scale)
func Intensity(value int) int {
	d := value - models.ScaleNeutral
	if d < 0 {
		return -d
	}
	return d
}

// StanceFor maps a raw value to its stance label
func StanceFor(value int) models.Stance {
	switch value {
	case 7:
		return models.StanceStronglyAgree
	case 6:
		return models.StanceAgree
	case 2:
		return models.StanceDisagree
	case 1:
		return models.StanceStronglyDisagree
	default:
		return models.StanceNeutral
	}
}

// ExtractHotTakes returns up to count of the user's strongest opinions.
// Only values 1, 2, 6 and 7 qualify. A count <= 0 uses DefaultHotTakeCount.
func ExtractHotTakes(set models.AnswerSet, cat Catalog, count int) []models.HotTake {
	if count <= 0 {
		count = DefaultHotTakeCount
	}

	type candidate struct {
		take     models.HotTake
		position int
	}

	var candidates []candidate
	for _, a := range set {
		if !inScale(a.Value) {
			continue
		}
		intensity := Intensity(a.Value)
		if intensity < minHotTakeIntensity {
			continue
		}

		// Stale question ids are dropped rather than shown without text
		q, ok := cat.Lookup(a.QuestionID)
		if !ok {
			continue
		}
		pos, _ := cat.Position(a.QuestionID)

		candidates = append(candidates, candidate{
			take: models.HotTake{
				QuestionID:   a.QuestionID,
				QuestionText: q.Text,
				Value:        a.Value,
				Intensity:    intensity,
				Stance:       StanceFor(a.Value),
			},
			position: pos,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		// 1. Stronger opinions first
		if a.take.Intensity != b.take.Intensity {
			return a.take.Intensity > b.take.Intensity
		}

		// 2. Catalog order
		if a.position != b.position {
			return a.position < b.position
		}

		// 3. Question ID (ascending)
		return a.take.QuestionID < b.take.QuestionID
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}

	takes := make([]models.HotTake, len(candidates))
	for i, c := range candidates {
		takes[i] = c.take
	}
	return takes
}
