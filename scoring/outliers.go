// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/tor-iv/foe-finder-sub000/models"
)

const (
	// DefaultMinOutlierSample is the smallest response count for which an
	// outlier claim is reported
	DefaultMinOutlierSample = 5

	topOutlierRank    = 90.0
	bottomOutlierRank = 10.0
)

// PercentileRank is the share (0-100) of population responses at or below value
func PercentileRank(value int, stat models.QuestionStatistics) float64 {
	if stat.Count == 0 {
		return 0.0
	}
	if value < models.ScaleMin {
		return 0.0
	}
	if value > models.ScaleMax {
		value = models.ScaleMax
	}

	atOrBelow := 0
	for v := models.ScaleMin; v <= value; v++ {
		atOrBelow += stat.Counts[v-models.ScaleMin]
	}
	return 100 * float64(atOrBelow) / float64(stat.Count)
}

// ShareAtOrAbove is the share (0-100) of population responses at or above value
func ShareAtOrAbove(value int, stat models.QuestionStatistics) float64 {
	if stat.Count == 0 || value > models.ScaleMax {
		return 0.0
	}
	if value < models.ScaleMin {
		value = models.ScaleMin
	}

	atOrAbove := 0
	for v := value; v <= models.ScaleMax; v++ {
		atOrAbove += stat.Counts[v-models.ScaleMin]
	}
	return 100 * float64(atOrAbove) / float64(stat.Count)
}

// FindOutliers reports the user's answers in the top (rank >= 90) or bottom
// (rank <= 10) decile. Questions with fewer than minCount responses are
// skipped; minCount <= 0 uses DefaultMinOutlierSample. Results follow
// catalog order.
func FindOutliers(set models.AnswerSet, stats map[int]models.QuestionStatistics, cat Catalog, minCount int) []models.OutlierAnswer {
	if minCount <= 0 {
		minCount = DefaultMinOutlierSample
	}

	type ranked struct {
		outlier  models.OutlierAnswer
		position int
	}

	var found []ranked
	for _, a := range set {
		if !inScale(a.Value) {
			continue
		}
		stat, ok := stats[a.QuestionID]
		if !ok || stat.Count < minCount {
			continue
		}
		q, ok := cat.Lookup(a.QuestionID)
		if !ok {
			continue
		}
		pos, _ := cat.Position(a.QuestionID)

		rank := PercentileRank(a.Value, stat)
		isTop := rank >= topOutlierRank
		isBottom := rank <= bottomOutlierRank
		if !isTop && !isBottom {
			continue
		}
		share := rank
		if isTop {
			share = ShareAtOrAbove(a.Value, stat)
		}

		found = append(found, ranked{
			outlier: models.OutlierAnswer{
				QuestionID:      a.QuestionID,
				QuestionText:    q.Text,
				UserValue:       a.Value,
				PopulationMean:  stat.Mean,
				StdDev:          stat.StdDev,
				PercentileRank:  rank,
				IsTopOutlier:    isTop,
				IsBottomOutlier: isBottom,
				ResponseCount:   stat.Count,
				Label:           OutlierLabel(isTop, share),
			},
			position: pos,
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].position < found[j].position
	})

	outliers := make([]models.OutlierAnswer, len(found))
	for i, f := range found {
		outliers[i] = f.outlier
	}
	return outliers
}

// OutlierLabel renders the share of respondents who answered at least as
// far out as the user, e.g. "Top 8%" or "Bottom 10%". A share that rounds
// to zero is shown as 1%.
func OutlierLabel(top bool, share float64) string {
	n := int(math.Round(share))
	if n < 1 {
		n = 1
	}
	if top {
		return fmt.Sprintf("Top %d%%", n)
	}
	return fmt.Sprintf("Bottom %d%%", n)
}
