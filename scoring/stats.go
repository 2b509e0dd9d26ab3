// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"sort"

	"github.com/tor-iv/foe-finder-sub000/models"
)

// Aggregate reduces every user's answers into per-question statistics.
// It is a full recomputation over the snapshot it is given. Questions with
// no responses are absent from the result: a missing entry means "no data".
func Aggregate(sets []models.AnswerSet, cat Catalog) map[int]models.QuestionStatistics {
	// Collect values grouped by question
	values := make(map[int][]int)
	for _, set := range sets {
		for _, a := range Validate(set, cat) {
			values[a.QuestionID] = append(values[a.QuestionID], a.Value)
		}
	}

	stats := make(map[int]models.QuestionStatistics, len(values))
	for questionID, vs := range values {
		stats[questionID] = summarize(questionID, vs)
	}

	return stats
}

// summarize computes the descriptive statistics for one question.
// values must be non-empty and within the scale.
func summarize(questionID int, values []int) models.QuestionStatistics {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	stat := models.QuestionStatistics{
		QuestionID: questionID,
		Count:      len(sorted),
		P10:        percentile(sorted, 10),
		P25:        percentile(sorted, 25),
		P50:        percentile(sorted, 50),
		P75:        percentile(sorted, 75),
		P90:        percentile(sorted, 90),
		Min:        sorted[0],
		Max:        sorted[len(sorted)-1],
	}
	stat.Mean, stat.StdDev = meanAndStdDev(sorted)

	for _, v := range sorted {
		stat.Counts[v-models.ScaleMin]++
	}

	return stat
}

// percentile returns the nearest-rank value at pct percent of sorted data:
// rank = ceil(pct/100 * n), clamped to [1, n]
func percentile(sorted []int, pct int) int {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	rank := (pct*n + 99) / 100
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return sorted[rank-1]
}

// meanAndStdDev calculates the mean and the population standard deviation.
// Sums are kept in integers so the result does not depend on input order.
func meanAndStdDev(values []int) (float64, float64) {
	n := len(values)
	if n == 0 {
		return 0.0, 0.0
	}

	sum, sumSq := 0, 0
	for _, v := range values {
		sum += v
		sumSq += v * v
	}

	mean := float64(sum) / float64(n)
	variance := float64(n*sumSq-sum*sum) / float64(n*n)
	return mean, math.Sqrt(variance)
}

// Distribution expands a question's histogram into one row per scale value.
// Percentages are rounded to one decimal; an empty histogram yields zeros.
func Distribution(stat models.QuestionStatistics) []models.ResponseDistribution {
	rows := make([]models.ResponseDistribution, 0, models.ScaleMax-models.ScaleMin+1)
	for v := models.ScaleMin; v <= models.ScaleMax; v++ {
		count := stat.Counts[v-models.ScaleMin]
		row := models.ResponseDistribution{Value: v, Count: count}
		if stat.Count > 0 {
			row.Percentage = math.Round(1000*float64(count)/float64(stat.Count)) / 10
		}
		rows = append(rows, row)
	}
	return rows
}

// SortedStatistics flattens a statistics map into catalog display order.
// Questions the catalog no longer knows go last, by id.
func SortedStatistics(stats map[int]models.QuestionStatistics, cat Catalog) []models.QuestionStatistics {
	out := make([]models.QuestionStatistics, 0, len(stats))
	for _, s := range stats {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		pi, oki := cat.Position(out[i].QuestionID)
		pj, okj := cat.Position(out[j].QuestionID)
		if oki != okj {
			return oki
		}
		if oki && pi != pj {
			return pi < pj
		}
		return out[i].QuestionID < out[j].QuestionID
	})

	return out
}

// StatisticsMap indexes a flat statistics list by question id
func StatisticsMap(stats []models.QuestionStatistics) map[int]models.QuestionStatistics {
	m := make(map[int]models.QuestionStatistics, len(stats))
	for _, s := range stats {
		if s.Count > 0 {
			m[s.QuestionID] = s
		}
	}
	return m
}
