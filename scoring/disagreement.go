// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"

	"github.com/tor-iv/foe-finder-sub000/models"
)

// DisagreementThreshold is the minimum distance from the population mean
// for an answer to count as disagreeing
const DisagreementThreshold = 3.0

// Disagreement returns the rounded percentage (0-100) of the user's answers
// that sit at least DisagreementThreshold away from the population mean.
// Only answers with statistics count toward the denominator; with none the
// result is 0.
func Disagreement(set models.AnswerSet, stats map[int]models.QuestionStatistics) int {
	compared, disagreeing := 0, 0
	for _, a := range set {
		if !inScale(a.Value) {
			continue
		}
		stat, ok := stats[a.QuestionID]
		if !ok || stat.Count == 0 {
			continue
		}
		compared++
		if math.Abs(float64(a.Value)-stat.Mean) >= DisagreementThreshold {
			disagreeing++
		}
	}

	if compared == 0 {
		return 0
	}
	return int(math.Round(100 * float64(disagreeing) / float64(compared)))
}

// ScoreDisagreement wraps Disagreement with the user id and its commentary
func ScoreDisagreement(userID string, set models.AnswerSet, stats map[int]models.QuestionStatistics) models.DisagreementScore {
	pct := Disagreement(set, stats)
	return models.DisagreementScore{
		UserID:     userID,
		Percentage: pct,
		Comment:    DisagreementComment(pct),
	}
}

// DisagreementComment labels a percentage; bands only get more extreme
func DisagreementComment(pct int) string {
	switch {
	case pct <= 30:
		return "You blend in. Suspiciously normal."
	case pct <= 50:
		return "Moderate contrarian tendencies detected."
	case pct <= 70:
		return "Solid foe potential."
	case pct <= 85:
		return "Excellent foe potential."
	default:
		return "You disagree with almost everyone. Impressive."
	}
}
