// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring is the opinion scoring and population statistics engine.

Every function is pure: it takes an already-fetched snapshot (one user's
AnswerSet, all users' AnswerSets, the catalog) and returns plain data.
Nothing here performs I/O, keeps state, or returns an error for bad data.
Invalid answers are filtered, missing statistics mean "no data", and zero
denominators yield 0.

# Validation

	set := scoring.Validate(raw, cat)

Drops unknown question ids and values outside 1-7; duplicate question ids
keep the last value. CheckAnswer exposes the same rule as an error for
callers that want to reject input instead.

# Hot Takes

	takes := scoring.ExtractHotTakes(set, cat, 3)

Intensity is |value - 4|. Only intensity >= 2 qualifies (values 1, 2, 6, 7).
Sorted by intensity descending, then catalog order.

# Population Statistics

	stats := scoring.Aggregate(allSets, cat)

Per question: count, mean, population standard deviation, nearest-rank
percentiles (p10, p25, p50, p75, p90), min, max and a 1-7 histogram.
Questions nobody answered are absent from the map.

# Disagreement

	pct := scoring.Disagreement(set, stats)

Share of answers at least 3 points from the population mean, over the
answers that have statistics. DisagreementComment maps it to commentary.

# Neighborhoods

	profile := scoring.Classify(set, cat.Neighborhoods())

Nearest-centroid classification over three derived dimensions
(progressive, artistic, social), each the mean of 3-4 fixed questions
rescaled to 0-100. Missing answers count as 4. Ties keep declaration order.

# Outliers

	outliers := scoring.FindOutliers(set, stats, cat, 5)

Percentile rank is the share of responses at or below the user's value.
Rank >= 90 is a top outlier, <= 10 a bottom outlier. Questions with fewer
responses than the minimum sample are skipped.
*/
package scoring
