// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"

	"github.com/tor-iv/foe-finder-sub000/models"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrValueOutOfRange = errors.New("value out of range")
)

// Catalog is the read-only view of the question bank the engine needs.
// *catalog.Catalog satisfies it.
type Catalog interface {
	Lookup(id int) (models.Question, bool)
	Position(id int) (int, bool)
}

// CheckAnswer reports why a single answer would be dropped by Validate
func CheckAnswer(a models.Answer, cat Catalog) error {
	if _, ok := cat.Lookup(a.QuestionID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, a.QuestionID)
	}
	if !inScale(a.Value) {
		return fmt.Errorf("%w: question %d has value %d, want %d-%d",
			ErrValueOutOfRange, a.QuestionID, a.Value, models.ScaleMin, models.ScaleMax)
	}
	return nil
}

// Validate filters raw answers down to a well-formed AnswerSet.
// Unknown questions and out-of-range values are dropped. Duplicate question
// ids keep the last value at the position of the first occurrence.
func Validate(raw []models.Answer, cat Catalog) models.AnswerSet {
	set := make(models.AnswerSet, 0, len(raw))
	slot := make(map[int]int, len(raw))

	for _, a := range raw {
		if CheckAnswer(a, cat) != nil {
			continue
		}
		if i, seen := slot[a.QuestionID]; seen {
			set[i].Value = a.Value
			continue
		}
		slot[a.QuestionID] = len(set)
		set = append(set, a)
	}

	return set
}

func inScale(v int) bool {
	return v >= models.ScaleMin && v <= models.ScaleMax
}
