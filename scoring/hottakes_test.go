// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/models"
)

func TestIntensityAndStance(t *testing.T) {
	tests := []struct {
		value     int
		intensity int
		stance    models.Stance
	}{
		{1, 3, models.StanceStronglyDisagree},
		{2, 2, models.StanceDisagree},
		{3, 1, models.StanceNeutral},
		{4, 0, models.StanceNeutral},
		{5, 1, models.StanceNeutral},
		{6, 2, models.StanceAgree},
		{7, 3, models.StanceStronglyAgree},
	}

	for _, tt := range tests {
		if got := Intensity(tt.value); got != tt.intensity {
			t.Errorf("Intensity(%d) = %d, want %d", tt.value, got, tt.intensity)
		}
		if got := StanceFor(tt.value); got != tt.stance {
			t.Errorf("StanceFor(%d) = %s, want %s", tt.value, got, tt.stance)
		}
	}
}

func TestExtractHotTakes_StrongestFirst(t *testing.T) {
	cat := newTestCatalog(t, 5)
	set := models.AnswerSet{{QuestionID: 1, Value: 7}, {QuestionID: 2, Value: 1}, {QuestionID: 3, Value: 4}, {QuestionID: 4, Value: 6}, {QuestionID: 5, Value: 2}}

	takes := ExtractHotTakes(set, cat, 3)

	if len(takes) != 3 {
		t.Fatalf("Expected 3 hot takes, got %d", len(takes))
	}

	want := []struct {
		questionID int
		value      int
		stance     models.Stance
	}{
		{1, 7, models.StanceStronglyAgree},
		{2, 1, models.StanceStronglyDisagree},
		{4, 6, models.StanceAgree},
	}
	for i, w := range want {
		if takes[i].QuestionID != w.questionID || takes[i].Value != w.value {
			t.Errorf("Take %d: expected question %d value %d, got question %d value %d",
				i, w.questionID, w.value, takes[i].QuestionID, takes[i].Value)
		}
		if takes[i].Stance != w.stance {
			t.Errorf("Take %d: expected stance %s, got %s", i, w.stance, takes[i].Stance)
		}
		if takes[i].QuestionText == "" {
			t.Errorf("Take %d: expected question text", i)
		}
	}

	for _, take := range takes {
		if take.QuestionID == 3 {
			t.Error("Neutral answer must not be a hot take")
		}
	}
}

func TestExtractHotTakes_Properties(t *testing.T) {
	cat := catalog.Default()

	set := make(models.AnswerSet, 0, 30)
	for id := 1; id <= 30; id++ {
		set = append(set, models.Answer{QuestionID: id, Value: (id*5)%7 + 1})
	}

	for count := 1; count <= 10; count++ {
		takes := ExtractHotTakes(set, cat, count)
		if len(takes) > count {
			t.Errorf("count=%d: returned %d takes", count, len(takes))
		}
		for i, take := range takes {
			if take.Intensity < 2 {
				t.Errorf("count=%d: take %d has intensity %d", count, i, take.Intensity)
			}
			if i > 0 && takes[i-1].Intensity < take.Intensity {
				t.Errorf("count=%d: takes not sorted by intensity at %d", count, i)
			}
		}
	}
}

func TestExtractHotTakes_TiesFollowCatalogOrder(t *testing.T) {
	cat, err := catalog.New([]models.Question{
		{ID: 1, Text: "one", Category: models.CategorySocial, Order: 3},
		{ID: 2, Text: "two", Category: models.CategorySocial, Order: 1},
		{ID: 3, Text: "three", Category: models.CategorySocial, Order: 2},
	}, nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	takes := ExtractHotTakes(models.AnswerSet{{QuestionID: 1, Value: 7}, {QuestionID: 2, Value: 1}, {QuestionID: 3, Value: 7}}, cat, 3)

	want := []int{2, 3, 1}
	for i, id := range want {
		if takes[i].QuestionID != id {
			t.Errorf("Position %d: expected question %d, got %d", i, id, takes[i].QuestionID)
		}
	}
}

func TestExtractHotTakes_EdgeCases(t *testing.T) {
	cat := newTestCatalog(t, 5)

	t.Run("default count", func(t *testing.T) {
		set := models.AnswerSet{{QuestionID: 1, Value: 7}, {QuestionID: 2, Value: 7}, {QuestionID: 3, Value: 7}, {QuestionID: 4, Value: 7}, {QuestionID: 5, Value: 7}}
		if got := len(ExtractHotTakes(set, cat, 0)); got != DefaultHotTakeCount {
			t.Errorf("Expected %d takes, got %d", DefaultHotTakeCount, got)
		}
	})

	t.Run("stale question excluded", func(t *testing.T) {
		set := models.AnswerSet{{QuestionID: 99, Value: 7}, {QuestionID: 1, Value: 6}}
		takes := ExtractHotTakes(set, cat, 3)
		if len(takes) != 1 || takes[0].QuestionID != 1 {
			t.Errorf("Expected only question 1, got %v", takes)
		}
	})

	t.Run("no strong opinions", func(t *testing.T) {
		set := models.AnswerSet{{QuestionID: 1, Value: 3}, {QuestionID: 2, Value: 4}, {QuestionID: 3, Value: 5}}
		if takes := ExtractHotTakes(set, cat, 3); len(takes) != 0 {
			t.Errorf("Expected no takes, got %v", takes)
		}
	})

	t.Run("out of range ignored", func(t *testing.T) {
		set := models.AnswerSet{{QuestionID: 1, Value: 9}, {QuestionID: 2, Value: 0}}
		if takes := ExtractHotTakes(set, cat, 3); len(takes) != 0 {
			t.Errorf("Expected no takes, got %v", takes)
		}
	})
}
