// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"testing"

	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/models"
)

func TestDimensions(t *testing.T) {
	tests := []struct {
		name string
		set  models.AnswerSet
		want models.TraitVector
	}{
		{
			name: "no answers is neutral",
			set:  nil,
			want: models.TraitVector{Progressive: 50, Artistic: 50, Social: 50},
		},
		{
			name: "maximal answers",
			set: models.AnswerSet{
				{QuestionID: 1, Value: 7}, {QuestionID: 2, Value: 1}, {QuestionID: 4, Value: 7}, {QuestionID: 6, Value: 1},
				{QuestionID: 3, Value: 7}, {QuestionID: 7, Value: 7}, {QuestionID: 9, Value: 1},
				{QuestionID: 5, Value: 7}, {QuestionID: 8, Value: 7}, {QuestionID: 10, Value: 1},
			},
			want: models.TraitVector{Progressive: 100, Artistic: 100, Social: 100},
		},
		{
			name: "minimal answers",
			set: models.AnswerSet{
				{QuestionID: 1, Value: 1}, {QuestionID: 2, Value: 7}, {QuestionID: 4, Value: 1}, {QuestionID: 6, Value: 7},
				{QuestionID: 3, Value: 1}, {QuestionID: 7, Value: 1}, {QuestionID: 9, Value: 7},
				{QuestionID: 5, Value: 1}, {QuestionID: 8, Value: 1}, {QuestionID: 10, Value: 7},
			},
			want: models.TraitVector{Progressive: 0, Artistic: 0, Social: 0},
		},
		{
			name: "unrelated questions ignored",
			set:  models.AnswerSet{{QuestionID: 11, Value: 7}, {QuestionID: 30, Value: 1}},
			want: models.TraitVector{Progressive: 50, Artistic: 50, Social: 50},
		},
		{
			name: "invalid value treated as missing",
			set:  models.AnswerSet{{QuestionID: 1, Value: 12}},
			want: models.TraitVector{Progressive: 50, Artistic: 50, Social: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dimensions(tt.set)
			if !closeVector(got, tt.want) {
				t.Errorf("Dimensions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassify_DefaultProfiles(t *testing.T) {
	profiles := catalog.Default().Neighborhoods()

	tests := []struct {
		name string
		set  models.AnswerSet
		want string
	}{
		{
			// Nothing relevant answered still yields a profile
			name: "neutral user",
			set:  models.AnswerSet{{QuestionID: 20, Value: 7}},
			want: "upper-east-side",
		},
		{
			name: "maximal user",
			set: models.AnswerSet{
				{QuestionID: 1, Value: 7}, {QuestionID: 2, Value: 1}, {QuestionID: 4, Value: 7}, {QuestionID: 6, Value: 1},
				{QuestionID: 3, Value: 7}, {QuestionID: 7, Value: 7}, {QuestionID: 9, Value: 1},
				{QuestionID: 5, Value: 7}, {QuestionID: 8, Value: 7}, {QuestionID: 10, Value: 1},
			},
			want: "east-village",
		},
		{
			name: "minimal user",
			set: models.AnswerSet{
				{QuestionID: 1, Value: 1}, {QuestionID: 2, Value: 7}, {QuestionID: 4, Value: 1}, {QuestionID: 6, Value: 7},
				{QuestionID: 3, Value: 1}, {QuestionID: 7, Value: 1}, {QuestionID: 9, Value: 7},
				{QuestionID: 5, Value: 1}, {QuestionID: 8, Value: 1}, {QuestionID: 10, Value: 7},
			},
			want: "financial-district",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.set, profiles)
			if got.ID != tt.want {
				t.Errorf("Classify() = %s, want %s", got.ID, tt.want)
			}
			if again := Classify(tt.set, profiles); again.ID != got.ID {
				t.Errorf("Classify() not deterministic: %s then %s", got.ID, again.ID)
			}
		})
	}
}

func TestClassify_TieKeepsDeclarationOrder(t *testing.T) {
	profiles := []models.NeighborhoodProfile{
		{ID: "below", Reference: models.TraitVector{Progressive: 40, Artistic: 50, Social: 50}},
		{ID: "above", Reference: models.TraitVector{Progressive: 60, Artistic: 50, Social: 50}},
	}

	if got := Classify(nil, profiles); got.ID != "below" {
		t.Errorf("Expected first declared profile, got %s", got.ID)
	}

	profiles[0], profiles[1] = profiles[1], profiles[0]
	if got := Classify(nil, profiles); got.ID != "above" {
		t.Errorf("Expected first declared profile, got %s", got.ID)
	}
}

func TestClassify_NoProfiles(t *testing.T) {
	got := Classify(models.AnswerSet{{QuestionID: 1, Value: 7}}, nil)
	if got.ID != "" {
		t.Errorf("Expected zero profile, got %s", got.ID)
	}
}

func TestClassifyWithDimensions(t *testing.T) {
	profiles := catalog.Default().Neighborhoods()
	set := models.AnswerSet{{QuestionID: 1, Value: 7}, {QuestionID: 2, Value: 1}, {QuestionID: 4, Value: 7}, {QuestionID: 6, Value: 1}}

	result := ClassifyWithDimensions(set, profiles)

	if result.Neighborhood.ID != Classify(set, profiles).ID {
		t.Errorf("ClassifyWithDimensions disagrees with Classify: %s", result.Neighborhood.ID)
	}
	want := models.TraitVector{Progressive: 100, Artistic: 50, Social: 50}
	if !closeVector(result.Dimensions, want) {
		t.Errorf("Dimensions = %+v, want %+v", result.Dimensions, want)
	}
}

func closeVector(a, b models.TraitVector) bool {
	const eps = 1e-9
	return math.Abs(a.Progressive-b.Progressive) < eps &&
		math.Abs(a.Artistic-b.Artistic) < eps &&
		math.Abs(a.Social-b.Social) < eps
}
