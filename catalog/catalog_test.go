// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tor-iv/foe-finder-sub000/models"
)

func TestDefault(t *testing.T) {
	cat := Default()

	if cat.Len() != 30 {
		t.Fatalf("Expected 30 questions, got %d", cat.Len())
	}

	questions := cat.Questions()
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("Expected question at position %d to have id %d, got %d", i, i+1, q.ID)
		}
		if q.ScaleMinLabel == "" || q.ScaleMaxLabel == "" {
			t.Errorf("Question %d is missing scale labels", q.ID)
		}
	}

	profiles := cat.Neighborhoods()
	if len(profiles) != 8 {
		t.Fatalf("Expected 8 neighborhoods, got %d", len(profiles))
	}
	if profiles[0].ID != "williamsburg" {
		t.Errorf("Expected first neighborhood 'williamsburg', got %q", profiles[0].ID)
	}
	for _, p := range profiles {
		for _, v := range []float64{p.Reference.Progressive, p.Reference.Artistic, p.Reference.Social} {
			if v < 0 || v > 100 {
				t.Errorf("Neighborhood %s has reference component out of range: %f", p.ID, v)
			}
		}
	}
}

func TestLookupAndPosition(t *testing.T) {
	cat := Default()

	q, ok := cat.Lookup(15)
	if !ok {
		t.Fatal("Expected question 15 to exist")
	}
	if q.Text != "Read receipts should be illegal" {
		t.Errorf("Unexpected text for question 15: %q", q.Text)
	}

	pos, ok := cat.Position(15)
	if !ok || pos != 14 {
		t.Errorf("Expected position 14, got %d (ok=%v)", pos, ok)
	}

	if _, ok := cat.Lookup(31); ok {
		t.Error("Expected question 31 to be missing")
	}
	if _, ok := cat.Position(0); ok {
		t.Error("Expected question 0 to be missing")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	cat := Default()

	questions := cat.Questions()
	questions[0].Text = "mutated"
	if q, _ := cat.Lookup(1); q.Text == "mutated" {
		t.Error("Questions() must not expose internal storage")
	}

	profiles := cat.Neighborhoods()
	profiles[0].Traits[0] = "mutated"
	n, ok := cat.Neighborhood("williamsburg")
	if !ok {
		t.Fatal("Expected williamsburg to exist")
	}
	if n.Traits[0] == "mutated" {
		t.Error("Neighborhoods() must not expose internal trait slices")
	}
}

func TestNew_OrdersByOrderField(t *testing.T) {
	cat, err := New([]models.Question{
		{ID: 10, Text: "c", Category: models.CategorySocial, Order: 3},
		{ID: 20, Text: "a", Category: models.CategoryOpinions, Order: 1},
		{ID: 30, Text: "b", Category: models.CategoryLifestyle, Order: 2},
	}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []int{20, 30, 10}
	for i, q := range cat.Questions() {
		if q.ID != want[i] {
			t.Errorf("Position %d: expected id %d, got %d", i, want[i], q.ID)
		}
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.Question
		profiles  []models.NeighborhoodProfile
	}{
		{"empty", nil, nil},
		{"duplicate id", []models.Question{
			{ID: 1, Text: "a", Category: models.CategorySocial},
			{ID: 1, Text: "b", Category: models.CategorySocial},
		}, nil},
		{"zero id", []models.Question{{ID: 0, Text: "a", Category: models.CategorySocial}}, nil},
		{"blank text", []models.Question{{ID: 1, Text: "  ", Category: models.CategorySocial}}, nil},
		{"bad category", []models.Question{{ID: 1, Text: "a", Category: "politics"}}, nil},
		{"duplicate profile", []models.Question{{ID: 1, Text: "a", Category: models.CategorySocial}},
			[]models.NeighborhoodProfile{{ID: "x"}, {ID: "x"}}},
		{"unnamed profile", []models.Question{{ID: 1, Text: "a", Category: models.CategorySocial}},
			[]models.NeighborhoodProfile{{Name: "No ID"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.questions, tt.profiles)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("Expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
questions:
  - id: 1
    text: "Pineapple belongs on pizza"
    category: opinions
    scale_min_label: Strongly Disagree
    scale_max_label: Strongly Agree
    order: 2
  - id: 2
    text: "Mornings are the best part of the day"
    category: lifestyle
    order: 1
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("Expected 2 questions, got %d", cat.Len())
	}
	if cat.Questions()[0].ID != 2 {
		t.Errorf("Expected question 2 first (order 1), got %d", cat.Questions()[0].ID)
	}
	if len(cat.Neighborhoods()) != 8 {
		t.Errorf("Expected default neighborhoods when file lists none, got %d", len(cat.Neighborhoods()))
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := Parse([]byte("questions: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}

	_, err := Parse([]byte("questions:\n  - id: 1\n    text: x\n    category: nope\n"))
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("Expected ErrInvalidCatalog, got %v", err)
	}
}
