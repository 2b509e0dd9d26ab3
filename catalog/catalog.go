// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tor-iv/foe-finder-sub000/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the immutable question bank plus the neighborhood reference profiles.
// Questions are held in display order (Order, then ID).
type Catalog struct {
	questions     []models.Question
	index         map[int]int
	neighborhoods []models.NeighborhoodProfile
}

// New validates and indexes a question bank and profile list
func New(questions []models.Question, neighborhoods []models.NeighborhoodProfile) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidCatalog)
	}

	qs := slices.Clone(questions)
	slices.SortStableFunc(qs, func(a, b models.Question) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return a.ID - b.ID
	})

	index := make(map[int]int, len(qs))
	for i, q := range qs {
		if q.ID <= 0 {
			return nil, fmt.Errorf("%w: question id %d must be positive", ErrInvalidCatalog, q.ID)
		}
		if _, dup := index[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrInvalidCatalog, q.ID)
		}
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrInvalidCatalog, q.ID)
		}
		if !isValidCategory(q.Category) {
			return nil, fmt.Errorf("%w: question %d has unknown category %q", ErrInvalidCatalog, q.ID, q.Category)
		}
		index[q.ID] = i
	}

	seen := make(map[string]bool, len(neighborhoods))
	profiles := make([]models.NeighborhoodProfile, len(neighborhoods))
	for i, n := range neighborhoods {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: neighborhood %d has no id", ErrInvalidCatalog, i)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("%w: duplicate neighborhood id %q", ErrInvalidCatalog, n.ID)
		}
		seen[n.ID] = true
		profiles[i] = copyProfile(n)
	}

	return &Catalog{questions: qs, index: index, neighborhoods: profiles}, nil
}

// Default returns the product's 30-statement bank and its 8 neighborhoods
func Default() *Catalog {
	c, err := New(defaultQuestions, defaultNeighborhoods)
	if err != nil {
		panic(fmt.Sprintf("catalog: default catalog is invalid: %v", err))
	}
	return c
}

type fileFormat struct {
	Questions     []models.Question            `yaml:"questions"`
	Neighborhoods []models.NeighborhoodProfile `yaml:"neighborhoods"`
}

// LoadFile reads a YAML catalog. When the file lists no neighborhoods the
// default profiles are used.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Neighborhoods) == 0 {
		f.Neighborhoods = defaultNeighborhoods
	}
	return New(f.Questions, f.Neighborhoods)
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns a copy of the bank in display order
func (c *Catalog) Questions() []models.Question {
	return slices.Clone(c.questions)
}

func (c *Catalog) Lookup(id int) (models.Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Question{}, false
	}
	return c.questions[i], true
}

// Position returns the zero-based display position of a question
func (c *Catalog) Position(id int) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Neighborhoods returns the reference profiles in declaration order
func (c *Catalog) Neighborhoods() []models.NeighborhoodProfile {
	out := make([]models.NeighborhoodProfile, len(c.neighborhoods))
	for i, n := range c.neighborhoods {
		out[i] = copyProfile(n)
	}
	return out
}

func (c *Catalog) Neighborhood(id string) (models.NeighborhoodProfile, bool) {
	for _, n := range c.neighborhoods {
		if n.ID == id {
			return copyProfile(n), true
		}
	}
	return models.NeighborhoodProfile{}, false
}

func copyProfile(n models.NeighborhoodProfile) models.NeighborhoodProfile {
	n.Traits = slices.Clone(n.Traits)
	return n
}

func isValidCategory(category string) bool {
	switch category {
	case models.CategorySocial, models.CategoryLifestyle, models.CategoryOpinions:
		return true
	}
	return false
}
