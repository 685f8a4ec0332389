package study

import (
	"sort"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

// Facet is a distinct category value and how many cards carry it.
type Facet struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Facets derives the category facets of a card set: empty categories are
// skipped, ordering is count descending with name ascending as the
// tie-break.
func Facets(cards []*models.Flashcard) []Facet {
	counts := map[string]int{}
	for _, c := range cards {
		if c.Category != "" {
			counts[c.Category]++
		}
	}

	facets := make([]Facet, 0, len(counts))
	for category, count := range counts {
		facets = append(facets, Facet{Category: category, Count: count})
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Category < facets[j].Category
	})
	return facets
}

// Selection is a multi-select set of categories. An empty selection
// means no filter.
type Selection struct {
	selected map[string]struct{}
}

func NewSelection(categories ...string) *Selection {
	s := &Selection{selected: make(map[string]struct{})}
	for _, c := range categories {
		if c != "" {
			s.selected[c] = struct{}{}
		}
	}
	return s
}

// Toggle adds the category to the selection, or removes it if already
// selected.
func (s *Selection) Toggle(category string) {
	if category == "" {
		return
	}
	if _, ok := s.selected[category]; ok {
		delete(s.selected, category)
		return
	}
	s.selected[category] = struct{}{}
}

// Clear resets to the unfiltered state.
func (s *Selection) Clear() {
	s.selected = make(map[string]struct{})
}

func (s *Selection) Has(category string) bool {
	_, ok := s.selected[category]
	return ok
}

func (s *Selection) Empty() bool {
	return len(s.selected) == 0
}

// Values returns the selected categories in name order.
func (s *Selection) Values() []string {
	values := make([]string, 0, len(s.selected))
	for c := range s.selected {
		values = append(values, c)
	}
	sort.Strings(values)
	return values
}

// Apply narrows cards to the selection; with nothing selected the full
// set comes back.
func (s *Selection) Apply(cards []*models.Flashcard) []*models.Flashcard {
	if s.Empty() {
		return cards
	}
	matched := make([]*models.Flashcard, 0, len(cards))
	for _, c := range cards {
		if s.Has(c.Category) {
			matched = append(matched, c)
		}
	}
	return matched
}
