package study

import (
	"reflect"
	"testing"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

func cardsWithCategories(counts map[string]int) []*models.Flashcard {
	cards := []*models.Flashcard{}
	for category, n := range counts {
		for i := 0; i < n; i++ {
			cards = append(cards, &models.Flashcard{Question: "q", Answer: "a", Category: category})
		}
	}
	return cards
}

func TestFacets_SpanishExample(t *testing.T) {
	// Deck "Spanish": Verbs×3, Nouns×2, uncategorized×1.
	cards := cardsWithCategories(map[string]int{"Verbs": 3, "Nouns": 2, "": 1})

	got := Facets(cards)
	want := []Facet{{Category: "Verbs", Count: 3}, {Category: "Nouns", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFacets_TieBreakByName(t *testing.T) {
	cards := cardsWithCategories(map[string]int{"Zeta": 2, "Alpha": 2, "Mid": 3})

	got := Facets(cards)
	want := []Facet{
		{Category: "Mid", Count: 3},
		{Category: "Alpha", Count: 2},
		{Category: "Zeta", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFacets_AllUncategorized(t *testing.T) {
	cards := cardsWithCategories(map[string]int{"": 4})

	if got := Facets(cards); len(got) != 0 {
		t.Errorf("Expected no facets, got %v", got)
	}
}

func TestSelection_ToggleUnion(t *testing.T) {
	cards := cardsWithCategories(map[string]int{"X": 2, "Y": 3, "Z": 1})
	sel := NewSelection()

	sel.Toggle("X")
	sel.Toggle("Y")

	got := sel.Apply(cards)
	if len(got) != 5 {
		t.Fatalf("Expected 5 cards for X∪Y, got %d", len(got))
	}
	for _, c := range got {
		if c.Category != "X" && c.Category != "Y" {
			t.Errorf("Card with category %q leaked through the filter", c.Category)
		}
	}
}

func TestSelection_ToggleOffRemoves(t *testing.T) {
	sel := NewSelection("X")

	sel.Toggle("X")
	if sel.Has("X") {
		t.Error("Toggling a selected category should deselect it")
	}
	if !sel.Empty() {
		t.Error("Selection should be empty")
	}
}

func TestSelection_EmptyMeansNoFilter(t *testing.T) {
	cards := cardsWithCategories(map[string]int{"X": 2, "": 1})
	sel := NewSelection()

	got := sel.Apply(cards)
	if len(got) != len(cards) {
		t.Errorf("Empty selection should pass all %d cards, got %d", len(cards), len(got))
	}
}

func TestSelection_ClearRestoresFullSet(t *testing.T) {
	cards := cardsWithCategories(map[string]int{"X": 2, "Y": 3})
	sel := NewSelection("X")

	if got := sel.Apply(cards); len(got) != 2 {
		t.Fatalf("Expected 2 cards with X selected, got %d", len(got))
	}

	sel.Clear()
	if got := sel.Apply(cards); len(got) != len(cards) {
		t.Errorf("Clear should restore the full set, got %d of %d", len(got), len(cards))
	}
}

func TestSelection_Values(t *testing.T) {
	sel := NewSelection("Zeta", "Alpha", "")

	got := sel.Values()
	want := []string{"Alpha", "Zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSelection_IgnoresEmptyCategory(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("")
	if !sel.Empty() {
		t.Error("The empty category must not be selectable")
	}
}
