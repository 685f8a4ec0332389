// Package study holds the in-memory study engines: a shuffled traversal
// over a deck's cards and a faceted category filter. Both are pure state
// machines with no I/O; callers fetch the card set first.
package study

import (
	"fmt"
	"math/rand"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

type State int

const (
	StateReady State = iota
	StateFinished
	StateError
)

const (
	msgEmptyDeck     = "No flashcards available in this deck."
	msgEmptyFiltered = "No flashcards found in the selected categories."
)

// Session walks a shuffled card set, tracking position and per-card
// reveal/hint flags. It is not safe for concurrent use.
type Session struct {
	state     State
	cards     []*models.Flashcard
	index     int
	revealed  bool
	hintShown bool
	errMsg    string
	shuffle   func(n int, swap func(i, j int))
}

type Option func(*Session)

// WithShuffle overrides the permutation, mainly for deterministic tests.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *Session) { s.shuffle = shuffle }
}

// NewSession builds a session over a deck's cards, narrowed to the
// selected categories when any are given. An empty eligible set is an
// immediate error; the message says whether the deck itself is empty or
// only the selection matched nothing.
func NewSession(cards []*models.Flashcard, selected []string, opts ...Option) *Session {
	s := &Session{shuffle: rand.Shuffle}
	for _, opt := range opts {
		opt(s)
	}

	if len(cards) == 0 {
		s.state = StateError
		s.errMsg = msgEmptyDeck
		return s
	}

	eligible := cards
	if len(selected) > 0 {
		sel := NewSelection(selected...)
		eligible = sel.Apply(cards)
		if len(eligible) == 0 {
			s.state = StateError
			s.errMsg = msgEmptyFiltered
			return s
		}
	}

	s.cards = make([]*models.Flashcard, len(eligible))
	copy(s.cards, eligible)
	s.shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.state = StateReady
	return s
}

func (s *Session) State() State    { return s.state }
func (s *Session) Err() string     { return s.errMsg }
func (s *Session) Index() int      { return s.index }
func (s *Session) Total() int      { return len(s.cards) }
func (s *Session) Revealed() bool  { return s.revealed }
func (s *Session) HintShown() bool { return s.hintShown }

// Current returns the card under study, or nil outside Ready.
func (s *Session) Current() *models.Flashcard {
	if s.state != StateReady {
		return nil
	}
	return s.cards[s.index]
}

// Reveal shows the answer. Idempotent.
func (s *Session) Reveal() {
	if s.state != StateReady {
		return
	}
	s.revealed = true
}

// ShowHint is only allowed before the answer is revealed.
func (s *Session) ShowHint() {
	if s.state != StateReady || s.revealed {
		return
	}
	s.hintShown = true
}

// Next advances to the following card, resetting the reveal/hint flags.
// On the last card it finishes the session instead.
func (s *Session) Next() {
	if s.state != StateReady {
		return
	}
	s.revealed = false
	s.hintShown = false
	if s.index < len(s.cards)-1 {
		s.index++
		return
	}
	s.state = StateFinished
}

// Previous steps back one card, resetting the reveal/hint flags. On the
// first card nothing changes, flags included.
func (s *Session) Previous() {
	if s.state != StateReady || s.index == 0 {
		return
	}
	s.revealed = false
	s.hintShown = false
	s.index--
}

// CompletionMessage reports the session-complete signal with the total
// reviewed count.
func (s *Session) CompletionMessage() string {
	if s.state != StateFinished {
		return ""
	}
	return fmt.Sprintf("Study session complete! You've reviewed all %d cards.", len(s.cards))
}

// Restart reshuffles the same card set and begins again from the top.
func (s *Session) Restart() {
	if s.state == StateError {
		return
	}
	s.shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.index = 0
	s.revealed = false
	s.hintShown = false
	s.state = StateReady
}
