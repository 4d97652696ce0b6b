package cardstack

import "github.com/go-drift/cardstack/pkg/graphics"

// Scope is the view of a stack handed to card content, so a card can tell
// whether it is on top and drive swipes itself.
type Scope struct {
	CurrentIndex int
	Controller   *Controller
}

// IsEmpty reports whether the stack had no cards left.
func (s Scope) IsEmpty() bool {
	return s.CurrentIndex < 0
}

// IsTop reports whether index is the top card.
func (s Scope) IsTop(index int) bool {
	return index >= 0 && index == s.CurrentIndex
}

// IsNext reports whether index is the card directly under the top card.
func (s Scope) IsNext(index int) bool {
	return index >= 0 && index == s.CurrentIndex-1
}

// Card is the presentation of one item: whether it is visible and the
// transform to draw it with.
type Card[T any] struct {
	Index int
	Item  T

	IsTop   bool
	IsNext  bool
	Visible bool

	// Offset is the translation from the stack's center, px.
	Offset graphics.Offset
	// Rotation is in degrees, clockwise positive.
	Rotation float64
	Scale    float64
}

// Card returns the presentation of the item at index. Only the top card
// and the one directly beneath it are visible. The top card carries the
// controller's offset and rotation; the card beneath carries its scale.
func (s *Stack[T]) Card(index int) Card[T] {
	scope := s.Scope()
	card := Card[T]{
		Index:  index,
		IsTop:  scope.IsTop(index),
		IsNext: scope.IsNext(index),
		Scale:  FullScale,
	}
	if index >= 0 && index < len(s.items) {
		card.Item = s.items[index]
	}
	card.Visible = card.IsTop || card.IsNext

	switch {
	case card.IsTop:
		card.Offset = s.controller.Offset()
		card.Rotation = s.controller.Rotation()
	case card.IsNext:
		card.Scale = s.controller.Scale()
	}
	return card
}

// Cards returns the presentation of every item in list order.
func (s *Stack[T]) Cards() []Card[T] {
	cards := make([]Card[T], len(s.items))
	for i := range s.items {
		cards[i] = s.Card(i)
	}
	return cards
}

// VisibleCards returns the visible cards in paint order: the card beneath
// first, then the top card.
func (s *Stack[T]) VisibleCards() []Card[T] {
	var cards []Card[T]
	if next := s.current - 1; next >= 0 {
		cards = append(cards, s.Card(next))
	}
	if s.current >= 0 {
		cards = append(cards, s.Card(s.current))
	}
	return cards
}

func offset(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}
