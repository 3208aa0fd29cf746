package deck

import (
	"casino-engine/internal/rng"
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"fmt"
)

// InsufficientCardsError is returned when more cards are dealt than the deck holds
type InsufficientCardsError struct {
	Want int
	Have int
}

func (i *InsufficientCardsError) Error() string {
	return fmt.Sprintf("cannot deal %d cards, only %d left in the deck", i.Want, i.Have)
}

// Deck represents a playing deck
// Cards are consumed from the front
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards in canonical order: suit-major, rank ascending.
// Important! this deck is unshuffled. Call Shuffle() to get a playable deck
func New() *Deck {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}
}

// FromCards returns a deck with the cards in the order given
func FromCards(cards []*Card) *Deck {
	c := make([]*Card, len(cards))
	copy(c, cards)

	return &Deck{Cards: c}
}

// Shuffle returns a new deck with the cards permuted with a Fisher-Yates shuffle.
// The receiver is left untouched
func (d *Deck) Shuffle(gen rng.Generator) *Deck {
	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)

	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Deck{Cards: cards}
}

// Deal removes count cards from the front of the deck.
// The receiver is left untouched, the remaining cards are returned as a new deck
func (d *Deck) Deal(count int) (Hand, *Deck, error) {
	if count < 0 || count > len(d.Cards) {
		return nil, nil, &InsufficientCardsError{Want: count, Have: len(d.Cards)}
	}

	dealt := make(Hand, count)
	copy(dealt, d.Cards[:count])

	remaining := make([]*Card, len(d.Cards)-count)
	copy(remaining, d.Cards[count:])

	return dealt, &Deck{Cards: remaining}, nil
}

// Draw will draw the next card
// If there are no more cards, an *InsufficientCardsError is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	cards, remaining, err := d.Deal(1)
	if err != nil {
		return nil, err
	}

	d.Cards = remaining.Cards
	return cards[0], nil
}

// Clone returns a copy of the deck
// Cards are immutable so only the slice is copied
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}

	return FromCards(d.Cards)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
