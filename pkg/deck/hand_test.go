package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", h.String())
}

func TestHand_FirstAndLastCard(t *testing.T) {
	a := assert.New(t)

	var h Hand
	a.Nil(h.FirstCard())
	a.Nil(h.LastCard())
	a.Nil(h.PopLast())

	h = CardsFromString("8c,8d")
	a.Equal("8c", CardToString(h.FirstCard()))
	a.Equal("8d", CardToString(h.LastCard()))

	a.Equal("8d", CardToString(h.PopLast()))
	a.Equal("8c", h.String())
}

func TestHand_Clone(t *testing.T) {
	h := Hand(CardsFromString("2c,3c"))
	c := h.Clone()
	c.AddCard(CardFromString("4c"))

	assert.Equal(t, "2c,3c", h.String())
	assert.Equal(t, "2c,3c,4c", c.String())
}
