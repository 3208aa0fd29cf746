package handeval

import (
	"casino-engine/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlackjackValue(t *testing.T) {
	tests := []struct {
		cards  string
		value  int
		isSoft bool
	}{
		{"", 0, false},
		{"14c,14d", 12, true},
		{"14c,13d", 21, true},
		{"10c,9d,5h", 24, false},
		{"10c,6d", 16, false},
		{"14c,6d", 17, true},
		{"14c,6d,10h", 17, false},
		{"14c,14d,14h,14s", 14, true},
		{"14c,14d,10h,10s", 22, false},
		{"11c,12d", 20, false},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			value, isSoft := BlackjackValue(deck.CardsFromString(test.cards))
			assert.Equal(t, test.value, value)
			assert.Equal(t, test.isSoft, isSoft)
		})
	}
}
