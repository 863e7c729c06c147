package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestParseSuit() {
	testCases := []struct {
		code     string
		expected Suit
	}{
		{code: "C", expected: Clubs},
		{code: "H", expected: Hearts},
		{code: "S", expected: Spades},
		{code: "D", expected: Diamonds},
		{code: "d", expected: Diamonds},
	}

	for _, tc := range testCases {
		s.Run(tc.code, func() {
			suit, err := ParseSuit(tc.code)

			s.Require().NoError(err)
			s.Equal(tc.expected, suit)
			s.Equal(tc.expected.Code(), suit.Code())
		})
	}
}

func (s *CardTestSuite) TestParseSuitUnknown() {
	for _, code := range []string{"", "X", "CH", "♠"} {
		_, err := ParseSuit(code)
		s.True(errors.Is(err, ErrUnknownSuit), "code %q should be rejected", code)
	}
}

func (s *CardTestSuite) TestGlyphIsTotalOverSuits() {
	seen := map[string]bool{}
	for _, suit := range Suits {
		glyph := suit.Glyph()
		s.NotEmpty(glyph, suit.String())
		s.Equal("M", glyph[:1], "glyph for %s should start with a moveto", suit)
		s.Equal("z", glyph[len(glyph)-1:], "glyph for %s should be closed", suit)
		seen[glyph] = true
	}
	s.Len(seen, 4)
}

func (s *CardTestSuite) TestOutOfRangeSuit() {
	suit := Suit(9)

	s.Empty(suit.Glyph())
	s.Empty(suit.Code())
	s.False(suit.Red())
	s.Equal("Suit(9)", suit.String())
}

func (s *CardTestSuite) TestRed() {
	s.True(Hearts.Red())
	s.True(Diamonds.Red())
	s.False(Clubs.Red())
	s.False(Spades.Red())
}

func (s *CardTestSuite) TestCodeAndString() {
	testCases := []struct {
		name string
		card Card
		code string
		str  string
	}{
		{name: "ace of hearts", card: Card{Rank: Ace, Suit: Hearts}, code: "AH", str: "Ace of Hearts"},
		{name: "ten of diamonds", card: Card{Rank: Ten, Suit: Diamonds}, code: "10D", str: "10 of Diamonds"},
		{name: "queen of spades", card: Card{Rank: Queen, Suit: Spades}, code: "QS", str: "Queen of Spades"},
		{name: "custom rank", card: Card{Rank: "Joker", Suit: Clubs}, code: "JokerC", str: "Joker of Clubs"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.code, tc.card.Code())
			s.Equal(tc.str, tc.card.String())
		})
	}
}

func (s *CardTestSuite) TestParseCode() {
	c, err := ParseCode("10d")
	s.Require().NoError(err)
	s.Equal(Card{Rank: Ten, Suit: Diamonds}, c)

	c, err = ParseCode("kS")
	s.Require().NoError(err)
	s.Equal(Card{Rank: King, Suit: Spades}, c)

	_, err = ParseCode("A")
	s.Error(err)

	_, err = ParseCode("AX")
	s.True(errors.Is(err, ErrUnknownSuit))
}
