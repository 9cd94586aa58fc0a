package engine

// Suit constants, packed into the upper 4 bits of Card.
const (
	SuitClubs    uint8 = 0
	SuitDiamonds uint8 = 1
	SuitHearts   uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank constants, packed into the lower 4 bits of Card. Aces rank high.
const (
	RankTwo   uint8 = 0
	RankThree uint8 = 1
	RankFour  uint8 = 2
	RankFive  uint8 = 3
	RankSix   uint8 = 4
	RankSeven uint8 = 5
	RankEight uint8 = 6
	RankNine  uint8 = 7
	RankTen   uint8 = 8
	RankJack  uint8 = 9
	RankQueen uint8 = 10
	RankKing  uint8 = 11
	RankAce   uint8 = 12
)

const (
	NumSuits = 4
	NumRanks = 13
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Value returns the chip value a card contributes when scored.
//   - Two–Ten → face value 2–10
//   - Jack/Queen/King → 10
//   - Ace → 11
func (c Card) Value() int32 {
	r := c.Rank()
	switch {
	case r <= RankTen:
		return int32(r) + 2
	case r <= RankKing:
		return 10
	case r == RankAce:
		return 11
	}
	// EmptyCard or malformed
	return 0
}

// IsFace reports whether the card is a Jack, Queen, or King.
func (c Card) IsFace() bool {
	r := c.Rank()
	return r >= RankJack && r <= RankKing
}

var rankNames = [NumRanks]string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A",
}

var suitNames = [NumSuits]string{"C", "D", "H", "S"}

// String renders the card in shorthand, e.g. "AH" or "10S".
func (c Card) String() string {
	if c == EmptyCard || c.Rank() >= NumRanks || c.Suit() >= NumSuits {
		return "??"
	}
	return rankNames[c.Rank()] + suitNames[c.Suit()]
}

// CardSlot is a card occupying a position in the hand or the played row.
// Selected marks player selection while in hand, and membership in the
// scoring subset once the cards sit in the played row.
type CardSlot struct {
	Card     Card
	Selected bool
}

// ---------------------------------------------------------------------------
// Hand types
// ---------------------------------------------------------------------------

// HandType identifies a poker hand classification.
type HandType uint8

const (
	HandNone HandType = iota
	HandHighCard
	HandPair
	HandTwoPair
	HandThreeOfAKind
	HandStraight
	HandFlush
	HandFullHouse
	HandFourOfAKind
	HandStraightFlush
	HandRoyalFlush
	HandFiveOfAKind
	HandFlushHouse
	HandFlushFive
	NumHandTypes = iota
)

var handTypeNames = [NumHandTypes]string{
	"",
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
	"Five of a Kind",
	"Flush House",
	"Flush Five",
}

func (h HandType) String() string {
	if h >= NumHandTypes {
		return "unknown"
	}
	return handTypeNames[h]
}

// handBase holds the starting chips and mult granted by a hand type.
type handBase struct {
	Chips int32
	Mult  int32
}

var handBases = [NumHandTypes]handBase{
	HandNone:          {0, 0},
	HandHighCard:      {5, 1},
	HandPair:          {10, 2},
	HandTwoPair:       {20, 2},
	HandThreeOfAKind:  {30, 3},
	HandStraight:      {30, 4},
	HandFlush:         {35, 4},
	HandFullHouse:     {40, 4},
	HandFourOfAKind:   {60, 7},
	HandStraightFlush: {100, 8},
	HandRoyalFlush:    {100, 8},
	HandFiveOfAKind:   {120, 12},
	HandFlushHouse:    {140, 14},
	HandFlushFive:     {160, 16},
}

// Base returns the starting chips and mult for the hand type.
func (h HandType) Base() (chips, mult int32) {
	if h >= NumHandTypes {
		return 0, 0
	}
	b := handBases[h]
	return b.Chips, b.Mult
}
