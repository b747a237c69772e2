package poker

// Category is the class of a five-card hand, ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	Set
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories.
const NumCategories = int(StraightFlush) + 1

// Categories lists every category from weakest to strongest.
var Categories = [NumCategories]Category{
	HighCard, Pair, TwoPair, Set, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

// String returns the human-readable category label
func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case Set:
		return "set"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		return "unknown"
	}
}
