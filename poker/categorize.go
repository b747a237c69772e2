package poker

// Archetype groups starting hands the way the equity chart partitions them
type Archetype string

const (
	ArchetypePairs             Archetype = "Pairs"
	ArchetypeSuitedConsecutive Archetype = "Suited Consecutive"
	ArchetypeSuitedConnectors  Archetype = "Suited Connectors"
	ArchetypeField             Archetype = "Field"
)

// Archetypes lists the archetypes in chart order.
var Archetypes = []Archetype{
	ArchetypePairs,
	ArchetypeSuitedConsecutive,
	ArchetypeSuitedConnectors,
	ArchetypeField,
}

// CategorizeStartingHand assigns the first matching archetype:
// Pairs; Suited Consecutive (adjacent ranks, or A-2);
// Suited Connectors (gap under five, or an ace with a 3, 4 or 5);
// Field (everything else).
func CategorizeStartingHand(h StartingHand) Archetype {
	if h.IsPair() {
		return ArchetypePairs
	}
	if !h.Suited() {
		return ArchetypeField
	}

	low, high := h.Low(), h.High()
	gap := int(high) - int(low)
	aceLow := high == Ace

	if gap == 1 || (aceLow && low == Two) {
		return ArchetypeSuitedConsecutive
	}
	if gap < 5 || (aceLow && low >= Three && low <= Five) {
		return ArchetypeSuitedConnectors
	}
	return ArchetypeField
}
