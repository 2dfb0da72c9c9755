package vote

// Ballot records at most one marked party. The zero value is an empty ballot.
type Ballot struct {
	party  Party
	marked bool
}

// Mark selects p, replacing any earlier mark.
func (b *Ballot) Mark(p Party) {
	b.party = p
	b.marked = true
}

// Winner returns the marked party, or false if the ballot is empty.
func (b Ballot) Winner() (Party, bool) {
	return b.party, b.marked
}

func (b Ballot) Empty() bool {
	return !b.marked
}
