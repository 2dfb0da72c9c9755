package vote

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type Kind uint8

const (
	Base Kind = iota
	Swing
)

var kindNames = [...]string{
	"BASE",
	"SWING",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "INVALID_KIND"
	}
	return kindNames[k]
}

// Voter is either a base voter, loyal to its own party, or a swing voter that
// picks a party from a weighted distribution. Each voter owns its random stream.
type Voter struct {
	kind       Kind
	party      Party
	enthusiasm float64
	weights    Weights

	src     rand.Source
	turnout distuv.Bernoulli
	choice  distuv.Categorical
}

// NewBaseVoter returns a voter that votes for p with probability enthusiasm.
func NewBaseVoter(p Party, enthusiasm float64, seed uint64) Voter {
	src := NewSource(seed)
	return Voter{
		kind:       Base,
		party:      p,
		enthusiasm: enthusiasm,
		src:        src,
		turnout:    distuv.Bernoulli{P: enthusiasm, Src: src},
	}
}

// NewSwingVoter returns a voter registered with p that turns out with
// probability enthusiasm and then picks a party in proportion to weights.
// weights must be non-negative with a positive sum.
func NewSwingVoter(p Party, enthusiasm float64, weights Weights, seed uint64) Voter {
	src := NewSource(seed)
	return Voter{
		kind:       Swing,
		party:      p,
		enthusiasm: enthusiasm,
		weights:    weights,
		src:        src,
		turnout:    distuv.Bernoulli{P: enthusiasm, Src: src},
		choice:     distuv.NewCategorical(weights[:], src),
	}
}

// Vote runs one turnout trial and, on success, marks b. It reports whether
// the voter voted.
func (v *Voter) Vote(b *Ballot) bool {
	if v.turnout.Rand() == 0 {
		return false
	}
	switch v.kind {
	case Base:
		b.Mark(v.party)
	case Swing:
		b.Mark(Party(v.choice.Rand()))
	default:
		return false
	}
	return true
}

// Affiliation is the voter's home party. A swing voter may vote elsewhere.
func (v *Voter) Affiliation() Party {
	return v.party
}

func (v *Voter) Kind() Kind {
	return v.kind
}

func (v *Voter) Enthusiasm() float64 {
	return v.enthusiasm
}

// Weights returns the swing choice weights; zero for base voters.
func (v *Voter) Weights() Weights {
	return v.weights
}
