package election

import (
	"ElectSim/vote"
	"encoding/json"
)

// Tally counts ballots per party. Abstentions are empty ballots.
type Tally struct {
	Republican  int `json:"republican"`
	Democrat    int `json:"democrat"`
	Independent int `json:"independent"`
	Abstentions int `json:"abstentions"`
}

func (t *Tally) Record(b vote.Ballot) {
	p, ok := b.Winner()
	if !ok {
		t.Abstentions++
		return
	}
	switch p {
	case vote.Republican:
		t.Republican++
	case vote.Democrat:
		t.Democrat++
	case vote.Independent:
		t.Independent++
	}
}

// Add merges a partial tally into t.
func (t *Tally) Add(o Tally) {
	t.Republican += o.Republican
	t.Democrat += o.Democrat
	t.Independent += o.Independent
	t.Abstentions += o.Abstentions
}

func (t Tally) Votes(p vote.Party) int {
	switch p {
	case vote.Republican:
		return t.Republican
	case vote.Democrat:
		return t.Democrat
	case vote.Independent:
		return t.Independent
	}
	return 0
}

// Cast is the number of marked ballots.
func (t Tally) Cast() int {
	return t.Republican + t.Democrat + t.Independent
}

// Total is the number of ballots handed out, marked or not.
func (t Tally) Total() int {
	return t.Cast() + t.Abstentions
}

// Outcome returns the party with strictly the most votes. A tie for first
// place, including an empty tally, is undecided.
func (t Tally) Outcome() Outcome {
	best := vote.Republican
	for _, p := range vote.Parties[1:] {
		if t.Votes(p) > t.Votes(best) {
			best = p
		}
	}
	for _, p := range vote.Parties {
		if p != best && t.Votes(p) == t.Votes(best) {
			return Outcome{}
		}
	}
	return Outcome{winner: best, decided: true}
}

// Outcome is a winning party, or no clear winner.
type Outcome struct {
	winner  vote.Party
	decided bool
}

// Win returns an outcome won by p.
func Win(p vote.Party) Outcome {
	return Outcome{winner: p, decided: true}
}

func (o Outcome) Winner() (vote.Party, bool) {
	return o.winner, o.decided
}

func (o Outcome) String() string {
	if !o.decided {
		return "NO_CLEAR_WINNER"
	}
	return o.winner.String()
}

type outcomeJSON struct {
	Winner  *vote.Party `json:"winner"`
	Decided bool        `json:"decided"`
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{Decided: o.decided}
	if o.decided {
		w := o.winner
		out.Winner = &w
	}
	return json.Marshal(out)
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var in outcomeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*o = Outcome{}
	if in.Decided && in.Winner != nil {
		*o = Win(*in.Winner)
	}
	return nil
}
