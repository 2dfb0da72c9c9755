package election

import "ElectSim/vote"

// Electorate is the voters of one run, in population order.
type Electorate []vote.Voter

// Poll hands every voter one fresh ballot and tallies the result.
func (el Electorate) Poll() Tally {
	var t Tally
	for i := range el {
		var b vote.Ballot
		el[i].Vote(&b)
		t.Record(b)
	}
	return t
}

// Cohort counts voters of one home party by kind.
type Cohort struct {
	Base  int `json:"base"`
	Swing int `json:"swing"`
}

// Demographics is indexed by home party.
type Demographics [vote.NumParties]Cohort

func (d Demographics) Total() int {
	n := 0
	for _, c := range d {
		n += c.Base + c.Swing
	}
	return n
}

func (el Electorate) Demographics() Demographics {
	var d Demographics
	for i := range el {
		p := el[i].Affiliation()
		if el[i].Kind() == vote.Swing {
			d[p].Swing++
		} else {
			d[p].Base++
		}
	}
	return d
}
