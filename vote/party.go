package vote

import (
	"ElectSim/logger"
	"fmt"
	"strconv"
	"strings"
)

type Party uint8

const (
	Republican Party = iota
	Democrat
	Independent
	NumParties = 3
)

// Parties lists every party in ballot order.
var Parties = [NumParties]Party{Republican, Democrat, Independent}

var partyNames = [...]string{
	"REPUBLICAN",
	"DEMOCRAT",
	"INDEPENDENT",
}

var partyTitles = [...]string{
	"Republican",
	"Democrat",
	"Independent",
}

func (p Party) Valid() bool {
	return p < NumParties
}

func (p Party) String() string {
	if !p.Valid() {
		logger.Sugar().Errorf("unknown party:%d", p)
		return "INVALID_PARTY"
	}
	return partyNames[p]
}

// Title is the display name used in reports.
func (p Party) Title() string {
	if !p.Valid() {
		return "Invalid"
	}
	return partyTitles[p]
}

func ParseParty(s string) (Party, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, p := range Parties {
		if partyNames[p] == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown party %q", s)
}

func (p Party) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown party %d", uint8(p))
	}
	return []byte(partyNames[p]), nil
}

func (p *Party) UnmarshalText(text []byte) error {
	parsed, err := ParseParty(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Weights is a weight per party, indexed by Party. Entries need not sum to 1.
type Weights [NumParties]float64

func (w Weights) Of(p Party) float64 {
	return w[p]
}

func (w Weights) Sum() float64 {
	return w[Republican] + w[Democrat] + w[Independent]
}

// ParseWeights parses a comma separated "republican,democrat,independent" triple.
func ParseWeights(s string) (Weights, error) {
	var w Weights
	fields := strings.Split(s, ",")
	if len(fields) != NumParties {
		return w, fmt.Errorf("want %d comma separated values, got %q", NumParties, s)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return w, fmt.Errorf("value %d of %q: %w", i, s, err)
		}
		w[i] = v
	}
	return w, nil
}
