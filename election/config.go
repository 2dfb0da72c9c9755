package election

import (
	"ElectSim/vote"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is wrapped by every validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds the simulation parameters. Arrays are indexed by vote.Party.
type Config struct {
	Population int `json:"population"`
	// Strengths is advisory base support per party. It is reported, not tallied.
	Strengths vote.Weights `json:"strengths"`
	// Registration is the weighted distribution of home parties.
	Registration vote.Weights `json:"registration"`
	// Undecided is the probability that a member of the party is a swing voter.
	Undecided [vote.NumParties]float64 `json:"undecided"`
	// Turnout is the per-party enthusiasm handed to every voter of that party.
	Turnout      [vote.NumParties]float64      `json:"turnout"`
	SwingWeights [vote.NumParties]vote.Weights `json:"swing_weights"`
	// Seed is the master seed. Zero seeds from the wall clock.
	Seed    uint64 `json:"seed"`
	Workers int    `json:"workers"`
}

// DefaultConfig returns the stock three-party preset.
func DefaultConfig() Config {
	return Config{
		Population:   1000,
		Strengths:    vote.Weights{0.40, 0.40, 0.20},
		Registration: vote.Weights{0.40, 0.40, 0.20},
		Undecided:    [vote.NumParties]float64{0.30, 0.30, 0.60},
		Turnout:      [vote.NumParties]float64{0.60, 0.60, 0.40},
		SwingWeights: [vote.NumParties]vote.Weights{
			vote.Republican:  {0.70, 0.15, 0.15},
			vote.Democrat:    {0.15, 0.70, 0.10},
			vote.Independent: {0.35, 0.45, 0.20},
		},
		Workers: 1,
	}
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Population <= 0 {
		return invalid("population must be positive, got %d", c.Population)
	}
	if c.Workers < 0 {
		return invalid("workers must not be negative, got %d", c.Workers)
	}
	if err := checkWeights("strengths", c.Strengths, false); err != nil {
		return err
	}
	if err := checkWeights("registration", c.Registration, true); err != nil {
		return err
	}
	for _, p := range vote.Parties {
		if err := checkProbability("undecided", p, c.Undecided[p]); err != nil {
			return err
		}
		if err := checkProbability("turnout", p, c.Turnout[p]); err != nil {
			return err
		}
		if err := checkWeights("swing_weights["+p.String()+"]", c.SwingWeights[p], true); err != nil {
			return err
		}
	}
	return nil
}

func checkProbability(field string, p vote.Party, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return invalid("%s[%s] must be in [0,1], got %v", field, p, v)
	}
	return nil
}

func checkWeights(field string, w vote.Weights, needMass bool) error {
	for _, p := range vote.Parties {
		v := w[p]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return invalid("%s[%s] must be a non-negative number, got %v", field, p, v)
		}
	}
	if needMass && w.Sum() <= 0 {
		return invalid("%s must have a positive sum", field)
	}
	return nil
}
