package election

import (
	"ElectSim/vote"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "default ok", mutate: func(c *Config) {}},
		{name: "population zero", mutate: func(c *Config) { c.Population = 0 }, wantErr: true},
		{name: "population negative", mutate: func(c *Config) { c.Population = -5 }, wantErr: true},
		{name: "undecided above one", mutate: func(c *Config) { c.Undecided[vote.Democrat] = 1.5 }, wantErr: true},
		{name: "undecided nan", mutate: func(c *Config) { c.Undecided[vote.Republican] = math.NaN() }, wantErr: true},
		{name: "turnout below zero", mutate: func(c *Config) { c.Turnout[vote.Independent] = -0.1 }, wantErr: true},
		{name: "turnout one ok", mutate: func(c *Config) { c.Turnout = [vote.NumParties]float64{1, 1, 1} }},
		{name: "swing weight negative", mutate: func(c *Config) { c.SwingWeights[vote.Independent][vote.Democrat] = -1 }, wantErr: true},
		{name: "swing weights all zero", mutate: func(c *Config) { c.SwingWeights[vote.Republican] = vote.Weights{} }, wantErr: true},
		{name: "swing weights unnormalised ok", mutate: func(c *Config) { c.SwingWeights[vote.Republican] = vote.Weights{5, 3, 2} }},
		{name: "registration all zero", mutate: func(c *Config) { c.Registration = vote.Weights{} }, wantErr: true},
		{name: "registration infinite", mutate: func(c *Config) { c.Registration[vote.Democrat] = math.Inf(1) }, wantErr: true},
		{name: "strengths negative", mutate: func(c *Config) { c.Strengths[vote.Republican] = -0.2 }, wantErr: true},
		{name: "strengths zero ok", mutate: func(c *Config) { c.Strengths = vote.Weights{} }},
		{name: "workers negative", mutate: func(c *Config) { c.Workers = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestNew_InvalidConfiguration(t *testing.T) {
	c := DefaultConfig()
	c.Population = 0
	e, err := New(c)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "population")

	c = DefaultConfig()
	c.Turnout[vote.Democrat] = 1.5
	_, err = New(c)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "turnout[DEMOCRAT]")
}

func TestNew_Seed(t *testing.T) {
	c := DefaultConfig()
	c.Seed = 17
	e, err := New(c)
	assert.Nil(t, err)
	assert.Equal(t, uint64(17), e.Seed())
	assert.Equal(t, c, e.Config())

	c.Seed = 0
	e, err = New(c)
	assert.Nil(t, err)
	assert.NotZero(t, e.Seed())
}
