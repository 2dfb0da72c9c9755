package vote

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

const trials = 100

func TestBaseVoter_AlwaysVotes(t *testing.T) {
	for _, p := range Parties {
		t.Run(p.String(), func(t *testing.T) {
			v := NewBaseVoter(p, 1.0, 11)
			own := 0
			for i := 0; i < trials; i++ {
				var b Ballot
				assert.True(t, v.Vote(&b))
				if got, ok := b.Winner(); ok && got == p {
					own++
				}
			}
			assert.Equal(t, trials, own)
		})
	}
}

func TestBaseVoter_NeverVotes(t *testing.T) {
	v := NewBaseVoter(Democrat, 0.0, 11)
	marks := 0
	for i := 0; i < trials; i++ {
		var b Ballot
		assert.False(t, v.Vote(&b))
		if !b.Empty() {
			marks++
		}
	}
	assert.Equal(t, 0, marks)
}

func TestSwingVoter_FollowsWeights(t *testing.T) {
	tests := []struct {
		name    string
		home    Party
		weights Weights
		want    Party
	}{
		{name: "democrat_votes_republican", home: Democrat, weights: Weights{1, 0, 0}, want: Republican},
		{name: "independent_votes_republican", home: Independent, weights: Weights{1, 0, 0}, want: Republican},
		{name: "republican_votes_independent", home: Republican, weights: Weights{0, 0, 3}, want: Independent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSwingVoter(tt.home, 1.0, tt.weights, 5)
			assert.Equal(t, tt.home, v.Affiliation())
			assert.Equal(t, Swing, v.Kind())
			for i := 0; i < trials; i++ {
				var b Ballot
				assert.True(t, v.Vote(&b))
				got, ok := b.Winner()
				assert.True(t, ok)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSwingVoter_NeverVotes(t *testing.T) {
	v := NewSwingVoter(Republican, 0.0, Weights{1, 1, 1}, 5)
	for i := 0; i < trials; i++ {
		var b Ballot
		assert.False(t, v.Vote(&b))
		assert.True(t, b.Empty())
	}
}

func TestSwingVoter_Proportions(t *testing.T) {
	v := NewSwingVoter(Independent, 1.0, Weights{1, 2, 1}, 2024)
	counts := [NumParties]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		var b Ballot
		v.Vote(&b)
		p, _ := b.Winner()
		counts[p]++
	}
	assert.InDelta(t, 0.25, float64(counts[Republican])/n, 0.03)
	assert.InDelta(t, 0.50, float64(counts[Democrat])/n, 0.03)
	assert.InDelta(t, 0.25, float64(counts[Independent])/n, 0.03)
}

func TestVoter_Turnout(t *testing.T) {
	v := NewBaseVoter(Republican, 0.3, 77)
	voted := 0
	const n = 20000
	for i := 0; i < n; i++ {
		var b Ballot
		if v.Vote(&b) {
			voted++
		}
	}
	assert.InDelta(t, 0.3, float64(voted)/n, 0.03)
}

func TestVoter_Deterministic(t *testing.T) {
	a := NewSwingVoter(Democrat, 0.6, Weights{0.35, 0.45, 0.2}, 123)
	b := NewSwingVoter(Democrat, 0.6, Weights{0.35, 0.45, 0.2}, 123)
	for i := 0; i < trials; i++ {
		var ba, bb Ballot
		assert.Equal(t, a.Vote(&ba), b.Vote(&bb))
		assert.Equal(t, ba, bb)
	}
}

func TestBaseVoter_Accessors(t *testing.T) {
	v := NewBaseVoter(Independent, 0.8, 1)
	assert.Equal(t, Independent, v.Affiliation())
	assert.Equal(t, Base, v.Kind())
	assert.Equal(t, 0.8, v.Enthusiasm())
	assert.Equal(t, Weights{}, v.Weights())
	assert.Equal(t, "BASE", v.Kind().String())
}
