package vote

import "golang.org/x/exp/rand"

const golden = 0x9e3779b97f4a7c15

// DeriveSeed splits master into an independent seed for stream index.
func DeriveSeed(master, index uint64) uint64 {
	z := master + (index+1)*golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NewSource returns a PCG stream for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}
