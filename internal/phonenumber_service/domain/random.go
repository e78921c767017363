package domain

import "math/rand/v2"

// Lowest area code produced by the generators. Parse still accepts 000.
const minRandomAreaCode = 1

// Random returns a uniformly distributed phone number. It is safe for
// concurrent use.
func Random() PhoneNumber {
	return PhoneNumber{
		areaCode: uint16(minRandomAreaCode + rand.IntN(MaxAreaCode-minRandomAreaCode+1)),
		exchange: uint16(rand.IntN(MaxExchange + 1)),
		number:   uint16(rand.IntN(MaxNumber + 1)),
	}
}

// Generator produces a reproducible sequence of random phone numbers.
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with the given PCG seeds.
func NewGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (g *Generator) Next() PhoneNumber {
	return PhoneNumber{
		areaCode: uint16(minRandomAreaCode + g.rng.IntN(MaxAreaCode-minRandomAreaCode+1)),
		exchange: uint16(g.rng.IntN(MaxExchange + 1)),
		number:   uint16(g.rng.IntN(MaxNumber + 1)),
	}
}
