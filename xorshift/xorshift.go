// Package xorshift provides Marsaglia's 32-bit xorshift generators.
//
// A Generator is selected by a seed and one of the 81 shift triples that
// give a full period of 2^32-1. It is deterministic, small and fast, and is
// not suitable for anything that needs unpredictability.
package xorshift

// Triple is a (a, b, c) shift triple: x ^= x<<a; x ^= x>>b; x ^= x<<c.
type Triple struct {
	A, B, C uint8
}

// Params lists the full-period shift triples.
var Params = [...]Triple{
	{1, 3, 10}, {1, 5, 16}, {1, 5, 19}, {1, 9, 29}, {1, 11, 6}, {1, 11, 16},
	{1, 19, 3}, {1, 21, 20}, {1, 27, 27}, {2, 5, 15}, {2, 5, 21}, {2, 7, 7},
	{2, 7, 9}, {2, 7, 25}, {2, 9, 15}, {2, 15, 17}, {2, 15, 25}, {2, 21, 9},
	{3, 1, 14}, {3, 3, 26}, {3, 3, 28}, {3, 3, 29}, {3, 5, 20}, {3, 5, 22},
	{3, 5, 25}, {3, 7, 29}, {3, 13, 7}, {3, 23, 25}, {3, 25, 24}, {3, 27, 11},
	{4, 3, 17}, {4, 3, 27}, {4, 5, 15}, {5, 3, 21}, {5, 7, 22}, {5, 9, 7},
	{5, 9, 28}, {5, 9, 31}, {5, 13, 6}, {5, 15, 17}, {5, 17, 13}, {5, 21, 12},
	{5, 27, 8}, {5, 27, 21}, {5, 27, 25}, {5, 27, 28}, {6, 1, 11}, {6, 3, 17},
	{6, 17, 9}, {6, 21, 7}, {6, 21, 13}, {7, 1, 9}, {7, 1, 18}, {7, 1, 25},
	{7, 13, 25}, {7, 17, 21}, {7, 25, 12}, {7, 25, 20}, {8, 7, 23}, {8, 9, 23},
	{9, 5, 1}, {9, 5, 25}, {9, 11, 19}, {9, 21, 16}, {10, 9, 21}, {10, 9, 25},
	{11, 7, 12}, {11, 7, 16}, {11, 17, 13}, {11, 21, 13}, {12, 9, 23}, {13, 3, 17},
	{13, 3, 27}, {13, 5, 19}, {13, 17, 15}, {14, 1, 15}, {14, 13, 15}, {15, 1, 29},
	{17, 15, 20}, {17, 15, 23}, {17, 15, 26},
}

// DefaultSeed is used in place of a zero seed, which would only ever
// produce zeros.
const DefaultSeed uint32 = 2463534242

// Generator holds the state of one sequence. It is not safe for concurrent
// use.
type Generator struct {
	x       uint32
	a, b, c uint8
}

// New returns a generator starting at seed using triple params, taken
// modulo len(Params). A negative params counts back from the end.
func New(seed uint32, params int) *Generator {
	g := &Generator{}
	g.Seed(seed, params)
	return g
}

// Seed restarts g.
func (g *Generator) Seed(seed uint32, params int) {
	n := len(Params)
	i := (params%n + n) % n
	if seed == 0 {
		seed = DefaultSeed
	}
	t := Params[i]
	*g = Generator{x: seed, a: t.A, b: t.B, c: t.C}
}

// Uint32 advances the sequence and returns the new state.
func (g *Generator) Uint32() uint32 {
	x := g.x
	x ^= x << g.a
	x ^= x >> g.b
	x ^= x << g.c
	g.x = x
	return x
}

// Intn returns a value in [0, n) taken as Uint32 modulo n. It panics if n
// is not positive or does not fit in 32 bits.
func (g *Generator) Intn(n int) int {
	if n <= 0 || uint64(n) > 1<<32 {
		panic("xorshift: invalid argument to Intn")
	}
	return int(uint64(g.Uint32()) % uint64(n))
}
