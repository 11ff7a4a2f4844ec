package tests

import (
	"math/rand"
	"strings"
	"time"
)

// Randomizer feeds property-style tests with prices and titles.
type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Cents returns a non-negative amount below limit with two decimals, as
// the deals API renders prices.
func (r Randomizer) Cents(limit int) int {
	return r.Intn(limit * 100) //nolint:mnd // skip
}

// Word returns a random mixed-case ASCII word of length 1..maxLen.
func (r Randomizer) Word(maxLen int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 :-"

	var sb strings.Builder

	n := 1 + r.Intn(maxLen)
	for range n {
		sb.WriteByte(letters[r.Intn(len(letters))])
	}

	return sb.String()
}
