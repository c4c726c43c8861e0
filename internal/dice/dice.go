package dice

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_drawer.go github.com/dicetable/robbers/internal/dice Drawer

// Drawer provides dice-pair draws for a room
type Drawer interface {
	// DrawPair returns the next dice pair, each face in 1..6
	DrawPair() (dice1, dice2 int)
}

// pairsPerEpoch is the number of ordered (a, b) pairs with a, b in 1..6
const pairsPerEpoch = 36

// Config for the dice shoe
type Config struct {
	// Optional randomness source; defaults to crypto/rand
	Rand io.Reader
}

// Shoe holds the remaining dice-pair draws for the current shuffle epoch.
// Over one epoch every ordered pair is drawn exactly once, in a uniformly
// random order, which removes short-run bias relative to two independent
// uniform draws while keeping the same long-run marginals.
type Shoe struct {
	random io.Reader
	pairs  [][2]int
}

// New creates an empty shoe; the first draw fills and shuffles it
func New(cfg *Config) *Shoe {
	random := io.Reader(rand.Reader)
	if cfg != nil && cfg.Rand != nil {
		random = cfg.Rand
	}

	return &Shoe{
		random: random,
	}
}

// DrawPair removes and returns the next pair, refilling and reshuffling the
// shoe when it is exhausted
func (s *Shoe) DrawPair() (int, int) {
	if len(s.pairs) == 0 {
		s.refill()
	}

	pair := s.pairs[len(s.pairs)-1]
	s.pairs = s.pairs[:len(s.pairs)-1]

	return pair[0], pair[1]
}

// Remaining returns the number of draws left in the current epoch
func (s *Shoe) Remaining() int {
	return len(s.pairs)
}

// refill rebuilds the 36 ordered pairs and Fisher-Yates shuffles them
func (s *Shoe) refill() {
	pairs := make([][2]int, 0, pairsPerEpoch)
	for a := 1; a <= 6; a++ {
		for b := 1; b <= 6; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}

	for i := len(pairs) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}

	s.pairs = pairs
}

// intn returns a uniform random int in [0, n) from the shoe's source
func (s *Shoe) intn(n int) int {
	v, err := rand.Int(s.random, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms; a broken
		// injected source is a programming error
		panic(fmt.Sprintf("dice: random source failed: %v", err))
	}
	return int(v.Int64())
}
