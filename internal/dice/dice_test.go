package dice

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ShoeTestSuite struct {
	suite.Suite
	shoe *Shoe
}

func (s *ShoeTestSuite) SetupTest() {
	s.shoe = New(nil)
}

func TestShoeTestSuite(t *testing.T) {
	suite.Run(t, new(ShoeTestSuite))
}

func (s *ShoeTestSuite) TestEpochCoversAllPairsExactlyOnce() {
	seen := make(map[[2]int]int)

	for i := 0; i < pairsPerEpoch; i++ {
		dice1, dice2 := s.shoe.DrawPair()
		s.GreaterOrEqual(dice1, 1)
		s.LessOrEqual(dice1, 6)
		s.GreaterOrEqual(dice2, 1)
		s.LessOrEqual(dice2, 6)
		seen[[2]int{dice1, dice2}]++
	}

	s.Len(seen, pairsPerEpoch)
	for pair, count := range seen {
		s.Equalf(1, count, "pair %v drawn %d times in one epoch", pair, count)
	}
}

func (s *ShoeTestSuite) TestEpochFaceMarginals() {
	// Across both dice of a full epoch, each face appears 12 times.
	faces := make(map[int]int)

	for i := 0; i < pairsPerEpoch; i++ {
		dice1, dice2 := s.shoe.DrawPair()
		faces[dice1]++
		faces[dice2]++
	}

	for face := 1; face <= 6; face++ {
		s.Equal(12, faces[face])
	}
}

func (s *ShoeTestSuite) TestRefillsAfterExhaustion() {
	for i := 0; i < pairsPerEpoch; i++ {
		s.shoe.DrawPair()
	}
	s.Equal(0, s.shoe.Remaining())

	// The next draw starts a fresh epoch.
	dice1, dice2 := s.shoe.DrawPair()
	s.GreaterOrEqual(dice1, 1)
	s.LessOrEqual(dice1, 6)
	s.GreaterOrEqual(dice2, 1)
	s.LessOrEqual(dice2, 6)
	s.Equal(pairsPerEpoch-1, s.shoe.Remaining())

	seen := map[[2]int]bool{{dice1, dice2}: true}
	for i := 0; i < pairsPerEpoch-1; i++ {
		a, b := s.shoe.DrawPair()
		s.False(seen[[2]int{a, b}], "pair repeated within an epoch")
		seen[[2]int{a, b}] = true
	}
}
