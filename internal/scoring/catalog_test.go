package scoring

import (
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/stretchr/testify/suite"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = NewCatalog(nil)
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) roll(faces ...int) models.Roll {
	roll, err := models.NewRoll(faces...)
	s.Require().NoError(err)
	return roll
}

func (s *CatalogTestSuite) TestCatalogOrder() {
	want := []string{
		CategoryOnes, CategoryTwos, CategoryThrees, CategoryFours,
		CategoryFives, CategorySixes, CategoryThreeOfAKind,
		CategoryFourOfAKind, CategoryFullHouse, CategorySmallStraight,
		CategoryLargeStraight, CategoryYahtzee, CategoryChance,
	}

	categories := s.catalog.Categories()
	s.Require().Len(categories, len(want))
	for i, category := range categories {
		s.Equal(want[i], category.ID)
	}
}

func (s *CatalogTestSuite) TestCategorySections() {
	upper := []string{
		CategoryOnes, CategoryTwos, CategoryThrees,
		CategoryFours, CategoryFives, CategorySixes,
	}
	for _, id := range upper {
		category, ok := s.catalog.Category(id)
		s.Require().True(ok)
		s.Equal(SectionUpper, category.Section)
	}

	lower := []string{
		CategoryThreeOfAKind, CategoryFourOfAKind, CategoryFullHouse,
		CategorySmallStraight, CategoryLargeStraight, CategoryYahtzee,
		CategoryChance,
	}
	for _, id := range lower {
		category, ok := s.catalog.Category(id)
		s.Require().True(ok)
		s.Equal(SectionLower, category.Section)
	}
}

func (s *CatalogTestSuite) TestScore() {
	testCases := []struct {
		name       string
		faces      []int
		categoryID string
		want       int
	}{
		{name: "ones counts only ones", faces: []int{1, 1, 3, 4, 5}, categoryID: CategoryOnes, want: 2},
		{name: "twos with no twos", faces: []int{1, 1, 3, 4, 5}, categoryID: CategoryTwos, want: 0},
		{name: "threes on yahtzee of threes", faces: []int{3, 3, 3, 3, 3}, categoryID: CategoryThrees, want: 15},
		{name: "sixes on yahtzee of sixes", faces: []int{6, 6, 6, 6, 6}, categoryID: CategorySixes, want: 30},
		{name: "three of a kind sums all dice", faces: []int{4, 4, 4, 1, 2}, categoryID: CategoryThreeOfAKind, want: 15},
		{name: "three of a kind satisfied by four", faces: []int{4, 4, 4, 4, 2}, categoryID: CategoryThreeOfAKind, want: 18},
		{name: "three of a kind absent", faces: []int{4, 4, 3, 1, 2}, categoryID: CategoryThreeOfAKind, want: 0},
		{name: "four of a kind sums all dice", faces: []int{2, 2, 2, 2, 5}, categoryID: CategoryFourOfAKind, want: 13},
		{name: "four of a kind satisfied by five", faces: []int{2, 2, 2, 2, 2}, categoryID: CategoryFourOfAKind, want: 10},
		{name: "four of a kind absent", faces: []int{2, 2, 2, 3, 5}, categoryID: CategoryFourOfAKind, want: 0},
		{name: "full house", faces: []int{2, 2, 5, 5, 5}, categoryID: CategoryFullHouse, want: 25},
		{name: "full house absent", faces: []int{2, 2, 4, 5, 5}, categoryID: CategoryFullHouse, want: 0},
		{name: "five of a kind is not a strict full house", faces: []int{3, 3, 3, 3, 3}, categoryID: CategoryFullHouse, want: 0},
		{name: "small straight low run", faces: []int{1, 2, 3, 4, 6}, categoryID: CategorySmallStraight, want: 30},
		{name: "small straight mid run with pair", faces: []int{2, 3, 4, 5, 5}, categoryID: CategorySmallStraight, want: 30},
		{name: "small straight high run", faces: []int{3, 4, 5, 6, 1}, categoryID: CategorySmallStraight, want: 30},
		{name: "small straight satisfied by large", faces: []int{1, 2, 3, 4, 5}, categoryID: CategorySmallStraight, want: 30},
		{name: "small straight absent", faces: []int{1, 2, 3, 5, 6}, categoryID: CategorySmallStraight, want: 0},
		{name: "large straight low", faces: []int{1, 2, 3, 4, 5}, categoryID: CategoryLargeStraight, want: 40},
		{name: "large straight high", faces: []int{2, 3, 4, 5, 6}, categoryID: CategoryLargeStraight, want: 40},
		{name: "large straight absent", faces: []int{1, 2, 3, 4, 4}, categoryID: CategoryLargeStraight, want: 0},
		{name: "yahtzee", faces: []int{5, 5, 5, 5, 5}, categoryID: CategoryYahtzee, want: 50},
		{name: "yahtzee absent", faces: []int{5, 5, 5, 5, 4}, categoryID: CategoryYahtzee, want: 0},
		{name: "chance sums everything", faces: []int{1, 3, 3, 5, 6}, categoryID: CategoryChance, want: 18},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.catalog.Score(s.roll(tc.faces...), tc.categoryID)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *CatalogTestSuite) TestScoreIsIdempotent() {
	roll := s.roll(3, 3, 3, 3, 3)

	first, err := s.catalog.Score(roll, CategoryYahtzee)
	s.Require().NoError(err)
	second, err := s.catalog.Score(roll, CategoryYahtzee)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *CatalogTestSuite) TestScoreUnknownCategory() {
	_, err := s.catalog.Score(s.roll(1, 2, 3, 4, 5), "river_flush")
	s.ErrorIs(err, ErrUnknownCategory)
}

func (s *CatalogTestSuite) TestScoreInvalidRoll() {
	_, err := s.catalog.Score(models.Roll{}, CategoryChance)
	s.ErrorIs(err, ErrInvalidRoll)
}

func (s *CatalogTestSuite) TestFullHouseHouseRuleVariant() {
	catalog := NewCatalog(&Config{
		FullHouseAllowsFiveOfAKind: true,
	})

	got, err := catalog.Score(s.roll(3, 3, 3, 3, 3), CategoryFullHouse)
	s.Require().NoError(err)
	s.Equal(25, got)

	// Regular full houses still qualify
	got, err = catalog.Score(s.roll(2, 2, 3, 3, 3), CategoryFullHouse)
	s.Require().NoError(err)
	s.Equal(25, got)
}

func (s *CatalogTestSuite) TestConfiguredConstants() {
	catalog := NewCatalog(&Config{
		YahtzeeScore:       100,
		LargeStraightScore: 45,
	})

	got, err := catalog.Score(s.roll(4, 4, 4, 4, 4), CategoryYahtzee)
	s.Require().NoError(err)
	s.Equal(100, got)

	got, err = catalog.Score(s.roll(2, 3, 4, 5, 6), CategoryLargeStraight)
	s.Require().NoError(err)
	s.Equal(45, got)

	// Unset values keep their defaults
	got, err = catalog.Score(s.roll(2, 2, 5, 5, 5), CategoryFullHouse)
	s.Require().NoError(err)
	s.Equal(25, got)
}

func (s *CatalogTestSuite) TestEligibility() {
	straight := s.roll(1, 2, 3, 4, 5)

	small, ok := s.catalog.Category(CategorySmallStraight)
	s.Require().True(ok)
	s.True(small.Eligible(straight))

	fullHouse, ok := s.catalog.Category(CategoryFullHouse)
	s.Require().True(ok)
	s.False(fullHouse.Eligible(straight))

	// Chance and the face categories accept any roll
	chance, ok := s.catalog.Category(CategoryChance)
	s.Require().True(ok)
	s.True(chance.Eligible(straight))

	ones, ok := s.catalog.Category(CategoryOnes)
	s.Require().True(ok)
	s.True(ones.Eligible(s.roll(6, 6, 6, 6, 6)))
}

func (s *CatalogTestSuite) TestBothStraightsAwardableFromOneRoll() {
	// [1,2,3,4,5] satisfies both straight patterns independently
	straight := s.roll(1, 2, 3, 4, 5)

	small, err := s.catalog.Score(straight, CategorySmallStraight)
	s.Require().NoError(err)
	s.Equal(30, small)

	large, err := s.catalog.Score(straight, CategoryLargeStraight)
	s.Require().NoError(err)
	s.Equal(40, large)
}
