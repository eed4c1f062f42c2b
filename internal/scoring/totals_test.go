package scoring

import (
	"testing"
	"time"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/stretchr/testify/suite"
)

type TotalsTestSuite struct {
	suite.Suite
	catalog *Catalog
	sheet   *models.Scoresheet
}

func (s *TotalsTestSuite) SetupTest() {
	s.catalog = NewCatalog(nil)
	s.sheet = models.NewScoresheet("test-sheet-id", "test-player-id", time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
}

func TestTotalsTestSuite(t *testing.T) {
	suite.Run(t, new(TotalsTestSuite))
}

func (s *TotalsTestSuite) fill(categoryID string, score int) {
	s.sheet.Record(&models.ScoreEntry{
		CategoryID: categoryID,
		Score:      score,
	})
}

func (s *TotalsTestSuite) TestEmptySheet() {
	totals := s.catalog.Totals(s.sheet)
	s.Equal(Totals{}, totals)
}

func (s *TotalsTestSuite) TestUpperBonusAtThreshold() {
	// Three of each face is exactly 63
	s.fill(CategoryOnes, 3)
	s.fill(CategoryTwos, 6)
	s.fill(CategoryThrees, 9)
	s.fill(CategoryFours, 12)
	s.fill(CategoryFives, 15)
	s.fill(CategorySixes, 18)

	totals := s.catalog.Totals(s.sheet)
	s.Equal(63, totals.UpperSubtotal)
	s.Equal(35, totals.UpperBonus)
	s.Equal(98, totals.GrandTotal)
}

func (s *TotalsTestSuite) TestUpperBonusJustBelowThreshold() {
	s.fill(CategoryOnes, 2)
	s.fill(CategoryTwos, 6)
	s.fill(CategoryThrees, 9)
	s.fill(CategoryFours, 12)
	s.fill(CategoryFives, 15)
	s.fill(CategorySixes, 18)

	totals := s.catalog.Totals(s.sheet)
	s.Equal(62, totals.UpperSubtotal)
	s.Equal(0, totals.UpperBonus)
}

func (s *TotalsTestSuite) TestLowerSubtotalAndYahtzeeBonus() {
	s.fill(CategoryThreeOfAKind, 20)
	s.fill(CategoryFullHouse, 25)
	s.fill(CategoryYahtzee, 50)
	s.sheet.BonusYahtzees = 2

	totals := s.catalog.Totals(s.sheet)
	s.Equal(0, totals.UpperSubtotal)
	s.Equal(95, totals.LowerSubtotal)
	s.Equal(200, totals.YahtzeeBonusTotal)
	s.Equal(295, totals.GrandTotal)
}

func (s *TotalsTestSuite) TestCommitRoundTrip() {
	roll, err := models.NewRoll(2, 2, 5, 5, 5)
	s.Require().NoError(err)

	before := s.catalog.Totals(s.sheet)

	entry, _, err := s.catalog.CommitScore(s.sheet, roll, CategoryFullHouse)
	s.Require().NoError(err)

	after := s.catalog.Totals(s.sheet)
	s.Equal(before.GrandTotal+entry.Score, after.GrandTotal)
}

func (s *TotalsTestSuite) TestBonusCommitRaisesGrandTotalBySumAndBonus() {
	s.fill(CategoryYahtzee, 50)
	before := s.catalog.Totals(s.sheet)

	roll, err := models.NewRoll(6, 6, 6, 6, 6)
	s.Require().NoError(err)

	entry, bonus, err := s.catalog.CommitScore(s.sheet, roll, CategorySixes)
	s.Require().NoError(err)
	s.Require().True(bonus)

	after := s.catalog.Totals(s.sheet)
	s.Equal(before.GrandTotal+entry.Score+DefaultYahtzeeBonusScore, after.GrandTotal)
}

func (s *TotalsTestSuite) TestConfiguredBonusValues() {
	catalog := NewCatalog(&Config{
		UpperBonusThreshold: 50,
		UpperBonusScore:     20,
		YahtzeeBonusScore:   50,
	})

	s.fill(CategoryFives, 25)
	s.fill(CategorySixes, 30)
	s.sheet.BonusYahtzees = 1

	totals := catalog.Totals(s.sheet)
	s.Equal(55, totals.UpperSubtotal)
	s.Equal(20, totals.UpperBonus)
	s.Equal(50, totals.YahtzeeBonusTotal)
	s.Equal(125, totals.GrandTotal)
}
