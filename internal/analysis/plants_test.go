package analysis

import (
	"testing"

	"aquadash/internal/models"
)

func TestPlantFinancialSummary(t *testing.T) {
	plants := []models.PlantItem{
		{Name: "Java Fern", Quantity: 10, PurchasePrice: 0.50, SellPrice: 1.00},
		{Name: "Anubias", Quantity: 4, PurchasePrice: 2.00, SellPrice: 4.00},
	}

	f := PlantFinancialSummary(plants)
	approx(t, f.TotalInvestment, 13, "TotalInvestment")
	approx(t, f.PotentialRevenue, 26, "PotentialRevenue")
	approx(t, f.PotentialProfit, 13, "PotentialProfit")
	approx(t, f.AvgProfitMargin, 50, "AvgProfitMargin")
}

// A zero sell price contributes zero margin instead of dividing by zero.
func TestPlantFinancialSummaryZeroSellPrice(t *testing.T) {
	plants := []models.PlantItem{
		{Name: "Giveaway Moss", Quantity: 5, PurchasePrice: 1.00, SellPrice: 0},
		{Name: "Anubias", Quantity: 1, PurchasePrice: 2.00, SellPrice: 4.00},
	}

	f := PlantFinancialSummary(plants)
	approx(t, f.AvgProfitMargin, 25, "AvgProfitMargin with zero sell price")
}

func TestPlantFinancialSummaryEmpty(t *testing.T) {
	f := PlantFinancialSummary(nil)
	approx(t, f.TotalInvestment, 0, "TotalInvestment")
	approx(t, f.AvgProfitMargin, 0, "AvgProfitMargin")
}

func TestPlantHealthSummary(t *testing.T) {
	plants := []models.PlantItem{
		{Condition: models.ConditionExcellent},
		{Condition: models.ConditionHealthy},
		{Condition: models.ConditionFair},
		{Condition: models.ConditionPoor},
	}

	h := PlantHealthSummary(plants)
	if h.Healthy != 2 || h.Total != 4 {
		t.Errorf("healthy/total = %d/%d, want 2/4", h.Healthy, h.Total)
	}
	approx(t, h.Percent, 50, "Percent")

	empty := PlantHealthSummary(nil)
	if empty.Healthy != 0 || empty.Total != 0 || empty.Percent != 0 {
		t.Errorf("empty inventory = %+v, want zeros", empty)
	}
}

func TestCareComplexitySummary(t *testing.T) {
	plants := []models.PlantItem{
		{CareLevel: models.CareEasy},
		{CareLevel: models.CareModerate},
		{CareLevel: models.CareModerate},
		{CareLevel: models.CareHard},
		{CareLevel: models.CareExpert},
	}

	c := CareComplexitySummary(plants)
	if c.Easy != 1 || c.Moderate != 2 || c.Advanced != 2 {
		t.Errorf("buckets = %d/%d/%d, want 1/2/2", c.Easy, c.Moderate, c.Advanced)
	}
	// Moderate and advanced tie; the easier bucket wins.
	if c.MostCommon != "moderate" {
		t.Errorf("MostCommon = %q, want moderate", c.MostCommon)
	}
}

func TestCareComplexitySummaryTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		levels []models.CareLevel
		want   string
	}{
		{"empty inventory", nil, "easy"},
		{"three-way tie", []models.CareLevel{models.CareEasy, models.CareModerate, models.CareHard}, "easy"},
		{"advanced wins outright", []models.CareLevel{models.CareHard, models.CareExpert, models.CareEasy}, "advanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plants := make([]models.PlantItem, len(tt.levels))
			for i, level := range tt.levels {
				plants[i].CareLevel = level
			}
			if got := CareComplexitySummary(plants).MostCommon; got != tt.want {
				t.Errorf("MostCommon = %q, want %q", got, tt.want)
			}
		})
	}
}
