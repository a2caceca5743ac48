// analysis/plants.go - Plant inventory profitability, health and care stats.
package analysis

import "aquadash/internal/models"

// PlantFinancials summarizes the plant inventory as an investment.
type PlantFinancials struct {
	TotalInvestment  float64 `json:"totalInvestment"`
	PotentialRevenue float64 `json:"potentialRevenue"`
	PotentialProfit  float64 `json:"potentialProfit"`
	AvgProfitMargin  float64 `json:"avgProfitMargin"`
}

// PlantFinancialSummary totals purchase cost and potential sale value across
// the inventory. The margin average counts a zero sell price as a zero-margin
// plant rather than dividing by zero.
func PlantFinancialSummary(plants []models.PlantItem) PlantFinancials {
	var f PlantFinancials
	for _, p := range plants {
		f.TotalInvestment += float64(p.Quantity) * p.PurchasePrice
		f.PotentialRevenue += float64(p.Quantity) * p.SellPrice
		if p.SellPrice > 0 {
			f.AvgProfitMargin += (p.SellPrice - p.PurchasePrice) / p.SellPrice * 100
		}
	}
	f.PotentialProfit = f.PotentialRevenue - f.TotalInvestment
	if len(plants) > 0 {
		f.AvgProfitMargin /= float64(len(plants))
	}
	return f
}

// PlantHealth counts plants in good condition.
type PlantHealth struct {
	Healthy int     `json:"healthy"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// PlantHealthSummary treats excellent and healthy as good condition.
func PlantHealthSummary(plants []models.PlantItem) PlantHealth {
	h := PlantHealth{Total: len(plants)}
	for _, p := range plants {
		if p.Condition == models.ConditionExcellent || p.Condition == models.ConditionHealthy {
			h.Healthy++
		}
	}
	if h.Total > 0 {
		h.Percent = float64(h.Healthy) / float64(h.Total) * 100
	}
	return h
}

// CareComplexity buckets plants by care level. Hard and expert plants share
// the advanced bucket.
type CareComplexity struct {
	Easy       int    `json:"easy"`
	Moderate   int    `json:"moderate"`
	Advanced   int    `json:"advanced"`
	MostCommon string `json:"mostCommon"`
}

// CareComplexitySummary counts plants per bucket and names the largest one.
// On a tie the easier bucket wins: easy, then moderate, then advanced.
func CareComplexitySummary(plants []models.PlantItem) CareComplexity {
	var c CareComplexity
	for _, p := range plants {
		switch p.CareLevel {
		case models.CareEasy:
			c.Easy++
		case models.CareModerate:
			c.Moderate++
		case models.CareHard, models.CareExpert:
			c.Advanced++
		}
	}

	c.MostCommon = "easy"
	best := c.Easy
	if c.Moderate > best {
		c.MostCommon, best = "moderate", c.Moderate
	}
	if c.Advanced > best {
		c.MostCommon = "advanced"
	}
	return c
}
