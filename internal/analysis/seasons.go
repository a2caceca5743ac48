// analysis/seasons.go - Species and seasonal sales breakdowns.
package analysis

import (
	"sort"

	"aquadash/internal/models"
)

// SpeciesStats summarizes one product line's performance across the year.
type SpeciesStats struct {
	Name         string  `json:"name"`
	TotalSold    float64 `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
	AvgPrice     float64 `json:"avgPrice"`
	WeeklyAvg    float64 `json:"weeklyAvg"`
}

// SpeciesBreakdown ranks the three product lines by revenue, best first.
// AvgPrice is the plain mean of the listed price over every week, whether or
// not anything sold that week. Ties keep encounter order (guppies, plants,
// shrimp).
func SpeciesBreakdown(sales []models.WeeklySalesRecord) []SpeciesStats {
	products := []struct {
		name string
		pick func(models.WeeklySalesRecord) *models.ProductSales
	}{
		{"Guppies", func(w models.WeeklySalesRecord) *models.ProductSales { return w.Guppies }},
		{"Plants", func(w models.WeeklySalesRecord) *models.ProductSales { return w.Plants }},
		{"Shrimp", func(w models.WeeklySalesRecord) *models.ProductSales { return w.Shrimp }},
	}

	stats := make([]SpeciesStats, 0, len(products))
	for _, product := range products {
		s := SpeciesStats{Name: product.name}
		for _, week := range sales {
			if p := product.pick(week); p != nil {
				s.TotalSold += p.Quantity
				s.TotalRevenue += p.Quantity * p.Price
				s.AvgPrice += p.Price
			}
		}
		if n := len(sales); n > 0 {
			s.AvgPrice /= float64(n)
			s.WeeklyAvg = s.TotalSold / float64(n)
		}
		stats = append(stats, s)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalRevenue > stats[j].TotalRevenue
	})
	return stats
}

// seasonWeeks are fixed hand-assigned week indices, 13 per season. Winter
// wraps from the end of the year back through the first nine weeks. This
// partition is independent of the month series.
var seasonWeeks = []struct {
	Name  string
	Weeks [13]int
}{
	{"Spring", [13]int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}},
	{"Summer", [13]int{22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34}},
	{"Fall", [13]int{35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47}},
	{"Winter", [13]int{48, 49, 50, 51, 0, 1, 2, 3, 4, 5, 6, 7, 8}},
}

// SeasonStats summarizes one season's revenue.
type SeasonStats struct {
	Name         string  `json:"name"`
	Revenue      float64 `json:"revenue"`
	AvgWeekly    float64 `json:"avgWeekly"`
	AboveAverage bool    `json:"aboveAverage"`
}

// SeasonalBreakdown sums revenue over each season's week set. A season is
// flagged above average when its weekly average beats the overall weekly
// average.
func SeasonalBreakdown(sales []models.WeeklySalesRecord) []SeasonStats {
	annualWeekly := AnnualRevenue(sales) / 52

	out := make([]SeasonStats, 0, len(seasonWeeks))
	for _, season := range seasonWeeks {
		var revenue float64
		for _, idx := range season.Weeks {
			if idx >= 0 && idx < len(sales) {
				revenue += WeeklyRevenue(sales[idx])
			}
		}
		avg := revenue / float64(len(season.Weeks))
		out = append(out, SeasonStats{
			Name:         season.Name,
			Revenue:      revenue,
			AvgWeekly:    avg,
			AboveAverage: avg > annualWeekly,
		})
	}
	return out
}
