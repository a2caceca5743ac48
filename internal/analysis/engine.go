// analysis/engine.go - Derived financial metrics over the raw collections.
// Every function here is pure: no mutation, no caching, recomputed on demand.
package analysis

import (
	"math"

	"aquadash/internal/models"
)

// GrowthFactor is the flat projection heuristic applied to annual profit.
const GrowthFactor = 1.1

// monthNames indexes 0-11.
var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// EquipmentTotal is the initial investment: needed items only.
func EquipmentTotal(equipment []models.EquipmentItem) float64 {
	var total float64
	for _, item := range equipment {
		total += item.LineTotal()
	}
	return total
}

// MonthlyOperatingTotal sums one month's column across all cost rows.
// Out-of-range months yield 0 rather than panicking.
func MonthlyOperatingTotal(costs []models.OperatingCost, month int) float64 {
	if month < 0 || month >= 12 {
		return 0
	}
	var total float64
	for _, c := range costs {
		total += c.Monthly[month]
	}
	return total
}

// WeeklyRevenue is the week's take across the three product lines. A week
// missing any product sub-record counts as zero; this is a business rule, not
// an error path.
func WeeklyRevenue(week models.WeeklySalesRecord) float64 {
	if week.Guppies == nil || week.Plants == nil || week.Shrimp == nil {
		return 0
	}
	return week.Guppies.Quantity*week.Guppies.Price +
		week.Plants.Quantity*week.Plants.Price +
		week.Shrimp.Quantity*week.Shrimp.Price
}

// AnnualRevenue sums WeeklyRevenue over the whole sales grid.
func AnnualRevenue(sales []models.WeeklySalesRecord) float64 {
	var total float64
	for _, week := range sales {
		total += WeeklyRevenue(week)
	}
	return total
}

// CashFlow is the run-rate summary shown on the financial tab.
type CashFlow struct {
	MonthlyRevenue       float64 `json:"monthlyRevenue"`
	MonthlyOperatingCost float64 `json:"monthlyOperatingCost"`
	MonthlyProfit        float64 `json:"monthlyProfit"`
	BreakEvenMonths      int     `json:"breakEvenMonths"`
}

// ComputeCashFlow derives monthly revenue, cost, profit and break-even time.
// The monthly operating cost is summed per row then averaged. When profit is
// zero or negative the break-even divisor falls back to 1, so the figure
// degrades to the equipment total expressed in months.
func ComputeCashFlow(equipment []models.EquipmentItem, costs []models.OperatingCost, sales []models.WeeklySalesRecord) CashFlow {
	monthlyRevenue := AnnualRevenue(sales) / 12

	var monthlyOperatingCost float64
	for _, c := range costs {
		monthlyOperatingCost += c.AnnualTotal() / 12
	}

	monthlyProfit := monthlyRevenue - monthlyOperatingCost

	divisor := monthlyProfit
	if divisor <= 0 {
		divisor = 1
	}

	return CashFlow{
		MonthlyRevenue:       monthlyRevenue,
		MonthlyOperatingCost: monthlyOperatingCost,
		MonthlyProfit:        monthlyProfit,
		BreakEvenMonths:      int(math.Ceil(EquipmentTotal(equipment) / divisor)),
	}
}

// MonthFigures is one month's slice of the profit series.
type MonthFigures struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	Profit  float64 `json:"profit"`
}

// MonthlySeries partitions the 52-week grid into 12 months by the fractional
// 4.33 weeks-per-month rule: month i covers week indices
// floor(i*4.33)..floor((i+1)*4.33). The flooring gives uneven month sizes and
// leaves the final week index out entirely; keep the partition as-is for
// parity with the reporting the operation was built around.
func MonthlySeries(sales []models.WeeklySalesRecord, costs []models.OperatingCost) []MonthFigures {
	series := make([]MonthFigures, 0, 12)
	for i := 0; i < 12; i++ {
		start := int(math.Floor(float64(i) * 4.33))
		end := int(math.Floor(float64(i+1) * 4.33))
		if start > len(sales) {
			start = len(sales)
		}
		if end > len(sales) {
			end = len(sales)
		}

		var revenue float64
		for _, week := range sales[start:end] {
			revenue += WeeklyRevenue(week)
		}
		monthCosts := MonthlyOperatingTotal(costs, i)

		series = append(series, MonthFigures{
			Month:   monthNames[i],
			Revenue: revenue,
			Costs:   monthCosts,
			Profit:  revenue - monthCosts,
		})
	}
	return series
}

// QuarterlySeries folds the monthly profit series into four quarters.
func QuarterlySeries(months []MonthFigures) [4]float64 {
	var quarters [4]float64
	for i, m := range months {
		if i >= 12 {
			break
		}
		quarters[i/3] += m.Profit
	}
	return quarters
}

// BestMonth returns the index of the most profitable month. Ties resolve to
// the earliest month (first-wins reduction).
func BestMonth(months []MonthFigures) int {
	if len(months) == 0 {
		return 0
	}
	best := 0
	for i, m := range months {
		if m.Profit > months[best].Profit {
			best = i
		}
	}
	return best
}

// AnnualProjection is total profit scaled by the flat growth heuristic.
func AnnualProjection(months []MonthFigures) float64 {
	var total float64
	for _, m := range months {
		total += m.Profit
	}
	return total * GrowthFactor
}
