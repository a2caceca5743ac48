// models/models.go - Data models for AquaDash
package models

import "encoding/json"

// ID is a record identifier. New records get uuid strings, but documents
// written by older exports carry millisecond-timestamp numbers in the id
// fields; those decode to their decimal string form so old backups still
// import.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// LoyaltyTier classifies a customer by cumulative purchase total.
type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "Bronze"
	TierSilver LoyaltyTier = "Silver"
	TierGold   LoyaltyTier = "Gold"
)

// TierFor derives the loyalty tier from a customer's total purchases.
func TierFor(totalPurchases float64) LoyaltyTier {
	switch {
	case totalPurchases >= 500:
		return TierGold
	case totalPurchases >= 200:
		return TierSilver
	default:
		return TierBronze
	}
}

// BreedingStatus tracks where a pair is in its cycle.
type BreedingStatus string

const (
	BreedingPlanning  BreedingStatus = "planning"
	BreedingActive    BreedingStatus = "breeding"
	BreedingPregnant  BreedingStatus = "pregnant"
	BreedingBorn      BreedingStatus = "born"
	BreedingCompleted BreedingStatus = "completed"
)

// EquipmentItem is one row of the setup-cost sheet. Rows are addressed by
// position, not id; display order is meaningful.
type EquipmentItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	Needed    bool    `json:"needed"`
}

// LineTotal is the item's contribution to the initial investment. Items not
// marked needed contribute nothing regardless of quantity.
func (e EquipmentItem) LineTotal() float64 {
	if !e.Needed {
		return 0
	}
	return float64(e.Quantity) * e.UnitPrice
}

// OperatingCost is one recurring cost row with one slot per calendar month.
// The fixed-size array keeps the twelve-slot invariant by construction.
type OperatingCost struct {
	Name    string      `json:"name"`
	Monthly [12]float64 `json:"costs"`
}

// AnnualTotal sums the row across all twelve months.
func (c OperatingCost) AnnualTotal() float64 {
	var sum float64
	for _, m := range c.Monthly {
		sum += m
	}
	return sum
}

// ProductSales is quantity and unit price for one product in one week.
type ProductSales struct {
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// WeeklySalesRecord holds one week of sales across the three fixed product
// lines. Sub-records are pointers so an absent product is representable;
// revenue math treats a missing product as zero.
type WeeklySalesRecord struct {
	Week    int           `json:"week"`
	Guppies *ProductSales `json:"guppies"`
	Plants  *ProductSales `json:"plants"`
	Shrimp  *ProductSales `json:"shrimp"`
}

// Customer is a tracked buyer. LoyaltyTier is derived from TotalPurchases and
// recomputed only when that field is edited.
type Customer struct {
	ID             ID          `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	TotalPurchases float64     `json:"totalPurchases"`
	VisitCount     int         `json:"visitCount"`
	LoyaltyTier    LoyaltyTier `json:"loyaltyTier"`
	IsActive       bool        `json:"isActive"`
}

// BreedingPair tracks one breeding effort. Dates are ISO yyyy-mm-dd strings.
type BreedingPair struct {
	ID            ID             `json:"id"`
	PairName      string         `json:"pairName"`
	Species       string         `json:"species"`
	TankNumber    string         `json:"tankNumber"`
	BreedingDate  string         `json:"breedingDate"`
	ExpectedBirth string         `json:"expectedBirth"`
	FryCount      int            `json:"fryCount"`
	Status        BreedingStatus `json:"status"`
}

// Task is a recurring maintenance task.
type Task struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Frequency string `json:"frequency"`
	NextDue   string `json:"nextDue"`
	Completed bool   `json:"completed"`
}

// WaterLog is one water-quality measurement for a tank.
type WaterLog struct {
	ID          ID      `json:"id"`
	Date        string  `json:"date"`
	TankNumber  string  `json:"tankNumber"`
	PH          float64 `json:"ph"`
	Temperature float64 `json:"temperature"`
	Ammonia     float64 `json:"ammonia"`
	Nitrite     float64 `json:"nitrite"`
	Nitrate     float64 `json:"nitrate"`
	Notes       string  `json:"notes"`
}

// MarketPrice compares our price against a competitor's for one species/size.
type MarketPrice struct {
	ID          ID      `json:"id"`
	Species     string  `json:"species"`
	Size        string  `json:"size"`
	YourPrice   float64 `json:"currentPrice"`
	MarketPrice float64 `json:"marketPrice"`
	Competitor  string  `json:"competitor"`
}

// PriceGap is how far under market we are selling. Negative means we are
// priced above market.
func (m MarketPrice) PriceGap() float64 {
	return m.MarketPrice - m.YourPrice
}
