// store/state.go - Application state and default seed data
package store

import (
	"time"

	"github.com/google/uuid"

	"aquadash/internal/models"
)

// Slot keys, one per collection. These are the durable storage keys and the
// top-level field names of the backup document.
const (
	slotEquipment      = "equipment"
	slotOperatingCosts = "operatingCosts"
	slotWeeklySales    = "weeklySales"
	slotCustomers      = "customers"
	slotBreedingPairs  = "breedingPairs"
	slotTasks          = "tasks"
	slotWaterLogs      = "waterLogs"
	slotMarketPrices   = "marketPrices"
	slotPlants         = "plants"
	slotPlantCare      = "plantCareSchedule"
	slotPropagation    = "plantPropagation"
)

// State holds every record collection. It is the single owner of all
// application data; nothing else holds references into it.
type State struct {
	Equipment      []models.EquipmentItem      `json:"equipment"`
	OperatingCosts []models.OperatingCost      `json:"operatingCosts"`
	WeeklySales    []models.WeeklySalesRecord  `json:"weeklySales"`
	Customers      []models.Customer           `json:"customers"`
	BreedingPairs  []models.BreedingPair       `json:"breedingPairs"`
	Tasks          []models.Task               `json:"tasks"`
	WaterLogs      []models.WaterLog           `json:"waterLogs"`
	MarketPrices   []models.MarketPrice        `json:"marketPrices"`
	Plants         []models.PlantItem          `json:"plants"`
	PlantCare      []models.PlantCareTask      `json:"plantCareSchedule"`
	Propagation    []models.PropagationProject `json:"plantPropagation"`
}

func newID() models.ID {
	return models.ID(uuid.NewString())
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func defaultEquipment() []models.EquipmentItem {
	return []models.EquipmentItem{
		{Name: "Tanks", Quantity: 4, UnitPrice: 10.50, Needed: true},
		{Name: "Heaters 100W", Quantity: 4, UnitPrice: 12.00, Needed: true},
		{Name: "Water Test Kit", Quantity: 1, UnitPrice: 20.00, Needed: true},
		{Name: "LED Light Strips", Quantity: 4, UnitPrice: 12.00, Needed: true},
		{Name: "Fish Food", Quantity: 1, UnitPrice: 50.00, Needed: true},
		{Name: "Breeding Fish Stock", Quantity: 1, UnitPrice: 100.00, Needed: true},
	}
}

func flatYear(monthly float64) [12]float64 {
	var costs [12]float64
	for i := range costs {
		costs[i] = monthly
	}
	return costs
}

func defaultOperatingCosts() []models.OperatingCost {
	return []models.OperatingCost{
		{Name: "Electricity", Monthly: flatYear(25.00)},
		{Name: "Fish Food", Monthly: flatYear(8.00)},
		{Name: "Water Conditioner", Monthly: flatYear(3.00)},
		{Name: "Transportation", Monthly: flatYear(12.00)},
	}
}

func defaultWeeklySales() []models.WeeklySalesRecord {
	sales := make([]models.WeeklySalesRecord, 52)
	for i := range sales {
		sales[i] = models.WeeklySalesRecord{
			Week:    i + 1,
			Guppies: &models.ProductSales{Quantity: 0, Price: 0.80},
			Plants:  &models.ProductSales{Quantity: 0, Price: 1.00},
			Shrimp:  &models.ProductSales{Quantity: 0, Price: 1.00},
		}
	}
	return sales
}

func defaultCustomers() []models.Customer {
	return []models.Customer{{
		ID:             newID(),
		Name:           "John Smith",
		Email:          "john.smith@email.com",
		Phone:          "+1-555-0123",
		TotalPurchases: 245.50,
		VisitCount:     8,
		LoyaltyTier:    models.TierSilver,
		IsActive:       true,
	}}
}

func defaultBreedingPairs() []models.BreedingPair {
	return []models.BreedingPair{{
		ID:            newID(),
		PairName:      "Blue Guppy Pair A",
		Species:       "Guppy",
		TankNumber:    "Tank 1",
		BreedingDate:  "2024-09-01",
		ExpectedBirth: "2024-09-29",
		FryCount:      0,
		Status:        models.BreedingActive,
	}}
}

func defaultTasks() []models.Task {
	return []models.Task{{
		ID:        newID(),
		Title:     "Feed Fish - Morning",
		Type:      "feeding",
		Frequency: "daily",
		NextDue:   today(),
		Completed: false,
	}}
}

func defaultWaterLogs() []models.WaterLog {
	return []models.WaterLog{{
		ID:          newID(),
		Date:        "2024-09-28",
		TankNumber:  "Tank 1",
		PH:          7.2,
		Temperature: 24.5,
		Ammonia:     0.0,
		Nitrite:     0.0,
		Nitrate:     5.0,
		Notes:       "Water quality good",
	}}
}

func defaultMarketPrices() []models.MarketPrice {
	return []models.MarketPrice{{
		ID:          newID(),
		Species:     "Guppy",
		Size:        "Adult",
		YourPrice:   0.80,
		MarketPrice: 1.20,
		Competitor:  "Local Pet Store",
	}}
}

func defaultPlants() []models.PlantItem {
	return []models.PlantItem{{
		ID:              newID(),
		Name:            "Java Fern",
		Species:         "Microsorum pteropus",
		Quantity:        10,
		Location:        "Tank 2",
		PurchasePrice:   0.50,
		SellPrice:       1.00,
		Supplier:        "Local Pet Store",
		DateAcquired:    "2024-09-01",
		Condition:       models.ConditionHealthy,
		CareLevel:       models.CareEasy,
		Light:           models.LightLow,
		PropagationType: "rhizome division",
	}}
}
