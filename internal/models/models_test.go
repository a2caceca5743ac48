package models

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ID
		wantErr bool
	}{
		{"uuid string", `"0b849a1c-4e2f-4e3f-9c75-4a1d1d2f8a33"`, "0b849a1c-4e2f-4e3f-9c75-4a1d1d2f8a33", false},
		{"timestamp number", `1727475632000`, "1727475632000", false},
		{"small number", `7`, "7", false},
		{"fractional number", `3.5`, "3.5", false},
		{"not an id", `true`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ID
			err := json.Unmarshal([]byte(tt.raw), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name           string
		totalPurchases float64
		want           LoyaltyTier
	}{
		{"zero", 0, TierBronze},
		{"just under silver", 199.99, TierBronze},
		{"silver boundary", 200, TierSilver},
		{"just under gold", 499.99, TierSilver},
		{"gold boundary", 500, TierGold},
		{"well past gold", 1250.75, TierGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.totalPurchases); got != tt.want {
				t.Errorf("TierFor(%v) = %s, want %s", tt.totalPurchases, got, tt.want)
			}
		})
	}
}

func TestEquipmentItemLineTotal(t *testing.T) {
	item := EquipmentItem{Name: "Tanks", Quantity: 4, UnitPrice: 10.50, Needed: true}
	if got := item.LineTotal(); got != 42.0 {
		t.Errorf("LineTotal() = %v, want 42.0", got)
	}

	item.Needed = false
	if got := item.LineTotal(); got != 0 {
		t.Errorf("LineTotal() with needed=false = %v, want 0", got)
	}
}

func TestOperatingCostAnnualTotal(t *testing.T) {
	var c OperatingCost
	for i := range c.Monthly {
		c.Monthly[i] = 25.0
	}
	if got := c.AnnualTotal(); got != 300.0 {
		t.Errorf("AnnualTotal() = %v, want 300.0", got)
	}
}

func TestMarketPricePriceGap(t *testing.T) {
	m := MarketPrice{YourPrice: 0.80, MarketPrice: 1.20}
	if got := m.PriceGap(); got-0.40 > 1e-9 || 0.40-got > 1e-9 {
		t.Errorf("PriceGap() = %v, want 0.40", got)
	}
}

func TestPlantItemProfitPerUnit(t *testing.T) {
	p := PlantItem{PurchasePrice: 0.50, SellPrice: 1.25}
	if got := p.ProfitPerUnit(); got != 0.75 {
		t.Errorf("ProfitPerUnit() = %v, want 0.75", got)
	}
}

func TestPlantNameDanglingReference(t *testing.T) {
	plants := []PlantItem{{ID: "a", Name: "Java Fern"}}

	if got := PlantName(plants, "a"); got != "Java Fern" {
		t.Errorf("PlantName existing = %q, want Java Fern", got)
	}
	if got := PlantName(plants, "deleted"); got != UnknownPlantName {
		t.Errorf("PlantName dangling = %q, want %q", got, UnknownPlantName)
	}
	if got := PlantName(nil, "a"); got != UnknownPlantName {
		t.Errorf("PlantName empty inventory = %q, want %q", got, UnknownPlantName)
	}
}
