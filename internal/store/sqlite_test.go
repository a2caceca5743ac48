package store

import (
	"path/filepath"
	"testing"

	"aquadash/internal/models"
)

func openTestSlots(t *testing.T) *SQLiteSlots {
	t.Helper()
	slots, err := OpenSlots(filepath.Join(t.TempDir(), "slots.db"), nil)
	if err != nil {
		t.Fatalf("open slots: %v", err)
	}
	t.Cleanup(func() { _ = slots.Close() })
	return slots
}

func TestSlotsRoundTrip(t *testing.T) {
	slots := openTestSlots(t)

	in := []models.EquipmentItem{
		{Name: "Tanks", Quantity: 4, UnitPrice: 10.50, Needed: true},
		{Name: "Spare Heater", Quantity: 1, UnitPrice: 12.00, Needed: false},
	}
	slots.Save(slotEquipment, in)

	var out []models.EquipmentItem
	if !slots.Load(slotEquipment, &out) {
		t.Fatal("Load reported missing slot after Save")
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestSlotsSaveOverwrites(t *testing.T) {
	slots := openTestSlots(t)

	slots.Save(slotTasks, []models.Task{{ID: "a", Title: "first"}})
	slots.Save(slotTasks, []models.Task{{ID: "b", Title: "second"}})

	var out []models.Task
	if !slots.Load(slotTasks, &out) {
		t.Fatal("Load failed")
	}
	if len(out) != 1 || out[0].ID != "b" {
		t.Errorf("last write should win, got %+v", out)
	}
}

func TestSlotsLoadMissing(t *testing.T) {
	slots := openTestSlots(t)

	var out []models.Task
	if slots.Load("never-written", &out) {
		t.Error("Load reported success for a missing slot")
	}
}

func TestSlotsLoadCorrupt(t *testing.T) {
	slots := openTestSlots(t)

	if _, err := slots.db.Exec(
		`INSERT INTO slots (key, value) VALUES (?, ?)`, slotCustomers, `{broken`); err != nil {
		t.Fatalf("insert corrupt value: %v", err)
	}

	var out []models.Customer
	if slots.Load(slotCustomers, &out) {
		t.Error("Load reported success for a corrupt slot")
	}
}

func TestSlotsPersistAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slots.db")

	first, err := OpenSlots(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	first.Save(slotMarketPrices, []models.MarketPrice{{ID: "m1", Species: "Guppy"}})
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSlots(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	var out []models.MarketPrice
	if !second.Load(slotMarketPrices, &out) {
		t.Fatal("Load failed after reopen")
	}
	if len(out) != 1 || out[0].Species != "Guppy" {
		t.Errorf("unexpected reloaded value: %+v", out)
	}
}
