// store/store.go - State ownership, persistence wiring and the
// position-addressed collections (equipment, operating costs, weekly sales).
package store

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"aquadash/internal/models"
)

// Slots is the durable key-value layer: one slot per collection. Load reports
// false when the slot is absent or corrupt so the caller can seed a default;
// Save is best-effort and must never surface an error to the user path.
type Slots interface {
	Load(key string, dest any) bool
	Save(key string, value any)
}

// Store owns the full application state. Mutations lock, run to completion
// and persist the touched slot before returning; derivations read a snapshot.
type Store struct {
	mu    sync.Mutex
	state State
	slots Slots
	log   *zap.Logger
}

// New creates a Store over the given slot layer.
func New(slots Slots, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{slots: slots, log: log}
}

// Load fills every collection from its slot, seeding defaults for any slot
// that is missing or unreadable. Called once at startup.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadSlot(s, slotEquipment, &s.state.Equipment, defaultEquipment)
	loadSlot(s, slotOperatingCosts, &s.state.OperatingCosts, defaultOperatingCosts)
	loadSlot(s, slotWeeklySales, &s.state.WeeklySales, defaultWeeklySales)
	loadSlot(s, slotCustomers, &s.state.Customers, defaultCustomers)
	loadSlot(s, slotBreedingPairs, &s.state.BreedingPairs, defaultBreedingPairs)
	loadSlot(s, slotTasks, &s.state.Tasks, defaultTasks)
	loadSlot(s, slotWaterLogs, &s.state.WaterLogs, defaultWaterLogs)
	loadSlot(s, slotMarketPrices, &s.state.MarketPrices, defaultMarketPrices)
	loadSlot(s, slotPlants, &s.state.Plants, defaultPlants)
	// Empty slices, not nil: every collection renders as a JSON array.
	loadSlot(s, slotPlantCare, &s.state.PlantCare, func() []models.PlantCareTask { return []models.PlantCareTask{} })
	loadSlot(s, slotPropagation, &s.state.Propagation, func() []models.PropagationProject { return []models.PropagationProject{} })
}

func loadSlot[T any](s *Store, key string, dest *[]T, seed func() []T) {
	if !s.slots.Load(key, dest) {
		*dest = seed()
		s.log.Info("seeded collection", zap.String("slot", key))
	}
}

// persist writes one collection back to its slot.
func (s *Store) persist(key string, value any) {
	s.slots.Save(key, value)
}

// Snapshot returns a copy of the state safe to read outside the lock. Weekly
// product sub-records are never mutated in place (updates replace them), so
// cloning the slices is enough.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Equipment:      slices.Clone(s.state.Equipment),
		OperatingCosts: slices.Clone(s.state.OperatingCosts),
		WeeklySales:    slices.Clone(s.state.WeeklySales),
		Customers:      slices.Clone(s.state.Customers),
		BreedingPairs:  slices.Clone(s.state.BreedingPairs),
		Tasks:          slices.Clone(s.state.Tasks),
		WaterLogs:      slices.Clone(s.state.WaterLogs),
		MarketPrices:   slices.Clone(s.state.MarketPrices),
		Plants:         slices.Clone(s.state.Plants),
		PlantCare:      slices.Clone(s.state.PlantCare),
		Propagation:    slices.Clone(s.state.Propagation),
	}
}

// --- Equipment (position-addressed) ---

// AddEquipment appends a default equipment row and returns it.
func (s *Store) AddEquipment() models.EquipmentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.EquipmentItem{Name: "New Item", Quantity: 1, UnitPrice: 0, Needed: true}
	s.state.Equipment = append(s.state.Equipment, item)
	s.persist(slotEquipment, s.state.Equipment)
	return item
}

// UpdateEquipment replaces one field on the row at index. Numeric input that
// does not parse becomes 0.
func (s *Store) UpdateEquipment(index int, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Equipment) {
		return fmt.Errorf("equipment index %d out of range", index)
	}
	item := &s.state.Equipment[index]
	switch field {
	case "name":
		item.Name = asString(value)
	case "quantity":
		item.Quantity = asInt(value)
	case "price":
		item.UnitPrice = asNumber(value)
	case "needed":
		item.Needed = asBool(value)
	default:
		return fmt.Errorf("unknown equipment field %q", field)
	}
	s.persist(slotEquipment, s.state.Equipment)
	return nil
}

// RemoveEquipment deletes the row at index.
func (s *Store) RemoveEquipment(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Equipment) {
		return fmt.Errorf("equipment index %d out of range", index)
	}
	s.state.Equipment = slices.Delete(s.state.Equipment, index, index+1)
	s.persist(slotEquipment, s.state.Equipment)
	return nil
}

// --- Operating costs (position-addressed) ---

// AddOperatingCost appends a zeroed cost row.
func (s *Store) AddOperatingCost() models.OperatingCost {
	s.mu.Lock()
	defer s.mu.Unlock()

	cost := models.OperatingCost{Name: "New Cost Item"}
	s.state.OperatingCosts = append(s.state.OperatingCosts, cost)
	s.persist(slotOperatingCosts, s.state.OperatingCosts)
	return cost
}

// RenameOperatingCost sets a cost row's name.
func (s *Store) RenameOperatingCost(index int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.OperatingCosts) {
		return fmt.Errorf("operating cost index %d out of range", index)
	}
	s.state.OperatingCosts[index].Name = name
	s.persist(slotOperatingCosts, s.state.OperatingCosts)
	return nil
}

// UpdateOperatingCost sets one month's value on a cost row. Unparseable input
// becomes 0.
func (s *Store) UpdateOperatingCost(index, month int, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.OperatingCosts) {
		return fmt.Errorf("operating cost index %d out of range", index)
	}
	if month < 0 || month >= 12 {
		return fmt.Errorf("month %d out of range", month)
	}
	s.state.OperatingCosts[index].Monthly[month] = asNumber(value)
	s.persist(slotOperatingCosts, s.state.OperatingCosts)
	return nil
}

// RemoveOperatingCost deletes a cost row. Removing the last remaining row is
// a no-op: the sheet always keeps at least one.
func (s *Store) RemoveOperatingCost(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.OperatingCosts) {
		return fmt.Errorf("operating cost index %d out of range", index)
	}
	if len(s.state.OperatingCosts) <= 1 {
		return nil
	}
	s.state.OperatingCosts = slices.Delete(s.state.OperatingCosts, index, index+1)
	s.persist(slotOperatingCosts, s.state.OperatingCosts)
	return nil
}

// --- Weekly sales (fixed 52 rows, addressed by week index) ---

// UpdateWeeklySales sets quantity or price on one product of one week. The
// value is clamped to 0 at minimum and unparseable input becomes 0, replacing
// the previous value. The sub-record is replaced, not mutated, so snapshots
// stay stable.
func (s *Store) UpdateWeeklySales(weekIndex int, product, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if weekIndex < 0 || weekIndex >= len(s.state.WeeklySales) {
		return fmt.Errorf("week index %d out of range", weekIndex)
	}
	week := &s.state.WeeklySales[weekIndex]

	var current *models.ProductSales
	switch product {
	case "guppies":
		current = week.Guppies
	case "plants":
		current = week.Plants
	case "shrimp":
		current = week.Shrimp
	default:
		return fmt.Errorf("unknown product %q", product)
	}

	next := models.ProductSales{}
	if current != nil {
		next = *current
	}
	switch field {
	case "quantity":
		next.Quantity = asNonNegative(value)
	case "price":
		next.Price = asNonNegative(value)
	default:
		return fmt.Errorf("unknown sales field %q", field)
	}

	switch product {
	case "guppies":
		week.Guppies = &next
	case "plants":
		week.Plants = &next
	case "shrimp":
		week.Shrimp = &next
	}
	s.persist(slotWeeklySales, s.state.WeeklySales)
	return nil
}

// FillSampleSales loads the demonstration sales curve: a dead first two
// months, then a slow ramp to steady summer volumes.
func (s *Store) FillSampleSales() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.WeeklySales {
		var guppies, plants, shrimp float64
		switch {
		case i < 8:
			// no sales yet
		case i < 12:
			guppies, plants, shrimp = 5, 4, 2
		case i < 16:
			guppies, plants, shrimp = 12, 6, 4
		default:
			guppies, plants, shrimp = 20, 8, 5
		}
		week := &s.state.WeeklySales[i]
		week.Guppies = &models.ProductSales{Quantity: guppies, Price: 0.80}
		week.Plants = &models.ProductSales{Quantity: plants, Price: 1.00}
		week.Shrimp = &models.ProductSales{Quantity: shrimp, Price: 1.00}
	}
	s.persist(slotWeeklySales, s.state.WeeklySales)
}
