// store/records.go - CRUD for the id-addressed collections. Every update
// touches exactly one field on exactly one record and persists the slot.
package store

import (
	"fmt"
	"slices"

	"aquadash/internal/models"
)

func removeByID[T any](coll []T, id string, getID func(T) models.ID) ([]T, bool) {
	for i, rec := range coll {
		if getID(rec) == models.ID(id) {
			return slices.Delete(coll, i, i+1), true
		}
	}
	return coll, false
}

// customerHooks re-derives dependent fields after an edit, keyed by the field
// that was edited. The loyalty tier only moves when totalPurchases does.
var customerHooks = map[string]func(*models.Customer){
	"totalPurchases": func(c *models.Customer) {
		c.LoyaltyTier = models.TierFor(c.TotalPurchases)
	},
}

// AddCustomer appends a blank Bronze customer.
func (s *Store) AddCustomer() models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Customer{ID: newID(), LoyaltyTier: models.TierBronze, IsActive: true}
	s.state.Customers = append(s.state.Customers, c)
	s.persist(slotCustomers, s.state.Customers)
	return c
}

// UpdateCustomer sets one field, then runs any recompute hook registered for
// that field.
func (s *Store) UpdateCustomer(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Customers {
		c := &s.state.Customers[i]
		if c.ID != models.ID(id) {
			continue
		}
		switch field {
		case "name":
			c.Name = asString(value)
		case "email":
			c.Email = asString(value)
		case "phone":
			c.Phone = asString(value)
		case "totalPurchases":
			c.TotalPurchases = asNumber(value)
		case "visitCount":
			c.VisitCount = asInt(value)
		case "isActive":
			c.IsActive = asBool(value)
		default:
			return fmt.Errorf("unknown customer field %q", field)
		}
		if hook := customerHooks[field]; hook != nil {
			hook(c)
		}
		s.persist(slotCustomers, s.state.Customers)
		return nil
	}
	return fmt.Errorf("customer %s not found", id)
}

// RemoveCustomer deletes a customer by id.
func (s *Store) RemoveCustomer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.Customers, id, func(c models.Customer) models.ID { return c.ID })
	if !ok {
		return fmt.Errorf("customer %s not found", id)
	}
	s.state.Customers = coll
	s.persist(slotCustomers, s.state.Customers)
	return nil
}

// AddBreedingPair appends a new pair in the planning stage.
func (s *Store) AddBreedingPair() models.BreedingPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.BreedingPair{
		ID:           newID(),
		PairName:     "New Breeding Pair",
		Species:      "Guppy",
		TankNumber:   "Tank 1",
		BreedingDate: today(),
		Status:       models.BreedingPlanning,
	}
	s.state.BreedingPairs = append(s.state.BreedingPairs, p)
	s.persist(slotBreedingPairs, s.state.BreedingPairs)
	return p
}

// UpdateBreedingPair sets one field on a pair.
func (s *Store) UpdateBreedingPair(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.BreedingPairs {
		p := &s.state.BreedingPairs[i]
		if p.ID != models.ID(id) {
			continue
		}
		switch field {
		case "pairName":
			p.PairName = asString(value)
		case "species":
			p.Species = asString(value)
		case "tankNumber":
			p.TankNumber = asString(value)
		case "breedingDate":
			p.BreedingDate = asString(value)
		case "expectedBirth":
			p.ExpectedBirth = asString(value)
		case "fryCount":
			p.FryCount = asInt(value)
		case "status":
			p.Status = models.BreedingStatus(asString(value))
		default:
			return fmt.Errorf("unknown breeding pair field %q", field)
		}
		s.persist(slotBreedingPairs, s.state.BreedingPairs)
		return nil
	}
	return fmt.Errorf("breeding pair %s not found", id)
}

// RemoveBreedingPair deletes a pair by id.
func (s *Store) RemoveBreedingPair(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.BreedingPairs, id, func(p models.BreedingPair) models.ID { return p.ID })
	if !ok {
		return fmt.Errorf("breeding pair %s not found", id)
	}
	s.state.BreedingPairs = coll
	s.persist(slotBreedingPairs, s.state.BreedingPairs)
	return nil
}

// AddTask appends a weekly maintenance task due today.
func (s *Store) AddTask() models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Task{
		ID:        newID(),
		Title:     "New Task",
		Type:      "maintenance",
		Frequency: "weekly",
		NextDue:   today(),
	}
	s.state.Tasks = append(s.state.Tasks, t)
	s.persist(slotTasks, s.state.Tasks)
	return t
}

// UpdateTask sets one field on a task.
func (s *Store) UpdateTask(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tasks {
		t := &s.state.Tasks[i]
		if t.ID != models.ID(id) {
			continue
		}
		switch field {
		case "title":
			t.Title = asString(value)
		case "type":
			t.Type = asString(value)
		case "frequency":
			t.Frequency = asString(value)
		case "nextDue":
			t.NextDue = asString(value)
		case "completed":
			t.Completed = asBool(value)
		default:
			return fmt.Errorf("unknown task field %q", field)
		}
		s.persist(slotTasks, s.state.Tasks)
		return nil
	}
	return fmt.Errorf("task %s not found", id)
}

// RemoveTask deletes a task by id.
func (s *Store) RemoveTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.Tasks, id, func(t models.Task) models.ID { return t.ID })
	if !ok {
		return fmt.Errorf("task %s not found", id)
	}
	s.state.Tasks = coll
	s.persist(slotTasks, s.state.Tasks)
	return nil
}

// AddWaterLog appends a log entry for today with neutral readings.
func (s *Store) AddWaterLog() models.WaterLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := models.WaterLog{
		ID:          newID(),
		Date:        today(),
		TankNumber:  "Tank 1",
		PH:          7.0,
		Temperature: 24.0,
	}
	s.state.WaterLogs = append(s.state.WaterLogs, l)
	s.persist(slotWaterLogs, s.state.WaterLogs)
	return l
}

// UpdateWaterLog sets one field on a log entry.
func (s *Store) UpdateWaterLog(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.WaterLogs {
		l := &s.state.WaterLogs[i]
		if l.ID != models.ID(id) {
			continue
		}
		switch field {
		case "date":
			l.Date = asString(value)
		case "tankNumber":
			l.TankNumber = asString(value)
		case "ph":
			l.PH = asNumber(value)
		case "temperature":
			l.Temperature = asNumber(value)
		case "ammonia":
			l.Ammonia = asNumber(value)
		case "nitrite":
			l.Nitrite = asNumber(value)
		case "nitrate":
			l.Nitrate = asNumber(value)
		case "notes":
			l.Notes = asString(value)
		default:
			return fmt.Errorf("unknown water log field %q", field)
		}
		s.persist(slotWaterLogs, s.state.WaterLogs)
		return nil
	}
	return fmt.Errorf("water log %s not found", id)
}

// RemoveWaterLog deletes a log entry by id.
func (s *Store) RemoveWaterLog(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.WaterLogs, id, func(l models.WaterLog) models.ID { return l.ID })
	if !ok {
		return fmt.Errorf("water log %s not found", id)
	}
	s.state.WaterLogs = coll
	s.persist(slotWaterLogs, s.state.WaterLogs)
	return nil
}

// AddMarketPrice appends a blank price comparison row.
func (s *Store) AddMarketPrice() models.MarketPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.MarketPrice{ID: newID(), Species: "New Species", Size: "Adult"}
	s.state.MarketPrices = append(s.state.MarketPrices, m)
	s.persist(slotMarketPrices, s.state.MarketPrices)
	return m
}

// UpdateMarketPrice sets one field on a price row.
func (s *Store) UpdateMarketPrice(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.MarketPrices {
		m := &s.state.MarketPrices[i]
		if m.ID != models.ID(id) {
			continue
		}
		switch field {
		case "species":
			m.Species = asString(value)
		case "size":
			m.Size = asString(value)
		case "currentPrice":
			m.YourPrice = asNumber(value)
		case "marketPrice":
			m.MarketPrice = asNumber(value)
		case "competitor":
			m.Competitor = asString(value)
		default:
			return fmt.Errorf("unknown market price field %q", field)
		}
		s.persist(slotMarketPrices, s.state.MarketPrices)
		return nil
	}
	return fmt.Errorf("market price %s not found", id)
}

// RemoveMarketPrice deletes a price row by id.
func (s *Store) RemoveMarketPrice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.MarketPrices, id, func(m models.MarketPrice) models.ID { return m.ID })
	if !ok {
		return fmt.Errorf("market price %s not found", id)
	}
	s.state.MarketPrices = coll
	s.persist(slotMarketPrices, s.state.MarketPrices)
	return nil
}
