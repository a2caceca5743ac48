// store/plants.go - CRUD for the plant inventory, care schedule and
// propagation projects. Care tasks and projects reference plants by id only;
// deleting a plant leaves its dependents in place.
package store

import (
	"fmt"

	"aquadash/internal/models"
)

// AddPlant appends a default healthy, easy-care plant.
func (s *Store) AddPlant() models.PlantItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.PlantItem{
		ID:           newID(),
		Name:         "New Plant",
		Quantity:     1,
		DateAcquired: today(),
		Condition:    models.ConditionHealthy,
		CareLevel:    models.CareEasy,
		Light:        models.LightMedium,
	}
	s.state.Plants = append(s.state.Plants, p)
	s.persist(slotPlants, s.state.Plants)
	return p
}

// UpdatePlant sets one field on a plant.
func (s *Store) UpdatePlant(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Plants {
		p := &s.state.Plants[i]
		if p.ID != models.ID(id) {
			continue
		}
		switch field {
		case "name":
			p.Name = asString(value)
		case "species":
			p.Species = asString(value)
		case "quantity":
			p.Quantity = asInt(value)
		case "location":
			p.Location = asString(value)
		case "purchasePrice":
			p.PurchasePrice = asNumber(value)
		case "sellPrice":
			p.SellPrice = asNumber(value)
		case "supplier":
			p.Supplier = asString(value)
		case "dateAcquired":
			p.DateAcquired = asString(value)
		case "condition":
			p.Condition = models.PlantCondition(asString(value))
		case "careLevel":
			p.CareLevel = models.CareLevel(asString(value))
		case "lightRequirement":
			p.Light = models.LightRequirement(asString(value))
		case "propagationType":
			p.PropagationType = asString(value)
		case "notes":
			p.Notes = asString(value)
		default:
			return fmt.Errorf("unknown plant field %q", field)
		}
		s.persist(slotPlants, s.state.Plants)
		return nil
	}
	return fmt.Errorf("plant %s not found", id)
}

// RemovePlant deletes a plant by id. Care tasks and propagation projects that
// referenced it keep their ids and render with a placeholder name.
func (s *Store) RemovePlant(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.Plants, id, func(p models.PlantItem) models.ID { return p.ID })
	if !ok {
		return fmt.Errorf("plant %s not found", id)
	}
	s.state.Plants = coll
	s.persist(slotPlants, s.state.Plants)
	return nil
}

// AddPlantCareTask appends a weekly care task pointing at the given plant.
// The plant id is not validated; a dangling reference is tolerated.
func (s *Store) AddPlantCareTask(plantID string) models.PlantCareTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.PlantCareTask{
		ID:        newID(),
		PlantID:   models.ID(plantID),
		TaskType:  "fertilize",
		Frequency: "weekly",
		NextDue:   today(),
	}
	s.state.PlantCare = append(s.state.PlantCare, t)
	s.persist(slotPlantCare, s.state.PlantCare)
	return t
}

// UpdatePlantCareTask sets one field on a care task.
func (s *Store) UpdatePlantCareTask(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.PlantCare {
		t := &s.state.PlantCare[i]
		if t.ID != models.ID(id) {
			continue
		}
		switch field {
		case "plantId":
			t.PlantID = models.ID(asString(value))
		case "taskType":
			t.TaskType = asString(value)
		case "frequency":
			t.Frequency = asString(value)
		case "lastDone":
			t.LastDone = asString(value)
		case "nextDue":
			t.NextDue = asString(value)
		case "completed":
			t.Completed = asBool(value)
		default:
			return fmt.Errorf("unknown care task field %q", field)
		}
		s.persist(slotPlantCare, s.state.PlantCare)
		return nil
	}
	return fmt.Errorf("care task %s not found", id)
}

// RemovePlantCareTask deletes a care task by id.
func (s *Store) RemovePlantCareTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.PlantCare, id, func(t models.PlantCareTask) models.ID { return t.ID })
	if !ok {
		return fmt.Errorf("care task %s not found", id)
	}
	s.state.PlantCare = coll
	s.persist(slotPlantCare, s.state.PlantCare)
	return nil
}

// AddPropagationProject appends a planning-stage project for the given parent
// plant. Like care tasks, the reference is soft.
func (s *Store) AddPropagationProject(parentPlantID string) models.PropagationProject {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.PropagationProject{
		ID:            newID(),
		ParentPlantID: models.ID(parentPlantID),
		Method:        "cutting",
		DateStarted:   today(),
		Status:        models.PropagationPlanning,
	}
	s.state.Propagation = append(s.state.Propagation, p)
	s.persist(slotPropagation, s.state.Propagation)
	return p
}

// UpdatePropagationProject sets one field on a project.
func (s *Store) UpdatePropagationProject(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Propagation {
		p := &s.state.Propagation[i]
		if p.ID != models.ID(id) {
			continue
		}
		switch field {
		case "parentPlantId":
			p.ParentPlantID = models.ID(asString(value))
		case "method":
			p.Method = asString(value)
		case "dateStarted":
			p.DateStarted = asString(value)
		case "expectedReady":
			p.ExpectedReady = asString(value)
		case "expectedQuantity":
			p.ExpectedQuantity = asInt(value)
		case "actualQuantity":
			p.ActualQuantity = asInt(value)
		case "status":
			p.Status = models.PropagationStatus(asString(value))
		default:
			return fmt.Errorf("unknown propagation field %q", field)
		}
		s.persist(slotPropagation, s.state.Propagation)
		return nil
	}
	return fmt.Errorf("propagation project %s not found", id)
}

// RemovePropagationProject deletes a project by id.
func (s *Store) RemovePropagationProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := removeByID(s.state.Propagation, id, func(p models.PropagationProject) models.ID { return p.ID })
	if !ok {
		return fmt.Errorf("propagation project %s not found", id)
	}
	s.state.Propagation = coll
	s.persist(slotPropagation, s.state.Propagation)
	return nil
}
