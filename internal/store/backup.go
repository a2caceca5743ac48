// store/backup.go - Bulk export/import of the backup document.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"aquadash/internal/models"
)

// BackupDocument is the bulk export format. The plant collections are not
// part of it; the document shape predates the plant inventory and existing
// backups are expected to keep round-tripping unchanged.
//
// On import, pointer fields distinguish an absent key (collection untouched)
// from a present one (collection replaced wholesale).
type BackupDocument struct {
	Equipment      *[]models.EquipmentItem     `json:"equipment,omitempty"`
	OperatingCosts *[]models.OperatingCost     `json:"operatingCosts,omitempty"`
	WeeklySales    *[]models.WeeklySalesRecord `json:"weeklySales,omitempty"`
	Customers      *[]models.Customer          `json:"customers,omitempty"`
	BreedingPairs  *[]models.BreedingPair      `json:"breedingPairs,omitempty"`
	Tasks          *[]models.Task              `json:"tasks,omitempty"`
	WaterLogs      *[]models.WaterLog          `json:"waterLogs,omitempty"`
	MarketPrices   *[]models.MarketPrice       `json:"marketPrices,omitempty"`
	ExportDate     string                      `json:"exportDate"`
}

// BackupFilename is the conventional download name for an export taken now.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("aquarium-business-backup-%s.json", now.Format("2006-01-02"))
}

// ExportAll bundles every exportable collection with a timestamp.
func (s *Store) ExportAll() BackupDocument {
	snap := s.Snapshot()
	return BackupDocument{
		Equipment:      &snap.Equipment,
		OperatingCosts: &snap.OperatingCosts,
		WeeklySales:    &snap.WeeklySales,
		Customers:      &snap.Customers,
		BreedingPairs:  &snap.BreedingPairs,
		Tasks:          &snap.Tasks,
		WaterLogs:      &snap.WaterLogs,
		MarketPrices:   &snap.MarketPrices,
		ExportDate:     time.Now().UTC().Format(time.RFC3339),
	}
}

// ImportAll parses a backup document and replaces every collection the
// document carries. The parse is all-or-nothing: a document that fails to
// decode changes nothing. Collections absent from the document are left as
// they are.
func (s *Store) ImportAll(data []byte) error {
	var doc BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Equipment != nil {
		s.state.Equipment = *doc.Equipment
		s.persist(slotEquipment, s.state.Equipment)
	}
	if doc.OperatingCosts != nil {
		s.state.OperatingCosts = *doc.OperatingCosts
		s.persist(slotOperatingCosts, s.state.OperatingCosts)
	}
	if doc.WeeklySales != nil {
		s.state.WeeklySales = *doc.WeeklySales
		s.persist(slotWeeklySales, s.state.WeeklySales)
	}
	if doc.Customers != nil {
		s.state.Customers = *doc.Customers
		s.persist(slotCustomers, s.state.Customers)
	}
	if doc.BreedingPairs != nil {
		s.state.BreedingPairs = *doc.BreedingPairs
		s.persist(slotBreedingPairs, s.state.BreedingPairs)
	}
	if doc.Tasks != nil {
		s.state.Tasks = *doc.Tasks
		s.persist(slotTasks, s.state.Tasks)
	}
	if doc.WaterLogs != nil {
		s.state.WaterLogs = *doc.WaterLogs
		s.persist(slotWaterLogs, s.state.WaterLogs)
	}
	if doc.MarketPrices != nil {
		s.state.MarketPrices = *doc.MarketPrices
		s.persist(slotMarketPrices, s.state.MarketPrices)
	}
	return nil
}
