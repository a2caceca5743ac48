// handlers/web.go - HTTP handlers over the application store
package handlers

import (
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"aquadash/internal/analysis"
	"aquadash/internal/models"
	"aquadash/internal/store"
)

// Handler holds dependencies
type Handler struct {
	Store *store.Store
	Log   *zap.Logger
}

// New creates a new Handler
func New(st *store.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: st, Log: log}
}

// State returns every collection as currently held.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Store.Snapshot())
}

// Dashboard bundles every derived metric in one payload. Everything here is
// recomputed from the raw collections on each request.
type Dashboard struct {
	EquipmentTotal   float64                  `json:"equipmentTotal"`
	AnnualRevenue    float64                  `json:"annualRevenue"`
	CashFlow         analysis.CashFlow        `json:"cashFlow"`
	MonthlySeries    []analysis.MonthFigures  `json:"monthlySeries"`
	Quarterly        [4]float64               `json:"quarterlyProfit"`
	BestMonth        string                   `json:"bestMonth"`
	AnnualProjection float64                  `json:"annualProjection"`
	Species          []analysis.SpeciesStats  `json:"species"`
	Seasons          []analysis.SeasonStats   `json:"seasons"`
	PlantFinancials  analysis.PlantFinancials `json:"plantFinancials"`
	PlantHealth      analysis.PlantHealth     `json:"plantHealth"`
	CareComplexity   analysis.CareComplexity  `json:"careComplexity"`
}

// GetDashboard computes the full dashboard payload.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()

	months := analysis.MonthlySeries(snap.WeeklySales, snap.OperatingCosts)
	respondJSON(w, http.StatusOK, Dashboard{
		EquipmentTotal:   analysis.EquipmentTotal(snap.Equipment),
		AnnualRevenue:    analysis.AnnualRevenue(snap.WeeklySales),
		CashFlow:         analysis.ComputeCashFlow(snap.Equipment, snap.OperatingCosts, snap.WeeklySales),
		MonthlySeries:    months,
		Quarterly:        analysis.QuarterlySeries(months),
		BestMonth:        months[analysis.BestMonth(months)].Month,
		AnnualProjection: analysis.AnnualProjection(months),
		Species:          analysis.SpeciesBreakdown(snap.WeeklySales),
		Seasons:          analysis.SeasonalBreakdown(snap.WeeklySales),
		PlantFinancials:  analysis.PlantFinancialSummary(snap.Plants),
		PlantHealth:      analysis.PlantHealthSummary(snap.Plants),
		CareComplexity:   analysis.CareComplexitySummary(snap.Plants),
	})
}

// --- Equipment ---

func (h *Handler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, h.Store.AddEquipment())
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	idx, err := urlIndex(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := parseUpdate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.UpdateEquipment(idx, p.Field, p.Value); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.Store.Snapshot().Equipment)
}

func (h *Handler) RemoveEquipment(w http.ResponseWriter, r *http.Request) {
	idx, err := urlIndex(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.RemoveEquipment(idx); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.Store.Snapshot().Equipment)
}

// --- Operating costs ---

func (h *Handler) AddOperatingCost(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, h.Store.AddOperatingCost())
}

// UpdateOperatingCost edits either the row name (field "name") or one month
// slot (month set in the payload).
func (h *Handler) UpdateOperatingCost(w http.ResponseWriter, r *http.Request) {
	idx, err := urlIndex(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := parseUpdate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.Month != nil {
		err = h.Store.UpdateOperatingCost(idx, *p.Month, p.Value)
	} else if p.Field == "name" {
		name, _ := p.Value.(string)
		err = h.Store.RenameOperatingCost(idx, name)
	} else {
		respondError(w, http.StatusBadRequest, `expected field "name" or a month`)
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.Store.Snapshot().OperatingCosts)
}

// RemoveOperatingCost deletes a row; deleting the last row is silently
// refused and the surviving row is returned.
func (h *Handler) RemoveOperatingCost(w http.ResponseWriter, r *http.Request) {
	idx, err := urlIndex(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.RemoveOperatingCost(idx); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.Store.Snapshot().OperatingCosts)
}

// --- Weekly sales ---

func (h *Handler) UpdateWeeklySales(w http.ResponseWriter, r *http.Request) {
	idx, err := urlIndex(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := parseUpdate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.UpdateWeeklySales(idx, p.Product, p.Field, p.Value); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.Store.Snapshot().WeeklySales)
}

func (h *Handler) FillSampleSales(w http.ResponseWriter, r *http.Request) {
	h.Store.FillSampleSales()
	respondJSON(w, http.StatusOK, h.Store.Snapshot().WeeklySales)
}

// --- Export / import ---

// Export streams the backup document with the conventional download name.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", "attachment; filename="+store.BackupFilename(time.Now()))
	respondJSON(w, http.StatusOK, h.Store.ExportAll())
}

// Import applies a backup document. A document that does not parse changes
// nothing and earns a visible failure notice.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read import: "+err.Error())
		return
	}
	if err := h.Store.ImportAll(data); err != nil {
		h.Log.Warn("import rejected", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Error importing data. Please check your file.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "Data imported successfully!"})
}

// --- Id-addressed collections (DRY handler builders) ---

// add builds a POST handler from a store add function.
func add[T any](addFn func() T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusCreated, addFn())
	}
}

// update builds a PATCH handler from a store field-update function.
func update(updateFn func(id, field string, value any) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := parseUpdate(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := updateFn(urlID(r), p.Field, p.Value); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// remove builds a DELETE handler from a store remove function.
func remove(removeFn func(id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := removeFn(urlID(r)); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) AddCustomer() http.HandlerFunc    { return add(h.Store.AddCustomer) }
func (h *Handler) UpdateCustomer() http.HandlerFunc { return update(h.Store.UpdateCustomer) }
func (h *Handler) RemoveCustomer() http.HandlerFunc { return remove(h.Store.RemoveCustomer) }

func (h *Handler) AddBreedingPair() http.HandlerFunc    { return add(h.Store.AddBreedingPair) }
func (h *Handler) UpdateBreedingPair() http.HandlerFunc { return update(h.Store.UpdateBreedingPair) }
func (h *Handler) RemoveBreedingPair() http.HandlerFunc { return remove(h.Store.RemoveBreedingPair) }

func (h *Handler) AddTask() http.HandlerFunc    { return add(h.Store.AddTask) }
func (h *Handler) UpdateTask() http.HandlerFunc { return update(h.Store.UpdateTask) }
func (h *Handler) RemoveTask() http.HandlerFunc { return remove(h.Store.RemoveTask) }

func (h *Handler) AddWaterLog() http.HandlerFunc    { return add(h.Store.AddWaterLog) }
func (h *Handler) UpdateWaterLog() http.HandlerFunc { return update(h.Store.UpdateWaterLog) }
func (h *Handler) RemoveWaterLog() http.HandlerFunc { return remove(h.Store.RemoveWaterLog) }

func (h *Handler) AddMarketPrice() http.HandlerFunc    { return add(h.Store.AddMarketPrice) }
func (h *Handler) UpdateMarketPrice() http.HandlerFunc { return update(h.Store.UpdateMarketPrice) }
func (h *Handler) RemoveMarketPrice() http.HandlerFunc { return remove(h.Store.RemoveMarketPrice) }

func (h *Handler) AddPlant() http.HandlerFunc    { return add(h.Store.AddPlant) }
func (h *Handler) UpdatePlant() http.HandlerFunc { return update(h.Store.UpdatePlant) }
func (h *Handler) RemovePlant() http.HandlerFunc { return remove(h.Store.RemovePlant) }

func (h *Handler) AddPlantCareTask(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, h.Store.AddPlantCareTask(parseAdd(r).PlantID))
}
func (h *Handler) UpdatePlantCareTask() http.HandlerFunc { return update(h.Store.UpdatePlantCareTask) }
func (h *Handler) RemovePlantCareTask() http.HandlerFunc { return remove(h.Store.RemovePlantCareTask) }

func (h *Handler) AddPropagationProject(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, h.Store.AddPropagationProject(parseAdd(r).PlantID))
}
func (h *Handler) UpdatePropagationProject() http.HandlerFunc {
	return update(h.Store.UpdatePropagationProject)
}
func (h *Handler) RemovePropagationProject() http.HandlerFunc {
	return remove(h.Store.RemovePropagationProject)
}

// CareSchedule returns care tasks with their plant names resolved; dangling
// references show as "Unknown Plant".
func (h *Handler) CareSchedule(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	type careView struct {
		models.PlantCareTask
		PlantName string `json:"plantName"`
	}
	views := make([]careView, 0, len(snap.PlantCare))
	for _, t := range snap.PlantCare {
		views = append(views, careView{t, models.PlantName(snap.Plants, t.PlantID)})
	}
	respondJSON(w, http.StatusOK, views)
}
