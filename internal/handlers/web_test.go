package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"aquadash/internal/analysis"
	"aquadash/internal/models"
	"aquadash/internal/store"
)

// memorySlots keeps handler tests off the filesystem.
type memorySlots struct {
	data map[string][]byte
}

func (m *memorySlots) Load(key string, dest any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *memorySlots) Save(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.data[key] = raw
}

func setupRouter(t *testing.T) (*chi.Mux, *store.Store) {
	t.Helper()
	st := store.New(&memorySlots{data: map[string][]byte{}}, nil)
	st.Load()
	h := New(st, nil)

	r := chi.NewRouter()
	r.Get("/api/state", h.State)
	r.Get("/api/dashboard", h.GetDashboard)
	r.Post("/api/equipment", h.AddEquipment)
	r.Patch("/api/equipment/{index}", h.UpdateEquipment)
	r.Delete("/api/equipment/{index}", h.RemoveEquipment)
	r.Patch("/api/operating-costs/{index}", h.UpdateOperatingCost)
	r.Delete("/api/operating-costs/{index}", h.RemoveOperatingCost)
	r.Patch("/api/sales/{index}", h.UpdateWeeklySales)
	r.Post("/api/sales/sample", h.FillSampleSales)
	r.Post("/api/customers", h.AddCustomer())
	r.Patch("/api/customers/{id}", h.UpdateCustomer())
	r.Delete("/api/customers/{id}", h.RemoveCustomer())
	r.Get("/api/plant-care", h.CareSchedule)
	r.Post("/api/plant-care", h.AddPlantCareTask)
	r.Get("/api/export", h.Export)
	r.Post("/api/import", h.Import)
	return r, st
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEquipmentEndpoints(t *testing.T) {
	r, st := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/equipment", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/equipment/6", `{"field":"price","value":19.99}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	if got := st.Snapshot().Equipment[6].UnitPrice; got != 19.99 {
		t.Errorf("price = %v, want 19.99", got)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/equipment/6", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	// Bad index on the route yields a client error, not a panic.
	w = doJSON(t, r, http.MethodPatch, "/api/equipment/notanumber", `{"field":"price","value":1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad index status = %d, want 400", w.Code)
	}
}

func TestOperatingCostEndpoints(t *testing.T) {
	r, st := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/operating-costs/0", `{"month":2,"value":"40"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("month update status = %d: %s", w.Code, w.Body.String())
	}
	if got := st.Snapshot().OperatingCosts[0].Monthly[2]; got != 40 {
		t.Errorf("month value = %v, want 40", got)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/operating-costs/0", `{"field":"name","value":"Power"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("rename status = %d", w.Code)
	}

	// Deleting down to one row, then once more: row count stays at one.
	for i := 0; i < 10; i++ {
		doJSON(t, r, http.MethodDelete, "/api/operating-costs/0", "")
	}
	if got := len(st.Snapshot().OperatingCosts); got != 1 {
		t.Errorf("cost rows = %d, want 1", got)
	}
}

func TestSalesAndDashboardEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sales/sample", "")
	if w.Code != http.StatusOK {
		t.Fatalf("sample fill status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/sales/0", `{"product":"shrimp","field":"quantity","value":-3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("sales update status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}

	var dash Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dash.EquipmentTotal != 308 {
		t.Errorf("EquipmentTotal = %v, want 308 (seed equipment)", dash.EquipmentTotal)
	}
	if dash.AnnualRevenue <= 0 {
		t.Errorf("AnnualRevenue = %v, want > 0 after sample fill", dash.AnnualRevenue)
	}
	if len(dash.MonthlySeries) != 12 || len(dash.Seasons) != 4 || len(dash.Species) != 3 {
		t.Errorf("series sizes = %d/%d/%d, want 12/4/3",
			len(dash.MonthlySeries), len(dash.Seasons), len(dash.Species))
	}
	if dash.BestMonth == "" {
		t.Error("BestMonth empty")
	}
}

func TestCustomerEndpoints(t *testing.T) {
	r, st := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d", w.Code)
	}
	var c models.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("decode customer: %v", err)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/customers/"+string(c.ID), `{"field":"totalPurchases","value":500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	for _, got := range st.Snapshot().Customers {
		if got.ID == c.ID && got.LoyaltyTier != models.TierGold {
			t.Errorf("tier = %s, want Gold", got.LoyaltyTier)
		}
	}

	w = doJSON(t, r, http.MethodDelete, "/api/customers/"+string(c.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/customers/"+string(c.ID), "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("double delete status = %d, want 400", w.Code)
	}
}

func TestCareScheduleResolvesPlantNames(t *testing.T) {
	r, st := setupRouter(t)

	plantID := string(st.Snapshot().Plants[0].ID)
	doJSON(t, r, http.MethodPost, "/api/plant-care", `{"plantId":"`+plantID+`"}`)
	doJSON(t, r, http.MethodPost, "/api/plant-care", `{"plantId":"gone"}`)

	w := doJSON(t, r, http.MethodGet, "/api/plant-care", "")
	if w.Code != http.StatusOK {
		t.Fatalf("care schedule status = %d", w.Code)
	}

	var views []struct {
		PlantID   string `json:"plantId"`
		PlantName string `json:"plantName"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	if views[0].PlantName != "Java Fern" {
		t.Errorf("resolved name = %q, want Java Fern", views[0].PlantName)
	}
	if views[1].PlantName != models.UnknownPlantName {
		t.Errorf("dangling name = %q, want %q", views[1].PlantName, models.UnknownPlantName)
	}
}

func TestExportImportEndpoints(t *testing.T) {
	r, st := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "aquarium-business-backup-") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	exported := w.Body.String()

	// Mutate, then import the earlier snapshot back.
	doJSON(t, r, http.MethodPatch, "/api/equipment/0", `{"field":"quantity","value":99}`)
	w = doJSON(t, r, http.MethodPost, "/api/import", exported)
	if w.Code != http.StatusOK {
		t.Fatalf("import status = %d: %s", w.Code, w.Body.String())
	}
	if got := st.Snapshot().Equipment[0].Quantity; got != 4 {
		t.Errorf("quantity after restore = %d, want 4", got)
	}

	// Malformed documents change nothing and report failure.
	before := st.Snapshot()
	w = doJSON(t, r, http.MethodPost, "/api/import", `{"equipment": [{`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad import status = %d, want 400", w.Code)
	}
	after := st.Snapshot()
	if len(before.Equipment) != len(after.Equipment) {
		t.Error("failed import changed equipment")
	}
}

// The dashboard endpoint and the analysis package agree on the sample data.
func TestDashboardMatchesAnalysis(t *testing.T) {
	r, st := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/api/sales/sample", "")

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", "")
	var dash Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode: %v", err)
	}

	snap := st.Snapshot()
	if want := analysis.AnnualRevenue(snap.WeeklySales); dash.AnnualRevenue != want {
		t.Errorf("AnnualRevenue = %v, want %v", dash.AnnualRevenue, want)
	}
	if want := analysis.ComputeCashFlow(snap.Equipment, snap.OperatingCosts, snap.WeeklySales); dash.CashFlow != want {
		t.Errorf("CashFlow = %+v, want %+v", dash.CashFlow, want)
	}
}
