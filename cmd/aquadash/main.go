// cmd/aquadash/main.go - Entry point
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"aquadash/internal/config"
	"aquadash/internal/handlers"
	"aquadash/internal/scheduler"
	"aquadash/internal/store"
	"aquadash/pkg/logger"
)

func main() {
	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	slots, err := store.OpenSlots(cfg.Database.Path, logger.Named(log, "slots"))
	if err != nil {
		log.Fatal("failed to open slot store", zap.Error(err))
	}
	defer slots.Close()
	log.Info("slot store opened", zap.String("path", cfg.Database.Path))

	st := store.New(slots, logger.Named(log, "store"))
	st.Load()

	handler := handlers.New(st, logger.Named(log, "handlers"))

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Derived metrics and raw state
	r.Get("/api/state", handler.State)
	r.Get("/api/dashboard", handler.GetDashboard)

	// Equipment (position-addressed)
	r.Post("/api/equipment", handler.AddEquipment)
	r.Patch("/api/equipment/{index}", handler.UpdateEquipment)
	r.Delete("/api/equipment/{index}", handler.RemoveEquipment)

	// Operating costs (position-addressed, minimum one row)
	r.Post("/api/operating-costs", handler.AddOperatingCost)
	r.Patch("/api/operating-costs/{index}", handler.UpdateOperatingCost)
	r.Delete("/api/operating-costs/{index}", handler.RemoveOperatingCost)

	// Weekly sales (fixed 52 rows)
	r.Patch("/api/sales/{index}", handler.UpdateWeeklySales)
	r.Post("/api/sales/sample", handler.FillSampleSales)

	// Customers
	r.Post("/api/customers", handler.AddCustomer())
	r.Patch("/api/customers/{id}", handler.UpdateCustomer())
	r.Delete("/api/customers/{id}", handler.RemoveCustomer())

	// Breeding pairs
	r.Post("/api/breeding-pairs", handler.AddBreedingPair())
	r.Patch("/api/breeding-pairs/{id}", handler.UpdateBreedingPair())
	r.Delete("/api/breeding-pairs/{id}", handler.RemoveBreedingPair())

	// Tasks
	r.Post("/api/tasks", handler.AddTask())
	r.Patch("/api/tasks/{id}", handler.UpdateTask())
	r.Delete("/api/tasks/{id}", handler.RemoveTask())

	// Water logs
	r.Post("/api/water-logs", handler.AddWaterLog())
	r.Patch("/api/water-logs/{id}", handler.UpdateWaterLog())
	r.Delete("/api/water-logs/{id}", handler.RemoveWaterLog())

	// Market prices
	r.Post("/api/market-prices", handler.AddMarketPrice())
	r.Patch("/api/market-prices/{id}", handler.UpdateMarketPrice())
	r.Delete("/api/market-prices/{id}", handler.RemoveMarketPrice())

	// Plant inventory, care schedule, propagation
	r.Post("/api/plants", handler.AddPlant())
	r.Patch("/api/plants/{id}", handler.UpdatePlant())
	r.Delete("/api/plants/{id}", handler.RemovePlant())
	r.Get("/api/plant-care", handler.CareSchedule)
	r.Post("/api/plant-care", handler.AddPlantCareTask)
	r.Patch("/api/plant-care/{id}", handler.UpdatePlantCareTask())
	r.Delete("/api/plant-care/{id}", handler.RemovePlantCareTask())
	r.Post("/api/propagation", handler.AddPropagationProject)
	r.Patch("/api/propagation/{id}", handler.UpdatePropagationProject())
	r.Delete("/api/propagation/{id}", handler.RemovePropagationProject())

	// Backup
	r.Get("/api/export", handler.Export)
	r.Post("/api/import", handler.Import)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	sched := scheduler.New(cfg.Backup, st, logger.Named(log, "scheduler"))
	sched.Start()
	defer sched.Stop()

	addr := ":" + cfg.Server.Port
	log.Info("aquadash starting", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
